package ports

import (
	"context"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

// SupplierService - сценарии работы с поставщиками для транспортного слоя.
type SupplierService interface {
	CreateSupplier(ctx context.Context, in *domain.SupplierCreate) (*domain.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, filter domain.SupplierFilter) ([]*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, in *domain.SupplierUpdate) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	ValidateSupplier(ctx context.Context, in *domain.SupplierCreate) domain.ValidationResult
}

// ProductService - сценарии работы с каталогом.
type ProductService interface {
	CreateProduct(ctx context.Context, in *domain.ProductCreate) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	ListActiveProducts(ctx context.Context) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in *domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ValidateProduct(ctx context.Context, in *domain.ProductCreate) domain.ValidationResult
}

// ReceptionService - сценарии работы с приёмками.
type ReceptionService interface {
	CreateReception(ctx context.Context, in *domain.ReceptionCreate) (*domain.Reception, error)
	GetReception(ctx context.Context, id string) (*domain.Reception, error)
	ListReceptions(ctx context.Context, filter domain.ReceptionFilter) ([]*domain.Reception, error)
	UpdateReception(ctx context.Context, id string, in *domain.ReceptionUpdate) (*domain.Reception, error)
	DeleteReception(ctx context.Context, id string) error
	ValidateReception(ctx context.Context, in *domain.ReceptionCreate) domain.ValidationResult
}
