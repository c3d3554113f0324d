package ports

import (
	"context"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

// SupplierRepository - хранилище поставщиков.
// GetByID возвращает (nil, nil), если записи нет; Update и Delete в этом случае возвращают domain.ErrNotFound.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context, filter domain.SupplierFilter) ([]*domain.Supplier, error)
	Update(ctx context.Context, id string, patch *domain.SupplierUpdate) (*domain.Supplier, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository - хранилище каталога.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	// ListActive - активные позиции по имени, для выбора товара в форме приёмки.
	ListActive(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch *domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// ReceptionRepository - хранилище приёмок. Чтение и запись возвращают запись вместе с товаром и поставщиком.
// Ссылка на несуществующий товар/поставщика - domain.ErrReferenceNotFound.
type ReceptionRepository interface {
	Create(ctx context.Context, r *domain.Reception) (*domain.Reception, error)
	GetByID(ctx context.Context, id string) (*domain.Reception, error)
	List(ctx context.Context, filter domain.ReceptionFilter) ([]*domain.Reception, error)
	Update(ctx context.Context, id string, patch *domain.ReceptionPatch) (*domain.Reception, error)
	Delete(ctx context.Context, id string) error
}
