package ports

import (
	"context"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

// SupplierValidator - проверки кандидатов в поставщики. Ошибки накапливаются, а не прерывают проверку.
type SupplierValidator interface {
	ValidateCreate(ctx context.Context, in *domain.SupplierCreate) domain.ValidationResult
	ValidateUpdate(ctx context.Context, in *domain.SupplierUpdate) domain.ValidationResult
}

// ProductValidator - проверки кандидатов в каталог.
type ProductValidator interface {
	ValidateCreate(ctx context.Context, in *domain.ProductCreate) domain.ValidationResult
	ValidateUpdate(ctx context.Context, in *domain.ProductUpdate) domain.ValidationResult
}

// ReceptionValidator - проверки приёмок; результат зависит от текущего времени валидатора.
type ReceptionValidator interface {
	ValidateCreate(ctx context.Context, in *domain.ReceptionCreate) domain.ValidationResult
	ValidateUpdate(ctx context.Context, in *domain.ReceptionUpdate) domain.ValidationResult
}
