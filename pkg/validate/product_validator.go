package validate

import (
	"context"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
)

var _ ports.ProductValidator = (*ProductValidator)(nil)

// ProductValidator - правила для позиций каталога.
type ProductValidator struct{}

func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// ValidateCreate - code и name обязательны; длина считается в символах, не в байтах.
func (v *ProductValidator) ValidateCreate(_ context.Context, in *domain.ProductCreate) domain.ValidationResult {
	if in == nil {
		in = &domain.ProductCreate{}
	}
	var errs []string

	if in.Code == "" {
		errs = append(errs, msgProductCodeRequired)
	}
	if in.Name == "" {
		errs = append(errs, msgProductNameRequired)
	}

	if in.Code != "" && charCount(in.Code) < minProductCodeLen {
		errs = append(errs, msgProductCodeTooShort)
	}
	if in.Name != "" && charCount(in.Name) < minProductNameLen {
		errs = append(errs, msgProductNameTooShort)
	}

	return domain.NewValidationResult(errs)
}

// ValidateUpdate - те же проверки длины для переданных полей.
// Переданная пустая строка - это тоже значение, и оно короче минимума.
func (v *ProductValidator) ValidateUpdate(_ context.Context, in *domain.ProductUpdate) domain.ValidationResult {
	if in == nil {
		return domain.NewValidationResult(nil)
	}
	var errs []string

	if in.Code != nil && charCount(*in.Code) < minProductCodeLen {
		errs = append(errs, msgProductCodeTooShort)
	}
	if in.Name != nil && charCount(*in.Name) < minProductNameLen {
		errs = append(errs, msgProductNameTooShort)
	}

	return domain.NewValidationResult(errs)
}
