package validate

import (
	"context"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
)

// Проверка, что SupplierValidator удовлетворяет интерфейсу SupplierValidator.
var _ ports.SupplierValidator = (*SupplierValidator)(nil)

// SupplierValidator - правила для поставщиков. Без состояния, безопасен для параллельного использования.
type SupplierValidator struct{}

// NewSupplierValidator - конструктор SupplierValidator.
func NewSupplierValidator() *SupplierValidator { return &SupplierValidator{} }

// ValidateCreate - обязательные поля, формат email, коды деятельности и формат NIT.
// Формат номера проверяется только для NIT; CC/CE/PP - лишь на непустоту.
func (v *SupplierValidator) ValidateCreate(_ context.Context, in *domain.SupplierCreate) domain.ValidationResult {
	if in == nil {
		in = &domain.SupplierCreate{}
	}
	var errs []string

	if in.IDType == "" {
		errs = append(errs, msgSupplierIDTypeRequired)
	}
	if in.IDNumber == "" {
		errs = append(errs, msgSupplierIDNumberRequired)
	}
	if in.Name == "" {
		errs = append(errs, msgSupplierNameRequired)
	}

	if in.Email != "" && !IsValidEmail(in.Email) {
		errs = append(errs, msgEmailInvalid)
	}

	errs = append(errs, activityCodeErrors(in.EconomicActivity)...)

	if in.IDType == domain.IDTypeNIT && !IsValidNIT(in.IDNumber) {
		errs = append(errs, msgNITInvalid)
	}

	return domain.NewValidationResult(errs)
}

// ValidateUpdate - только email и коды деятельности, и только если они переданы.
// Пустой email означает очистку поля и не проверяется.
func (v *SupplierValidator) ValidateUpdate(_ context.Context, in *domain.SupplierUpdate) domain.ValidationResult {
	if in == nil {
		return domain.NewValidationResult(nil)
	}
	var errs []string

	if in.Email != nil && *in.Email != "" && !IsValidEmail(*in.Email) {
		errs = append(errs, msgEmailInvalid)
	}

	errs = append(errs, activityCodeErrors(in.EconomicActivity)...)

	return domain.NewValidationResult(errs)
}
