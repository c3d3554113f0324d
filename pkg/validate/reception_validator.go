package validate

import (
	"context"
	"time"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
)

var _ ports.ReceptionValidator = (*ReceptionValidator)(nil)

// ReceptionValidator - правила для приёмок. Текущее время берётся из now (по одному разу на вызов),
// поэтому результат одной и той же записи может меняться со временем.
type ReceptionValidator struct {
	now func() time.Time
	loc *time.Location
}

// ReceptionOption - настройка ReceptionValidator.
type ReceptionOption func(*ReceptionValidator)

// WithClock - источник текущего времени (в тестах - фиксированный).
func WithClock(now func() time.Time) ReceptionOption {
	return func(v *ReceptionValidator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithLocation - зона для дат без смещения (datetime-local из формы).
func WithLocation(loc *time.Location) ReceptionOption {
	return func(v *ReceptionValidator) {
		if loc != nil {
			v.loc = loc
		}
	}
}

// NewReceptionValidator - по умолчанию time.Now и UTC.
func NewReceptionValidator(opts ...ReceptionOption) *ReceptionValidator {
	v := &ReceptionValidator{now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateCreate - обязательные поля, количество > 0, дата приёмки не в будущем,
// срок годности строго в будущем (равенство с текущим моментом - ошибка).
func (v *ReceptionValidator) ValidateCreate(_ context.Context, in *domain.ReceptionCreate) domain.ValidationResult {
	if in == nil {
		in = &domain.ReceptionCreate{}
	}
	var errs []string

	if in.ReceptionDate == "" {
		errs = append(errs, msgReceptionDateRequired)
	}
	if in.ProductID == "" {
		errs = append(errs, msgReceptionProductRequired)
	}
	if in.SupplierID == "" {
		errs = append(errs, msgReceptionSupplierRequired)
	}
	if in.InvoiceNumber == "" {
		errs = append(errs, msgReceptionInvoiceRequired)
	}
	if in.Quantity <= 0 {
		errs = append(errs, msgReceptionQuantityInvalid)
	}
	if in.PresentationState == "" {
		errs = append(errs, msgReceptionStateRequired)
	}

	now := v.now()

	if in.ReceptionDate != "" {
		errs = append(errs, v.receptionDateErrors(in.ReceptionDate, now)...)
	}
	if in.ExpirationDate != "" {
		errs = append(errs, v.expirationErrors(in.ExpirationDate, now)...)
	}

	return domain.NewValidationResult(errs)
}

// ValidateUpdate - только количество и срок годности, если они переданы.
// Переданная дата приёмки проверяется лишь на разбираемость: без неё запись не сохранить.
func (v *ReceptionValidator) ValidateUpdate(_ context.Context, in *domain.ReceptionUpdate) domain.ValidationResult {
	if in == nil {
		return domain.NewValidationResult(nil)
	}
	var errs []string

	if in.Quantity != nil && *in.Quantity <= 0 {
		errs = append(errs, msgReceptionQuantityInvalid)
	}

	if in.ReceptionDate != nil {
		if _, err := ParseTimestamp(*in.ReceptionDate, v.loc); err != nil {
			errs = append(errs, msgReceptionDateMalformed)
		}
	}

	if in.ExpirationDate != nil && *in.ExpirationDate != "" {
		errs = append(errs, v.expirationErrors(*in.ExpirationDate, v.now())...)
	}

	return domain.NewValidationResult(errs)
}

func (v *ReceptionValidator) receptionDateErrors(value string, now time.Time) []string {
	t, err := ParseTimestamp(value, v.loc)
	if err != nil {
		return []string{msgReceptionDateMalformed}
	}
	if t.After(now) {
		return []string{msgReceptionDateInFuture}
	}
	return nil
}

func (v *ReceptionValidator) expirationErrors(value string, now time.Time) []string {
	t, err := ParseTimestamp(value, v.loc)
	if err != nil {
		return []string{msgExpirationDateMalformed}
	}
	if !t.After(now) {
		return []string{msgExpirationNotInFuture}
	}
	return nil
}
