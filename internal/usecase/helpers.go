package usecase

import (
	"context"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/internal/ports"
	"github.com/Gunvolt24/pharma_inventory/pkg/metrics"
)

// Метки сущностей для метрик и логов.
const (
	entitySupplier  = "supplier"
	entityProduct   = "product"
	entityReception = "reception"
)

// optional - пустая строка из формы означает «не задано».
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// rejectInvalid возвращает *domain.ValidationError, если результат невалиден, и считает отказ в метриках.
func rejectInvalid(ctx context.Context, log ports.Logger, entity, mode string, res domain.ValidationResult) error {
	err := res.Err()
	if err == nil {
		return nil
	}
	metrics.ValidationFailures.WithLabelValues(entity, mode).Inc()
	log.Warnf(ctx, "%s %s rejected: %v", entity, mode, err)
	return err
}

func recordWrite(entity, op string) {
	metrics.RecordsWritten.WithLabelValues(entity, op).Inc()
}
