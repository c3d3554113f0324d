package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
)

// DecodeStrict - строгий разбор одного JSON-объекта: неизвестные поля и данные после объекта - ошибка.
func DecodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid json: trailing data")
	}
	return nil
}

// ValidateRecordFromJSON - разбор и проверка одной записи.
// Возвращает указатель на кандидата (*domain.SupplierCreate и т.д.) или *domain.ValidationError.
func ValidateRecordFromJSON(ctx context.Context, vs *Validators, target Target, raw []byte) (any, error) {
	candidate := target.newCandidate()
	if err := DecodeStrict(raw, candidate); err != nil {
		return nil, err
	}
	return checkCandidate(ctx, vs, candidate)
}

// checkCandidate - правила сущности плюс теги binding (перечисления), как при приёме по HTTP.
func checkCandidate(ctx context.Context, vs *Validators, candidate any) (any, error) {
	res, err := vs.Validate(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if shape := ShapeErrors(candidate); len(shape) > 0 {
		res = domain.NewValidationResult(append(res.Errors, shape...))
	}
	if err := res.Err(); err != nil {
		return nil, err
	}
	return candidate, nil
}
