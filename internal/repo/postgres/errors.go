package postgres

import (
	"errors"
	"fmt"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые переводятся в доменные ошибки.
const (
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidTextRepr     = "22P02" // например, id не является UUID
)

func asPgError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}
	return nil
}

func pgCode(err error) string {
	if pgErr := asPgError(err); pgErr != nil {
		return pgErr.Code
	}
	return ""
}

// constraintErr - запись нарушает ограничение схемы (CHECK, NOT NULL): повтор не поможет,
// поэтому это ошибка валидации. nil, если err не такой.
func constraintErr(op string, err error) error {
	pgErr := asPgError(err)
	if pgErr == nil {
		return nil
	}
	var msg string
	switch pgErr.Code {
	case codeCheckViolation:
		msg = fmt.Sprintf("value violates constraint %s", pgErr.ConstraintName)
	case codeNotNullViolation:
		msg = fmt.Sprintf("%s is required", pgErr.ColumnName)
	default:
		return nil
	}
	return fmt.Errorf("%s: %w", op, &domain.ValidationError{Messages: []string{msg}})
}

// writeErr - ошибка вставки/обновления поставщика или товара.
func writeErr(op string, err error) error {
	if cErr := constraintErr(op, err); cErr != nil {
		return cErr
	}
	return fmt.Errorf("%s: %w", op, err)
}

// referenceErr - запись приёмки ссылается на отсутствующий товар/поставщика (или id не UUID),
// либо нарушает ограничение схемы.
func referenceErr(op string, err error) error {
	switch pgCode(err) {
	case codeForeignKeyViolation, codeInvalidTextRepr:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrReferenceNotFound, err)
	default:
		return writeErr(op, err)
	}
}

// deleteErr - на удаляемую запись ещё ссылаются приёмки.
func deleteErr(op string, err error) error {
	if pgCode(err) == codeForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrInUse)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isInvalidID - id не UUID: для чтения это «записи нет».
func isInvalidID(err error) bool { return pgCode(err) == codeInvalidTextRepr }
