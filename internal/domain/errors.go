package domain

import (
	"errors"
	"strings"
)

var (
	// ErrValidation - базовая (sentinel) ошибка валидации; с ней совпадает любой *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound - запись с таким id отсутствует (update/delete).
	ErrNotFound = errors.New("record not found")

	// ErrReferenceNotFound - приёмка ссылается на несуществующий товар или поставщика.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrInUse - запись нельзя удалить: на неё ссылаются приёмки.
	ErrInUse = errors.New("record is referenced by receptions")
)

// ValidationResult - итог проверки кандидата: IsValid == (len(Errors) == 0).
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// NewValidationResult собирает результат из накопленных сообщений.
func NewValidationResult(errs []string) ValidationResult {
	if errs == nil {
		errs = []string{}
	}
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// Err возвращает nil для валидного результата, иначе *ValidationError.
func (r ValidationResult) Err() error {
	if r.IsValid && len(r.Errors) == 0 {
		return nil
	}
	return &ValidationError{Messages: append([]string(nil), r.Errors...)}
}

// ValidationError - отказ в приёме записи со списком сообщений для пользователя.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Is позволяет проверять errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
