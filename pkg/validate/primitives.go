package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
)

// Сообщения об ошибках - те же строки, что видит пользователь в формах.
const (
	msgSupplierIDTypeRequired   = "Tipo de documento es requerido"
	msgSupplierIDNumberRequired = "Número de documento es requerido"
	msgSupplierNameRequired     = "Nombre del proveedor es requerido"
	msgEmailInvalid             = "Formato de email inválido"
	msgActivityCodeInvalid      = "Código de actividad económica inválido: %s"
	msgNITInvalid               = "Formato de NIT inválido"

	msgProductCodeRequired = "Código del producto es requerido"
	msgProductNameRequired = "Nombre del producto es requerido"
	msgProductCodeTooShort = "El código debe tener al menos 3 caracteres"
	msgProductNameTooShort = "El nombre debe tener al menos 2 caracteres"

	msgReceptionDateRequired     = "Fecha de recepción es requerida"
	msgReceptionProductRequired  = "Producto es requerido"
	msgReceptionSupplierRequired = "Proveedor es requerido"
	msgReceptionInvoiceRequired  = "Número de factura es requerido"
	msgReceptionQuantityInvalid  = "Cantidad debe ser mayor a 0"
	msgReceptionStateRequired    = "Estado de presentación es requerido"
	msgReceptionDateInFuture     = "La fecha de recepción no puede ser futura"
	msgExpirationNotInFuture     = "La fecha de vencimiento debe ser futura"
	msgReceptionDateMalformed    = "Formato de fecha de recepción inválido"
	msgExpirationDateMalformed   = "Formato de fecha de vencimiento inválido"
)

const (
	minProductCodeLen = 3
	minProductNameLen = 2
)

// formLayouts: форматы полей date и datetime-local, остальное разбирает dateparse.
var formLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"}

var (
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nitRe          = regexp.MustCompile(`^\d{9}-\d$`)
	activityCodeRe = regexp.MustCompile(`^\d{4}$`)
)

// IsValidEmail - упрощённая проверка вида local@domain.tld.
func IsValidEmail(email string) bool { return emailRe.MatchString(email) }

// IsValidNIT - 9 цифр, дефис, контрольная цифра. Сама контрольная цифра не пересчитывается.
func IsValidNIT(nit string) bool { return nitRe.MatchString(nit) }

// IsActivityCode - ровно 4 ASCII-цифры.
func IsActivityCode(code string) bool { return activityCodeRe.MatchString(code) }

// ParseTimestamp разбирает дату из формы: RFC3339, "2006-01-02T15:04" (datetime-local), "2006-01-02" и т.п.
// Значения без зоны трактуются в loc (nil - UTC).
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range formLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	t, err := dateparse.ParseIn(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}

// activityCodeErrors - по одному сообщению на каждый некорректный код.
func activityCodeErrors(codes []string) []string {
	var errs []string
	for _, code := range codes {
		if !IsActivityCode(code) {
			errs = append(errs, fmt.Sprintf(msgActivityCodeInvalid, code))
		}
	}
	return errs
}

func charCount(s string) int { return utf8.RuneCountInString(s) }
