package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Теги binding (перечисления id_type, status, presentation_state) проверяет тот же движок
// validator/v10, что и gin при разборе HTTP-запроса. Для Kafka и CLI проверка вызывается явно.

var registerTagNameOnce sync.Once

// UseJSONFieldNames - FieldError.Field() отдаёт имя из json-тега, а не имя Go-поля.
func UseJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// FieldMessage - сообщение по одному нарушенному тегу binding.
func FieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "required":
		return field + " is required"
	default:
		return fmt.Sprintf("%s failed %s check", field, fe.Tag())
	}
}

// ShapeErrors - нарушения тегов binding у кандидата; пустой срез, если их нет.
func ShapeErrors(candidate any) []string {
	UseJSONFieldNames()

	err := binding.Validator.ValidateStruct(candidate)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		msgs = append(msgs, FieldMessage(fe))
	}
	return msgs
}
