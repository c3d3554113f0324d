package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Gunvolt24/pharma_inventory/pkg/httpx"
	"github.com/Gunvolt24/pharma_inventory/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON читает тело в dst; при ошибке отвечает 400 и возвращает false.
// Теги binding проверяются движком validator/v10, его ошибки переводятся в читаемые сообщения.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var (
		vErrs   validator.ValidationErrors
		syntax  *json.SyntaxError
		typeErr *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &vErrs):
		msgs := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			msgs = append(msgs, validate.FieldMessage(fe))
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
	case errors.Is(err, io.EOF):
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty body"})
	case errors.As(err, &syntax):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("malformed json at offset %d", syntax.Offset)})
	case errors.As(err, &typeErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("field %s must be %s", typeErr.Field, typeErr.Type)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
	}
	return false
}

func uuidParam(c *gin.Context) (string, bool) { return httpx.UUIDParam(c, "id") }
