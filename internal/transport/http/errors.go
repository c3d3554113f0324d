package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError переводит ошибку сервиса в HTTP-ответ; детали 5xx остаются только в логе.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": vErr.Messages})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []string{err.Error()}})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "record is referenced by receptions"})
	case errors.Is(err, domain.ErrReferenceNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "product or supplier not found"})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "%s timed out: %v", op, err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.log.Errorf(ctx, "%s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID - UUID из :id или 400.
func pathID(c *gin.Context) (string, bool) {
	id, ok := uuidParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a UUID"})
	}
	return id, ok
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

// nonNil - список в JSON всегда массив, не null.
func nonNil[T any](list []*T) []*T {
	if list == nil {
		return []*T{}
	}
	return list
}
