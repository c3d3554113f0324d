package rest

import (
	"net/http"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listProducts(c *gin.Context) {
	status, ok := httpx.QueryEnum(c, "status", string(domain.StatusActive), string(domain.StatusInactive))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
		return
	}

	list, err := h.products.ListProducts(c.Request.Context(), domain.ProductFilter{
		Query:  httpx.QueryTrimmed(c, "q"),
		Status: domain.Status(status),
	})
	if err != nil {
		h.writeError(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

// listActiveProducts - выбор товара в форме приёмки.
func (h *Handler) listActiveProducts(c *gin.Context) {
	list, err := h.products.ListActiveProducts(c.Request.Context())
	if err != nil {
		h.writeError(c, "ListActiveProducts", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *Handler) createProduct(c *gin.Context) {
	var in domain.ProductCreate
	if !bindJSON(c, &in) {
		return
	}
	created, err := h.products.CreateProduct(c.Request.Context(), &in)
	if err != nil {
		h.writeError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) validateProduct(c *gin.Context) {
	var in domain.ProductCreate
	if !bindJSON(c, &in) {
		return
	}
	c.JSON(http.StatusOK, h.products.ValidateProduct(c.Request.Context(), &in))
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "GetProduct", err)
		return
	}
	if p == nil {
		notFound(c, "product")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.ProductUpdate
	if !bindJSON(c, &in) {
		return
	}
	updated, err := h.products.UpdateProduct(c.Request.Context(), id, &in)
	if err != nil {
		h.writeError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		h.writeError(c, "DeleteProduct", err)
		return
	}
	c.Status(http.StatusNoContent)
}
