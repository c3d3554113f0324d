package rest

import (
	"net/http"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listSuppliers(c *gin.Context) {
	status, ok := httpx.QueryEnum(c, "status", string(domain.StatusActive), string(domain.StatusInactive))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
		return
	}

	list, err := h.suppliers.ListSuppliers(c.Request.Context(), domain.SupplierFilter{
		Query:  httpx.QueryTrimmed(c, "q"),
		Status: domain.Status(status),
	})
	if err != nil {
		h.writeError(c, "ListSuppliers", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *Handler) createSupplier(c *gin.Context) {
	var in domain.SupplierCreate
	if !bindJSON(c, &in) {
		return
	}
	created, err := h.suppliers.CreateSupplier(c.Request.Context(), &in)
	if err != nil {
		h.writeError(c, "CreateSupplier", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) validateSupplier(c *gin.Context) {
	var in domain.SupplierCreate
	if !bindJSON(c, &in) {
		return
	}
	c.JSON(http.StatusOK, h.suppliers.ValidateSupplier(c.Request.Context(), &in))
}

func (h *Handler) getSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s, err := h.suppliers.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "GetSupplier", err)
		return
	}
	if s == nil {
		notFound(c, "supplier")
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) updateSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.SupplierUpdate
	if !bindJSON(c, &in) {
		return
	}
	updated, err := h.suppliers.UpdateSupplier(c.Request.Context(), id, &in)
	if err != nil {
		h.writeError(c, "UpdateSupplier", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteSupplier(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.suppliers.DeleteSupplier(c.Request.Context(), id); err != nil {
		h.writeError(c, "DeleteSupplier", err)
		return
	}
	c.Status(http.StatusNoContent)
}
