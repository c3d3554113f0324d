package rest

import (
	"net/http"

	"github.com/Gunvolt24/pharma_inventory/internal/domain"
	"github.com/Gunvolt24/pharma_inventory/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listReceptions(c *gin.Context) {
	state, ok := httpx.QueryEnum(c, "state",
		string(domain.PresentationGood), string(domain.PresentationRegular), string(domain.PresentationBad))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state must be bueno, regular or malo"})
		return
	}

	list, err := h.receptions.ListReceptions(c.Request.Context(), domain.ReceptionFilter{
		Query: httpx.QueryTrimmed(c, "q"),
		State: domain.PresentationState(state),
	})
	if err != nil {
		h.writeError(c, "ListReceptions", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(list))
}

func (h *Handler) createReception(c *gin.Context) {
	var in domain.ReceptionCreate
	if !bindJSON(c, &in) {
		return
	}
	created, err := h.receptions.CreateReception(c.Request.Context(), &in)
	if err != nil {
		h.writeError(c, "CreateReception", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) validateReception(c *gin.Context) {
	var in domain.ReceptionCreate
	if !bindJSON(c, &in) {
		return
	}
	c.JSON(http.StatusOK, h.receptions.ValidateReception(c.Request.Context(), &in))
}

func (h *Handler) getReception(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := h.receptions.GetReception(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "GetReception", err)
		return
	}
	if r == nil {
		notFound(c, "reception")
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) updateReception(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in domain.ReceptionUpdate
	if !bindJSON(c, &in) {
		return
	}
	updated, err := h.receptions.UpdateReception(c.Request.Context(), id, &in)
	if err != nil {
		h.writeError(c, "UpdateReception", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteReception(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.receptions.DeleteReception(c.Request.Context(), id); err != nil {
		h.writeError(c, "DeleteReception", err)
		return
	}
	c.Status(http.StatusNoContent)
}
