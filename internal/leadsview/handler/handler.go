package handler

import (
	"context"
	"net/http"

	"dealerdesk/internal/apierrors"
	"dealerdesk/internal/leadsview/processor"
	"dealerdesk/internal/observability"

	"github.com/gin-gonic/gin"
)

// LeadsProcessor lists persisted leads for review.
type LeadsProcessor interface {
	ListLeads(ctx context.Context) ([]processor.LeadSummary, error)
}

type Handler struct {
	processor LeadsProcessor
	logger    *observability.Logger
}

func New(processor LeadsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListLeads handles GET /api/leads
func (h *Handler) HandleListLeads(c *gin.Context) {
	ctx := c.Request.Context()

	leads, err := h.processor.ListLeads(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if leads == nil {
		leads = []processor.LeadSummary{}
	}

	c.JSON(http.StatusOK, leads)
}
