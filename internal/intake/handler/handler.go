package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"dealerdesk/internal/apierrors"
	"dealerdesk/internal/intake/processor"
	"dealerdesk/internal/observability"

	"github.com/gin-gonic/gin"
)

// IntakeProcessor handles one conversational turn.
type IntakeProcessor interface {
	HandleTurn(ctx context.Context, userSpeech string, customerID *int64) (processor.TurnResult, error)
}

type Handler struct {
	processor IntakeProcessor
	logger    *observability.Logger
}

func New(processor IntakeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ChatRequest represents the HTTP request for one chat turn
type ChatRequest struct {
	UserSpeech string     `json:"userSpeech"`
	CustomerID FlexibleID `json:"customerId"`
}

// FlexibleID accepts a numeric id as a JSON number, a numeric string, or
// null. Browser clients are loose about which one they send.
type FlexibleID struct {
	id *int64
}

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		f.id = nil
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		f.id = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid customerId %q: %w", s, err)
		}
		f.id = &parsed
		return nil
	}

	return fmt.Errorf("invalid customerId: %s", string(data))
}

// Value returns the parsed id, or nil when absent.
func (f FlexibleID) Value() *int64 {
	return f.id
}

// HandleChat handles POST /api/chat
func (h *Handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind chat request", err)
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidRequest, "invalid request body")
		return
	}

	result, err := h.processor.HandleTurn(ctx, req.UserSpeech, req.CustomerID.Value())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
