package apierrors

import (
	"errors"

	"dealerdesk/internal/observability"
	"dealerdesk/internal/store"

	"github.com/gin-gonic/gin"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MapError converts domain errors to APIErrors. Unknown errors become a
// sanitized 500.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, store.ErrNotFound) {
		return NotFound(CodeCustomerNotFound, "Customer not found")
	}

	return InternalError(err)
}

// RespondWithError logs the error with request correlation fields and sends
// the mapped JSON error response to the client.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)

	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.Status},
		observability.Field{Key: "error_code", Value: apiErr.Code},
	)
	if apiErr.Status >= 500 {
		logger.Error(ctx, "API error response", apiErr)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.JSON(apiErr.Status, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}

// RespondBadRequest sends a 400 response with the given code and message
func RespondBadRequest(c *gin.Context, code, message string) {
	RespondWithError(c, BadRequest(code, message))
}
