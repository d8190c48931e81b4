package apierrors

import (
	"fmt"
	"net/http"
)

// Error codes returned to API clients
const (
	CodeInternalError    = "INTERNAL_ERROR"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeMissingAudioFile = "MISSING_AUDIO_FILE"
	CodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	CodeProviderFailure  = "PROVIDER_FAILURE"
)

// APIError is a typed error carrying an HTTP status and a client-safe message.
// Processors return plain errors; the handler boundary maps them through
// MapError so internal details never leak into response bodies.
type APIError struct {
	Code    string
	Status  int
	Message string
	// Internal holds the underlying error for logging, never serialized.
	Internal error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// NotFound builds a 404 APIError
func NotFound(code, message string) *APIError {
	return &APIError{Code: code, Status: http.StatusNotFound, Message: message}
}

// BadRequest builds a 400 APIError
func BadRequest(code, message string) *APIError {
	return &APIError{Code: code, Status: http.StatusBadRequest, Message: message}
}

// InternalError builds a sanitized 500 APIError wrapping the real cause
func InternalError(err error) *APIError {
	return &APIError{
		Code:     CodeInternalError,
		Status:   http.StatusInternalServerError,
		Message:  "An internal error occurred. Please try again later.",
		Internal: err,
	}
}

// ProviderFailure builds a 500 APIError for upstream provider errors.
// The conversation is not corrupted; the client may retry the turn.
func ProviderFailure(message string, err error) *APIError {
	return &APIError{
		Code:     CodeProviderFailure,
		Status:   http.StatusInternalServerError,
		Message:  message,
		Internal: err,
	}
}
