package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealerdesk/internal/intake/processor"
	"dealerdesk/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockIntakeProcessor is a mock implementation of IntakeProcessor
type MockIntakeProcessor struct {
	mock.Mock
}

func (m *MockIntakeProcessor) HandleTurn(ctx context.Context, userSpeech string, customerID *int64) (processor.TurnResult, error) {
	args := m.Called(ctx, userSpeech, customerID)
	return args.Get(0).(processor.TurnResult), args.Error(1)
}

func setupRouter(h Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", h.HandleChat)
	return r
}

func TestFlexibleID_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *int64
		err  bool
	}{
		{name: "number", body: `{"customerId":42}`, want: int64Ptr(42)},
		{name: "numeric string", body: `{"customerId":"42"}`, want: int64Ptr(42)},
		{name: "null", body: `{"customerId":null}`, want: nil},
		{name: "empty string", body: `{"customerId":""}`, want: nil},
		{name: "absent", body: `{}`, want: nil},
		{name: "garbage string", body: `{"customerId":"abc"}`, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ChatRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, req.CustomerID.Value())
			} else {
				assert.Equal(t, *tt.want, *req.CustomerID.Value())
			}
		})
	}
}

func TestHandleChat_Success(t *testing.T) {
	mockProcessor := new(MockIntakeProcessor)
	h := New(mockProcessor, observability.NewLogger())
	router := setupRouter(h)

	id := int64(7)
	mockProcessor.On("HandleTurn", mock.Anything, "hello", (*int64)(nil)).
		Return(processor.TurnResult{Assistant: "Got it. Could you share your name and your email or phone?", CustomerID: &id}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"userSpeech":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Got it. Could you share your name and your email or phone?", resp["assistant"])
	assert.Equal(t, float64(7), resp["customerId"])
	mockProcessor.AssertExpectations(t)
}

func TestHandleChat_PassesCustomerID(t *testing.T) {
	mockProcessor := new(MockIntakeProcessor)
	h := New(mockProcessor, observability.NewLogger())
	router := setupRouter(h)

	id := int64(42)
	mockProcessor.On("HandleTurn", mock.Anything, "hi again", &id).
		Return(processor.TurnResult{Assistant: "Welcome back!", CustomerID: &id}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"userSpeech":"hi again","customerId":"42"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockProcessor.AssertExpectations(t)
}

func TestHandleChat_InvalidBody(t *testing.T) {
	mockProcessor := new(MockIntakeProcessor)
	h := New(mockProcessor, observability.NewLogger())
	router := setupRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProcessor.AssertNotCalled(t, "HandleTurn", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleChat_ProcessorFailure(t *testing.T) {
	mockProcessor := new(MockIntakeProcessor)
	h := New(mockProcessor, observability.NewLogger())
	router := setupRouter(h)

	mockProcessor.On("HandleTurn", mock.Anything, mock.Anything, mock.Anything).
		Return(processor.TurnResult{}, errors.New("model timeout"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"userSpeech":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func int64Ptr(n int64) *int64 {
	return &n
}
