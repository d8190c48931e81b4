package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealerdesk/internal/apierrors"
	"dealerdesk/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTranscribeProcessor is a mock implementation of TranscribeProcessor
type MockTranscribeProcessor struct {
	mock.Mock
}

func (m *MockTranscribeProcessor) TranscribeClip(ctx context.Context, file io.Reader, filename, contentType string) (string, error) {
	args := m.Called(ctx, file, filename, contentType)
	return args.String(0), args.Error(1)
}

func setupRouter(h Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/transcribe", h.HandleTranscribe)
	return r
}

func multipartBody(t *testing.T, fieldName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, "speech.webm")
	assert.NoError(t, err)
	_, err = part.Write([]byte("fake audio bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleTranscribe_Success(t *testing.T) {
	mockProcessor := new(MockTranscribeProcessor)
	h := New(mockProcessor, observability.NewLogger())
	router := setupRouter(h)

	mockProcessor.On("TranscribeClip", mock.Anything, mock.Anything, "speech.webm", mock.Anything).
		Return("my name is Sam", nil)

	body, contentType := multipartBody(t, "file")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "my name is Sam", resp["text"])
	mockProcessor.AssertExpectations(t)
}

func TestHandleTranscribe_MissingFile(t *testing.T) {
	mockProcessor := new(MockTranscribeProcessor)
	h := New(mockProcessor, observability.NewLogger())
	router := setupRouter(h)

	body, contentType := multipartBody(t, "audio") // wrong field name

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockProcessor.AssertNotCalled(t, "TranscribeClip", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleTranscribe_ProviderFailure(t *testing.T) {
	mockProcessor := new(MockTranscribeProcessor)
	h := New(mockProcessor, observability.NewLogger())
	router := setupRouter(h)

	mockProcessor.On("TranscribeClip", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", apierrors.ProviderFailure("transcription failed", errors.New("whisper unavailable")))

	body, contentType := multipartBody(t, "file")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "transcription failed", resp["error"])
	assert.Equal(t, apierrors.CodeProviderFailure, resp["code"])
}
