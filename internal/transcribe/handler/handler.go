package handler

import (
	"context"
	"io"
	"net/http"

	"dealerdesk/internal/apierrors"
	"dealerdesk/internal/observability"

	"github.com/gin-gonic/gin"
)

// TranscribeProcessor turns an uploaded audio clip into text.
type TranscribeProcessor interface {
	TranscribeClip(ctx context.Context, file io.Reader, filename, contentType string) (string, error)
}

type Handler struct {
	processor TranscribeProcessor
	logger    *observability.Logger
}

func New(processor TranscribeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleTranscribe handles POST /api/transcribe. Expects a multipart form
// with the audio clip in the "file" field.
func (h *Handler) HandleTranscribe(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeMissingAudioFile, "no audio file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error(ctx, "failed to open uploaded audio file", err)
		apierrors.RespondWithError(c, err)
		return
	}
	defer file.Close()

	text, err := h.processor.TranscribeClip(ctx, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
