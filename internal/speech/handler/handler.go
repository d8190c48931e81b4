package handler

import (
	"context"
	"net/http"

	"dealerdesk/internal/apierrors"
	"dealerdesk/internal/observability"

	"github.com/gin-gonic/gin"
)

// SpeechSynthesizer renders text to MP3 audio.
type SpeechSynthesizer interface {
	SynthesizeSpeech(ctx context.Context, text string, voice string) ([]byte, error)
}

type Handler struct {
	ai           SpeechSynthesizer
	defaultVoice string
	logger       *observability.Logger
}

func New(ai SpeechSynthesizer, defaultVoice string, logger *observability.Logger) Handler {
	return Handler{
		ai:           ai,
		defaultVoice: defaultVoice,
		logger:       logger,
	}
}

// SynthesizeRequest represents the HTTP request for spoken output
type SynthesizeRequest struct {
	Text  string `json:"text" binding:"required"`
	Voice string `json:"voice"`
}

// HandleSynthesize handles POST /api/speech. Used by clients without a
// native speechSynthesis API; the browser path speaks replies locally.
func (h *Handler) HandleSynthesize(c *gin.Context) {
	ctx := c.Request.Context()

	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind speech request", err)
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidRequest, "text is required")
		return
	}

	voice := req.Voice
	if voice == "" {
		voice = h.defaultVoice
	}

	audio, err := h.ai.SynthesizeSpeech(ctx, req.Text, voice)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.ProviderFailure("speech synthesis failed", err))
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}
