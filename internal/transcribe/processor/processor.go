package processor

import (
	"context"
	"io"
	"time"

	"dealerdesk/internal/apierrors"
	"dealerdesk/internal/observability"
)

// transcriptionTimeout bounds the speech-to-text provider call.
const transcriptionTimeout = 30 * time.Second

// Transcriber is the speech-to-text surface consumed by the processor.
type Transcriber interface {
	Transcribe(ctx context.Context, file io.Reader, filename, contentType string) (string, error)
}

type Processor struct {
	ai     Transcriber
	logger *observability.Logger
}

func New(ai Transcriber, logger *observability.Logger) Processor {
	return Processor{
		ai:     ai,
		logger: logger,
	}
}

// TranscribeClip forwards one captured audio clip to the speech-to-text
// provider and returns plain text.
func (p Processor) TranscribeClip(ctx context.Context, file io.Reader, filename, contentType string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, transcriptionTimeout)
	defer cancel()

	text, err := p.ai.Transcribe(callCtx, file, filename, contentType)
	if err != nil {
		p.logger.Error(ctx, "transcription failed", err)
		return "", apierrors.ProviderFailure("transcription failed", err)
	}
	return text, nil
}
