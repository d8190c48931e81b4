package bootstrap

import (
	"context"
	"fmt"

	openaiClient "dealerdesk/internal/clients/openai"
	"dealerdesk/internal/config"
	"dealerdesk/internal/observability"
	"dealerdesk/internal/store"

	intakeHandler "dealerdesk/internal/intake/handler"
	intakeProcessor "dealerdesk/internal/intake/processor"
	leadsHandler "dealerdesk/internal/leadsview/handler"
	leadsProcessor "dealerdesk/internal/leadsview/processor"
	speechHandler "dealerdesk/internal/speech/handler"
	transcribeHandler "dealerdesk/internal/transcribe/handler"
	transcribeProcessor "dealerdesk/internal/transcribe/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	IntakeHandler     intakeHandler.Handler
	TranscribeHandler transcribeHandler.Handler
	SpeechHandler     speechHandler.Handler
	LeadsHandler      leadsHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize OpenAI client
	ai, err := openaiClient.New(cfg.Services.OpenAIAPIKey, cfg.Services.OpenAIModel, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	// Intake flow
	intake := intakeProcessor.New(&deps.Store, ai, logger)
	deps.IntakeHandler = intakeHandler.New(intake, logger)

	// Transcription
	transcribe := transcribeProcessor.New(ai, logger)
	deps.TranscribeHandler = transcribeHandler.New(transcribe, logger)

	// Spoken output
	deps.SpeechHandler = speechHandler.New(ai, cfg.Services.OpenAITTSVoice, logger)

	// Leads listing
	leads := leadsProcessor.New(&deps.Store, logger)
	deps.LeadsHandler = leadsHandler.New(leads, logger)

	logger.Info(ctx, "dependencies initialized")
	return deps, nil
}

// Shutdown releases long-lived resources
func (d *Dependencies) Shutdown(ctx context.Context) error {
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close store", err)
		return err
	}
	return nil
}
