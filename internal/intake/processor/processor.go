package processor

import (
	"context"
	"encoding/json"
	"errors"

	"dealerdesk/internal/observability"
	"dealerdesk/internal/store"
)

// Processor runs the lead-extraction-and-merge workflow for one
// conversational turn: load memory, extract, merge, upsert, gate, reply,
// record the call.
type Processor struct {
	store  IntakeStore
	ai     ChatCompleter
	logger *observability.Logger
}

func New(intakeStore IntakeStore, ai ChatCompleter, logger *observability.Logger) Processor {
	return Processor{
		store:  intakeStore,
		ai:     ai,
		logger: logger,
	}
}

// TurnResult is the outcome of one chat turn returned to the client.
type TurnResult struct {
	Assistant  string `json:"assistant"`
	Lead       Lead   `json:"lead"`
	CustomerID *int64 `json:"customerId"`
}

// HandleTurn processes a single conversational turn. The two model calls run
// sequentially: the recommendation depends on the merged profile, which
// depends on the extraction result. Extraction noise never aborts the turn;
// provider and store failures do, leaving the conversation retryable.
func (p Processor) HandleTurn(ctx context.Context, userSpeech string, customerID *int64) (TurnResult, error) {
	var memory *store.Customer
	if customerID != nil {
		customer, err := p.store.GetCustomerByIdentity(ctx, customerID, nil, nil)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return TurnResult{}, err
		}
		if err == nil {
			memory = &customer
		}
	}

	extracted, err := p.ExtractLead(ctx, userSpeech, memorySummary(memory))
	if err != nil {
		return TurnResult{}, err
	}

	// Returning caller without an id: match the stored profile by the
	// contact details the extractor just heard.
	if memory == nil && (extracted.Email != nil || extracted.Phone != nil) {
		customer, err := p.store.GetCustomerByIdentity(ctx, nil, extracted.Email, extracted.Phone)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return TurnResult{}, err
		}
		if err == nil {
			memory = &customer
		}
	}

	merged := MergeProfiles(memory, extracted)

	// Persist only what this turn extracted; the stored row already holds
	// everything else the merge preferred.
	saved, err := p.store.UpsertCustomer(ctx, store.CustomerUpsert{
		Name:           extracted.Name,
		Email:          extracted.Email,
		Phone:          extracted.Phone,
		CarPreferences: extracted.CarPreferences,
		WhenToBuy:      extracted.WhenToBuy,
		TradeIn:        extracted.TradeIn,
		CustomerNotes:  extracted.CustomerNotes,
	})
	if err != nil {
		return TurnResult{}, err
	}

	decision := EvaluateIntake(merged, userSpeech)

	var assistant string
	if decision.Proceed {
		assistant, err = p.Recommend(ctx, merged, userSpeech)
		if err != nil {
			return TurnResult{}, err
		}
	} else {
		assistant = decision.FollowUp
	}

	// The upsert above has already committed; a failure here leaves the
	// call unrecorded. Accepted gap, no rollback.
	_, err = p.store.CreateCall(ctx, merged.Email, merged.Phone, store.Transcript{
		{Role: store.MessageRoleUser, Content: userSpeech},
		{Role: store.MessageRoleAssistant, Content: assistant},
	})
	if err != nil {
		return TurnResult{}, err
	}

	id := saved.ID
	return TurnResult{Assistant: assistant, Lead: merged, CustomerID: &id}, nil
}

func memorySummary(memory *store.Customer) string {
	if memory == nil {
		return "No prior customer information."
	}
	summary, err := json.Marshal(memory)
	if err != nil {
		return "No prior customer information."
	}
	return "Known so far: " + string(summary)
}
