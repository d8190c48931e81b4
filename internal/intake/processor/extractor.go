package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dealerdesk/internal/apierrors"
	"dealerdesk/internal/store"
)

// modelCallTimeout bounds each outbound language-model call. A timeout fails
// only the current turn; the client may retry.
const modelCallTimeout = 30 * time.Second

const extractorPromptFmt = `Return ONLY a JSON object with keys:
{name, email, phone, car_preferences:{make, model, budget}, when_to_buy, trade_in, customer_notes}
Use the latest user message and the prior memory below.
Prior memory: %s`

// Lead is a partial customer profile extracted from one utterance. It never
// carries state forward itself; persistence happens only through the store.
type Lead struct {
	Name           *string               `json:"name"`
	Email          *string               `json:"email"`
	Phone          *string               `json:"phone"`
	CarPreferences *store.CarPreferences `json:"car_preferences"`
	WhenToBuy      *string               `json:"when_to_buy"`
	TradeIn        *string               `json:"trade_in"`
	CustomerNotes  *string               `json:"customer_notes"`
}

// ExtractLead asks the model for a structured lead record from the latest
// utterance plus a summary of prior memory. Malformed or schema-invalid model
// output yields an empty lead, never an error: extraction noise must not
// abort the conversation. Provider failures do return an error.
func (p Processor) ExtractLead(ctx context.Context, userSpeech, memorySummary string) (Lead, error) {
	callCtx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	raw, err := p.ai.CompleteJSON(callCtx, fmt.Sprintf(extractorPromptFmt, memorySummary), userSpeech)
	if err != nil {
		return Lead{}, apierrors.ProviderFailure("lead extraction failed", err)
	}

	lead, err := parseLead(raw)
	if err != nil {
		p.logger.Warn(ctx, fmt.Sprintf("discarding malformed extractor output: %v", err))
		return Lead{}, nil
	}
	return lead, nil
}

// parseLead decodes raw model output into the fixed lead shape. Unknown keys
// are dropped rather than rejected; a model that decorates its answer with
// extra fields must not cost the turn its valid ones.
func parseLead(raw string) (Lead, error) {
	var lead Lead
	if err := json.Unmarshal([]byte(raw), &lead); err != nil {
		return Lead{}, fmt.Errorf("invalid lead record: %w", err)
	}
	return lead, nil
}
