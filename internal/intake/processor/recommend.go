package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dealerdesk/internal/apierrors"
)

const recommendTemperature = 0.6

const recommendPromptFmt = `You are a concise, friendly car sales agent.
Customer profile: %s

Confirm key preferences and suggest 2-3 options.
For each option: model + 1 short reason.
End with a question to refine or choose.`

const fallbackReply = "Great—shall we look at SUVs, sedans, or trucks first?"

// Recommend produces the natural-language recommendation reply from the
// merged profile. The temperature is non-zero on purpose: this reply should
// read as varied conversation. Empty model output falls back to a fixed
// prompt; provider errors propagate.
func (p Processor) Recommend(ctx context.Context, merged Lead, userSpeech string) (string, error) {
	profileJSON, err := json.Marshal(merged)
	if err != nil {
		return "", fmt.Errorf("failed to marshal merged profile: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, modelCallTimeout)
	defer cancel()

	reply, err := p.ai.Complete(callCtx, fmt.Sprintf(recommendPromptFmt, profileJSON), userSpeech, recommendTemperature)
	if err != nil {
		return "", apierrors.ProviderFailure("recommendation failed", err)
	}
	if strings.TrimSpace(reply) == "" {
		return fallbackReply, nil
	}
	return reply, nil
}
