package processor

import (
	"testing"

	"dealerdesk/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateIntake_AsksForFirstTwoMissingItems(t *testing.T) {
	merged := Lead{
		Name:           ptr("Sam"),
		CarPreferences: &store.CarPreferences{Budget: ptr("20k")},
	}

	decision := EvaluateIntake(merged, "My name is Sam, budget is 20k")

	assert.False(t, decision.Proceed)
	assert.Equal(t, []string{
		"your email or phone",
		"preferred make",
		"preferred model",
		"when you want to buy",
		"whether you have a trade-in",
	}, decision.Missing)
	assert.Equal(t, "Got it. Could you share your email or phone and preferred make?", decision.FollowUp)
}

func TestEvaluateIntake_ProceedCueOverridesMissingFields(t *testing.T) {
	cues := []string{
		"let's move on",
		"NEXT question please",
		"I'm All Set",
		"ok go ahead",
	}
	for _, utterance := range cues {
		decision := EvaluateIntake(Lead{Name: ptr("Sam")}, utterance)
		assert.True(t, decision.Proceed, "expected proceed for %q", utterance)
		assert.Empty(t, decision.FollowUp)
	}
}

func TestEvaluateIntake_NoCueInOrdinarySpeech(t *testing.T) {
	decision := EvaluateIntake(Lead{}, "I would like a hatchback")
	assert.False(t, decision.Proceed)
}

func TestEvaluateIntake_CueMatchesWholeWordsOnly(t *testing.T) {
	// "nextdoor" must not trip the \bnext\b alternation.
	decision := EvaluateIntake(Lead{}, "my nextdoor neighbour has one")
	assert.False(t, decision.Proceed)
}

func TestEvaluateIntake_ContactMethodProceeds(t *testing.T) {
	decision := EvaluateIntake(Lead{Email: ptr("sam@example.com")}, "hello")
	assert.True(t, decision.Proceed)

	decision = EvaluateIntake(Lead{Phone: ptr("555-0100")}, "hello")
	assert.True(t, decision.Proceed)
}

func TestEvaluateIntake_EmptyStringsCountAsMissing(t *testing.T) {
	merged := Lead{Name: ptr(""), Email: ptr("")}
	decision := EvaluateIntake(merged, "hello")

	assert.False(t, decision.Proceed)
	assert.Contains(t, decision.Missing, "your name")
	assert.Contains(t, decision.Missing, "your email or phone")
}

func TestEvaluateIntake_CompleteProfileProceeds(t *testing.T) {
	merged := Lead{
		Name:  ptr("Sam"),
		Email: ptr("sam@example.com"),
		CarPreferences: &store.CarPreferences{
			Make:   ptr("Toyota"),
			Model:  ptr("RAV4"),
			Budget: ptr("30k"),
		},
		WhenToBuy: ptr("this month"),
		TradeIn:   ptr("no"),
	}

	decision := EvaluateIntake(merged, "anything else?")

	assert.True(t, decision.Proceed)
	assert.Empty(t, decision.Missing)
}
