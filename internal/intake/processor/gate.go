package processor

import (
	"fmt"
	"regexp"
	"strings"

	"dealerdesk/internal/store"
)

// proceedCue matches phrases signaling the caller wants to skip further
// intake questions.
var proceedCue = regexp.MustCompile(`(?i)\b(move on|next|all set|go ahead)\b`)

// Decision is the intake gate's verdict for one turn.
type Decision struct {
	// Proceed means enough information exists to recommend; otherwise the
	// FollowUp question should be asked.
	Proceed  bool
	Missing  []string
	FollowUp string
}

// EvaluateIntake decides proceed vs ask-followup from the merged profile and
// the raw utterance. The checklist order is fixed: name, contact, make,
// model, budget, timeframe, trade-in. Proceed when a cue is present, a
// contact method exists, or nothing is missing. The follow-up names the first
// two missing items; no model call is involved.
func EvaluateIntake(merged Lead, userSpeech string) Decision {
	hasContact := present(merged.Email) || present(merged.Phone)

	var prefs store.CarPreferences
	if merged.CarPreferences != nil {
		prefs = *merged.CarPreferences
	}

	var missing []string
	if !present(merged.Name) {
		missing = append(missing, "your name")
	}
	if !hasContact {
		missing = append(missing, "your email or phone")
	}
	if !present(prefs.Make) {
		missing = append(missing, "preferred make")
	}
	if !present(prefs.Model) {
		missing = append(missing, "preferred model")
	}
	if !present(prefs.Budget) {
		missing = append(missing, "budget")
	}
	if !present(merged.WhenToBuy) {
		missing = append(missing, "when you want to buy")
	}
	if !present(merged.TradeIn) {
		missing = append(missing, "whether you have a trade-in")
	}

	decision := Decision{
		Proceed: proceedCue.MatchString(userSpeech) || hasContact || len(missing) == 0,
		Missing: missing,
	}
	if !decision.Proceed {
		askNow := missing
		if len(askNow) > 2 {
			askNow = askNow[:2]
		}
		decision.FollowUp = fmt.Sprintf("Got it. Could you share %s?", strings.Join(askNow, " and "))
	}
	return decision
}

func present(s *string) bool {
	return s != nil && *s != ""
}
