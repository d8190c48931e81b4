package processor

import (
	"dealerdesk/internal/store"
)

// MergeProfiles combines a stored profile (possibly absent) with a freshly
// extracted lead. For every field the stored value wins when present; a fact
// confirmed on an earlier turn must not be overwritten by a later, noisier
// guess.
//
// Car preferences merge as an atomic unit: when a stored profile exists its
// sub-record wins wholesale over the extracted one, unlike the per-field rule
// used for everything else. This asymmetry is intentional and is flagged in
// the merge tests.
func MergeProfiles(stored *store.Customer, extracted Lead) Lead {
	if stored == nil {
		merged := extracted
		if merged.CarPreferences == nil {
			merged.CarPreferences = &store.CarPreferences{}
		}
		return merged
	}

	prefs := stored.CarPreferences
	return Lead{
		Name:           firstNonNil(stored.Name, extracted.Name),
		Email:          firstNonNil(stored.Email, extracted.Email),
		Phone:          firstNonNil(stored.Phone, extracted.Phone),
		CarPreferences: &prefs,
		WhenToBuy:      firstNonNil(stored.WhenToBuy, extracted.WhenToBuy),
		TradeIn:        firstNonNil(stored.TradeIn, extracted.TradeIn),
		CustomerNotes:  firstNonNil(stored.CustomerNotes, extracted.CustomerNotes),
	}
}

func firstNonNil(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}
