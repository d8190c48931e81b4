package processor

import (
	"context"
	"fmt"

	"dealerdesk/internal/observability"
	"dealerdesk/internal/store"
)

// recentCallLimit caps how many calls ride along with each lead in the
// listing.
const recentCallLimit = 5

// LeadsStore is the read-only slice of the store the listing consumes.
type LeadsStore interface {
	ListCustomers(ctx context.Context) ([]store.Customer, error)
	GetRecentCallsForCustomer(ctx context.Context, email, phone *string, limit int) ([]store.Call, error)
}

// LeadSummary is a customer profile with its most recent calls attached.
type LeadSummary struct {
	store.Customer
	RecentCalls []store.Call `json:"recent_calls"`
}

type Processor struct {
	store  LeadsStore
	logger *observability.Logger
}

func New(leadsStore LeadsStore, logger *observability.Logger) Processor {
	return Processor{
		store:  leadsStore,
		logger: logger,
	}
}

// ListLeads returns every stored lead, most recently updated first, each with
// up to five recent calls matched by the denormalized email/phone.
func (p Processor) ListLeads(ctx context.Context) ([]LeadSummary, error) {
	customers, err := p.store.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	leads := make([]LeadSummary, 0, len(customers))
	for _, customer := range customers {
		calls, err := p.store.GetRecentCallsForCustomer(ctx, customer.Email, customer.Phone, recentCallLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load calls for lead %d: %w", customer.ID, err)
		}
		leads = append(leads, LeadSummary{Customer: customer, RecentCalls: calls})
	}
	return leads, nil
}
