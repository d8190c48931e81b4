package processor

import (
	"context"

	"dealerdesk/internal/store"
)

// IntakeStore is the slice of the customer store the intake flow consumes.
type IntakeStore interface {
	GetCustomerByIdentity(ctx context.Context, id *int64, email, phone *string) (store.Customer, error)
	UpsertCustomer(ctx context.Context, upsert store.CustomerUpsert) (store.Customer, error)
	CreateCall(ctx context.Context, email, phone *string, transcript store.Transcript) (store.Call, error)
}

// ChatCompleter is the language-model surface the intake flow consumes.
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}
