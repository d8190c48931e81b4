package store

import (
	"context"
	"fmt"
	"time"
)

// Call is an immutable record of one completed conversational turn-pair.
// Customer email/phone are denormalized so calls survive profile edits.
type Call struct {
	ID            int64      `db:"id" json:"id"`
	CustomerEmail *string    `db:"customer_email" json:"customer_email"`
	CustomerPhone *string    `db:"customer_phone" json:"customer_phone"`
	Transcript    Transcript `db:"transcript" json:"transcript"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

const sqlCreateCall = `
INSERT INTO calls (customer_email, customer_phone, transcript)
VALUES ($1, $2, $3)
RETURNING *`

// CreateCall appends a new call record. Always inserts; there is no merge or
// update path for calls.
func (s *Store) CreateCall(ctx context.Context, email, phone *string, transcript Transcript) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlCreateCall, email, phone, transcript)
	if err != nil {
		s.logger.Error(ctx, "failed to create call", err)
		return Call{}, fmt.Errorf("failed to create call: %w", err)
	}
	return call, nil
}

const sqlGetRecentCallsForCustomer = `
SELECT * FROM calls
WHERE ($1::text IS NOT NULL AND customer_email = $1)
   OR ($2::text IS NOT NULL AND customer_phone = $2)
ORDER BY created_at DESC
LIMIT $3`

// GetRecentCallsForCustomer returns the most recent calls matching the
// customer's email or phone, newest first.
func (s *Store) GetRecentCallsForCustomer(ctx context.Context, email, phone *string, limit int) ([]Call, error) {
	if email == nil && phone == nil {
		return nil, nil
	}
	var calls []Call
	err := s.db.SelectContext(ctx, &calls, sqlGetRecentCallsForCustomer, email, phone, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get recent calls for customer", err)
		return nil, fmt.Errorf("failed to get recent calls for customer: %w", err)
	}
	return calls, nil
}
