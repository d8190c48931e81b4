package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Customer is a sales lead profile. Every captured field is optional; rows
// are created the first time the intake flow upserts anything for a caller.
type Customer struct {
	ID             int64          `db:"id" json:"id"`
	Name           *string        `db:"name" json:"name"`
	Email          *string        `db:"email" json:"email"`
	Phone          *string        `db:"phone" json:"phone"`
	CarPreferences CarPreferences `db:"car_preferences" json:"car_preferences"`
	WhenToBuy      *string        `db:"when_to_buy" json:"when_to_buy"`
	TradeIn        *string        `db:"trade_in" json:"trade_in"`
	CustomerNotes  *string        `db:"customer_notes" json:"customer_notes"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// CustomerUpsert carries the fields to persist for a customer. Nil fields are
// left untouched on update and stored as NULL on create.
type CustomerUpsert struct {
	Name           *string
	Email          *string
	Phone          *string
	CarPreferences *CarPreferences
	WhenToBuy      *string
	TradeIn        *string
	CustomerNotes  *string
}

const sqlGetCustomerByID = `
SELECT * FROM customers WHERE id = $1`

const sqlGetCustomerByContact = `
SELECT * FROM customers
WHERE ($1::text IS NOT NULL AND email = $1)
   OR ($2::text IS NOT NULL AND phone = $2)
ORDER BY id
LIMIT 1`

// GetCustomerByIdentity looks up a customer by id when given, otherwise by
// the first email-or-phone match. Returns ErrNotFound when nothing matches
// or no identity was provided. No dedup guarantee exists across concurrent
// writers; the first row by id wins.
func (s *Store) GetCustomerByIdentity(ctx context.Context, id *int64, email, phone *string) (Customer, error) {
	var customer Customer
	var err error

	switch {
	case id != nil:
		err = s.db.GetContext(ctx, &customer, sqlGetCustomerByID, *id)
	case email != nil || phone != nil:
		err = s.db.GetContext(ctx, &customer, sqlGetCustomerByContact, email, phone)
	default:
		return Customer{}, ErrNotFound
	}

	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNotFound
	}
	if err != nil {
		s.logger.Error(ctx, "failed to get customer by identity", err)
		return Customer{}, fmt.Errorf("failed to get customer by identity: %w", err)
	}
	return customer, nil
}

const sqlUpdateCustomer = `
UPDATE customers SET
    name            = COALESCE($2, name),
    email           = COALESCE($3, email),
    phone           = COALESCE($4, phone),
    car_preferences = COALESCE($5, car_preferences),
    when_to_buy     = COALESCE($6, when_to_buy),
    trade_in        = COALESCE($7, trade_in),
    customer_notes  = COALESCE($8, customer_notes),
    updated_at      = now()
WHERE id = $1
RETURNING *`

const sqlInsertCustomer = `
INSERT INTO customers (name, email, phone, car_preferences, when_to_buy, trade_in, customer_notes)
VALUES ($1, $2, $3, COALESCE($4, '{}'::jsonb), $5, $6, $7)
RETURNING *`

// UpsertCustomer finds an existing customer by email or phone and updates
// only the non-nil fields, or inserts a new row when no match exists.
// Concurrent upserts for the same identity are last-writer-wins; no row
// locking is taken.
func (s *Store) UpsertCustomer(ctx context.Context, upsert CustomerUpsert) (Customer, error) {
	existing, err := s.GetCustomerByIdentity(ctx, nil, upsert.Email, upsert.Phone)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Customer{}, err
	}

	var customer Customer
	if err == nil {
		err = s.db.GetContext(ctx, &customer, sqlUpdateCustomer,
			existing.ID,
			upsert.Name, upsert.Email, upsert.Phone, upsert.CarPreferences,
			upsert.WhenToBuy, upsert.TradeIn, upsert.CustomerNotes)
		if err != nil {
			s.logger.Error(ctx, "failed to update customer", err)
			return Customer{}, fmt.Errorf("failed to update customer: %w", err)
		}
		return customer, nil
	}

	err = s.db.GetContext(ctx, &customer, sqlInsertCustomer,
		upsert.Name, upsert.Email, upsert.Phone, upsert.CarPreferences,
		upsert.WhenToBuy, upsert.TradeIn, upsert.CustomerNotes)
	if err != nil {
		s.logger.Error(ctx, "failed to insert customer", err)
		return Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}
	return customer, nil
}

const sqlListCustomers = `
SELECT * FROM customers ORDER BY updated_at DESC`

// ListCustomers returns all customers, most recently updated first.
func (s *Store) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := s.db.SelectContext(ctx, &customers, sqlListCustomers)
	if err != nil {
		s.logger.Error(ctx, "failed to list customers", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
