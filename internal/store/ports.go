// Package store declares the persistence ports the HTTP layer depends on.
package store

import (
	"context"
	"errors"

	"fintrack/internal/core"
)

// ErrNotFound is returned when a transaction ID does not exist.
var ErrNotFound = errors.New("transaction not found")

// Ports for outbound adapters.
type (
	// TransactionWriter appends a new transaction at the head of the store.
	TransactionWriter interface {
		Add(ctx context.Context, t core.Transaction) error
	}

	// TransactionLister returns the full ordered list, newest first.
	TransactionLister interface {
		List(ctx context.Context) ([]core.Transaction, error)
	}

	// TransactionDeleter removes a transaction by ID.
	TransactionDeleter interface {
		Delete(ctx context.Context, id string) error
	}

	// UserStore holds the single simulated session identity. Get reports
	// absence via the boolean, never via an error: missing or corrupt state
	// reads as "no user".
	UserStore interface {
		GetUser(ctx context.Context) (core.User, bool, error)
		PutUser(ctx context.Context, u core.User) error
		DeleteUser(ctx context.Context) error
	}
)
