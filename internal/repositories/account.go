// Package repositories provides the data access layer for the ledger.
// It owns the only code path allowed to mutate an account balance.
package repositories

import (
	"context"
	"errors"

	"crebito/internal/models"
)

var (
	// ErrAccountNotFound is returned when an account id is outside the
	// provisioned set.
	ErrAccountNotFound = errors.New("account not found")

	// ErrLimitExceeded is returned when a debit would take the balance
	// below -credit_limit. The store is left untouched.
	ErrLimitExceeded = errors.New("credit limit exceeded")
)

// AccountRepository is the store boundary for the ledger core.
//
// Apply is the atomic read-check-write-append operation: the balance change
// and the transaction record commit together or not at all, and concurrent
// calls against the same account observe a total order of commits. The
// returned account reflects the state at the instant the mutation committed.
//
// Statement returns the balance/limit pair together with the most recent
// transactions (occurred_at descending, insertion order breaking ties), all
// consistent with a single point in committed history.
type AccountRepository interface {
	Apply(ctx context.Context, accountID int64, value int64, kind models.Kind, description string) (*models.Account, error)
	Statement(ctx context.Context, accountID int64, limit int) (*models.Statement, error)
}
