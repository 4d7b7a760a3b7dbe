package ledger

import "errors"

// Service errors
var (
	// ErrAccountNotFound is returned when the account id is outside the
	// provisioned set.
	ErrAccountNotFound = errors.New("account not found")

	// ErrLimitExceeded is returned when a debit would push the balance
	// below -credit_limit. Nothing was written; retrying is pointless
	// unless the balance changes.
	ErrLimitExceeded = errors.New("credit limit exceeded")
)
