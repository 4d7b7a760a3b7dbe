// Package validation holds the input rules for transaction submissions.
// Validation runs before any store access and its failures are client
// errors, distinct from business rejections like an exceeded limit.
package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"crebito/internal/models"
)

// MaxDescriptionLen bounds the transaction description.
const MaxDescriptionLen = 10

// ErrInvalidTransaction is the base error every validation failure wraps.
// Callers match it with errors.Is to map any input problem to a client
// error without enumerating the specific rules.
var ErrInvalidTransaction = errors.New("invalid transaction")

// TransactionRequest validates a submission before it reaches the store.
func TransactionRequest(value int64, kind models.Kind, description string) error {
	if value <= 0 {
		return fmt.Errorf("%w: value must be positive", ErrInvalidTransaction)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: kind must be %q or %q", ErrInvalidTransaction, models.KindCredit, models.KindDebit)
	}
	if n := utf8.RuneCountInString(description); n < 1 || n > MaxDescriptionLen {
		return fmt.Errorf("%w: description must be 1 to %d characters", ErrInvalidTransaction, MaxDescriptionLen)
	}
	return nil
}
