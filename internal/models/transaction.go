package models

import (
	"time"
)

// Kind is the direction of a transaction. The sign of a balance change is
// applied in exactly one place, Kind.Delta; Value stays a positive magnitude
// everywhere else.
type Kind string

const (
	KindCredit Kind = "c"
	KindDebit  Kind = "d"
)

// Valid reports whether k is one of the two supported kinds.
func (k Kind) Valid() bool {
	return k == KindCredit || k == KindDebit
}

// Delta converts a positive magnitude into the signed balance change for k.
func (k Kind) Delta(value int64) int64 {
	if k == KindDebit {
		return -value
	}
	return value
}

// Transaction is one committed ledger entry. Rows are append-only: a
// transaction is written once, at the instant its balance change commits,
// and never updated or deleted.
type Transaction struct {
	ID          int64     `gorm:"primarykey"`
	AccountID   int64     `gorm:"not null;index:idx_transactions_account_recent,priority:1"`
	Value       int64     `gorm:"not null"`
	Kind        Kind      `gorm:"type:varchar(1);not null"`
	Description string    `gorm:"type:varchar(10);not null"`
	ReferenceID string    `gorm:"type:varchar(36);uniqueIndex"`
	OccurredAt  time.Time `gorm:"not null;index:idx_transactions_account_recent,priority:2,sort:desc"`
}
