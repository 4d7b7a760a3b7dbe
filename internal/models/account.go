package models

import (
	"time"
)

// Account is a pre-provisioned ledger account. Balance and CreditLimit are
// integer minor units; Balance may go negative down to -CreditLimit.
type Account struct {
	ID          int64 `gorm:"primarykey"`
	Balance     int64 `gorm:"not null;default:0"`
	CreditLimit int64 `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Statement is a consistent snapshot of an account plus its most recent
// transactions, as read in a single store transaction.
type Statement struct {
	Account      Account
	Transactions []Transaction
}
