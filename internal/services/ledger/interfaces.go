package ledger

import (
	"context"

	"crebito/internal/models"
)

// Service is the transaction service boundary consumed by the HTTP layer.
type Service interface {
	// Submit validates the request, applies the balance change atomically
	// and appends the transaction record. The result carries the balance
	// observed at the instant the mutation committed.
	Submit(ctx context.Context, accountID int64, req SubmitRequest) (*SubmitResult, error)

	// Statement returns the current balance/limit pair, a snapshot
	// timestamp and the most recent transactions, newest first.
	Statement(ctx context.Context, accountID int64) (*StatementResult, error)
}

// StatementCache caches statement snapshots. A miss is (nil, nil); cache
// failures must never surface as business outcomes.
type StatementCache interface {
	GetStatement(ctx context.Context, accountID int64) (*models.Statement, error)
	SetStatement(ctx context.Context, accountID int64, statement *models.Statement) error
	InvalidateStatement(ctx context.Context, accountID int64) error
}
