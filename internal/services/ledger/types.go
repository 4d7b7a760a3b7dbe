package ledger

import (
	"time"

	"crebito/internal/models"
)

// StatementEntryLimit is how many recent transactions a statement carries.
const StatementEntryLimit = 10

// SubmitRequest is a validated-at-the-service transaction submission.
// Value is always a positive magnitude; direction lives in Kind.
type SubmitRequest struct {
	Value       int64
	Kind        models.Kind
	Description string
}

// SubmitResult is the account state at the instant the mutation committed.
type SubmitResult struct {
	Balance     int64
	CreditLimit int64
}

// StatementResult is the response shape for the statement operation.
// GeneratedAt is stamped per call; the underlying snapshot may come from
// the cache, but its contents are identical until the next commit.
type StatementResult struct {
	Balance      int64
	CreditLimit  int64
	GeneratedAt  time.Time
	Transactions []models.Transaction
}

// MetricsCollector receives operation telemetry from the service.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordOperationResult(operation, result string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
	RecordError(operation, errType string)
}
