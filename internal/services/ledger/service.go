package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crebito/internal/models"
	"crebito/internal/repositories"
	"crebito/internal/validation"
)

type service struct {
	repo    repositories.AccountRepository
	cache   StatementCache
	metrics MetricsCollector
}

// NewService creates a new ledger service.
func NewService(repo repositories.AccountRepository, cache StatementCache, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

func (s *service) Submit(ctx context.Context, accountID int64, req SubmitRequest) (*SubmitResult, error) {
	start := time.Now()

	// Validation short-circuits before any store access.
	if err := validation.TransactionRequest(req.Value, req.Kind, req.Description); err != nil {
		s.metrics.RecordError("submit", "validation")
		return nil, err
	}

	account, err := s.repo.Apply(ctx, accountID, req.Value, req.Kind, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			s.metrics.RecordOperationResult("submit", "not_found")
			return nil, ErrAccountNotFound
		case errors.Is(err, repositories.ErrLimitExceeded):
			s.metrics.RecordOperationResult("submit", "rejected")
			return nil, ErrLimitExceeded
		}
		s.metrics.RecordError("submit", "store")
		return nil, fmt.Errorf("failed to apply transaction: %w", err)
	}

	// The cached snapshot is stale the moment the commit lands. Best
	// effort: a failed invalidation only shortens cache usefulness, the
	// entry still expires by TTL.
	if err := s.cache.InvalidateStatement(ctx, accountID); err != nil {
		s.metrics.RecordError("submit", "cache_invalidate")
	}

	s.metrics.RecordOperationResult("submit", "accepted")
	s.metrics.RecordOperationDuration("submit", time.Since(start))
	return &SubmitResult{
		Balance:     account.Balance,
		CreditLimit: account.CreditLimit,
	}, nil
}

func (s *service) Statement(ctx context.Context, accountID int64) (*StatementResult, error) {
	snapshot, err := s.cache.GetStatement(ctx, accountID)
	if err == nil && snapshot != nil {
		s.metrics.RecordCacheHit("statement")
		return s.shapeStatement(snapshot), nil
	}
	s.metrics.RecordCacheMiss("statement")

	snapshot, err = s.repo.Statement(ctx, accountID, StatementEntryLimit)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		s.metrics.RecordError("statement", "store")
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}

	s.cache.SetStatement(ctx, accountID, snapshot)
	return s.shapeStatement(snapshot), nil
}

// shapeStatement stamps the per-call snapshot timestamp. Contents come from
// committed history, so two calls with no intervening submit differ only in
// GeneratedAt.
func (s *service) shapeStatement(snapshot *models.Statement) *StatementResult {
	return &StatementResult{
		Balance:      snapshot.Account.Balance,
		CreditLimit:  snapshot.Account.CreditLimit,
		GeneratedAt:  time.Now().UTC(),
		Transactions: snapshot.Transactions,
	}
}
