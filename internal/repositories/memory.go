package repositories

import (
	"context"
	"sync"
	"time"

	"crebito/internal/models"

	"github.com/google/uuid"
)

// MemoryAccountRepository keeps the ledger in process memory behind a mutex,
// implementing Apply as an exclusive critical section over the whole
// read-check-write-append sequence. It backs the test suite and local runs
// without Postgres.
type MemoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[int64]*models.Account
	history  map[int64][]models.Transaction
	nextID   int64
}

// NewMemoryAccountRepository provisions an in-memory store with the given
// accounts. Balances and limits are copied; later mutations go through Apply
// only.
func NewMemoryAccountRepository(accounts []models.Account) *MemoryAccountRepository {
	repo := &MemoryAccountRepository{
		accounts: make(map[int64]*models.Account, len(accounts)),
		history:  make(map[int64][]models.Transaction),
	}
	for i := range accounts {
		account := accounts[i]
		repo.accounts[account.ID] = &account
	}
	return repo
}

func (r *MemoryAccountRepository) Apply(ctx context.Context, accountID int64, value int64, kind models.Kind, description string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}

	candidate := account.Balance + kind.Delta(value)
	if candidate < -account.CreditLimit {
		return nil, ErrLimitExceeded
	}

	account.Balance = candidate
	account.UpdatedAt = time.Now().UTC()

	r.nextID++
	r.history[accountID] = append(r.history[accountID], models.Transaction{
		ID:          r.nextID,
		AccountID:   accountID,
		Value:       value,
		Kind:        kind,
		Description: description,
		ReferenceID: uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
	})

	snapshot := *account
	return &snapshot, nil
}

func (r *MemoryAccountRepository) Statement(ctx context.Context, accountID int64, limit int) (*models.Statement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}

	history := r.history[accountID]
	if len(history) < limit {
		limit = len(history)
	}

	// History is append-ordered; walk backwards for newest-first, which
	// also breaks occurred_at ties by insertion order.
	recent := make([]models.Transaction, 0, limit)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		recent = append(recent, history[i])
	}

	return &models.Statement{
		Account:      *account,
		Transactions: recent,
	}, nil
}

var _ AccountRepository = (*MemoryAccountRepository)(nil)
