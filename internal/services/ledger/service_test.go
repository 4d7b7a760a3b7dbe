package ledger

import (
	"context"
	"testing"
	"time"

	"crebito/internal/models"
	"crebito/internal/repositories"
	"crebito/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Apply(ctx context.Context, accountID int64, value int64, kind models.Kind, description string) (*models.Account, error) {
	args := m.Called(ctx, accountID, value, kind, description)
	if account := args.Get(0); account != nil {
		return account.(*models.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) Statement(ctx context.Context, accountID int64, limit int) (*models.Statement, error) {
	args := m.Called(ctx, accountID, limit)
	if statement := args.Get(0); statement != nil {
		return statement.(*models.Statement), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetStatement(ctx context.Context, accountID int64) (*models.Statement, error) {
	args := m.Called(ctx, accountID)
	if statement := args.Get(0); statement != nil {
		return statement.(*models.Statement), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCache) SetStatement(ctx context.Context, accountID int64, statement *models.Statement) error {
	args := m.Called(ctx, accountID, statement)
	return args.Error(0)
}

func (m *MockCache) InvalidateStatement(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func TestLedgerService_Submit(t *testing.T) {
	tests := []struct {
		name        string
		req         SubmitRequest
		setupMock   func(*MockRepo, *MockCache)
		wantErr     error
		wantBalance int64
		wantLimit   int64
	}{
		{
			name: "successful debit",
			req:  SubmitRequest{Value: 500, Kind: models.KindDebit, Description: "compra"},
			setupMock: func(repo *MockRepo, cache *MockCache) {
				repo.On("Apply", mock.Anything, int64(1), int64(500), models.KindDebit, "compra").
					Return(&models.Account{ID: 1, Balance: -500, CreditLimit: 1000}, nil)
				cache.On("InvalidateStatement", mock.Anything, int64(1)).Return(nil)
			},
			wantBalance: -500,
			wantLimit:   1000,
		},
		{
			name: "successful credit",
			req:  SubmitRequest{Value: 500, Kind: models.KindCredit, Description: "dep"},
			setupMock: func(repo *MockRepo, cache *MockCache) {
				repo.On("Apply", mock.Anything, int64(1), int64(500), models.KindCredit, "dep").
					Return(&models.Account{ID: 1, Balance: 0, CreditLimit: 1000}, nil)
				cache.On("InvalidateStatement", mock.Anything, int64(1)).Return(nil)
			},
			wantBalance: 0,
			wantLimit:   1000,
		},
		{
			name:    "non-positive value short-circuits",
			req:     SubmitRequest{Value: 0, Kind: models.KindCredit, Description: "dep"},
			wantErr: validation.ErrInvalidTransaction,
		},
		{
			name:    "unknown kind short-circuits",
			req:     SubmitRequest{Value: 10, Kind: "x", Description: "dep"},
			wantErr: validation.ErrInvalidTransaction,
		},
		{
			name:    "description too long short-circuits",
			req:     SubmitRequest{Value: 10, Kind: models.KindDebit, Description: "12345678901"},
			wantErr: validation.ErrInvalidTransaction,
		},
		{
			name: "account not found",
			req:  SubmitRequest{Value: 10, Kind: models.KindCredit, Description: "dep"},
			setupMock: func(repo *MockRepo, cache *MockCache) {
				repo.On("Apply", mock.Anything, int64(1), int64(10), models.KindCredit, "dep").
					Return(nil, repositories.ErrAccountNotFound)
			},
			wantErr: ErrAccountNotFound,
		},
		{
			name: "debit past the limit",
			req:  SubmitRequest{Value: 600, Kind: models.KindDebit, Description: "compra2"},
			setupMock: func(repo *MockRepo, cache *MockCache) {
				repo.On("Apply", mock.Anything, int64(1), int64(600), models.KindDebit, "compra2").
					Return(nil, repositories.ErrLimitExceeded)
			},
			wantErr: ErrLimitExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepo)
			cache := new(MockCache)
			if tt.setupMock != nil {
				tt.setupMock(repo, cache)
			}

			s := NewService(repo, cache, nil)
			result, err := s.Submit(context.Background(), 1, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				// Failures never touch the cache; validation failures
				// never even reach the store.
				cache.AssertNotCalled(t, "InvalidateStatement", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantBalance, result.Balance)
				assert.Equal(t, tt.wantLimit, result.CreditLimit)
			}

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestLedgerService_SubmitValidationSkipsStore(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	s := NewService(repo, cache, nil)

	_, err := s.Submit(context.Background(), 1, SubmitRequest{Value: -5, Kind: models.KindDebit, Description: "compra"})
	assert.ErrorIs(t, err, validation.ErrInvalidTransaction)

	repo.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerService_Statement(t *testing.T) {
	snapshot := &models.Statement{
		Account: models.Account{ID: 1, Balance: -500, CreditLimit: 1000},
		Transactions: []models.Transaction{
			{AccountID: 1, Value: 500, Kind: models.KindDebit, Description: "compra", OccurredAt: time.Now().UTC()},
		},
	}

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		repo := new(MockRepo)
		cache := new(MockCache)
		cache.On("GetStatement", mock.Anything, int64(1)).Return(nil, nil)
		repo.On("Statement", mock.Anything, int64(1), StatementEntryLimit).Return(snapshot, nil)
		cache.On("SetStatement", mock.Anything, int64(1), snapshot).Return(nil)

		s := NewService(repo, cache, nil)
		result, err := s.Statement(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(-500), result.Balance)
		assert.Equal(t, int64(1000), result.CreditLimit)
		assert.False(t, result.GeneratedAt.IsZero())
		assert.Equal(t, snapshot.Transactions, result.Transactions)

		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		repo := new(MockRepo)
		cache := new(MockCache)
		cache.On("GetStatement", mock.Anything, int64(1)).Return(snapshot, nil)

		s := NewService(repo, cache, nil)
		result, err := s.Statement(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(-500), result.Balance)

		repo.AssertNotCalled(t, "Statement", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown account", func(t *testing.T) {
		repo := new(MockRepo)
		cache := new(MockCache)
		cache.On("GetStatement", mock.Anything, int64(9)).Return(nil, nil)
		repo.On("Statement", mock.Anything, int64(9), StatementEntryLimit).Return(nil, repositories.ErrAccountNotFound)

		s := NewService(repo, cache, nil)
		_, err := s.Statement(context.Background(), 9)
		assert.ErrorIs(t, err, ErrAccountNotFound)

		cache.AssertNotCalled(t, "SetStatement", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLedgerService_StatementAgainstMemoryStore(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository([]models.Account{
		{ID: 1, Balance: 0, CreditLimit: 1000},
	})
	cache := new(MockCache)
	cache.On("GetStatement", mock.Anything, int64(1)).Return(nil, nil)
	cache.On("SetStatement", mock.Anything, int64(1), mock.Anything).Return(nil)
	cache.On("InvalidateStatement", mock.Anything, int64(1)).Return(nil)

	s := NewService(repo, cache, nil)

	res, err := s.Submit(context.Background(), 1, SubmitRequest{Value: 500, Kind: models.KindDebit, Description: "compra"})
	require.NoError(t, err)
	assert.Equal(t, int64(-500), res.Balance)

	_, err = s.Submit(context.Background(), 1, SubmitRequest{Value: 600, Kind: models.KindDebit, Description: "compra2"})
	assert.ErrorIs(t, err, ErrLimitExceeded)

	res, err = s.Submit(context.Background(), 1, SubmitRequest{Value: 500, Kind: models.KindCredit, Description: "dep"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Balance)

	statement, err := s.Statement(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, statement.Transactions, 2)
	assert.Equal(t, "dep", statement.Transactions[0].Description)
	assert.Equal(t, "compra", statement.Transactions[1].Description)
}
