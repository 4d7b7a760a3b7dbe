package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"crebito/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns the Postgres-backed ledger store.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Apply performs the balance mutation as a single conditional UPDATE whose
// predicate carries the invariant check, so two concurrent debits can never
// both pass the check against a balance neither observed. RETURNING gives us
// the committed balance without a second read. The transaction row is
// appended in the same database transaction as the update.
func (r *accountRepository) Apply(ctx context.Context, accountID int64, value int64, kind models.Kind, description string) (*models.Account, error) {
	delta := kind.Delta(value)

	var account models.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&account).
			Clauses(clause.Returning{}).
			Where("id = ? AND balance + ? >= -credit_limit", accountID, delta).
			Update("balance", gorm.Expr("balance + ?", delta))
		if result.Error != nil {
			return fmt.Errorf("failed to update balance: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			// The predicate failed: either the account does not exist or
			// the debit would break the invariant. Probe inside the same
			// transaction to tell the two apart.
			var probe models.Account
			if err := tx.Select("id").First(&probe, accountID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrAccountNotFound
				}
				return fmt.Errorf("failed to check account: %w", err)
			}
			return ErrLimitExceeded
		}

		record := models.Transaction{
			AccountID:   accountID,
			Value:       value,
			Kind:        kind,
			Description: description,
			ReferenceID: uuid.NewString(),
			OccurredAt:  time.Now().UTC(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to append transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Statement reads the account row and its most recent transactions inside a
// repeatable-read read-only transaction so the pair is consistent with one
// point in committed history.
func (r *accountRepository) Statement(ctx context.Context, accountID int64, limit int) (*models.Statement, error) {
	var statement models.Statement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&statement.Account, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account: %w", err)
		}

		err := tx.Where("account_id = ?", accountID).
			Order("occurred_at DESC, id DESC").
			Limit(limit).
			Find(&statement.Transactions).Error
		if err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	return &statement, nil
}
