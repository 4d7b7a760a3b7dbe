package handlers

import (
	"errors"
	"time"

	"crebito/internal/models"
	"crebito/internal/services/ledger"
	"crebito/internal/utils"
	"crebito/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	ledgerService ledger.Service
}

func NewTransactionHandler(ledgerService ledger.Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// submitInput is the wire form of a transaction submission. Value is a
// strict integer: a fractional JSON number fails the decode, so the core
// never sees a non-integral amount.
type submitInput struct {
	Value       int64       `json:"value"`
	Kind        models.Kind `json:"kind"`
	Description string      `json:"description"`
}

type submitOutput struct {
	Balance int64 `json:"balance"`
	Limit   int64 `json:"limit"`
}

type statementBalance struct {
	Total         int64     `json:"total"`
	StatementDate time.Time `json:"statement_date"`
	Limit         int64     `json:"limit"`
}

type statementEntry struct {
	Value       int64       `json:"value"`
	Kind        models.Kind `json:"kind"`
	Description string      `json:"description"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

type statementOutput struct {
	Balance            statementBalance `json:"balance"`
	RecentTransactions []statementEntry `json:"recent_transactions"`
}

// SubmitTransaction handles POST /accounts/:id/transactions.
func (h *TransactionHandler) SubmitTransaction(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "invalid account id")
	}

	var input submitInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	result, err := h.ledgerService.Submit(c.Context(), int64(accountID), ledger.SubmitRequest{
		Value:       input.Value,
		Kind:        input.Kind,
		Description: input.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidTransaction):
			return utils.BadRequest(c, err.Error())
		case errors.Is(err, ledger.ErrAccountNotFound):
			return utils.NotFound(c, "account not found")
		case errors.Is(err, ledger.ErrLimitExceeded):
			return utils.UnprocessableEntity(c, "credit limit exceeded")
		}
		return utils.InternalError(c, "failed to process transaction")
	}

	return utils.Success(c, submitOutput{
		Balance: result.Balance,
		Limit:   result.CreditLimit,
	})
}

// GetStatement handles GET /accounts/:id/statement.
func (h *TransactionHandler) GetStatement(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "invalid account id")
	}

	result, err := h.ledgerService.Statement(c.Context(), int64(accountID))
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return utils.NotFound(c, "account not found")
		}
		return utils.InternalError(c, "failed to read statement")
	}

	entries := make([]statementEntry, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		entries = append(entries, statementEntry{
			Value:       tx.Value,
			Kind:        tx.Kind,
			Description: tx.Description,
			OccurredAt:  tx.OccurredAt,
		})
	}

	return utils.Success(c, statementOutput{
		Balance: statementBalance{
			Total:         result.Balance,
			StatementDate: result.GeneratedAt,
			Limit:         result.CreditLimit,
		},
		RecentTransactions: entries,
	})
}
