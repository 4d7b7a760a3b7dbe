/*
Package ledger implements the transaction service: request validation,
atomic balance mutation through the account repository, and statement
shaping.

The service never computes balances itself. All sign application and
invariant checking happens in the store's atomic apply, so a submission is
either fully committed (balance changed and transaction appended together)
or fully rejected.

Usage:

	svc := ledger.NewService(repo, cache, nil)

	// Apply a debit
	res, err := svc.Submit(ctx, accountID, ledger.SubmitRequest{
	    Value:       500,
	    Kind:        models.KindDebit,
	    Description: "compra",
	})

	// Read the statement
	st, err := svc.Statement(ctx, accountID)

Error Handling:

	validation.ErrInvalidTransaction — malformed input, store untouched
	ledger.ErrAccountNotFound        — id outside the provisioned set
	ledger.ErrLimitExceeded          — debit would break balance >= -limit

Anything else is a store failure and should surface as a server error.
*/
package ledger
