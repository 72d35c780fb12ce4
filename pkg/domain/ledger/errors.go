package ledger

import "errors"

var (
	// ErrAccountNotFound is returned when a statement is requested for an
	// account the ledger has never seen.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a withdrawal would drive the
	// account balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrFirstTransactionMustBeDeposit is returned when the first transaction
	// recorded against a new account is not a deposit.
	ErrFirstTransactionMustBeDeposit = errors.New("first transaction on a new account must be a deposit")

	// ErrAmountMustBePositive is returned when a transaction amount is zero or
	// negative.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrEmptyAccountNumber is returned when an operation names no account.
	ErrEmptyAccountNumber = errors.New("account number must not be empty")

	// ErrInvalidKind is returned when a recorded transaction kind is neither a
	// deposit nor a withdrawal.
	ErrInvalidKind = errors.New("transaction kind must be deposit or withdrawal")

	// ErrEmptyRuleID is returned when an interest rule is defined without an id.
	ErrEmptyRuleID = errors.New("rule id must not be empty")

	// ErrRateOutOfRange is returned when an interest rate is not strictly
	// between 0 and 100 percent.
	ErrRateOutOfRange = errors.New("interest rate must be greater than 0 and less than 100")
)
