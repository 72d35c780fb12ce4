// Package ledger implements the bank account ledger: accounts with their
// transaction histories, the effective-dated interest rule table, and the
// interest accrual engine behind monthly statements.
//
// Invariants:
//   - An account balance is never negative, and always equals the signed sum
//     of the account's recorded transactions.
//   - An account's first transaction is a deposit; the account is created by it.
//   - Transaction ids are unique and their sequence component is strictly
//     increasing across the whole ledger.
//   - The rule table holds at most one rule per effective date and stays
//     sorted ascending by date.
package ledger

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Kind distinguishes the three money movements a ledger records.
type Kind string

const (
	// Deposit adds funds to an account.
	Deposit Kind = "D"
	// Withdrawal removes funds from an account.
	Withdrawal Kind = "W"
	// Interest is a synthetic credit posted by the accrual engine, never
	// entered by a user.
	Interest Kind = "I"
)

// ParseKind maps the single-letter adapter token (case-insensitive) to a
// user-recordable kind. Interest is not accepted: it is only ever posted by
// the accrual engine.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "D", "d":
		return Deposit, nil
	case "W", "w":
		return Withdrawal, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// TransactionRecord is one immutable money movement on one account on one
// calendar date. Interest records carry an empty ID.
type TransactionRecord struct {
	ID      string
	Date    civil.Date
	Account string
	Kind    Kind
	Amount  decimal.Decimal
}

// Signed returns the amount with its balance effect applied: positive for
// deposits and interest, negative for withdrawals.
func (t TransactionRecord) Signed() decimal.Decimal {
	if t.Kind == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
