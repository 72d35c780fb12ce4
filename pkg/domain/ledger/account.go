package ledger

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Account aggregates the transaction history of one account number. The
// transaction slice keeps recorded order, not date order; Balance is an
// incrementally maintained cache equal to the signed sum of all records.
type Account struct {
	Number       string
	Transactions []TransactionRecord
	Balance      decimal.Decimal
}

func newAccount(number string) *Account {
	return &Account{Number: number, Balance: decimal.Zero}
}

// add appends a record and folds its signed amount into the balance cache.
// Solvency is the caller's responsibility: the ledger rejects a withdrawal
// before it ever reaches here.
func (a *Account) add(tx TransactionRecord) {
	a.Transactions = append(a.Transactions, tx)
	a.Balance = a.Balance.Add(tx.Signed())
}

// BalanceAsOf returns the signed sum of all records dated on or before d,
// regardless of the order they were recorded in.
func (a *Account) BalanceAsOf(d civil.Date) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range a.Transactions {
		if !tx.Date.After(d) {
			sum = sum.Add(tx.Signed())
		}
	}
	return sum
}

// balanceBefore returns the signed sum of all records dated strictly before d.
func (a *Account) balanceBefore(d civil.Date) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range a.Transactions {
		if tx.Date.Before(d) {
			sum = sum.Add(tx.Signed())
		}
	}
	return sum
}

// inPeriod returns the records dated inside p, in recorded order.
func (a *Account) inPeriod(p Period) []TransactionRecord {
	var out []TransactionRecord
	for _, tx := range a.Transactions {
		if p.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}

// snapshot returns a copy safe to hand to adapters; mutating it cannot touch
// ledger state.
func (a *Account) snapshot() *Account {
	cp := *a
	cp.Transactions = make([]TransactionRecord, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return &cp
}
