package ledger

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Ledger is the aggregate root: it owns every account, the interest rule
// table and the transaction id sequence. It is not safe for concurrent use;
// callers that need concurrency must serialize the three operations (the
// service layer does so with a single mutex).
type Ledger struct {
	accounts map[string]*Account
	rules    *RuleTable
	seq      int
}

// New returns an empty in-memory ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[string]*Account),
		rules:    NewRuleTable(),
		seq:      1,
	}
}

// RecordTransaction validates and appends one deposit or withdrawal.
//
// A deposit on an unknown account creates it; a withdrawal on an unknown
// account is rejected and creates nothing. A withdrawal that would drive the
// balance negative is rejected. On success the id <date>-<sequence> is
// allocated from the process-wide counter and a snapshot of the updated
// account is returned. Failures leave the ledger untouched.
func (l *Ledger) RecordTransaction(account string, date civil.Date, kind Kind, amount decimal.Decimal) (*Account, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, ErrEmptyAccountNumber
	}
	if kind != Deposit && kind != Withdrawal {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if !amount.IsPositive() {
		return nil, ErrAmountMustBePositive
	}

	acct, ok := l.accounts[account]
	if !ok {
		if kind == Withdrawal {
			return nil, ErrFirstTransactionMustBeDeposit
		}
		acct = newAccount(account)
	}
	if kind == Withdrawal && acct.Balance.Sub(amount).IsNegative() {
		return nil, ErrInsufficientFunds
	}

	// All checks passed; from here the mutation is applied whole.
	l.accounts[account] = acct
	acct.add(TransactionRecord{
		ID:      fmt.Sprintf("%s-%02d", FormatDate(date), l.seq),
		Date:    date,
		Account: account,
		Kind:    kind,
		Amount:  amount,
	})
	l.seq++
	return acct.snapshot(), nil
}

// DefineRule validates and upserts an interest rule. A rule dated the same
// as an existing one replaces it. The sorted table is returned for display.
func (l *Ledger) DefineRule(date civil.Date, ruleID string, rate decimal.Decimal) ([]InterestRule, error) {
	ruleID = strings.TrimSpace(ruleID)
	if ruleID == "" {
		return nil, ErrEmptyRuleID
	}
	if !rate.IsPositive() || rate.GreaterThanOrEqual(hundred) {
		return nil, ErrRateOutOfRange
	}
	l.rules.Upsert(InterestRule{EffectiveDate: date, ID: ruleID, Rate: rate})
	return l.rules.Rules(), nil
}

// Rules returns the current rule table in ascending date order.
func (l *Ledger) Rules() []InterestRule {
	return l.rules.Rules()
}

// Account returns a snapshot of the named account, if it exists.
func (l *Ledger) Account(number string) (*Account, bool) {
	acct, ok := l.accounts[number]
	if !ok {
		return nil, false
	}
	return acct.snapshot(), true
}

// StatementRow is one display line of a monthly statement. Interest rows
// carry an empty ID. Balance is the running historical balance as of that
// row, not the account's balance at call time.
type StatementRow struct {
	Date    civil.Date
	ID      string
	Kind    Kind
	Amount  decimal.Decimal
	Balance decimal.Decimal
}

// Statement builds the monthly statement for an account: the period's
// transactions in recorded order with a running balance, then the interest
// accrued for the period as a final synthetic row. Accrual posts a new
// Interest record each time, so requesting the same statement twice posts
// interest twice.
func (l *Ledger) Statement(account string, p Period) ([]StatementRow, error) {
	acct, ok := l.accounts[account]
	if !ok {
		return nil, ErrAccountNotFound
	}

	running := acct.balanceBefore(p.Start())
	var rows []StatementRow
	for _, tx := range acct.inPeriod(p) {
		running = running.Add(tx.Signed())
		rows = append(rows, StatementRow{
			Date:    tx.Date,
			ID:      tx.ID,
			Kind:    tx.Kind,
			Amount:  tx.Amount,
			Balance: running,
		})
	}

	interest := Accrue(acct, p, l.rules)
	rows = append(rows, StatementRow{
		Date:    p.End(),
		Kind:    Interest,
		Amount:  interest,
		Balance: running.Add(interest),
	})
	return rows, nil
}
