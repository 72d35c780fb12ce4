// Package events defines the domain events the ledger emits after successful
// mutations. Adapters and observers subscribe to them through the event bus.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awesomegic/bankledger/pkg/domain/ledger"
)

// Event is implemented by every domain event.
type Event interface {
	// Type identifies the event for bus routing.
	Type() string
}

// TransactionRecorded is emitted after a deposit or withdrawal is appended to
// an account.
type TransactionRecorded struct {
	EventID uuid.UUID
	Record  ledger.TransactionRecord
	Balance decimal.Decimal
	At      time.Time
}

// NewTransactionRecorded builds the event for a freshly recorded transaction
// and the resulting account balance.
func NewTransactionRecorded(record ledger.TransactionRecord, balance decimal.Decimal) TransactionRecorded {
	return TransactionRecorded{
		EventID: uuid.New(),
		Record:  record,
		Balance: balance,
		At:      time.Now(),
	}
}

func (TransactionRecorded) Type() string { return "TransactionRecorded" }

// InterestRuleDefined is emitted after a rule is inserted or replaced in the
// rule table.
type InterestRuleDefined struct {
	EventID uuid.UUID
	Rule    ledger.InterestRule
	At      time.Time
}

// NewInterestRuleDefined builds the event for an upserted interest rule.
func NewInterestRuleDefined(rule ledger.InterestRule) InterestRuleDefined {
	return InterestRuleDefined{EventID: uuid.New(), Rule: rule, At: time.Now()}
}

func (InterestRuleDefined) Type() string { return "InterestRuleDefined" }

// InterestAccrued is emitted after a statement posts the period's interest to
// an account.
type InterestAccrued struct {
	EventID uuid.UUID
	Account string
	Period  ledger.Period
	Amount  decimal.Decimal
	At      time.Time
}

// NewInterestAccrued builds the event for one period's posted interest.
func NewInterestAccrued(account string, period ledger.Period, amount decimal.Decimal) InterestAccrued {
	return InterestAccrued{
		EventID: uuid.New(),
		Account: account,
		Period:  period,
		Amount:  amount,
		At:      time.Now(),
	}
}

func (InterestAccrued) Type() string { return "InterestAccrued" }
