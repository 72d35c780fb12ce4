// Package ledger exposes the ledger's three operations behind a single
// mutex, making each call indivisible to concurrent adapters, and emits
// domain events after successful mutations.
package ledger

import (
	"context"
	"log/slog"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	domain "github.com/awesomegic/bankledger/pkg/domain/ledger"
	"github.com/awesomegic/bankledger/pkg/domain/events"
	"github.com/awesomegic/bankledger/pkg/eventbus"
)

// Service owns one in-memory ledger for the lifetime of the process.
type Service struct {
	mu     sync.Mutex
	ledger *domain.Ledger
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a ledger service over a fresh, empty ledger.
func New(bus eventbus.Bus, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ledger: domain.New(),
		bus:    bus,
		logger: logger.With("service", "Ledger"),
	}
}

// RecordTransaction records one deposit or withdrawal and returns a snapshot
// of the updated account.
func (s *Service) RecordTransaction(ctx context.Context, account string, date civil.Date, kind domain.Kind, amount decimal.Decimal) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.ledger.RecordTransaction(account, date, kind, amount)
	if err != nil {
		s.logger.Warn("transaction rejected",
			"account", account, "kind", kind, "amount", amount, "error", err)
		return nil, err
	}

	record := acct.Transactions[len(acct.Transactions)-1]
	s.logger.Info("transaction recorded",
		"account", account, "id", record.ID, "kind", kind,
		"amount", amount, "balance", acct.Balance)
	s.bus.Emit(ctx, events.NewTransactionRecorded(record, acct.Balance)) //nolint:errcheck
	return acct, nil
}

// DefineInterestRule upserts an interest rule and returns the sorted table.
func (s *Service) DefineInterestRule(ctx context.Context, date civil.Date, ruleID string, rate decimal.Decimal) ([]domain.InterestRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules, err := s.ledger.DefineRule(date, ruleID, rate)
	if err != nil {
		s.logger.Warn("interest rule rejected",
			"rule_id", ruleID, "date", date, "rate", rate, "error", err)
		return nil, err
	}

	s.logger.Info("interest rule defined",
		"rule_id", ruleID, "date", date, "rate", rate, "rules", len(rules))
	s.bus.Emit(ctx, events.NewInterestRuleDefined( //nolint:errcheck
		domain.InterestRule{EffectiveDate: date, ID: ruleID, Rate: rate}))
	return rules, nil
}

// Statement builds the monthly statement for an account. The accrued
// interest is posted to the account as part of the call.
func (s *Service) Statement(ctx context.Context, account string, period domain.Period) ([]domain.StatementRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.ledger.Statement(account, period)
	if err != nil {
		s.logger.Warn("statement rejected", "account", account, "period", period, "error", err)
		return nil, err
	}

	interest := rows[len(rows)-1]
	s.logger.Info("statement produced",
		"account", account, "period", period,
		"rows", len(rows), "interest", interest.Amount)
	s.bus.Emit(ctx, events.NewInterestAccrued(account, period, interest.Amount)) //nolint:errcheck
	return rows, nil
}
