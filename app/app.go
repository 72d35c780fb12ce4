// Package app assembles the ledger service, the event bus and its observers
// from configuration. Both the HTTP server and the interactive CLI build on
// it.
package app

import (
	"context"
	"log/slog"

	"github.com/awesomegic/bankledger/pkg/config"
	"github.com/awesomegic/bankledger/pkg/domain/events"
	"github.com/awesomegic/bankledger/pkg/eventbus"
	ledgersvc "github.com/awesomegic/bankledger/pkg/service/ledger"
)

// App holds the wired application.
type App struct {
	Config *config.App
	Logger *slog.Logger
	Bus    eventbus.Bus
	Ledger *ledgersvc.Service
}

// New wires the event bus, observers and ledger service.
func New(cfg *config.App, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	bus := eventbus.NewWithMemory(logger)
	a := &App{
		Config: cfg,
		Logger: logger,
		Bus:    bus,
		Ledger: ledgersvc.New(bus, logger),
	}
	a.registerObservers()
	return a
}

// registerObservers subscribes the slog-backed observers for every domain
// event type.
func (a *App) registerObservers() {
	logger := a.Logger.With("observer", "ledger")

	a.Bus.Register("TransactionRecorded", func(ctx context.Context, e events.Event) error {
		ev, ok := e.(events.TransactionRecorded)
		if !ok {
			return nil
		}
		logger.Info("observed transaction",
			"event_id", ev.EventID,
			"account", ev.Record.Account,
			"id", ev.Record.ID,
			"kind", ev.Record.Kind,
			"amount", ev.Record.Amount,
			"balance", ev.Balance,
		)
		return nil
	})

	a.Bus.Register("InterestRuleDefined", func(ctx context.Context, e events.Event) error {
		ev, ok := e.(events.InterestRuleDefined)
		if !ok {
			return nil
		}
		logger.Info("observed interest rule",
			"event_id", ev.EventID,
			"rule_id", ev.Rule.ID,
			"effective", ev.Rule.EffectiveDate,
			"rate", ev.Rule.Rate,
		)
		return nil
	})

	a.Bus.Register("InterestAccrued", func(ctx context.Context, e events.Event) error {
		ev, ok := e.(events.InterestAccrued)
		if !ok {
			return nil
		}
		logger.Info("observed interest accrual",
			"event_id", ev.EventID,
			"account", ev.Account,
			"period", ev.Period,
			"amount", ev.Amount,
		)
		return nil
	})
}
