// Package eventbus provides the contract for dispatching domain events and an
// in-memory implementation suitable for a single-process ledger.
package eventbus

import (
	"context"

	"github.com/awesomegic/bankledger/pkg/domain/events"
)

// HandlerFunc handles a single dispatched event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus routes domain events to registered handlers.
type Bus interface {
	// Register subscribes a handler to an event type.
	Register(eventType string, handler HandlerFunc)
	// Emit dispatches the event to all handlers registered for its type.
	Emit(ctx context.Context, event events.Event) error
}
