package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/awesomegic/bankledger/pkg/domain/events"
)

// MemoryEventBus is an in-memory Bus. Handlers run synchronously in
// registration order; a handler error is logged and does not stop dispatch.
type MemoryEventBus struct {
	mu        sync.RWMutex
	handlers  map[string][]HandlerFunc
	logger    *slog.Logger
	capture   bool
	published []events.Event // captured only while capture is on
}

// NewWithMemory creates an in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryEventBus{
		handlers: make(map[string][]HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

// Register subscribes a handler to an event type.
func (b *MemoryEventBus) Register(eventType string, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// EnableCapture makes Emit retain every event for later inspection through
// Published. Meant for tests; a long-running process should leave it off so
// the captured slice cannot grow without bound.
func (b *MemoryEventBus) EnableCapture() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.capture = true
}

// Emit dispatches the event to every handler registered for its type.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	eventType := event.Type()
	b.mu.RLock()
	handlers := b.handlers[eventType]
	b.mu.RUnlock()

	b.mu.Lock()
	if b.capture {
		b.published = append(b.published, event)
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed", "event", eventType, "error", err)
		}
	}
	return nil
}

// Published returns a copy of the events captured since EnableCapture.
// Test helper.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]events.Event, len(b.published))
	copy(out, b.published)
	return out
}

// ClearPublished discards the captured event list. Test helper.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}
