package host

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Handler reacts to one host lifecycle event.
type Handler func(ctx context.Context, evt Event) error

// Bus delivers lifecycle events to subscribed handlers serially, in
// subscription order. A handler error is logged and never propagated: a
// patch that cannot apply must not interrupt the host's own rendering.
type Bus struct {
	handlers map[Type][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(eventType Type, handler Handler) error {
	if b == nil {
		return fmt.Errorf("bus is not configured")
	}
	if !eventType.IsValid() {
		return fmt.Errorf("event type is required")
	}
	if handler == nil {
		return fmt.Errorf("handler is required")
	}
	key := Type(strings.TrimSpace(string(eventType)))
	b.handlers[key] = append(b.handlers[key], handler)
	return nil
}

// Publish delivers the event to every subscribed handler. Handlers run to
// completion one at a time; nothing is delivered concurrently.
func (b *Bus) Publish(ctx context.Context, evt Event) {
	if b == nil {
		return
	}
	for _, handler := range b.handlers[evt.Type] {
		if err := handler(ctx, evt); err != nil {
			log.Printf("host: %s handler failed: %v", evt.Type, err)
		}
	}
}
