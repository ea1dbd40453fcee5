// Package telemetry records operational events for the override module.
package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the type of an operational event.
type EventType string

const (
	// EventOverrideSet records an actor override being created or replaced.
	EventOverrideSet EventType = "override.set"
	// EventOverrideCleared records an actor override being removed.
	EventOverrideCleared EventType = "override.cleared"
	// EventPatchApplied records a render surface being patched.
	EventPatchApplied EventType = "patch.applied"
	// EventTextureLoadFailed records a texture load that was aborted.
	EventTextureLoadFailed EventType = "texture.load_failed"
)

// Event is one operational telemetry record.
type Event struct {
	ID        string
	Type      EventType
	ActorID   string
	Detail    string
	Timestamp time.Time
}

// Store persists telemetry events.
type Store interface {
	AppendTelemetryEvent(ctx context.Context, evt Event) error
}

// Emitter records operational telemetry events.
type Emitter struct {
	store Store
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store Store) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the emitter or its
// store is nil, so emission sites never need a guard.
func (e *Emitter) Emit(ctx context.Context, evt Event) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	return e.store.AppendTelemetryEvent(ctx, evt)
}
