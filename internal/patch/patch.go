// Package patch applies actor artwork overrides to rendered host surfaces.
//
// Every patcher is a stateless reaction to one host event: it extracts
// actor ids from the payload, looks up an override, and mutates the
// already-rendered output in place. A miss leaves the default rendering
// untouched; a failure aborts only that one patch attempt.
package patch

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/masquerade/internal/host"
	"github.com/louisbranch/masquerade/internal/override"
	"github.com/louisbranch/masquerade/internal/telemetry"
	"github.com/louisbranch/masquerade/internal/texture"
)

// Image selectors targeted inside each rendered surface.
const (
	combatImageSelector    = "img.token-image"
	directoryImageSelector = "img.thumbnail"
	sheetImageSelector     = "img.profile-img"
)

// Set is the registry of render patchers sharing one override store and
// texture cache.
type Set struct {
	overrides *override.Store
	textures  *texture.Cache
	emitter   *telemetry.Emitter
	tracer    trace.Tracer
}

// New creates the patcher set. The emitter may be nil.
func New(overrides *override.Store, textures *texture.Cache, emitter *telemetry.Emitter) *Set {
	return &Set{
		overrides: overrides,
		textures:  textures,
		emitter:   emitter,
		tracer:    otel.Tracer("masquerade/patch"),
	}
}

// Register subscribes every patcher to its host event.
func (s *Set) Register(bus *host.Bus) error {
	if s == nil || s.overrides == nil {
		return fmt.Errorf("patch set is not configured")
	}
	if bus == nil {
		return fmt.Errorf("bus is required")
	}

	subscriptions := []struct {
		event host.Type
		name  string
		apply host.Handler
	}{
		{host.TypeCanvasReady, "patch.canvas", s.patchCanvas},
		{host.TypeTokenCreate, "patch.token", s.patchToken},
		{host.TypeTokenUpdate, "patch.token", s.patchToken},
		{host.TypeTokenRefresh, "patch.token", s.patchToken},
		{host.TypeChatMessageRender, "patch.chat", s.patchChatMessage},
		{host.TypeCombatTrackerRender, "patch.combat_tracker", s.patchCombatTracker},
		{host.TypeActorDirectoryRender, "patch.actor_directory", s.patchActorDirectory},
		{host.TypeActorSheetRender, "patch.actor_sheet", s.patchActorSheet},
	}
	for _, sub := range subscriptions {
		if err := bus.Subscribe(sub.event, s.guarded(sub.name, sub.apply)); err != nil {
			return fmt.Errorf("subscribe %s: %w", sub.event, err)
		}
	}
	return nil
}

// guarded wraps a patcher with the shared fast-path guard and a trace
// span, so no patcher repeats either.
func (s *Set) guarded(name string, apply host.Handler) host.Handler {
	return func(ctx context.Context, evt host.Event) error {
		if !s.overrides.HasAny() {
			return nil
		}
		ctx, span := s.tracer.Start(ctx, name)
		defer span.End()
		if err := apply(ctx, evt); err != nil {
			span.RecordError(err)
			return err
		}
		return nil
	}
}
