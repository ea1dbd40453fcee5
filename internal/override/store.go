package override

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/masquerade/internal/settings"
	"github.com/louisbranch/masquerade/internal/telemetry"
)

var (
	// ErrEmptyActorID indicates a missing actor id.
	ErrEmptyActorID = errors.New("actor id is required")
	// ErrEmptyImagePath indicates a missing image path.
	ErrEmptyImagePath = errors.New("image path is required")
)

// Store keeps the override mapping in memory and mirrors every mutation to
// the settings persistence collaborator. Reads never touch persistence
// after Load; writes all funnel through SetAllOverrides, which is the only
// code path allowed to issue a persistence write.
type Store struct {
	persistence settings.Store
	emitter     *telemetry.Emitter
	tracer      trace.Tracer

	mu    sync.RWMutex
	cache Map
}

// NewStore creates an override store backed by the given persistence
// collaborator. The emitter may be nil.
func NewStore(persistence settings.Store, emitter *telemetry.Emitter) *Store {
	return &Store{
		persistence: persistence,
		emitter:     emitter,
		tracer:      otel.Tracer("masquerade/override"),
		cache:       make(Map),
	}
}

// Load restores the mapping from persisted settings. It is called once at
// module initialization; a missing setting restores the declared default.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("override store is not configured")
	}

	raw, err := settings.Resolve(ctx, s.persistence, SettingRegistration())
	if err != nil {
		return fmt.Errorf("read persisted overrides: %w", err)
	}

	restored := make(Map)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &restored); err != nil {
			return fmt.Errorf("decode persisted overrides: %w", err)
		}
	}

	s.mu.Lock()
	s.cache = restored
	s.mu.Unlock()
	return nil
}

// Overrides returns a copy of the current mapping. Mutating the returned
// map never affects the store.
func (s *Store) Overrides() Map {
	if s == nil {
		return make(Map)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Clone()
}

// HasAny reports whether any actor currently has an override. Patchers use
// it as a fast-path guard before any lookup work.
func (s *Store) HasAny() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache) > 0
}

// ActorHasOverride reports whether the actor has an active override. An
// empty actor id fails closed.
func (s *Store) ActorHasOverride(actorID string) bool {
	return s.ActorOverridePath(actorID) != ""
}

// ActorOverridePath returns the override image path for the actor, or the
// empty string when the actor has none.
func (s *Store) ActorOverridePath(actorID string) string {
	if s == nil {
		return ""
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[actorID]
}

// SetActorOverride upserts one override and persists the resulting map.
func (s *Store) SetActorOverride(ctx context.Context, actorID, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return ErrEmptyActorID
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyImagePath
	}

	next := s.Overrides()
	next[actorID] = path
	if err := s.SetAllOverrides(ctx, next); err != nil {
		return err
	}

	_ = s.emitter.Emit(ctx, telemetry.Event{
		Type:    telemetry.EventOverrideSet,
		ActorID: actorID,
		Detail:  path,
	})
	return nil
}

// ClearActorOverride removes the actor's override if present. Clearing an
// absent actor is a no-op and issues no persistence write.
func (s *Store) ClearActorOverride(ctx context.Context, actorID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return nil
	}
	if !s.ActorHasOverride(actorID) {
		return nil
	}

	next := s.Overrides()
	delete(next, actorID)
	if err := s.SetAllOverrides(ctx, next); err != nil {
		return err
	}

	_ = s.emitter.Emit(ctx, telemetry.Event{
		Type:    telemetry.EventOverrideCleared,
		ActorID: actorID,
	})
	return nil
}

// SetAllOverrides replaces the whole mapping and persists it. A nil map
// normalizes to an empty mapping, so persistence always receives an
// object, never null.
//
// The in-memory cache is updated before the persistence write so readers
// on the same cooperative turn observe the change immediately. If the
// write fails the previous mapping is restored and the error returned, so
// cache and persisted state only diverge inside this call.
func (s *Store) SetAllOverrides(ctx context.Context, m Map) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.persistence == nil {
		return fmt.Errorf("override store is not configured")
	}

	next := m.Clone()
	payload, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode overrides: %w", err)
	}

	s.mu.Lock()
	prev := s.cache
	s.cache = next
	s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "override.set_all")
	defer span.End()

	if err := s.persistence.Set(ctx, SettingsNamespace, SettingsKey, payload); err != nil {
		s.mu.Lock()
		s.cache = prev
		s.mu.Unlock()
		span.RecordError(err)
		return fmt.Errorf("persist overrides: %w", err)
	}
	return nil
}
