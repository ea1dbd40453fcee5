package override

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/louisbranch/masquerade/internal/testkit/hostfakes"
)

func newTestStore(t *testing.T) (*Store, *hostfakes.SettingsStore) {
	t.Helper()
	persistence := hostfakes.NewSettingsStore()
	store := NewStore(persistence, nil)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return store, persistence
}

func persistedMap(t *testing.T, persistence *hostfakes.SettingsStore) Map {
	t.Helper()
	raw := persistence.Persisted(SettingsNamespace, SettingsKey)
	if raw == nil {
		t.Fatalf("expected a persisted value")
	}
	var m Map
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode persisted value: %v", err)
	}
	return m
}

func TestAbsentActorFailsClosed(t *testing.T) {
	store, _ := newTestStore(t)

	if store.ActorHasOverride("actor-1") {
		t.Fatalf("expected no override for unknown actor")
	}
	if got := store.ActorOverridePath("actor-1"); got != "" {
		t.Fatalf("expected empty path for unknown actor, got %q", got)
	}
	if store.ActorHasOverride("") {
		t.Fatalf("expected empty actor id to fail closed")
	}
	if store.HasAny() {
		t.Fatalf("expected empty store to report no overrides")
	}
}

func TestSetActorOverrideRoundTrip(t *testing.T) {
	store, persistence := newTestStore(t)
	ctx := context.Background()

	if err := store.SetActorOverride(ctx, "actor-1", "img/a.png"); err != nil {
		t.Fatalf("set override: %v", err)
	}

	if got := store.ActorOverridePath("actor-1"); got != "img/a.png" {
		t.Fatalf("expected img/a.png, got %q", got)
	}
	if !store.HasAny() {
		t.Fatalf("expected store to report overrides")
	}

	persisted := persistedMap(t, persistence)
	if len(persisted) != 1 || persisted["actor-1"] != "img/a.png" {
		t.Fatalf("expected persisted map to equal cache, got %v", persisted)
	}
}

func TestSetActorOverrideValidation(t *testing.T) {
	store, persistence := newTestStore(t)
	ctx := context.Background()

	if err := store.SetActorOverride(ctx, "  ", "img/a.png"); !errors.Is(err, ErrEmptyActorID) {
		t.Fatalf("expected ErrEmptyActorID, got %v", err)
	}
	if err := store.SetActorOverride(ctx, "actor-1", "  "); !errors.Is(err, ErrEmptyImagePath) {
		t.Fatalf("expected ErrEmptyImagePath, got %v", err)
	}
	if persistence.SetCalls != 0 {
		t.Fatalf("expected no persistence writes for rejected input, got %d", persistence.SetCalls)
	}
}

func TestClearAbsentActorIsNoOp(t *testing.T) {
	store, persistence := newTestStore(t)
	ctx := context.Background()

	if err := store.ClearActorOverride(ctx, "actor-1"); err != nil {
		t.Fatalf("clear absent actor: %v", err)
	}
	if persistence.SetCalls != 0 {
		t.Fatalf("expected no persistence write for absent actor, got %d", persistence.SetCalls)
	}
	if err := store.ClearActorOverride(ctx, "   "); err != nil {
		t.Fatalf("clear empty actor id: %v", err)
	}
	if persistence.SetCalls != 0 {
		t.Fatalf("expected no persistence write for empty actor id, got %d", persistence.SetCalls)
	}
}

func TestClearRemovesOverride(t *testing.T) {
	store, persistence := newTestStore(t)
	ctx := context.Background()

	if err := store.SetActorOverride(ctx, "actor-1", "img/a.png"); err != nil {
		t.Fatalf("set override: %v", err)
	}
	if err := store.ClearActorOverride(ctx, "actor-1"); err != nil {
		t.Fatalf("clear override: %v", err)
	}

	if store.ActorHasOverride("actor-1") {
		t.Fatalf("expected override removed")
	}
	persisted := persistedMap(t, persistence)
	if len(persisted) != 0 {
		t.Fatalf("expected empty persisted map, got %v", persisted)
	}
}

func TestSetAllOverridesNormalizesNil(t *testing.T) {
	store, persistence := newTestStore(t)
	ctx := context.Background()

	if err := store.SetAllOverrides(ctx, nil); err != nil {
		t.Fatalf("set all with nil: %v", err)
	}

	raw := persistence.Persisted(SettingsNamespace, SettingsKey)
	if string(raw) != "{}" {
		t.Fatalf("expected persisted empty object, got %s", raw)
	}
	if store.HasAny() {
		t.Fatalf("expected no overrides after nil replacement")
	}
}

func TestSetAllOverridesRollsBackOnPersistFailure(t *testing.T) {
	store, persistence := newTestStore(t)
	ctx := context.Background()

	if err := store.SetActorOverride(ctx, "actor-1", "img/a.png"); err != nil {
		t.Fatalf("set override: %v", err)
	}

	persistence.SetErr = errors.New("disk full")
	err := store.SetActorOverride(ctx, "actor-2", "img/b.png")
	if err == nil {
		t.Fatalf("expected persistence failure to surface")
	}

	if store.ActorHasOverride("actor-2") {
		t.Fatalf("expected cache rollback after persistence failure")
	}
	if got := store.ActorOverridePath("actor-1"); got != "img/a.png" {
		t.Fatalf("expected prior override to survive rollback, got %q", got)
	}
}

func TestOverridesReturnsDefensiveCopy(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SetActorOverride(ctx, "actor-1", "img/a.png"); err != nil {
		t.Fatalf("set override: %v", err)
	}

	snapshot := store.Overrides()
	snapshot["actor-1"] = "img/tampered.png"
	snapshot["actor-2"] = "img/injected.png"

	if got := store.ActorOverridePath("actor-1"); got != "img/a.png" {
		t.Fatalf("expected store untouched by snapshot mutation, got %q", got)
	}
	if store.ActorHasOverride("actor-2") {
		t.Fatalf("expected injected entry to stay out of the store")
	}
}

func TestLoadRestoresPersistedMapping(t *testing.T) {
	persistence := hostfakes.NewSettingsStore()
	seed := NewStore(persistence, nil)
	if err := seed.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := seed.SetActorOverride(context.Background(), "actor-1", "img/a.png"); err != nil {
		t.Fatalf("seed override: %v", err)
	}

	restored := NewStore(persistence, nil)
	if err := restored.Load(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := restored.ActorOverridePath("actor-1"); got != "img/a.png" {
		t.Fatalf("expected restored override, got %q", got)
	}
}
