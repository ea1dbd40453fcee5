// Package settings defines the host settings-persistence collaborator.
//
// The host exposes a per-user settings service keyed by namespace and key.
// Values are opaque JSON payloads; each registered setting declares a
// default returned when the user has never written the key.
package settings

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound indicates a requested setting has never been written.
var ErrNotFound = errors.New("setting not found")

// Scope describes who a stored setting belongs to.
type Scope string

const (
	// ScopeUser stores the value per user, never shared across clients.
	ScopeUser Scope = "user"
	// ScopeWorld stores the value once for every connected client.
	ScopeWorld Scope = "world"
)

// Store persists settings values for a single user session.
type Store interface {
	// Get returns the stored value for namespace/key, or ErrNotFound.
	Get(ctx context.Context, namespace, key string) (json.RawMessage, error)
	// Set writes the value for namespace/key.
	Set(ctx context.Context, namespace, key string, value json.RawMessage) error
}

// Registration declares a setting before first use.
type Registration struct {
	Namespace string
	Key       string
	Scope     Scope
	Default   json.RawMessage
}

// Resolve reads a registered setting, falling back to its declared default
// when the store has no value for it.
func Resolve(ctx context.Context, store Store, reg Registration) (json.RawMessage, error) {
	if store == nil {
		return reg.Default, nil
	}
	value, err := store.Get(ctx, reg.Namespace, reg.Key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return reg.Default, nil
		}
		return nil, err
	}
	return value, nil
}
