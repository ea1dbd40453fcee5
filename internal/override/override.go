// Package override owns the client-local actor artwork override mapping.
//
// The mapping associates an actor id with a replacement image path. It is
// never shared with other connected clients: it mirrors a per-user setting
// and only changes how this client displays the actor.
package override

import (
	"encoding/json"

	"github.com/louisbranch/masquerade/internal/settings"
)

const (
	// SettingsNamespace scopes every setting this module persists.
	SettingsNamespace = "masquerade"
	// SettingsKey stores the serialized override mapping.
	SettingsKey = "actorOverrides"
)

// Map associates actor ids with replacement image paths. Absence of a key
// means the actor uses its default artwork.
type Map map[string]string

// Clone returns an independent copy of the map. A nil map clones to an
// empty, non-nil map.
func (m Map) Clone() Map {
	clone := make(Map, len(m))
	for actorID, path := range m {
		clone[actorID] = path
	}
	return clone
}

// SettingRegistration declares the persisted override mapping with its
// default value of an empty object.
func SettingRegistration() settings.Registration {
	return settings.Registration{
		Namespace: SettingsNamespace,
		Key:       SettingsKey,
		Scope:     settings.ScopeUser,
		Default:   json.RawMessage(`{}`),
	}
}
