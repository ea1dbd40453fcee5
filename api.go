package masquerade

import (
	"github.com/louisbranch/masquerade/internal/host"
	"github.com/louisbranch/masquerade/internal/macro"
	"github.com/louisbranch/masquerade/internal/override"
	"github.com/louisbranch/masquerade/internal/settings"
	"github.com/louisbranch/masquerade/internal/texture"
)

// Aliases for the types an embedding host implements or consumes, so
// integrations never need to reach into internal packages.
type (
	// Event is one host lifecycle notification.
	Event = host.Event
	// EventType identifies a host lifecycle event.
	EventType = host.Type
	// Bus delivers lifecycle events to the render patchers.
	Bus = host.Bus
	// Token is a placed visual instance of an actor on the canvas.
	Token = host.Token
	// Element is a handle to an already-rendered UI fragment.
	Element = host.Element
	// ChatMessage is the underlying chat document.
	ChatMessage = host.ChatMessage
	// Combatant is one rendered combat tracker row.
	Combatant = host.Combatant
	// DirectoryEntry is one rendered actor directory row.
	DirectoryEntry = host.DirectoryEntry
	// Sheet is a rendered actor sheet.
	Sheet = host.Sheet

	// OverrideMap associates actor ids with replacement image paths.
	OverrideMap = override.Map

	// SettingsStore persists settings values for a single user session.
	SettingsStore = settings.Store
	// TextureLoader resolves an image path to a decoded texture.
	TextureLoader = texture.Loader

	// Selection exposes the token the user currently controls.
	Selection = macro.Selection
	// FilePicker lets the user browse for an image path.
	FilePicker = macro.FilePicker
	// Notifier shows user-facing notifications.
	Notifier = macro.Notifier
)

// Lifecycle events the render patchers subscribe to.
const (
	EventInit                 = host.TypeInit
	EventCanvasReady          = host.TypeCanvasReady
	EventTokenCreate          = host.TypeTokenCreate
	EventTokenUpdate          = host.TypeTokenUpdate
	EventTokenRefresh         = host.TypeTokenRefresh
	EventChatMessageRender    = host.TypeChatMessageRender
	EventCombatTrackerRender  = host.TypeCombatTrackerRender
	EventActorDirectoryRender = host.TypeActorDirectoryRender
	EventActorSheetRender     = host.TypeActorSheetRender
)

// NewBus creates an event bus for hosts that do not inject their own.
func NewBus() *Bus {
	return host.NewBus()
}
