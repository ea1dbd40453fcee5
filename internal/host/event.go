// Package host models the virtual-tabletop host surfaces this module
// reacts to: lifecycle events, rendered element handles, and the visual
// and document objects that carry actor artwork.
package host

import "strings"

// Type identifies a host lifecycle event.
type Type string

// Lifecycle events.
const (
	// TypeInit fires once when the host finishes booting the module.
	TypeInit Type = "host.init"
	// TypeCanvasReady fires after the scene canvas finishes drawing.
	TypeCanvasReady Type = "canvas.ready"
)

// Token events.
const (
	// TypeTokenCreate fires when a token is placed on the canvas.
	TypeTokenCreate Type = "token.create"
	// TypeTokenUpdate fires when a token's document changes.
	TypeTokenUpdate Type = "token.update"
	// TypeTokenRefresh fires when the host redraws a token.
	TypeTokenRefresh Type = "token.refresh"
)

// Render events for non-canvas UI surfaces.
const (
	// TypeChatMessageRender fires after a chat message is rendered.
	TypeChatMessageRender Type = "chat.message_render"
	// TypeCombatTrackerRender fires after the combat tracker is rendered.
	TypeCombatTrackerRender Type = "combat.tracker_render"
	// TypeActorDirectoryRender fires after the actor directory is rendered.
	TypeActorDirectoryRender Type = "actor.directory_render"
	// TypeActorSheetRender fires after an actor sheet is rendered.
	TypeActorSheetRender Type = "actor.sheet_render"
)

// IsValid reports whether the event type is non-empty.
func (t Type) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Event is one host lifecycle notification. Only the fields relevant to
// the event type are populated; handlers must treat every field as
// optional and skip work when the payload they need is absent.
type Event struct {
	Type Type

	// Token carries the visual object for token.* events.
	Token Token
	// Tokens carries every drawn token for canvas.ready.
	Tokens []Token

	// Message carries the chat document for chat.message_render.
	Message ChatMessage

	// Combatants carries the rendered tracker rows for
	// combat.tracker_render.
	Combatants []Combatant

	// Entries carries the rendered listing rows for
	// actor.directory_render.
	Entries []DirectoryEntry

	// Sheet carries the rendered sheet for actor.sheet_render.
	Sheet Sheet
}
