package patch

import (
	"context"

	"github.com/louisbranch/masquerade/internal/host"
)

// patchCombatTracker swaps the portrait of each tracker row whose actor
// has an override.
func (s *Set) patchCombatTracker(_ context.Context, evt host.Event) error {
	for _, combatant := range evt.Combatants {
		s.applyElementOverride(combatant.ActorID, combatant.Element, combatImageSelector)
	}
	return nil
}

// patchActorDirectory swaps the thumbnail of each directory row whose
// actor has an override.
func (s *Set) patchActorDirectory(_ context.Context, evt host.Event) error {
	for _, entry := range evt.Entries {
		s.applyElementOverride(entry.ActorID, entry.Element, directoryImageSelector)
	}
	return nil
}

// patchActorSheet swaps the profile image of a rendered actor sheet.
func (s *Set) patchActorSheet(_ context.Context, evt host.Event) error {
	s.applyElementOverride(evt.Sheet.ActorID, evt.Sheet.Element, sheetImageSelector)
	return nil
}

// applyElementOverride is the presentational mutation shared by the
// non-canvas surfaces: it swaps an image source attribute on the rendered
// element and never touches any document model.
func (s *Set) applyElementOverride(actorID string, element host.Element, selector string) {
	if element == nil || actorID == "" {
		return
	}
	path := s.overrides.ActorOverridePath(actorID)
	if path == "" {
		return
	}
	element.SetImageAttr(selector, path)
}
