package patch

import (
	"context"

	"github.com/louisbranch/masquerade/internal/host"
	"github.com/louisbranch/masquerade/internal/telemetry"
)

// patchChatMessage replaces the speaker image on a rendered chat message.
//
// The chat pipeline reads the image from the message document, not from
// the rendered markup, so this patcher mutates the document's stored
// image field. It is the only document-field patcher; everything else is
// presentational.
func (s *Set) patchChatMessage(ctx context.Context, evt host.Event) error {
	msg := evt.Message
	if msg == nil {
		return nil
	}
	actorID := msg.ActorID()
	if actorID == "" {
		return nil
	}
	path := s.overrides.ActorOverridePath(actorID)
	if path == "" {
		return nil
	}
	if msg.StoredImage() == path {
		return nil
	}

	msg.SetStoredImage(path)
	_ = s.emitter.Emit(ctx, telemetry.Event{
		Type:    telemetry.EventPatchApplied,
		ActorID: actorID,
		Detail:  path,
	})
	return nil
}
