package patch

import (
	"context"
	"log"

	"github.com/louisbranch/masquerade/internal/host"
	"github.com/louisbranch/masquerade/internal/telemetry"
)

// patchToken swaps the drawn texture of a single token when its actor has
// an override.
func (s *Set) patchToken(ctx context.Context, evt host.Event) error {
	if evt.Token == nil {
		return nil
	}
	return s.applyTokenOverride(ctx, evt.Token)
}

// patchCanvas re-applies overrides to every token after the scene canvas
// finishes drawing. One token failing leaves the rest untouched.
func (s *Set) patchCanvas(ctx context.Context, evt host.Event) error {
	for _, token := range evt.Tokens {
		if token == nil {
			continue
		}
		if err := s.applyTokenOverride(ctx, token); err != nil {
			log.Printf("patch: token for actor %s: %v", token.ActorID(), err)
		}
	}
	return nil
}

func (s *Set) applyTokenOverride(ctx context.Context, token host.Token) error {
	actorID := token.ActorID()
	if actorID == "" {
		return nil
	}
	path := s.overrides.ActorOverridePath(actorID)
	if path == "" {
		return nil
	}

	img, err := s.textures.Texture(ctx, path)
	if err != nil {
		_ = s.emitter.Emit(ctx, telemetry.Event{
			Type:    telemetry.EventTextureLoadFailed,
			ActorID: actorID,
			Detail:  path,
		})
		return err
	}
	if img == nil {
		return nil
	}

	token.SetTexture(img)
	_ = s.emitter.Emit(ctx, telemetry.Event{
		Type:    telemetry.EventPatchApplied,
		ActorID: actorID,
		Detail:  path,
	})
	return nil
}
