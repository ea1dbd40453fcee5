// Package masquerade replaces the displayed artwork of actors and tokens
// inside a virtual-tabletop host, locally for one user.
//
// The module keeps an actor-id to image-path mapping mirrored to per-user
// settings, and patches every host render surface (canvas tokens, chat
// messages, combat tracker, actor directory, actor sheets) in place when
// an override exists. Nothing is synchronized to other connected clients.
package masquerade

import (
	"context"
	"fmt"

	"github.com/louisbranch/masquerade/internal/host"
	"github.com/louisbranch/masquerade/internal/macro"
	"github.com/louisbranch/masquerade/internal/override"
	"github.com/louisbranch/masquerade/internal/patch"
	"github.com/louisbranch/masquerade/internal/settings"
	sqlitestore "github.com/louisbranch/masquerade/internal/settings/sqlite"
	"github.com/louisbranch/masquerade/internal/telemetry"
	"github.com/louisbranch/masquerade/internal/texture"
	"github.com/louisbranch/masquerade/internal/texture/imagefs"
)

// Dependencies are the host collaborators the module consumes. Any nil
// field falls back to a built-in implementation configured by Config.
type Dependencies struct {
	// Settings persists the override mapping per user.
	Settings settings.Store
	// Telemetry records operational events; nil disables recording.
	Telemetry telemetry.Store
	// Loader resolves image paths to decoded textures.
	Loader texture.Loader
	// Bus is the host lifecycle event bus the patchers subscribe to.
	Bus *host.Bus
	// Selection, FilePicker and Notifier back the macro trigger surface.
	Selection  macro.Selection
	FilePicker macro.FilePicker
	Notifier   macro.Notifier
}

// Service is the module handle. It is constructed once at startup and
// passed by reference to whatever trigger glue needs it; there is no
// package-level singleton.
type Service struct {
	overrides *override.Store
	textures  *texture.Cache
	patchers  *patch.Set
	macros    *macro.Bindings
	bus       *host.Bus

	// owned is the settings store opened by New, closed by Close. Nil
	// when the host supplied its own.
	owned *sqlitestore.Store
}

// New assembles the module. It does not read persisted state; call Init
// once the host reports ready.
func New(cfg Config, deps Dependencies) (*Service, error) {
	svc := &Service{bus: deps.Bus}
	if svc.bus == nil {
		svc.bus = host.NewBus()
	}

	persistence := deps.Settings
	telemetryStore := deps.Telemetry
	if persistence == nil {
		owned, err := sqlitestore.Open(cfg.SettingsPath, cfg.UserID)
		if err != nil {
			return nil, fmt.Errorf("open settings store: %w", err)
		}
		svc.owned = owned
		persistence = owned
		if telemetryStore == nil && cfg.Telemetry {
			telemetryStore = owned
		}
	}

	loader := deps.Loader
	if loader == nil {
		fsLoader, err := imagefs.New(cfg.AssetRoot)
		if err != nil {
			_ = svc.Close()
			return nil, fmt.Errorf("create image loader: %w", err)
		}
		loader = fsLoader
	}

	emitter := telemetry.NewEmitter(telemetryStore)
	svc.overrides = override.NewStore(persistence, emitter)
	svc.textures = texture.NewCache(loader)
	svc.patchers = patch.New(svc.overrides, svc.textures, emitter)
	svc.macros = macro.NewBindings(svc.overrides, deps.Selection, deps.FilePicker, deps.Notifier)
	return svc, nil
}

// Init restores the override mapping from persisted settings and
// subscribes every render patcher to the host bus. Persistence is read
// exactly once here; all later reads hit the in-memory mapping.
func (s *Service) Init(ctx context.Context) error {
	if s == nil || s.overrides == nil {
		return fmt.Errorf("service is not configured")
	}
	if err := s.overrides.Load(ctx); err != nil {
		return err
	}
	if err := s.patchers.Register(s.bus); err != nil {
		return err
	}
	return nil
}

// Overrides returns the override store.
func (s *Service) Overrides() *override.Store {
	return s.overrides
}

// Textures returns the texture cache.
func (s *Service) Textures() *texture.Cache {
	return s.textures
}

// Bus returns the event bus the patchers are subscribed to. Hosts that
// did not inject their own bus publish lifecycle events through it.
func (s *Service) Bus() *host.Bus {
	return s.bus
}

// RunMacro executes one user macro script against the module.
func (s *Service) RunMacro(ctx context.Context, script string) error {
	if s == nil || s.macros == nil {
		return fmt.Errorf("service is not configured")
	}
	return s.macros.Run(ctx, script)
}

// Close releases the built-in settings store if the module opened one.
func (s *Service) Close() error {
	if s == nil || s.owned == nil {
		return nil
	}
	return s.owned.Close()
}
