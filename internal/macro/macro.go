// Package macro exposes the override store to user macro scripts.
//
// The host lets users bind small Lua scripts to hotbar slots. This package
// registers a `masquerade` table with setters and clearers operating on
// the currently controlled token, plus a file-picker helper. It is pure
// trigger glue: all state changes go through the override store.
package macro

import (
	"context"
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/louisbranch/masquerade/internal/host"
	"github.com/louisbranch/masquerade/internal/override"
)

// Selection exposes the token the user currently controls.
type Selection interface {
	ControlledToken() (host.Token, bool)
}

// FilePicker lets the user browse for an image path.
type FilePicker interface {
	PickImage(ctx context.Context) (string, error)
}

// Notifier shows user-facing notifications. Macro glue is the only place
// failures surface to the user; the reactive patchers stay silent.
type Notifier interface {
	Warn(msg string)
	Info(msg string)
}

// Bindings wires macro scripts to the override store.
type Bindings struct {
	overrides *override.Store
	selection Selection
	picker    FilePicker
	notifier  Notifier

	// ctx is the context of the in-flight Run call. The host executes
	// macros one at a time on its event loop.
	ctx context.Context
}

// NewBindings creates macro bindings over the given collaborators.
func NewBindings(overrides *override.Store, selection Selection, picker FilePicker, notifier Notifier) *Bindings {
	return &Bindings{
		overrides: overrides,
		selection: selection,
		picker:    picker,
		notifier:  notifier,
	}
}

// Run executes one macro script.
func (b *Bindings) Run(ctx context.Context, script string) error {
	if b == nil || b.overrides == nil {
		return fmt.Errorf("macro bindings are not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	state := lua.NewState()
	lua.OpenLibraries(state)
	b.register(state)

	b.ctx = ctx
	defer func() { b.ctx = nil }()

	if err := lua.LoadString(state, script); err != nil {
		return fmt.Errorf("load macro: %w", err)
	}
	if err := state.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run macro: %w", err)
	}
	return nil
}

func (b *Bindings) register(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "set", Function: b.luaSet},
		{Name: "clear", Function: b.luaClear},
		{Name: "pick", Function: b.luaPick},
	}, 0)
	state.SetGlobal("masquerade")
}

func (b *Bindings) luaSet(state *lua.State) int {
	path := lua.CheckString(state, 1)
	b.setForSelection(path)
	return 0
}

func (b *Bindings) luaClear(state *lua.State) int {
	token, ok := b.controlledActor()
	if !ok {
		return 0
	}
	if err := b.overrides.ClearActorOverride(b.ctx, token); err != nil {
		b.warnf("Could not restore actor artwork: %v", err)
		return 0
	}
	b.infof("Actor artwork restored.")
	return 0
}

func (b *Bindings) luaPick(state *lua.State) int {
	if b.picker == nil {
		b.warnf("No file picker is available.")
		return 0
	}
	path, err := b.picker.PickImage(b.ctx)
	if err != nil {
		b.warnf("No image selected.")
		return 0
	}
	b.setForSelection(path)
	return 0
}

func (b *Bindings) setForSelection(path string) {
	actorID, ok := b.controlledActor()
	if !ok {
		return
	}
	if err := b.overrides.SetActorOverride(b.ctx, actorID, path); err != nil {
		b.warnf("Could not replace actor artwork: %v", err)
		return
	}
	b.infof("Actor artwork replaced with %s.", path)
}

// controlledActor resolves the selected token to an actor id, warning the
// user when there is nothing usable selected.
func (b *Bindings) controlledActor() (string, bool) {
	if b.selection == nil {
		b.warnf("Select a token first.")
		return "", false
	}
	token, ok := b.selection.ControlledToken()
	if !ok {
		b.warnf("Select a token first.")
		return "", false
	}
	actorID := token.ActorID()
	if actorID == "" {
		b.warnf("The selected token has no actor.")
		return "", false
	}
	return actorID, true
}

func (b *Bindings) warnf(format string, args ...any) {
	if b.notifier == nil {
		return
	}
	b.notifier.Warn(fmt.Sprintf(format, args...))
}

func (b *Bindings) infof(format string, args ...any) {
	if b.notifier == nil {
		return
	}
	b.notifier.Info(fmt.Sprintf(format, args...))
}
