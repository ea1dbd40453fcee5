// Package hostfakes provides lightweight in-memory fakes for the host
// collaborators consumed by the override module.
package hostfakes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/louisbranch/masquerade/internal/host"
	"github.com/louisbranch/masquerade/internal/settings"
	"github.com/louisbranch/masquerade/internal/telemetry"
)

// SettingsStore is an in-memory settings.Store fake. SetCalls counts
// persistence writes so tests can assert the no-I/O paths.
type SettingsStore struct {
	Values   map[string]json.RawMessage
	SetCalls int
	SetErr   error
}

// NewSettingsStore constructs a SettingsStore fake with initialized state.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{Values: make(map[string]json.RawMessage)}
}

func (s *SettingsStore) Get(_ context.Context, namespace, key string) (json.RawMessage, error) {
	value, ok := s.Values[namespace+"."+key]
	if !ok {
		return nil, settings.ErrNotFound
	}
	return value, nil
}

func (s *SettingsStore) Set(_ context.Context, namespace, key string, value json.RawMessage) error {
	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Values[namespace+"."+key] = value
	return nil
}

// Persisted returns the stored raw value for namespace/key, or nil.
func (s *SettingsStore) Persisted(namespace, key string) json.RawMessage {
	return s.Values[namespace+"."+key]
}

// Loader is a texture.Loader fake backed by a path map. Loads counts
// underlying load calls so tests can assert memoization.
type Loader struct {
	Images map[string]image.Image
	Loads  int
	Err    error
}

// NewLoader constructs a Loader fake with initialized state.
func NewLoader() *Loader {
	return &Loader{Images: make(map[string]image.Image)}
}

func (l *Loader) Load(_ context.Context, path string) (image.Image, error) {
	l.Loads++
	if l.Err != nil {
		return nil, l.Err
	}
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", path, errors.New("no such image"))
	}
	return img, nil
}

// Image returns a distinct 1x1 image usable as a stand-in texture.
func Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

// Token is a host.Token fake recording every texture swap.
type Token struct {
	Actor    string
	Current  image.Image
	SetCalls int
}

func (t *Token) ActorID() string { return t.Actor }

func (t *Token) SetTexture(img image.Image) {
	t.SetCalls++
	t.Current = img
}

// Element is a host.Element fake recording image attribute swaps keyed by
// selector.
type Element struct {
	Attrs map[string]string
}

// NewElement constructs an Element fake with initialized state.
func NewElement() *Element {
	return &Element{Attrs: make(map[string]string)}
}

func (e *Element) SetImageAttr(selector, path string) {
	e.Attrs[selector] = path
}

// ChatMessage is a host.ChatMessage fake.
type ChatMessage struct {
	Actor    string
	Image    string
	SetCalls int
}

func (m *ChatMessage) ActorID() string     { return m.Actor }
func (m *ChatMessage) StoredImage() string { return m.Image }

func (m *ChatMessage) SetStoredImage(path string) {
	m.SetCalls++
	m.Image = path
}

// Notifier records user-facing warnings and infos.
type Notifier struct {
	Warnings []string
	Infos    []string
}

func (n *Notifier) Warn(msg string) { n.Warnings = append(n.Warnings, msg) }
func (n *Notifier) Info(msg string) { n.Infos = append(n.Infos, msg) }

// FilePicker returns a fixed path or error.
type FilePicker struct {
	Path string
	Err  error
}

func (p *FilePicker) PickImage(_ context.Context) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Path, nil
}

// Selection exposes an optional controlled token.
type Selection struct {
	Token host.Token
}

func (s *Selection) ControlledToken() (host.Token, bool) {
	if s.Token == nil {
		return nil, false
	}
	return s.Token, true
}

// TelemetryStore records emitted telemetry events.
type TelemetryStore struct {
	Events []telemetry.Event
}

func (s *TelemetryStore) AppendTelemetryEvent(_ context.Context, evt telemetry.Event) error {
	s.Events = append(s.Events, evt)
	return nil
}
