package controller

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Event is a discrete state change requested by the user
type Event int

const (
	ToggleDiatonic Event = iota
	ToggleBlue
	ToggleHarmonicMinor
	RootUp
	RootDown
	FretsDecrease
	FretsIncrease
)

var eventNames = map[Event]string{
	ToggleDiatonic:      "toggle-diatonic",
	ToggleBlue:          "toggle-blue",
	ToggleHarmonicMinor: "toggle-harmonic-minor",
	RootUp:              "root-up",
	RootDown:            "root-down",
	FretsDecrease:       "frets-decrease",
	FretsIncrease:       "frets-increase",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// ParseEvent resolves an action name such as "root-up"
func ParseEvent(action string) (Event, error) {
	for ev, name := range eventNames {
		if name == action {
			return ev, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", action)
}

// KeyBinding binds a key name to an action. An empty action unbinds the key.
type KeyBinding struct {
	Key    string `yaml:"key"`
	Action string `yaml:"action"`
}

// Keymap maps normalized key names to events
type Keymap map[string]Event

//go:embed keybindings.yml
var defaultKeyBindings []byte

// DefaultKeyBindings returns the built-in bindings
func DefaultKeyBindings() []KeyBinding {
	var bindings []KeyBinding
	dec := yaml.NewDecoder(bytes.NewReader(defaultKeyBindings))
	dec.KnownFields(true)
	if err := dec.Decode(&bindings); err != nil {
		panic(fmt.Errorf("failed to unmarshal default keybindings: %w", err))
	}
	return bindings
}

// NormalizeKey lowercases and trims a key name, so "Up" and "up" match
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NewKeymap builds a keymap from the defaults followed by extra bindings.
// Later bindings for the same key win.
func NewKeymap(extra ...KeyBinding) (Keymap, error) {
	km := Keymap{}
	for _, kb := range append(DefaultKeyBindings(), extra...) {
		key := NormalizeKey(kb.Key)
		if key == "" {
			return nil, fmt.Errorf("keybinding for %q has no key", kb.Action)
		}
		if kb.Action == "" {
			delete(km, key)
			continue
		}
		ev, err := ParseEvent(kb.Action)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", kb.Key, err)
		}
		km[key] = ev
	}
	return km, nil
}

// Lookup returns the event bound to key, if any
func (km Keymap) Lookup(key string) (Event, bool) {
	ev, ok := km[NormalizeKey(key)]
	return ev, ok
}
