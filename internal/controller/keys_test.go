package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyBindings(t *testing.T) {
	km, err := NewKeymap()
	require.NoError(t, err)

	want := map[string]Event{
		"1":     ToggleDiatonic,
		"2":     ToggleBlue,
		"3":     ToggleHarmonicMinor,
		"up":    RootUp,
		"down":  RootDown,
		"left":  FretsDecrease,
		"right": FretsIncrease,
	}
	assert.Equal(t, Keymap(want), km)
}

func TestNewKeymap_ExtraBindings(t *testing.T) {
	km, err := NewKeymap(
		KeyBinding{Key: "K", Action: "root-up"},
		KeyBinding{Key: "up", Action: ""},
	)
	require.NoError(t, err)

	ev, ok := km.Lookup("k")
	assert.True(t, ok)
	assert.Equal(t, RootUp, ev)

	_, ok = km.Lookup("up")
	assert.False(t, ok)
}

func TestNewKeymap_Errors(t *testing.T) {
	_, err := NewKeymap(KeyBinding{Key: "x", Action: "explode"})
	assert.ErrorContains(t, err, "unknown action")

	_, err = NewKeymap(KeyBinding{Key: " ", Action: "root-up"})
	assert.Error(t, err)
}

func TestEvent_NamesRoundTrip(t *testing.T) {
	for ev, name := range eventNames {
		got, err := ParseEvent(name)
		require.NoError(t, err)
		assert.Equal(t, ev, got)
		assert.Equal(t, name, ev.String())
	}
	assert.Equal(t, "event(99)", Event(99).String())
}
