package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-fretboard/internal/fretboard"
	"github.com/PixPMusic/gopher-fretboard/internal/theory"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())

	tuning := cfg.GetCurrentTuning()
	require.NotNil(t, tuning)
	assert.Equal(t, theory.StandardTuningName, tuning.Name)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "F", cfg.Board.Root)
	assert.Equal(t, 24, cfg.Board.Frets)
}

func TestLoad_OverridesAndPresets(t *testing.T) {
	t.Setenv("FRET_ROOT", "Bb")
	path := writeConfig(t, `
log_level: debug
board:
  root: ${FRET_ROOT}
  frets: 12
  blue_note: true
tunings:
  - name: Drop D
    strings: [D, A, D, G, B, E]
current_tuning: drop d
keybindings:
  - { key: "space", action: "root-up" }
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Bb", cfg.Board.Root)
	assert.Equal(t, 12, cfg.Board.Frets)
	assert.True(t, cfg.Board.BlueNote)
	assert.True(t, cfg.Board.Pentatonic, "unset fields keep defaults")
	assert.Equal(t, "DEBUG", cfg.LogLevel.String())

	require.Len(t, cfg.Tunings, 2)
	tuning := cfg.GetCurrentTuning()
	require.NotNil(t, tuning)
	assert.Equal(t, "Drop D", tuning.Name)
	assert.NotEmpty(t, tuning.ID)
	assert.Len(t, cfg.KeyBindings, 1)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad root":      "board:\n  root: H\n",
		"zero frets":    "board:\n  frets: -2\n",
		"bad tuning":    "tunings:\n  - name: x\n    strings: [E, Z]\ncurrent_tuning: x\n",
		"no preset":     "current_tuning: lute\n",
		"unknown field": "colour: red\n",
		"bad action":    "keybindings:\n  - { key: q, action: quit }\n",
		"tiny window":   "window:\n  width: 10\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Len(t, cfg.Tunings, 1)
}

func TestGetCurrentTuning_ByID(t *testing.T) {
	cfg := NewDefaultConfig()
	extra := theory.NewTuningPreset("Open G", "D", "G", "D", "G", "B", "D")
	cfg.Tunings = append(cfg.Tunings, extra)
	cfg.CurrentTuning = extra.ID

	got := cfg.GetCurrentTuning()
	require.NotNil(t, got)
	assert.Equal(t, "Open G", got.Name)

	cfg.CurrentTuning = ""
	assert.Equal(t, theory.StandardTuningName, cfg.GetCurrentTuning().Name)
}

func TestBoardOptions(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Board.Root = "C"
	cfg.Board.Frets = 5
	cfg.Board.HarmonicMinor = true

	opts, err := cfg.BoardOptions()
	require.NoError(t, err)

	b := fretboard.New(opts...)
	assert.Equal(t, theory.C, b.Root())
	assert.Equal(t, 5, b.Frets())
	assert.Len(t, b.Strings(), 6)
	assert.True(t, b.Overlays().HarmonicMinor)
	assert.True(t, b.Overlays().Pentatonic)
}

func TestBoardOptions_BadRoot(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Board.Root = "X"
	_, err := cfg.BoardOptions()
	assert.ErrorIs(t, err, theory.ErrUnknownNote)
}
