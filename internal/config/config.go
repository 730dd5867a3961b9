package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/PixPMusic/gopher-fretboard/internal/controller"
	"github.com/PixPMusic/gopher-fretboard/internal/theory"
)

// Config holds the startup settings. It is only ever read; nothing in the
// application writes it back.
type Config struct {
	LogLevel slog.Level `yaml:"log_level"`

	Board  BoardConfig  `yaml:"board"`
	MIDI   MIDIConfig   `yaml:"midi"`
	Window WindowConfig `yaml:"window"`

	// Tunings are the available presets; CurrentTuning is a preset ID or name
	Tunings       []theory.TuningPreset `yaml:"tunings"`
	CurrentTuning string                `yaml:"current_tuning"`

	// KeyBindings are applied on top of the built-in bindings
	KeyBindings []controller.KeyBinding `yaml:"keybindings"`
}

// BoardConfig holds the initial board state
type BoardConfig struct {
	Root          string `yaml:"root"`
	Frets         int    `yaml:"frets"`
	Pentatonic    bool   `yaml:"pentatonic"`
	BlueNote      bool   `yaml:"blue_note"`
	OtherDiatonic bool   `yaml:"other_diatonic"`
	HarmonicMinor bool   `yaml:"harmonic_minor"`
}

// Validate validates the board configuration
func (c *BoardConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required, validation.By(validNote)),
		validation.Field(&c.Frets, validation.Required, validation.Min(1), validation.Max(48)),
	)
}

// RootPitch returns the configured root as a pitch class
func (c *BoardConfig) RootPitch() (theory.PitchClass, error) {
	return theory.Parse(c.Root)
}

// MIDIConfig selects the MIDI input whose note-on events change the root.
// An empty InPort disables MIDI.
type MIDIConfig struct {
	InPort string `yaml:"in_port"`
}

// WindowConfig holds window and snapshot dimensions in pixels
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate validates the window configuration
func (c *WindowConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(200)),
		validation.Field(&c.Height, validation.Required, validation.Min(150)),
	)
}

// Validate validates the whole configuration
func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	if len(c.Tunings) == 0 {
		return errors.New("tunings: at least one preset is required")
	}
	for i := range c.Tunings {
		t := &c.Tunings[i]
		if err := validation.ValidateStruct(t,
			validation.Field(&t.Name, validation.Required),
			validation.Field(&t.Strings, validation.Required, validation.Each(validation.By(validNote))),
		); err != nil {
			return fmt.Errorf("tunings[%d]: %w", i, err)
		}
	}
	if c.GetCurrentTuning() == nil {
		return fmt.Errorf("current_tuning: no preset matches %q", c.CurrentTuning)
	}
	if _, err := controller.NewKeymap(c.KeyBindings...); err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}
	return nil
}

func validNote(value interface{}) error {
	name, _ := value.(string)
	if name == "" {
		return nil
	}
	_, err := theory.Parse(name)
	return err
}

// NewDefaultConfig returns the built-in defaults: standard guitar tuning,
// F root, 24 frets
func NewDefaultConfig() *Config {
	standard := theory.StandardTuning()
	return &Config{
		LogLevel: slog.LevelInfo,
		Board: BoardConfig{
			Root:          "F",
			Frets:         24,
			Pentatonic:    true,
			OtherDiatonic: true,
		},
		Window: WindowConfig{
			Width:  1200,
			Height: 420,
		},
		Tunings:       []theory.TuningPreset{standard},
		CurrentTuning: standard.ID,
	}
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-fretboard"), nil
}

// ConfigPath returns the full path to the default config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, or at ConfigPath when path is empty.
// A missing file yields the defaults. ${VAR} references are expanded
// before decoding and the result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := Parse([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML over cfg. Unknown fields are rejected. User presets
// are added to the built-in ones; presets without an ID get one.
func Parse(data []byte, cfg *Config) error {
	builtin := cfg.Tunings

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	cfg.Tunings = nil
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		cfg.Tunings = builtin
		return err
	}

	for i := range cfg.Tunings {
		if cfg.Tunings[i].ID == "" {
			cfg.Tunings[i].ID = theory.NewTuningPreset(cfg.Tunings[i].Name).ID
		}
	}
	cfg.Tunings = append(builtin, cfg.Tunings...)
	return nil
}

// GetCurrentTuning returns the preset matching CurrentTuning by ID, then by
// case-insensitive name. An empty CurrentTuning selects the first preset.
func (c *Config) GetCurrentTuning() *theory.TuningPreset {
	if c.CurrentTuning == "" && len(c.Tunings) > 0 {
		return &c.Tunings[0]
	}
	for i := range c.Tunings {
		if c.Tunings[i].ID == c.CurrentTuning {
			return &c.Tunings[i]
		}
	}
	for i := range c.Tunings {
		if strings.EqualFold(c.Tunings[i].Name, c.CurrentTuning) {
			return &c.Tunings[i]
		}
	}
	return nil
}
