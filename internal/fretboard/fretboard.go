package fretboard

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/PixPMusic/gopher-fretboard/internal/geometry"
	"github.com/PixPMusic/gopher-fretboard/internal/overlay"
	"github.com/PixPMusic/gopher-fretboard/internal/theory"
)

const (
	// YScale is the board height in world units
	YScale = 12.0

	// DefaultFrets is the fret count at startup
	DefaultFrets = 24

	fretWidth    = 2.5
	stringWidth  = 1.0
	edgeAlpha    = 0.5
	markerAlpha  = 0.2
	dotRadius    = 0.6
	markerRadius = 0.6
)

// DefaultRoot is the key shown at startup (F major / D minor)
var DefaultRoot = theory.F

var (
	fretColor   = color.NRGBA{R: 0x59, G: 0x59, B: 0x59, A: 0xff}
	markerColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// Fretboard owns the strings, fret geometry, overlays and current root.
// It is the only mutable state; drawing is a function of it.
type Fretboard struct {
	strings  []theory.String
	geometry geometry.Geometry
	overlays overlay.Config
	root     theory.PitchClass

	// layout, refreshed when strings are added
	spacing float64
	bottom  float64
	top     float64

	logger *slog.Logger
}

// Option configures a Fretboard
type Option func(*Fretboard)

// WithLogger sets the logger used for diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(b *Fretboard) { b.logger = l }
}

// WithRoot sets the starting root
func WithRoot(root theory.PitchClass) Option {
	return func(b *Fretboard) { b.root = root }
}

// WithFrets sets the starting fret count, clamped to at least 1
func WithFrets(n int) Option {
	return func(b *Fretboard) { b.geometry = geometry.Recompute(clampFrets(n)) }
}

// WithOverlays replaces the default overlay toggles
func WithOverlays(cfg overlay.Config) Option {
	return func(b *Fretboard) { b.overlays = cfg }
}

// WithStrings registers strings, lowest first
func WithStrings(strs ...theory.String) Option {
	return func(b *Fretboard) {
		for _, s := range strs {
			b.AddString(s)
		}
	}
}

// New creates an empty board with default root, frets and overlays.
// Strings are added with AddString or WithStrings.
func New(opts ...Option) *Fretboard {
	b := &Fretboard{
		geometry: geometry.Recompute(DefaultFrets),
		overlays: overlay.DefaultConfig(),
		root:     DefaultRoot,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewStandard creates a six-string guitar in standard tuning
func NewStandard(opts ...Option) *Fretboard {
	strs, _ := theory.StandardTuning().Build()
	return New(append([]Option{WithStrings(strs...)}, opts...)...)
}

// AddString registers a string above the ones already added
func (b *Fretboard) AddString(s theory.String) {
	b.strings = append(b.strings, s)

	b.spacing = YScale / float64(len(b.strings)+1)

	// Keep half a spacing between the outer strings and the board edge
	b.bottom = b.spacing / 2
	b.top = YScale - b.spacing/2
}

// Strings returns the registered strings, lowest first
func (b *Fretboard) Strings() []theory.String {
	return append([]theory.String(nil), b.strings...)
}

// Root returns the current root, unwrapped
func (b *Fretboard) Root() theory.PitchClass { return b.root }

// SetRoot replaces the root
func (b *Fretboard) SetRoot(root theory.PitchClass) { b.root = root }

// ShiftRoot moves the root by semitones. The stored value is not wrapped.
func (b *Fretboard) ShiftRoot(semitones int) { b.root = b.root.Shift(semitones) }

// Frets returns the current fret count
func (b *Fretboard) Frets() int { return b.geometry.FretCount }

// SetFrets changes the fret count, clamped to at least 1, and recomputes
// geometry when it changed
func (b *Fretboard) SetFrets(n int) {
	n = clampFrets(n)
	if n == b.geometry.FretCount {
		return
	}
	b.geometry = geometry.Recompute(n)
}

// Geometry returns the current fret line positions
func (b *Fretboard) Geometry() geometry.Geometry { return b.geometry }

// Overlays returns the overlay toggles
func (b *Fretboard) Overlays() overlay.Config { return b.overlays }

// UpdateOverlays applies fn to the overlay toggles
func (b *Fretboard) UpdateOverlays(fn func(*overlay.Config)) { fn(&b.overlays) }

// Classify returns the overlay category of fret on string s
func (b *Fretboard) Classify(s, fret int) overlay.Category {
	return overlay.Classify(b.strings[s].Open, fret, b.root, b.overlays)
}

// Title summarises the current key, fret count and toggles
func (b *Fretboard) Title() string {
	return fmt.Sprintf("Root = %sMaj/%sMin (up/down)  Frets=%d (left/right) \n Penta/Dia=%t (1) | Blue/Flat5=%t (2) | Harmonic Minor=%t (3)",
		b.root, b.root.RelativeMinor(), b.Frets(),
		b.overlays.OtherDiatonic, b.overlays.BlueNote, b.overlays.HarmonicMinor)
}

func clampFrets(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
