package overlay

import (
	"image/color"

	"github.com/PixPMusic/gopher-fretboard/internal/theory"
)

// Category is the highlight class of a fretted position
type Category int

const (
	None Category = iota
	Root
	RelativeMinor
	Pentatonic
	BlueNote
	OtherDiatonic
	HarmonicMinorSeventh
)

func (c Category) String() string {
	switch c {
	case Root:
		return "root"
	case RelativeMinor:
		return "relative-minor"
	case Pentatonic:
		return "pentatonic"
	case BlueNote:
		return "blue-note"
	case OtherDiatonic:
		return "other-diatonic"
	case HarmonicMinorSeventh:
		return "harmonic-minor-seventh"
	default:
		return "none"
	}
}

// Config holds the toggleable overlays. Root and relative minor are always shown.
type Config struct {
	Pentatonic    bool
	BlueNote      bool
	OtherDiatonic bool
	HarmonicMinor bool
}

// DefaultConfig returns the overlays shown at startup
func DefaultConfig() Config {
	return Config{
		Pentatonic:    true,
		BlueNote:      false,
		OtherDiatonic: true,
		HarmonicMinor: false,
	}
}

// Degree returns the interval of fret on a string tuned to open, relative to root
func Degree(open theory.PitchClass, fret int, root theory.PitchClass) theory.PitchClass {
	return theory.Normalize(fret + int(open) - int(root))
}

// Classify returns the overlay category for a position.
//
// Rules are checked in a fixed order and a later match replaces an earlier
// one. Root (0) and relative minor (9) never appear in the toggleable sets,
// so they cannot collide with them.
func Classify(open theory.PitchClass, fret int, root theory.PitchClass, cfg Config) Category {
	degree := Degree(open, fret, root)
	cat := None

	// Major root
	if degree == 0 {
		cat = Root
	}

	// Relative minor
	if degree == 9 {
		cat = RelativeMinor
	}

	// Major/minor pentatonic, 0 and 9 already covered
	if cfg.Pentatonic && (degree == 2 || degree == 4 || degree == 7) {
		cat = Pentatonic
	}

	// Flat five of the relative minor
	if cfg.BlueNote && degree == 3 {
		cat = BlueNote
	}

	// Perfect 4th and major 7th
	if cfg.OtherDiatonic && (degree == 5 || degree == 11) {
		cat = OtherDiatonic
	}

	// Raised 7th of the harmonic minor
	if cfg.HarmonicMinor && degree == 8 {
		cat = HarmonicMinorSeventh
	}

	return cat
}

var (
	orange = color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	gray   = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	green  = color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
)

// Color returns the dot fill for a category; None has no color
func (c Category) Color() (color.Color, bool) {
	switch c {
	case Root:
		return green, true
	case RelativeMinor:
		return color.NRGBA{R: 0xff, A: 0xff}, true
	case Pentatonic:
		return color.Black, true
	case BlueNote:
		return color.NRGBA{B: 0xff, A: 0xff}, true
	case OtherDiatonic:
		return gray, true
	case HarmonicMinorSeventh:
		return orange, true
	default:
		return nil, false
	}
}
