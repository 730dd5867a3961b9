package theory

import (
	"errors"
	"fmt"
	"strings"
)

// PitchClass is a semitone offset from A. Values outside [0,12) are allowed
// while shifting; Normalize before display or comparison.
type PitchClass int

// Canonical pitch classes
const (
	A PitchClass = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

// ErrUnknownNote is returned by Parse for names missing from the alias table
var ErrUnknownNote = errors.New("unknown note name")

var noteNames = [12]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}

// aliases maps every accepted spelling to its canonical value.
// B# and E# have no real sharp, so they are defined as the following natural.
var aliases = map[string]PitchClass{
	"A":  A,
	"A#": ASharp,
	"Bb": ASharp,
	"B":  B,
	"B#": C,
	"Cb": B,
	"C":  C,
	"C#": CSharp,
	"Db": CSharp,
	"D":  D,
	"D#": DSharp,
	"Eb": DSharp,
	"E":  E,
	"E#": F,
	"Fb": E,
	"F":  F,
	"F#": FSharp,
	"Gb": FSharp,
	"G":  G,
	"G#": GSharp,
	"Ab": GSharp,
}

// Normalize wraps n into [0,12), also for negative n
func Normalize(n int) PitchClass {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return PitchClass(m)
}

// Normalize returns p wrapped into [0,12)
func (p PitchClass) Normalize() PitchClass {
	return Normalize(int(p))
}

// Shift returns p moved by the given number of semitones, unwrapped
func (p PitchClass) Shift(semitones int) PitchClass {
	return p + PitchClass(semitones)
}

// RelativeMinor returns the root of the relative minor key (three semitones down)
func (p PitchClass) RelativeMinor() PitchClass {
	return p.Shift(-3).Normalize()
}

// String returns the canonical sharp name
func (p PitchClass) String() string {
	return noteNames[p.Normalize()]
}

// Parse resolves a note name such as "F", "bb" or "C#" to its pitch class.
// The letter is case-insensitive; "s" is accepted as a sharp sign.
func Parse(name string) (PitchClass, error) {
	key := strings.TrimSpace(name)
	if key == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownNote)
	}
	key = strings.ToUpper(key[:1]) + strings.ReplaceAll(key[1:], "s", "#")
	pc, ok := aliases[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
	}
	return pc, nil
}

// MustParse is Parse for compile-time constants; it panics on unknown names
func MustParse(name string) PitchClass {
	pc, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return pc
}

// FromMIDI returns the pitch class of a MIDI note number (69 = A4)
func FromMIDI(note uint8) PitchClass {
	return Normalize(int(note) - 69)
}
