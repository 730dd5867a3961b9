package theory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// String is a single instrument string, identified by its open pitch class.
// It is not mutated after creation.
type String struct {
	Open PitchClass
}

// NewString creates a string tuned to open
func NewString(open PitchClass) String {
	return String{Open: open}
}

// StandardTuningName is the name of the built-in six-string guitar preset
const StandardTuningName = "Standard"

// TuningPreset is a named list of open-string note names, lowest string first
type TuningPreset struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Strings []string `yaml:"strings"`
}

// NewTuningPreset creates a preset with a generated ID
func NewTuningPreset(name string, notes ...string) TuningPreset {
	return TuningPreset{
		ID:      uuid.New().String(),
		Name:    name,
		Strings: notes,
	}
}

// StandardTuning returns the E A D G B E guitar preset
func StandardTuning() TuningPreset {
	return NewTuningPreset(StandardTuningName, "E", "A", "D", "G", "B", "E")
}

// Build resolves the preset's note names into strings
func (t TuningPreset) Build() ([]String, error) {
	strs := make([]String, 0, len(t.Strings))
	for i, name := range t.Strings {
		pc, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("tuning %q string %d: %w", t.Name, i+1, err)
		}
		strs = append(strs, NewString(pc))
	}
	return strs, nil
}

// Describe returns the note names joined by spaces, e.g. "E A D G B E"
func (t TuningPreset) Describe() string {
	return strings.Join(t.Strings, " ")
}
