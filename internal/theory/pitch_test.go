package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_PeriodicInOctave(t *testing.T) {
	for n := -50; n <= 50; n++ {
		assert.Equal(t, Normalize(n), Normalize(n+12), "n=%d", n)
		got := Normalize(n)
		assert.True(t, got >= 0 && got < 12, "Normalize(%d) = %d out of range", n, got)
	}
}

func TestPitchClass_String(t *testing.T) {
	assert.Equal(t, "A", A.String())
	assert.Equal(t, "G#", GSharp.String())
	assert.Equal(t, "F", PitchClass(8+24).String())
	assert.Equal(t, "G#", PitchClass(-1).String())
}

func TestPitchClass_RelativeMinor(t *testing.T) {
	assert.Equal(t, D, F.RelativeMinor())
	assert.Equal(t, C, DSharp.RelativeMinor())
	assert.Equal(t, FSharp, A.RelativeMinor())
}

func TestParse_CanonicalTable(t *testing.T) {
	tests := map[string]PitchClass{
		"A": 0, "A#": 1, "Bb": 1, "B": 2, "B#": 3, "Cb": 2, "C": 3,
		"C#": 4, "Db": 4, "D": 5, "D#": 6, "Eb": 6, "E": 7, "E#": 8,
		"Fb": 7, "F": 8, "F#": 9, "Gb": 9, "G": 10, "G#": 11, "Ab": 11,
	}
	for name, want := range tests {
		got, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestParse_IrregularSharpsMatchFollowingNatural(t *testing.T) {
	assert.Equal(t, MustParse("C"), MustParse("B#"))
	assert.Equal(t, MustParse("F"), MustParse("E#"))
}

func TestParse_LooseSpelling(t *testing.T) {
	assert.Equal(t, ASharp, MustParse("bb"))
	assert.Equal(t, FSharp, MustParse("fs"))
	assert.Equal(t, CSharp, MustParse(" c# "))
}

func TestParse_Unknown(t *testing.T) {
	for _, name := range []string{"", "H", "Cx", "E##"} {
		_, err := Parse(name)
		assert.ErrorIs(t, err, ErrUnknownNote, name)
	}
}

func TestFromMIDI(t *testing.T) {
	assert.Equal(t, A, FromMIDI(69))
	assert.Equal(t, C, FromMIDI(60))
	assert.Equal(t, E, FromMIDI(40))
	assert.Equal(t, A, FromMIDI(21))
}

func TestStandardTuning_Build(t *testing.T) {
	preset := StandardTuning()
	assert.NotEmpty(t, preset.ID)
	assert.Equal(t, "E A D G B E", preset.Describe())

	strs, err := preset.Build()
	require.NoError(t, err)
	want := []PitchClass{E, A, D, G, B, E}
	require.Len(t, strs, len(want))
	for i, s := range strs {
		assert.Equal(t, want[i], s.Open, "string %d", i)
	}
}

func TestTuningPreset_BuildRejectsUnknownNote(t *testing.T) {
	_, err := NewTuningPreset("broken", "E", "Q").Build()
	assert.ErrorIs(t, err, ErrUnknownNote)
	assert.Contains(t, err.Error(), "string 2")
}
