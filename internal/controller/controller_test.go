package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-fretboard/internal/fretboard"
	"github.com/PixPMusic/gopher-fretboard/internal/render"
	"github.com/PixPMusic/gopher-fretboard/internal/theory"
)

func newTestController(opts ...fretboard.Option) (*Controller, *render.Surface) {
	s := render.NewSurface(nil)
	return New(fretboard.NewStandard(opts...), s), s
}

func TestHandleKey_Toggles(t *testing.T) {
	c, _ := newTestController()
	before := c.Board().Overlays()

	require.True(t, c.HandleKey("1"))
	require.True(t, c.HandleKey("2"))
	require.True(t, c.HandleKey("3"))

	after := c.Board().Overlays()
	assert.Equal(t, !before.OtherDiatonic, after.OtherDiatonic)
	assert.Equal(t, !before.BlueNote, after.BlueNote)
	assert.Equal(t, !before.HarmonicMinor, after.HarmonicMinor)
	assert.Equal(t, before.Pentatonic, after.Pentatonic)
}

func TestHandleKey_RootUpDownIsInverse(t *testing.T) {
	for start := -13; start <= 13; start++ {
		c, _ := newTestController(fretboard.WithRoot(theory.PitchClass(start)))
		c.HandleKey("up")
		c.HandleKey("down")
		assert.Equal(t, theory.Normalize(start), c.Board().Root().Normalize())

		c.HandleKey("down")
		c.HandleKey("up")
		assert.Equal(t, theory.Normalize(start), c.Board().Root().Normalize())
	}
}

func TestHandleKey_RootIsStoredUnwrapped(t *testing.T) {
	c, _ := newTestController(fretboard.WithRoot(theory.GSharp))
	c.HandleKey("up")
	assert.Equal(t, theory.PitchClass(12), c.Board().Root())
	assert.Equal(t, theory.A, c.Board().Root().Normalize())
}

func TestHandleKey_FretsDecreaseRecomputesGeometry(t *testing.T) {
	c, _ := newTestController()
	require.Equal(t, 24, c.Board().Frets())

	c.HandleKey("left")

	g := c.Board().Geometry()
	assert.Equal(t, 23, c.Board().Frets())
	require.Len(t, g.Lines, 25)
	assert.Equal(t, 0.0, g.Lines[0])
	for i := 1; i < len(g.Lines); i++ {
		assert.Greater(t, g.Lines[i], g.Lines[i-1])
	}
}

func TestHandleKey_FretsClampAtOne(t *testing.T) {
	c, _ := newTestController(fretboard.WithFrets(2))
	c.HandleKey("left")
	c.HandleKey("left")
	c.HandleKey("left")
	assert.Equal(t, 1, c.Board().Frets())

	c.HandleKey("right")
	assert.Equal(t, 2, c.Board().Frets())
	assert.Len(t, c.Board().Geometry().Lines, 4)
}

func TestHandleKey_EveryEventRedrawsOnce(t *testing.T) {
	c, s := newTestController()
	keys := []string{"1", "2", "3", "up", "down", "left", "right"}
	for i, k := range keys {
		require.True(t, c.HandleKey(k), k)
		assert.Equal(t, i+1, s.Frames, k)
		assert.Equal(t, i+1, s.Clears, k)
	}

	last := s.Last()
	assert.True(t, last.AspectLocked)
	assert.Equal(t, c.Board().Title(), last.Title)
	assert.NotEmpty(t, last.Shapes)
}

func TestHandleKey_RedrawReplacesPreviousFrame(t *testing.T) {
	c, s := newTestController()
	c.HandleKey("right")
	first := len(s.Last().Shapes)
	c.HandleKey("left")
	second := len(s.Last().Shapes)
	assert.Less(t, second, first)
}

func TestHandleKey_UnknownIgnored(t *testing.T) {
	c, s := newTestController()
	assert.False(t, c.HandleKey("q"))
	assert.False(t, c.HandleKey("4"))
	assert.Equal(t, 0, s.Frames)
}

func TestHandleKey_CaseInsensitive(t *testing.T) {
	c, _ := newTestController()
	assert.True(t, c.HandleKey("Up"))
	assert.Equal(t, theory.FSharp, c.Board().Root())
}

func TestHandleKey_BlueToggleLeavesDegreeEightEmpty(t *testing.T) {
	c, _ := newTestController(fretboard.WithRoot(theory.E))
	c.HandleKey("1") // diatonic off
	c.HandleKey("2") // blue on

	// low E string, fret 8 is degree 8
	assert.Equal(t, "none", c.Board().Classify(0, 8).String())
	assert.Equal(t, "blue-note", c.Board().Classify(0, 3).String())
}

func TestSetRoot_Redraws(t *testing.T) {
	changed := 0
	c, s := newTestController()
	c.OnChange = func() { changed++ }

	c.SetRoot(theory.C)
	assert.Equal(t, theory.C, c.Board().Root())
	assert.Equal(t, 1, s.Frames)
	assert.Equal(t, 1, changed)
	assert.Contains(t, s.Last().Title, "Root = CMaj/AMin")
}

func TestNoStrings_RedrawPresentsEmptyFrame(t *testing.T) {
	s := render.NewSurface(nil)
	c := New(fretboard.New(), s)
	assert.NotPanics(t, func() { c.HandleKey("up") })
	assert.Empty(t, s.Last().Shapes)
}
