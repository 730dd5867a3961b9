// Package geometry computes where fret wires sit along the board.
//
// Spacing follows the usual luthier rule: each fret takes 1/17.817 of the
// string length remaining past the previous one, which approximates the
// twelfth-root-of-two ratio between neighbouring semitones.
// See http://www.buildyourguitar.com/resources/tips/fretdist.htm
package geometry

const (
	// ScaleLength is the visual length of the board, not a physical measure
	ScaleLength = 25.0

	// DecayDivisor is the empirical fret spacing divisor
	DecayDivisor = 17.817

	// OpenLaneWidth is the width of the synthetic lane in front of the nut
	// that holds open-string dots. It is not part of the spacing formula.
	OpenLaneWidth = 0.6

	// XScale stretches positions horizontally so the board fits a screen
	XScale = 4.0
)

// Geometry holds the x position of every line drawn across the board.
// Lines[0] is the edge of the open-string lane, Lines[1] is the nut and
// Lines[i+1] is fret wire i.
type Geometry struct {
	FretCount int
	Lines     []float64
}

// Recompute returns the line positions for fretCount frets.
// fretCount frets need fretCount+1 wires plus the open-lane edge, so the
// result has fretCount+2 entries. Callers clamp fretCount to at least 1.
func Recompute(fretCount int) Geometry {
	lines := make([]float64, 0, fretCount+2)

	remaining := ScaleLength
	fretLength := 0.0
	x := 0.0

	for i := 0; i < fretCount+2; i++ {
		x += fretLength * XScale
		lines = append(lines, x)

		if i == 0 {
			fretLength = OpenLaneWidth
			continue
		}
		fretLength = remaining / DecayDivisor
		remaining -= fretLength
	}

	return Geometry{FretCount: fretCount, Lines: lines}
}

// LineCount returns how many fret lines are drawn
func (g Geometry) LineCount() int {
	return len(g.Lines)
}

// Span returns the start and end x of fret f, where fret 0 is the open lane
func (g Geometry) Span(f int) (start, end float64) {
	return g.Lines[f], g.Lines[f+1]
}

// Center returns the x midpoint of fret f
func (g Geometry) Center(f int) float64 {
	start, end := g.Span(f)
	return (start + end) * 0.5
}

// Length returns the x position of the last line
func (g Geometry) Length() float64 {
	if len(g.Lines) == 0 {
		return 0
	}
	return g.Lines[len(g.Lines)-1]
}
