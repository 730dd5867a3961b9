package fretboard

import (
	"image/color"

	"github.com/PixPMusic/gopher-fretboard/internal/render"
)

// ready reports whether strings have been registered, logging when not
func (b *Fretboard) ready(step string) bool {
	if len(b.strings) > 0 {
		return true
	}
	b.logger.Warn("no strings registered, skipping draw", "step", step)
	return false
}

// stringY returns the vertical offset of string s.
// n strings split the board into n+1 parts.
func (b *Fretboard) stringY(s int) float64 {
	return b.spacing * float64(s+1)
}

// Draw emits frets, markers, strings, dots and the title, in that order.
// It does not clear or present; that is the caller's job.
func (b *Fretboard) Draw(r render.Renderer) {
	if !b.ready("draw") {
		return
	}

	b.DrawFrets(r)
	b.DrawFretMarkers(r)
	b.DrawStrings(r)
	b.DrawDots(r)

	r.SetTitle(b.Title())
}

// DrawFrets draws one vertical line per geometry line. The open-lane edge
// gets zero width so it still counts toward the board bounds.
func (b *Fretboard) DrawFrets(r render.Renderer) {
	if !b.ready("frets") {
		return
	}

	for i, x := range b.geometry.Lines {
		width := fretWidth
		if i == 0 {
			width = 0
		}
		r.DrawLine(render.Point{X: x, Y: b.bottom}, render.Point{X: x, Y: b.top}, width, fretColor, 1)
	}
}

// DrawStrings draws a line per string plus faint top and bottom edges
func (b *Fretboard) DrawStrings(r render.Renderer) {
	if !b.ready("strings") {
		return
	}

	end := b.geometry.Length()
	for s := range b.strings {
		y := b.stringY(s)
		r.DrawLine(render.Point{X: 0, Y: y}, render.Point{X: end, Y: y}, stringWidth, color.Black, 1)
	}

	r.DrawLine(render.Point{X: 0, Y: b.bottom}, render.Point{X: end, Y: b.bottom}, stringWidth, color.Black, edgeAlpha)
	r.DrawLine(render.Point{X: 0, Y: b.top}, render.Point{X: end, Y: b.top}, stringWidth, color.Black, edgeAlpha)
}

// markerKind returns whether fret f carries a single or double inlay
func markerKind(f int) (single, double bool) {
	if f == 0 {
		return false, false
	}
	switch f % 12 {
	case 3, 5, 7, 9:
		return true, false
	case 0:
		return false, true
	}
	return false, false
}

// DrawFretMarkers draws the inlays and a reference dot below the board
func (b *Fretboard) DrawFretMarkers(r render.Renderer) {
	if !b.ready("markers") {
		return
	}

	// open lane plus every fret
	for f := 0; f <= b.Frets(); f++ {
		single, double := markerKind(f)
		if !single && !double {
			continue
		}

		start, end := b.geometry.Span(f)
		length := end - start

		if double {
			r.DrawRect(
				render.Point{X: start + length*0.2, Y: YScale * 0.05},
				render.Size{W: length * 0.6, H: YScale * 0.9},
				markerColor, markerAlpha)
		} else {
			r.DrawRect(
				render.Point{X: start + length*0.05, Y: YScale * 0.45},
				render.Size{W: length * 0.9, H: YScale * 0.1},
				markerColor, markerAlpha)
		}

		y := -(YScale / float64(len(b.strings))) * 0.5
		r.DrawCircle(render.Point{X: start + length*0.5, Y: y}, markerRadius, color.Black, markerAlpha)
	}
}

// DrawDots draws a coloured dot on every position the overlays highlight
func (b *Fretboard) DrawDots(r render.Renderer) {
	if !b.ready("dots") {
		return
	}

	for s := range b.strings {
		y := b.stringY(s)
		for f := 0; f <= b.Frets(); f++ {
			c, ok := b.Classify(s, f).Color()
			if !ok {
				continue
			}
			r.DrawCircle(render.Point{X: b.geometry.Center(f), Y: y}, dotRadius, c, 1)
		}
	}
}
