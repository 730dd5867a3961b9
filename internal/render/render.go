// Package render defines the drawing surface the fretboard paints onto.
//
// Coordinates are world units with y pointing up. Backends map them to
// pixels through a Viewport.
package render

import (
	"image/color"
	"math"
)

// Point is a position in world units
type Point struct {
	X, Y float64
}

// Size is a width and height in world units
type Size struct {
	W, H float64
}

// Renderer is implemented by anything that can present primitive shapes
type Renderer interface {
	DrawLine(p0, p1 Point, width float64, c color.Color, alpha float64)
	DrawRect(origin Point, size Size, c color.Color, alpha float64)
	DrawCircle(center Point, radius float64, fill color.Color, alpha float64)
	SetTitle(text string)

	// Clear drops everything drawn since the last Clear
	Clear()
	// ResetAspect locks x and y to the same scale for the next frame
	ResetAspect()
	// Present hands the finished frame to the display
	Present()
}

// Box is an axis-aligned bounding box in world units
type Box struct {
	Min, Max Point
}

// Empty reports whether b has not been extended by any point
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// EmptyBox returns a box that any Union will replace
func EmptyBox() Box {
	return Box{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}

// Union returns the smallest box containing b and o
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Width of the box
func (b Box) Width() float64 { return b.Max.X - b.Min.X }

// Height of the box
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// WithAlpha returns c with its alpha multiplied by alpha (0..1)
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}
