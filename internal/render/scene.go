package render

import (
	"image/color"
	"math"
)

// ShapeKind tells backends which primitive a Shape holds
type ShapeKind int

const (
	KindLine ShapeKind = iota
	KindRect
	KindCircle
)

func (k ShapeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// Shape is one recorded primitive. Only the fields for its Kind are set.
type Shape struct {
	Kind  ShapeKind
	Color color.NRGBA // alpha already applied

	// KindLine
	From, To Point
	Width    float64

	// KindRect
	Origin Point
	Size   Size

	// KindCircle
	Center Point
	Radius float64
}

// Visible reports whether the shape paints anything. Zero-width lines still
// count toward the scene bounds.
func (s Shape) Visible() bool {
	if s.Color.A == 0 {
		return false
	}
	switch s.Kind {
	case KindLine:
		return s.Width > 0
	case KindRect:
		return s.Size.W > 0 && s.Size.H > 0
	case KindCircle:
		return s.Radius > 0
	}
	return false
}

// Bounds returns the world-space extent of the shape
func (s Shape) Bounds() Box {
	switch s.Kind {
	case KindLine:
		return Box{
			Min: Point{math.Min(s.From.X, s.To.X), math.Min(s.From.Y, s.To.Y)},
			Max: Point{math.Max(s.From.X, s.To.X), math.Max(s.From.Y, s.To.Y)},
		}
	case KindRect:
		return Box{
			Min: s.Origin,
			Max: Point{s.Origin.X + s.Size.W, s.Origin.Y + s.Size.H},
		}
	case KindCircle:
		return Box{
			Min: Point{s.Center.X - s.Radius, s.Center.Y - s.Radius},
			Max: Point{s.Center.X + s.Radius, s.Center.Y + s.Radius},
		}
	}
	return EmptyBox()
}

// Scene is a finished frame: shapes in paint order plus the title
type Scene struct {
	Title        string
	Shapes       []Shape
	AspectLocked bool
}

// Bounds returns the union of all shape bounds
func (s Scene) Bounds() Box {
	b := EmptyBox()
	for _, sh := range s.Shapes {
		b = b.Union(sh.Bounds())
	}
	return b
}

// Count returns how many shapes of kind k the scene holds
func (s Scene) Count(k ShapeKind) int {
	n := 0
	for _, sh := range s.Shapes {
		if sh.Kind == k {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the scene
func (s Scene) Clone() Scene {
	c := s
	c.Shapes = append([]Shape(nil), s.Shapes...)
	return c
}
