package render

import "image/color"

// Surface is a Renderer that records primitives into a Scene.
// Present publishes the scene to OnPresent; both the fyne window and the
// PNG snapshot are fed this way.
type Surface struct {
	pending Scene
	last    Scene

	// Frames counts Present calls
	Frames int
	// Clears counts Clear calls
	Clears int

	OnPresent func(Scene)
}

// NewSurface creates an empty surface. onPresent may be nil.
func NewSurface(onPresent func(Scene)) *Surface {
	return &Surface{OnPresent: onPresent}
}

func (s *Surface) DrawLine(p0, p1 Point, width float64, c color.Color, alpha float64) {
	s.pending.Shapes = append(s.pending.Shapes, Shape{
		Kind:  KindLine,
		Color: WithAlpha(c, alpha),
		From:  p0,
		To:    p1,
		Width: width,
	})
}

func (s *Surface) DrawRect(origin Point, size Size, c color.Color, alpha float64) {
	s.pending.Shapes = append(s.pending.Shapes, Shape{
		Kind:   KindRect,
		Color:  WithAlpha(c, alpha),
		Origin: origin,
		Size:   size,
	})
}

func (s *Surface) DrawCircle(center Point, radius float64, fill color.Color, alpha float64) {
	s.pending.Shapes = append(s.pending.Shapes, Shape{
		Kind:   KindCircle,
		Color:  WithAlpha(fill, alpha),
		Center: center,
		Radius: radius,
	})
}

func (s *Surface) SetTitle(text string) {
	s.pending.Title = text
}

func (s *Surface) Clear() {
	s.Clears++
	s.pending.Shapes = s.pending.Shapes[:0]
}

func (s *Surface) ResetAspect() {
	s.pending.AspectLocked = true
}

func (s *Surface) Present() {
	s.Frames++
	s.last = s.pending.Clone()
	if s.OnPresent != nil {
		s.OnPresent(s.last)
	}
}

// Pending returns what has been drawn since the last Clear
func (s *Surface) Pending() Scene {
	return s.pending.Clone()
}

// Last returns the most recently presented scene
func (s *Surface) Last() Scene {
	return s.last
}
