package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/PixPMusic/gopher-fretboard/internal/render"
)

// ============ BOARD VIEW WIDGET ============

// BoardView paints the last presented scene, scaled to fit the widget
type BoardView struct {
	widget.BaseWidget
	scene render.Scene
}

// NewBoardView creates an empty board view
func NewBoardView() *BoardView {
	v := &BoardView{}
	v.ExtendBaseWidget(v)
	return v
}

// SetScene replaces the displayed scene and repaints
func (v *BoardView) SetScene(scene render.Scene) {
	v.scene = scene
	v.Refresh()
}

// Scene returns the displayed scene
func (v *BoardView) Scene() render.Scene {
	return v.scene
}

func (v *BoardView) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{view: v}
	r.build(v.Size())
	return r
}

type boardRenderer struct {
	view    *BoardView
	objects []fyne.CanvasObject
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.build(size)
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 160)
}

func (r *boardRenderer) Refresh() {
	r.build(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Destroy() {}

// build turns every visible shape into a canvas object positioned for size
func (r *boardRenderer) build(size fyne.Size) {
	scene := r.view.scene
	vp := render.NewViewport(scene.Bounds(), float64(size.Width), float64(size.Height), scene.AspectLocked)

	objects := make([]fyne.CanvasObject, 0, len(scene.Shapes))
	for _, sh := range scene.Shapes {
		if !sh.Visible() {
			continue
		}
		switch sh.Kind {
		case render.KindLine:
			line := canvas.NewLine(sh.Color)
			line.StrokeWidth = float32(sh.Width)
			line.Position1 = pixel(vp, sh.From)
			line.Position2 = pixel(vp, sh.To)
			objects = append(objects, line)

		case render.KindRect:
			rect := canvas.NewRectangle(sh.Color)
			// world origin is the bottom-left corner, pixels grow down
			topLeft := pixel(vp, render.Point{X: sh.Origin.X, Y: sh.Origin.Y + sh.Size.H})
			rect.Move(topLeft)
			rect.Resize(fyne.NewSize(float32(vp.ScaleX(sh.Size.W)), float32(vp.ScaleY(sh.Size.H))))
			objects = append(objects, rect)

		case render.KindCircle:
			circle := canvas.NewCircle(sh.Color)
			center := pixel(vp, sh.Center)
			rx := float32(vp.ScaleX(sh.Radius))
			ry := float32(vp.ScaleY(sh.Radius))
			circle.Position1 = fyne.NewPos(center.X-rx, center.Y-ry)
			circle.Position2 = fyne.NewPos(center.X+rx, center.Y+ry)
			objects = append(objects, circle)
		}
	}
	r.objects = objects
}

func pixel(vp render.Viewport, p render.Point) fyne.Position {
	x, y := vp.ToPixel(p)
	return fyne.NewPos(float32(x), float32(y))
}
