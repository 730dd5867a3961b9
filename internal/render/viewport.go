package render

// Viewport maps world coordinates onto a pixel area. Pixel y grows downward.
type Viewport struct {
	World  Box
	Width  float64
	Height float64

	scaleX, scaleY float64
	offX, offY     float64
}

// DefaultMargin is the fraction of the world size added around the scene
const DefaultMargin = 0.03

// NewViewport fits world into a width×height pixel area with a margin.
// With aspect locked both axes share the smaller scale and the scene is
// centred; otherwise each axis stretches to fill.
func NewViewport(world Box, width, height float64, aspectLocked bool) Viewport {
	v := Viewport{World: world, Width: width, Height: height}
	if world.Empty() || width <= 0 || height <= 0 {
		v.scaleX, v.scaleY = 1, 1
		return v
	}

	padX := world.Width() * DefaultMargin
	padY := world.Height() * DefaultMargin
	w := world.Width() + 2*padX
	h := world.Height() + 2*padY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	v.scaleX = width / w
	v.scaleY = height / h
	if aspectLocked {
		s := v.scaleX
		if v.scaleY < s {
			s = v.scaleY
		}
		v.scaleX, v.scaleY = s, s
	}

	// Centre the padded world box in the pixel area.
	v.offX = (width-w*v.scaleX)/2 + padX*v.scaleX
	v.offY = (height-h*v.scaleY)/2 + padY*v.scaleY
	return v
}

// ToPixel converts a world point to pixel coordinates
func (v Viewport) ToPixel(p Point) (x, y float64) {
	x = v.offX + (p.X-v.World.Min.X)*v.scaleX
	y = v.Height - (v.offY + (p.Y-v.World.Min.Y)*v.scaleY)
	return x, y
}

// ScaleX converts a horizontal world length to pixels
func (v Viewport) ScaleX(d float64) float64 { return d * v.scaleX }

// ScaleY converts a vertical world length to pixels
func (v Viewport) ScaleY(d float64) float64 { return d * v.scaleY }
