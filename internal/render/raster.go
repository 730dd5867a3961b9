package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
)

const (
	titleFontSize = 14.0
	titleDPI      = 72.0
	titlePadding  = 6
	circleSteps   = 48
)

// Rasterize paints a scene onto a white width×height image.
// The title is set in Go Regular above the board.
func Rasterize(scene Scene, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	titleHeight, err := drawTitle(dst, scene.Title)
	if err != nil {
		return nil, err
	}

	vp := NewViewport(scene.Bounds(), float64(width), float64(height-titleHeight), scene.AspectLocked)
	top := float64(titleHeight)

	for _, sh := range scene.Shapes {
		if !sh.Visible() {
			continue
		}
		r := vector.NewRasterizer(width, height)
		r.DrawOp = draw.Over

		switch sh.Kind {
		case KindLine:
			x0, y0 := vp.ToPixel(sh.From)
			x1, y1 := vp.ToPixel(sh.To)
			strokeLine(r, x0, y0+top, x1, y1+top, sh.Width)
		case KindRect:
			x0, y0 := vp.ToPixel(sh.Origin)
			x1, y1 := vp.ToPixel(Point{sh.Origin.X + sh.Size.W, sh.Origin.Y + sh.Size.H})
			r.MoveTo(float32(x0), float32(y0+top))
			r.LineTo(float32(x1), float32(y0+top))
			r.LineTo(float32(x1), float32(y1+top))
			r.LineTo(float32(x0), float32(y1+top))
			r.ClosePath()
		case KindCircle:
			cx, cy := vp.ToPixel(sh.Center)
			fillCircle(r, cx, cy+top, vp.ScaleX(sh.Radius))
		}

		r.Draw(dst, dst.Bounds(), image.NewUniform(sh.Color), image.Point{})
	}

	return dst, nil
}

// strokeLine adds a line of the given pixel width as a filled quad
func strokeLine(r *vector.Rasterizer, x0, y0, x1, y1, width float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	r.MoveTo(float32(x0+nx), float32(y0+ny))
	r.LineTo(float32(x1+nx), float32(y1+ny))
	r.LineTo(float32(x1-nx), float32(y1-ny))
	r.LineTo(float32(x0-nx), float32(y0-ny))
	r.ClosePath()
}

func fillCircle(r *vector.Rasterizer, cx, cy, radius float64) {
	for i := 0; i <= circleSteps; i++ {
		a := 2 * math.Pi * float64(i) / circleSteps
		x := float32(cx + radius*math.Cos(a))
		y := float32(cy + radius*math.Sin(a))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.ClosePath()
}

// drawTitle sets each title line centred at the top of dst and returns the
// pixel height it used
func drawTitle(dst *image.RGBA, title string) (int, error) {
	if title == "" {
		return 0, nil
	}

	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return 0, fmt.Errorf("failed to parse title font: %w", err)
	}

	c := freetype.NewContext()
	c.SetFont(f)
	c.SetFontSize(titleFontSize)
	c.SetDPI(titleDPI)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.NewUniform(color.Black))

	face := truetype.NewFace(f, &truetype.Options{Size: titleFontSize, DPI: titleDPI})
	defer face.Close()

	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()
	ascent := metrics.Ascent.Ceil()

	y := titlePadding
	for _, line := range strings.Split(title, "\n") {
		line = strings.TrimSpace(line)

		textWidth := 0
		for _, ch := range line {
			if adv, ok := face.GlyphAdvance(ch); ok {
				textWidth += adv.Round()
			}
		}
		x := (dst.Bounds().Dx() - textWidth) / 2
		if x < 0 {
			x = 0
		}

		if _, err := c.DrawString(line, freetype.Pt(x, y+ascent)); err != nil {
			return 0, fmt.Errorf("failed to draw title: %w", err)
		}
		y += lineHeight
	}

	return y + titlePadding, nil
}

// WritePNG rasterizes scene and encodes it as PNG
func WritePNG(w io.Writer, scene Scene, width, height int) error {
	img, err := Rasterize(scene, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes a PNG snapshot of scene to path
func SavePNG(path string, scene Scene, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := WritePNG(f, scene, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
