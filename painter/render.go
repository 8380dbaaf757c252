package painter

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// SolidBrush is a single color with channels in [0, 1].
type SolidBrush struct {
	R, G, B, A float64
}

// RGBA implements color.Color, so a brush can be passed to screen.Texture.Fill.
func (b SolidBrush) RGBA() (r, g, bl, a uint32) {
	return color.NRGBA64{
		R: channel(b.R),
		G: channel(b.G),
		B: channel(b.B),
		A: channel(b.A),
	}.RGBA()
}

func channel(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint16(v*0xffff + 0.5)
}

// FillRect is the drawing produced by a canvas: a rectangle path filled with
// a solid brush.
type FillRect struct {
	X, Y, W, H float64
	Brush      SolidBrush
}

// Rasterize executes the drawing on a width x height surface and returns
// the resulting pixels.
func Rasterize(fr FillRect, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("painter: invalid area size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	// Шлях: прямокутник від (X, Y) розміром W x H, правило заповнення - winding.
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.DrawRectangle(fr.X, fr.Y, fr.W, fr.H)
	dc.SetRGBA(fr.Brush.R, fr.Brush.G, fr.Brush.B, fr.Brush.A)
	if err := dc.Fill(); err != nil {
		return nil, errors.Wrap(err, "painter: fill canvas path")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return img, nil
}
