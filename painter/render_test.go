package painter_test

import (
	"image/color"
	"testing"

	"github.com/roman-mazur/interactive-canvas/painter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterize_FillsWholeArea(t *testing.T) {
	canvas := painter.NewColorCanvas(painter.Blue)
	var fr painter.FillRect
	canvas.Borrow(func(c *painter.ColorCanvas) { fr = c.Draw(8, 6) })

	img, err := painter.Rasterize(fr, 8, 6)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	want := color.RGBA{B: 0xff, A: 0xff}
	for _, p := range [][2]int{{1, 1}, {4, 3}, {6, 4}} {
		assert.Equal(t, want, img.RGBAAt(p[0], p[1]), "pixel %v", p)
	}
}

func TestRasterize_InvalidSize(t *testing.T) {
	_, err := painter.Rasterize(painter.FillRect{}, 0, 10)
	assert.Error(t, err)
}

func TestSolidBrush_RGBA(t *testing.T) {
	r, g, b, a := painter.Green.Brush().RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0, 0xffff}, []uint32{r, g, b, a})
}
