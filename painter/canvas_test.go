package painter_test

import (
	"testing"

	"github.com/roman-mazur/interactive-canvas/painter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingArea рахує запити на перемальовку.
type countingArea struct {
	redraws int
}

func (a *countingArea) QueueRedrawAll() { a.redraws++ }

func TestColor_Next(t *testing.T) {
	assert.Equal(t, painter.Green, painter.Red.Next())
	assert.Equal(t, painter.Blue, painter.Green.Next())
	assert.Equal(t, painter.Red, painter.Blue.Next())
}

func TestColor_Brush(t *testing.T) {
	assert.Equal(t, painter.SolidBrush{R: 1, A: 1}, painter.Red.Brush())
	assert.Equal(t, painter.SolidBrush{G: 1, A: 1}, painter.Green.Brush())
	assert.Equal(t, painter.SolidBrush{B: 1, A: 1}, painter.Blue.Brush())
}

func TestParseColor(t *testing.T) {
	c, err := painter.ParseColor(" Blue ")
	require.NoError(t, err)
	assert.Equal(t, painter.Blue, c)

	_, err = painter.ParseColor("purple")
	assert.Error(t, err)
}

func TestColorCanvas_DrawAfterConstruct(t *testing.T) {
	for _, c := range []painter.Color{painter.Red, painter.Green, painter.Blue} {
		t.Run(c.String(), func(t *testing.T) {
			canvas := painter.NewColorCanvas(c)
			canvas.Borrow(func(cc *painter.ColorCanvas) {
				fr := cc.Draw(200, 100)
				assert.Equal(t, painter.FillRect{W: 200, H: 100, Brush: c.Brush()}, fr)
				// Повторне малювання без змін дає той самий результат.
				assert.Equal(t, fr, cc.Draw(200, 100))
			})
		})
	}
}

func TestColorCanvas_PressCycles(t *testing.T) {
	for _, initial := range []painter.Color{painter.Red, painter.Green, painter.Blue} {
		t.Run(initial.String(), func(t *testing.T) {
			area := &countingArea{}
			canvas := painter.NewColorCanvas(initial)

			expected := []painter.Color{initial.Next(), initial.Next().Next(), initial}
			canvas.Borrow(func(c *painter.ColorCanvas) {
				for i, want := range expected {
					c.HandlePress(area)
					assert.Equal(t, want, c.Color(), "after press %d", i+1)
				}
			})
			assert.Equal(t, 0, area.redraws, "no listener installed, nothing should be redrawn")
		})
	}
}

func TestColorCanvas_NotifiesOncePerPress(t *testing.T) {
	area := &countingArea{}
	canvas := painter.NewColorCanvas(painter.Red)

	calls := 0
	canvas.Borrow(func(c *painter.ColorCanvas) {
		c.SetOnChanged(func(c *painter.ColorCanvas, a painter.Area) {
			calls++
			a.QueueRedrawAll()
		})
		c.SetColor(painter.Blue)
		assert.Equal(t, 0, calls, "SetColor must not notify")

		c.HandlePress(area)
		assert.Equal(t, 1, calls)
		assert.Equal(t, painter.Red, c.Color())
		assert.Equal(t, painter.Red.Brush(), c.Draw(10, 10).Brush)

		c.HandlePress(area)
		assert.Equal(t, 2, calls)
	})
	assert.Equal(t, 2, area.redraws)
}

func TestColorCanvas_NestedRaiseIsNoop(t *testing.T) {
	area := &countingArea{}
	canvas := painter.NewColorCanvas(painter.Red)

	calls := 0
	canvas.Borrow(func(c *painter.ColorCanvas) {
		c.SetOnChanged(func(c *painter.ColorCanvas, a painter.Area) {
			calls++
			c.RaiseChanged(a)
		})
		c.HandlePress(area)
		assert.Equal(t, 1, calls)

		// Слухач не загубився після вкладеного виклику.
		c.RaiseChanged(area)
		assert.Equal(t, 2, calls)
	})
}

func TestColorCanvas_ListenerReplacementWins(t *testing.T) {
	canvas := painter.NewColorCanvas(painter.Red)

	var log []string
	second := func(c *painter.ColorCanvas, a painter.Area) { log = append(log, "second") }
	canvas.Borrow(func(c *painter.ColorCanvas) {
		c.SetOnChanged(func(c *painter.ColorCanvas, a painter.Area) {
			log = append(log, "first")
			c.SetOnChanged(second)
		})
		c.RaiseChanged(nil)
		c.RaiseChanged(nil)
		c.RaiseChanged(nil)
	})
	assert.Equal(t, []string{"first", "second", "second"}, log)
}

func TestColorCanvas_SelfClearIsRestored(t *testing.T) {
	canvas := painter.NewColorCanvas(painter.Red)

	calls := 0
	canvas.Borrow(func(c *painter.ColorCanvas) {
		c.SetOnChanged(func(c *painter.ColorCanvas, a painter.Area) {
			calls++
			c.SetOnChanged(nil)
		})
		c.RaiseChanged(nil)
		c.RaiseChanged(nil)
	})
	// Слот порожній після виклику, тому слухача повертають на місце.
	assert.Equal(t, 2, calls)

	// Поза слухачем nil справді прибирає його.
	canvas.Borrow(func(c *painter.ColorCanvas) {
		c.SetOnChanged(nil)
		c.RaiseChanged(nil)
	})
	assert.Equal(t, 2, calls)
}

func TestShared_BorrowIsExclusive(t *testing.T) {
	canvas := painter.NewColorCanvas(painter.Green)

	assert.PanicsWithError(t, painter.ErrAlreadyBorrowed.Error(), func() {
		canvas.Borrow(func(c *painter.ColorCanvas) {
			canvas.Borrow(func(c *painter.ColorCanvas) {})
		})
	})

	canvas.Borrow(func(c *painter.ColorCanvas) {
		err := canvas.TryBorrow(func(c *painter.ColorCanvas) {})
		assert.ErrorIs(t, err, painter.ErrAlreadyBorrowed)
	})

	// Після паніки позика знята.
	assert.Equal(t, painter.Green, canvas.Color())
}

func TestShared_ApplicationAndWidgetSeeSameState(t *testing.T) {
	canvas := painter.NewColorCanvas(painter.Red)
	widgetRef, appRef := canvas, canvas

	appRef.Borrow(func(c *painter.ColorCanvas) { c.SetColor(painter.Blue) })
	widgetRef.Borrow(func(c *painter.ColorCanvas) { c.HandlePress(&countingArea{}) })

	assert.Equal(t, painter.Red, appRef.Color())
}
