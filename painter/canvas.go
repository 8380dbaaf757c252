package painter

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrAlreadyBorrowed is returned (or raised as a panic) when the canvas is
// borrowed for mutation while another borrow is still outstanding.
var ErrAlreadyBorrowed = errors.New("painter: canvas is already borrowed")

// Color is the fill color of the canvas.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// Next returns the color that follows c in the Red -> Green -> Blue cycle.
func (c Color) Next() Color {
	switch c {
	case Red:
		return Green
	case Green:
		return Blue
	default:
		return Red
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Brush maps the color to an opaque solid brush.
func (c Color) Brush() SolidBrush {
	switch c {
	case Green:
		return SolidBrush{R: 0, G: 1, B: 0, A: 1}
	case Blue:
		return SolidBrush{R: 0, G: 0, B: 1, A: 1}
	default:
		return SolidBrush{R: 1, G: 0, B: 0, A: 1}
	}
}

// ParseColor converts a color name ("red", "green", "blue") into a Color.
func ParseColor(name string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	}
	return Red, errors.Errorf("painter: unknown color %q", name)
}

// Area is the widget hosting a canvas. The toolkit repaints it on request.
type Area interface {
	QueueRedrawAll()
}

// ChangedFunc is notified after the canvas color was changed by user input.
type ChangedFunc func(c *ColorCanvas, a Area)

// ColorCanvas is the draw and input handler of a canvas area: a box filled
// with one color that advances on every press.
type ColorCanvas struct {
	color     Color
	onChanged ChangedFunc
}

// Color returns the current fill color.
func (c *ColorCanvas) Color() Color {
	return c.color
}

// SetColor changes the color without notifying the change listener.
func (c *ColorCanvas) SetColor(color Color) {
	c.color = color
}

// SetOnChanged installs the change listener, replacing the previous one.
// A nil fn removes it, except from inside the running listener: there nil
// leaves the slot empty and RaiseChanged restores the listener, so only a
// replacement sticks.
func (c *ColorCanvas) SetOnChanged(fn ChangedFunc) {
	c.onChanged = fn
}

// Draw describes how to paint an area of the given size: a single rectangle
// covering all of it, filled with the current color.
func (c *ColorCanvas) Draw(width, height float64) FillRect {
	return FillRect{
		X:     0,
		Y:     0,
		W:     width,
		H:     height,
		Brush: c.color.Brush(),
	}
}

// HandlePress advances the color and notifies the change listener.
func (c *ColorCanvas) HandlePress(a Area) {
	c.color = c.color.Next()
	c.RaiseChanged(a)
}

// RaiseChanged invokes the change listener with the canvas itself.
//
// The listener is taken out of its slot while it runs, so a nested
// RaiseChanged from inside the listener does nothing. Afterwards it is put
// back only if the slot is still empty: a replacement installed by the
// listener wins.
func (c *ColorCanvas) RaiseChanged(a Area) {
	if c.onChanged == nil {
		return
	}
	f := c.onChanged
	c.onChanged = nil
	f(c, a)
	if c.onChanged == nil {
		c.onChanged = f
	}
}

// Shared is a handle to a ColorCanvas held by both the canvas widget and
// application code. Access goes through Borrow, which allows one mutable
// borrower at a time.
type Shared struct {
	borrowed atomic.Bool
	canvas   ColorCanvas
}

// NewColorCanvas creates a canvas with the initial color and no listener.
func NewColorCanvas(initial Color) *Shared {
	return &Shared{canvas: ColorCanvas{color: initial}}
}

// TryBorrow runs fn with exclusive access to the canvas. It fails with
// ErrAlreadyBorrowed when another borrow is in progress.
func (s *Shared) TryBorrow(fn func(c *ColorCanvas)) error {
	if !s.borrowed.CompareAndSwap(false, true) {
		return ErrAlreadyBorrowed
	}
	defer s.borrowed.Store(false)
	fn(&s.canvas)
	return nil
}

// Borrow is like TryBorrow but panics when the canvas is already borrowed.
func (s *Shared) Borrow(fn func(c *ColorCanvas)) {
	if err := s.TryBorrow(fn); err != nil {
		panic(err)
	}
}

// Color borrows the canvas to read its current color.
func (s *Shared) Color() (color Color) {
	s.Borrow(func(c *ColorCanvas) {
		color = c.color
	})
	return color
}
