package painter

import (
	"image"
	"image/draw"
	"log"

	"golang.org/x/exp/shiny/screen"
)

// Operation defines an interface for commands executed on the canvas state.
// It returns true if the texture was updated and requires a screen update.
type Operation interface {
	Do(s *State, t screen.Texture) (updated bool)
}

// State is what an operation sees while the loop holds the canvas borrow.
type State struct {
	Canvas *ColorCanvas  // Handler, позичений на час виконання операції
	Area   Area          // Віджет, який хостить canvas
	Width  int           // Ширина області в пікселях
	Height int           // Висота області в пікселях
	Buffer screen.Buffer // Буфер для завантаження пікселів у текстуру (може бути nil)
}

// OperationList groups multiple operations. Useful for batch processing.
type OperationList []Operation

func (ol OperationList) Do(s *State, t screen.Texture) (updated bool) {
	for _, o := range ol {
		if o.Do(s, t) {
			updated = true
		}
	}
	return updated
}

// UpdateOp paints the canvas into the texture and asks for the texture to be
// shown. This is where all actual drawing happens.
type UpdateOp struct{}

func (op UpdateOp) Do(s *State, t screen.Texture) bool {
	fr := s.Canvas.Draw(float64(s.Width), float64(s.Height))

	// Без буфера просто заливаємо текстуру кольором пензля.
	if s.Buffer == nil || s.Buffer.RGBA() == nil {
		t.Fill(t.Bounds(), fr.Brush, screen.Src)
		return true
	}

	img, err := Rasterize(fr, s.Width, s.Height)
	if err != nil {
		log.Printf("UpdateOp.Do: %v", err)
		return false
	}
	dst := s.Buffer.RGBA()
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
	t.Upload(image.Point{}, s.Buffer, s.Buffer.Bounds())
	return true
}

// Press is a pointer press delivered to the canvas area.
type Press struct{}

func (op Press) Do(s *State, t screen.Texture) bool {
	s.Canvas.HandlePress(s.Area)
	log.Printf("Press.Do: color is now %v", s.Canvas.Color())
	return false // Перемальовку запитує слухач змін
}

// SetColor changes the canvas color on behalf of the application.
// The change listener is not notified.
type SetColor struct {
	Color Color
}

func (op SetColor) Do(s *State, t screen.Texture) bool {
	s.Canvas.SetColor(op.Color)
	return false
}

// Query reports the current canvas color on Reply. Reply should be buffered;
// the loop never blocks on it.
type Query struct {
	Reply chan<- Color
}

func (op Query) Do(s *State, t screen.Texture) bool {
	select {
	case op.Reply <- s.Canvas.Color():
	default:
		log.Println("Query.Do: reply channel is not ready, dropping answer")
	}
	return false
}
