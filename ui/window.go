package ui

import (
	"image/color"
	"log"
	"sync"

	"github.com/roman-mazur/interactive-canvas/painter"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

// InitializationError reports that the native UI could not be brought up.
type InitializationError struct {
	Op  string
	Err error
}

func (e *InitializationError) Error() string {
	return "ui: initialization failed: " + e.Op + ": " + e.Err.Error()
}

func (e *InitializationError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause reach the underlying error.
func (e *InitializationError) Cause() error { return e.Err }

// Poster accepts operations for the canvas area.
type Poster interface {
	Post(op painter.Operation)
}

// Visualizer is the application window. Its only child is the canvas area,
// stretched over the whole window.
type Visualizer struct {
	Title         string
	Width, Height int
	Loop          Poster // Куди надсилати події від області

	mu sync.Mutex
	pw screen.Window  // The window handle
	tx screen.Texture // Остання текстура області
	sz size.Event     // Current window size

	// StartLoopAndRunUI is called inside driver.Main once the window exists.
	StartLoopAndRunUI func(s screen.Screen) error
}

// Update receives the painted area texture and schedules a repaint.
// It implements painter.Receiver.
func (v *Visualizer) Update(t screen.Texture) {
	if t == nil {
		log.Println("Visualizer.Update: Received nil texture, ignoring.")
		return
	}
	v.mu.Lock()
	v.tx = t
	pw := v.pw
	v.mu.Unlock()

	if pw != nil {
		pw.Send(paint.Event{})
	} else {
		log.Println("Visualizer.Update: Window handle (pw) is nil, cannot send paint event.")
	}
}

func (v *Visualizer) setWindow(w screen.Window) {
	v.mu.Lock()
	v.pw = w
	v.mu.Unlock()
}

// Main opens the window and runs the UI event loop until the window is
// closed. It returns an *InitializationError if the window or the canvas
// area could not be created.
func (v *Visualizer) Main() error {
	var initErr error

	driver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Title:  v.Title,
			Width:  v.Width,
			Height: v.Height,
		})
		if err != nil {
			initErr = &InitializationError{Op: "create window", Err: err}
			return
		}
		defer func() {
			log.Println("Releasing window resources...")
			w.Release()
		}()
		v.setWindow(w)

		if v.StartLoopAndRunUI != nil {
			if err := v.StartLoopAndRunUI(s); err != nil {
				initErr = &InitializationError{Op: "start canvas area", Err: err}
				return
			}
		} else {
			log.Println("Warning: Visualizer.StartLoopAndRunUI is nil, canvas area will not be painted.")
		}

		for {
			if v.handleEvent(w.NextEvent()) {
				return
			}
		}
	})

	log.Println("UI Main loop finished.")
	return initErr
}

// handleEvent processes one window event and reports whether the UI loop
// should stop.
func (v *Visualizer) handleEvent(evt interface{}) (done bool) {
	v.mu.Lock()
	pw := v.pw
	v.mu.Unlock()

	switch e := evt.(type) {
	case lifecycle.Event:
		if e.To == lifecycle.StageDead {
			log.Println("Lifecycle: StageDead - Exiting UI loop")
			return true
		}
		if e.Crosses(lifecycle.StageVisible) == lifecycle.CrossOn {
			pw.Send(paint.Event{})
		}

	case size.Event:
		log.Printf("Size Event: New size %+v", e)
		v.mu.Lock()
		v.sz = e
		v.mu.Unlock()
		pw.Send(paint.Event{})

	case paint.Event:
		v.mu.Lock()
		tx, sz := v.tx, v.sz
		v.mu.Unlock()
		if tx != nil {
			// Область розтягується на все вікно.
			pw.Scale(sz.Bounds(), tx, tx.Bounds(), screen.Src, nil)
		} else {
			pw.Fill(sz.Bounds(), color.Black, screen.Src)
		}
		pw.Publish()

	case mouse.Event:
		// Рахується лише натискання; рух і відпускання ігноруємо.
		if e.Direction != mouse.DirPress {
			return false
		}
		if v.Loop == nil {
			log.Println("Error: Visualizer.Loop is nil, cannot post mouse event.")
			return false
		}
		log.Printf("Mouse Event: %v press at (%.0f, %.0f)", e.Button, e.X, e.Y)
		v.Loop.Post(painter.Press{})

	case key.Event:
		if e.Code == key.CodeEscape && e.Direction == key.DirPress {
			log.Println("Key Event: Escape pressed - Exiting")
			return true
		}

	case error:
		log.Printf("System Error Event: %v", e)
	}
	return false
}
