// painter/loop.go

package painter

import (
	"image"
	"log"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/exp/shiny/screen"
)

// Receiver defines an interface for components that can receive and display textures.
type Receiver interface {
	Update(t screen.Texture)
}

// MessageQueue defines a thread-safe queue for operations.
type MessageQueue struct {
	mu  sync.Mutex
	ops []Operation
	ch  chan struct{} // Сигнал про наявність нових операцій
}

// NewMessageQueue creates a new message queue.
func NewMessageQueue() *MessageQueue {
	return &MessageQueue{
		// Буфер розміром 1: один сигнал може чекати, Push ніколи не блокується.
		ch: make(chan struct{}, 1),
	}
}

// Push adds an operation to the queue and signals availability.
func (mq *MessageQueue) Push(op Operation) {
	mq.mu.Lock()
	mq.ops = append(mq.ops, op)
	mq.mu.Unlock()

	select {
	case mq.ch <- struct{}{}:
	default:
	}
}

// Pull retrieves all operations currently in the queue and clears it.
func (mq *MessageQueue) Pull() []Operation {
	mq.mu.Lock()
	ops := mq.ops
	mq.ops = nil
	mq.mu.Unlock()
	return ops
}

// Wait returns a channel that signals when new operations might be available.
func (mq *MessageQueue) Wait() <-chan struct{} {
	return mq.ch
}

// Loop is the canvas area widget. Its goroutine is the only place where
// toolkit callbacks (draw, press) run, one operation at a time, each under
// a borrow of the shared canvas.
type Loop struct {
	Receiver Receiver      // Хто показує готову текстуру (ui.Visualizer)
	Mq       *MessageQueue // Черга операцій
	canvas   *Shared
	state    *State

	stop     chan struct{}
	stopped  chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

// NewLoop creates the canvas area for the shared canvas with the given size in pixels.
func NewLoop(r Receiver, canvas *Shared, width, height int) *Loop {
	l := &Loop{
		Receiver: r,
		Mq:       NewMessageQueue(),
		canvas:   canvas,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	l.state = &State{
		Area:   l,
		Width:  width,
		Height: height,
	}
	return l
}

// Canvas returns the shared canvas handled by the loop.
func (l *Loop) Canvas() *Shared {
	return l.canvas
}

// QueueRedrawAll requests a repaint of the whole area. It is safe to call
// from inside an operation, including from a change listener.
func (l *Loop) QueueRedrawAll() {
	l.Post(UpdateOp{})
}

// Start allocates the area texture and runs the event processing goroutine.
func (l *Loop) Start(s screen.Screen) error {
	size := image.Pt(l.state.Width, l.state.Height)
	texture, err := s.NewTexture(size)
	if err != nil {
		return errors.Wrap(err, "painter: create area texture")
	}
	buffer, err := s.NewBuffer(size)
	if err != nil {
		texture.Release()
		return errors.Wrap(err, "painter: create area buffer")
	}
	l.state.Buffer = buffer
	log.Printf("Loop.Start: area %dx%d, initial color %v", size.X, size.Y, l.canvas.Color())

	l.started.Store(true)
	go func() {
		defer close(l.stopped)
		defer func() {
			log.Println("Loop goroutine: Releasing texture and buffer...")
			texture.Release()
			buffer.Release()
		}()

		for {
			select {
			case <-l.stop:
				log.Println("Loop goroutine: Stop signal received, terminating.")
				return
			case <-l.Mq.Wait():
				if l.process(l.Mq.Pull(), texture) {
					if l.Receiver != nil {
						l.Receiver.Update(texture)
					} else {
						log.Println("Loop goroutine: Error - Receiver is nil.")
					}
				}
			}
		}
	}()

	// Перше малювання області.
	l.QueueRedrawAll()
	return nil
}

func (l *Loop) process(ops []Operation, t screen.Texture) (needsUpdate bool) {
	for _, op := range ops {
		l.canvas.Borrow(func(c *ColorCanvas) {
			l.state.Canvas = c
			defer func() { l.state.Canvas = nil }()
			if op.Do(l.state, t) {
				needsUpdate = true
			}
		})
	}
	return needsUpdate
}

// Post adds an operation to the message queue for processing.
// This is the entry point for the UI and for application code.
func (l *Loop) Post(op Operation) {
	if l.Mq == nil {
		log.Println("Error: Loop.Post called but MessageQueue (Mq) is nil.")
		return
	}
	l.Mq.Push(op)
}

// Stop signals the event loop goroutine to terminate and waits for it.
// It may be called more than once, and also when Start failed or was never
// called.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
		if !l.started.Load() {
			return
		}
		<-l.stopped
		log.Println("Loop.Stop: Goroutine confirmed stopped.")
	})
}
