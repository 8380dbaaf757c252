// cmd/canvas/main.go

package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gogpu/gg"

	"github.com/roman-mazur/interactive-canvas/config"
	"github.com/roman-mazur/interactive-canvas/painter"
	"github.com/roman-mazur/interactive-canvas/painter/lang"
	"github.com/roman-mazur/interactive-canvas/ui"

	"golang.org/x/exp/shiny/screen"
)

func main() {
	cfg, err := config.FromArgs(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if cfg.Debug {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	log.Println("Starting Interactive Canvas...")

	visualizer := &ui.Visualizer{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	canvas := painter.NewColorCanvas(painter.Red)
	area := painter.NewLoop(visualizer, canvas, cfg.Width, cfg.Height)
	visualizer.Loop = area

	// Застосунок тримає власне посилання на той самий canvas: змінюємо колір
	// напряму (без сповіщення) і підключаємо слухача, що перемальовує область.
	canvas.Borrow(func(c *painter.ColorCanvas) {
		c.SetColor(cfg.Color())
		c.SetOnChanged(func(c *painter.ColorCanvas, a painter.Area) {
			a.QueueRedrawAll()
		})
	})

	if cfg.Addr != "" {
		go func() {
			log.Printf("Starting control server on %s", cfg.Addr)
			if err := http.ListenAndServe(cfg.Addr, lang.HttpHandler(area, os.Stderr)); err != nil {
				log.Printf("Control server stopped: %v", err)
			}
		}()
	}

	visualizer.StartLoopAndRunUI = func(s screen.Screen) error {
		return area.Start(s)
	}

	if err := visualizer.Main(); err != nil {
		log.Fatalf("Couldn't initialize UI: %v", err)
	}

	log.Println("Interactive Canvas closed.")
}
