package lang

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/roman-mazur/interactive-canvas/painter"
)

// Poster accepts operations for the canvas loop.
type Poster interface {
	Post(op painter.Operation)
}

// QueryTimeout bounds how long GET /color waits for the loop to answer.
var QueryTimeout = time.Second

// HttpHandler creates the control server handler: POST / posts commands
// to the loop, GET /color reports the current canvas color.
func HttpHandler(loop Poster, accessLog io.Writer) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", commandsHandler(loop)).Methods(http.MethodPost)
	r.HandleFunc("/color", colorHandler(loop)).Methods(http.MethodGet)

	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(r)
	if accessLog != nil {
		h = handlers.LoggingHandler(accessLog, h)
	}
	return h
}

func commandsHandler(loop Poster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		ops, err := ParseCommands(r.Body)
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			// Погані рядки пропускаємо, решту виконуємо.
			for _, problem := range syntaxErr.Problems {
				log.Printf("HTTP Handler: Error parsing command %s", problem)
			}
		} else if err != nil {
			log.Printf("HTTP Handler: Error reading request body: %v", err)
			http.Error(w, "Error reading request body", http.StatusInternalServerError)
			return
		}

		for _, op := range ops {
			loop.Post(op)
		}

		log.Printf("HTTP Handler: Successfully processed %d operations", len(ops))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Commands processed\n"))
	}
}

func colorHandler(loop Poster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reply := make(chan painter.Color, 1)
		loop.Post(painter.Query{Reply: reply})

		select {
		case c := <-reply:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(c.String() + "\n"))
		case <-time.After(QueryTimeout):
			http.Error(w, "canvas loop did not answer", http.StatusGatewayTimeout)
		case <-r.Context().Done():
		}
	}
}
