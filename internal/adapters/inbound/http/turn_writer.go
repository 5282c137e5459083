package http

import (
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
)

var _ domain.TurnWriter = (*flushingTurnWriter)(nil)

var (
	errResponseStarted    = errors.New("response already started")
	errResponseNotStarted = errors.New("response not started")
)

// flushingTurnWriter writes a chat turn response and flushes after every chunk
// so nothing is buffered between the backend and the client.
type flushingTurnWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	started bool
}

func newFlushingTurnWriter(w http.ResponseWriter) (*flushingTurnWriter, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}
	return &flushingTurnWriter{w: w, flusher: flusher}, true
}

func (tw *flushingTurnWriter) Begin(statusCode int, contentType string) error {
	if tw.started {
		return errResponseStarted
	}
	tw.started = true

	h := tw.w.Header()
	h.Set("Content-Type", contentType)
	h.Set("Cache-Control", "no-cache")
	h.Set("X-Accel-Buffering", "no")
	h.Set("X-Content-Type-Options", "nosniff")
	tw.w.WriteHeader(statusCode)
	tw.flusher.Flush()
	return nil
}

func (tw *flushingTurnWriter) Write(chunk []byte) error {
	if !tw.started {
		return errResponseNotStarted
	}
	if _, err := tw.w.Write(chunk); err != nil {
		return err
	}
	tw.flusher.Flush()
	return nil
}
