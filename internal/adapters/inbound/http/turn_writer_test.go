package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nonFlushingWriter struct {
	http.ResponseWriter
}

func TestFlushingTurnWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	tw, ok := newFlushingTurnWriter(rec)
	require.True(t, ok)

	assert.ErrorIs(t, tw.Write([]byte("early")), errResponseNotStarted)

	require.NoError(t, tw.Begin(http.StatusBadGateway, "text/event-stream"))
	assert.ErrorIs(t, tw.Begin(http.StatusOK, "text/plain"), errResponseStarted)

	require.NoError(t, tw.Write([]byte("event: error\n")))
	require.NoError(t, tw.Write([]byte("data: {}\n\n")))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))
	assert.Equal(t, "event: error\ndata: {}\n\n", rec.Body.String())
	assert.True(t, rec.Flushed)
}

func TestNewFlushingTurnWriter_RequiresFlusher(t *testing.T) {
	_, ok := newFlushingTurnWriter(nonFlushingWriter{httptest.NewRecorder()})
	assert.False(t, ok)
}
