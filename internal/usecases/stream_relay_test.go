package usecases

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// scriptedBody returns its chunks one Read at a time, then err.
type scriptedBody struct {
	chunks [][]byte
	err    error
	closed bool
}

func (b *scriptedBody) Read(p []byte) (int, error) {
	if len(b.chunks) == 0 {
		return 0, b.err
	}
	n := copy(p, b.chunks[0])
	b.chunks = b.chunks[1:]
	return n, nil
}

func (b *scriptedBody) Close() error {
	b.closed = true
	return nil
}

func TestStreamingRelayImpl_SingleFrame(t *testing.T) {
	w := &recordingTurnWriter{}
	relay := NewStreamingRelayImpl(nil, log.New(io.Discard, "", 0), time.Second)

	err := relay.SingleFrame(context.Background(), w, domain.RelayEvent{
		Type:       domain.RelayEventType_ToolResult,
		StatusCode: http.StatusOK,
		Payload: domain.RelayPayload{
			Status:  domain.ToolResultStatus_Success,
			Message: "Note created.",
			Tool:    "create_note",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.statusCode)
	assert.Equal(t, EventStreamContentType, w.contentType)
	assert.Equal(t,
		"event: tool_result\ndata: {\"status\":\"success\",\"message\":\"Note created.\",\"tool\":\"create_note\"}\n\n",
		w.body.String(),
	)
	assert.Equal(t, 1, w.writes)
}

func TestStreamingRelayImpl_Passthrough(t *testing.T) {
	endpoint := domain.BackendEndpoint{Kind: domain.BackendKind_Public, BaseURL: "http://public"}
	req := domain.BackendChatRequest{Model: "m", Messages: domain.ChatTurn{{Role: domain.ChatRole_User, Content: "hi"}}}

	tests := map[string]struct {
		stream         func() (domain.GenerationStream, error)
		writer         *recordingTurnWriter
		expectedErr    error
		expectedStatus int
		expectedType   string
		expectedBody   string
		expectedWrites int
	}{
		"chunks-forwarded-in-order": {
			stream: func() (domain.GenerationStream, error) {
				return domain.GenerationStream{
					ContentType: "text/plain; charset=utf-8",
					Body:        &scriptedBody{chunks: [][]byte{[]byte("Hal"), []byte("lo "), []byte("Welt")}, err: io.EOF},
				}, nil
			},
			writer:         &recordingTurnWriter{},
			expectedStatus: http.StatusOK,
			expectedType:   "text/plain; charset=utf-8",
			expectedBody:   "Hallo Welt",
			expectedWrites: 3,
		},
		"upstream-content-type-kept": {
			stream: func() (domain.GenerationStream, error) {
				return domain.GenerationStream{
					ContentType: "application/x-ndjson",
					Body:        io.NopCloser(strings.NewReader("{\"a\":1}\n")),
				}, nil
			},
			writer:         &recordingTurnWriter{},
			expectedStatus: http.StatusOK,
			expectedType:   "application/x-ndjson",
			expectedBody:   "{\"a\":1}\n",
			expectedWrites: 1,
		},
		"missing-content-type-defaulted": {
			stream: func() (domain.GenerationStream, error) {
				return domain.GenerationStream{Body: io.NopCloser(strings.NewReader("x"))}, nil
			},
			writer:         &recordingTurnWriter{},
			expectedStatus: http.StatusOK,
			expectedType:   DefaultStreamContentType,
			expectedBody:   "x",
			expectedWrites: 1,
		},
		"open-failure-becomes-error-frame": {
			stream: func() (domain.GenerationStream, error) {
				return domain.GenerationStream{}, errors.New("connection refused")
			},
			writer:         &recordingTurnWriter{},
			expectedErr:    ErrGenerationFailed,
			expectedStatus: http.StatusBadGateway,
			expectedType:   EventStreamContentType,
			expectedBody:   "event: error\ndata: {\"status\":\"error\",\"message\":\"The language model could not generate a response.\",\"category\":\"generation_failed\"}\n\n",
			expectedWrites: 1,
		},
		"read-failure-before-first-byte": {
			stream: func() (domain.GenerationStream, error) {
				return domain.GenerationStream{Body: &scriptedBody{err: errors.New("reset by peer")}}, nil
			},
			writer:         &recordingTurnWriter{},
			expectedErr:    ErrGenerationFailed,
			expectedStatus: http.StatusBadGateway,
			expectedType:   EventStreamContentType,
			expectedWrites: 1,
		},
		"mid-stream-failure-truncates": {
			stream: func() (domain.GenerationStream, error) {
				return domain.GenerationStream{
					ContentType: "text/plain",
					Body:        &scriptedBody{chunks: [][]byte{[]byte("partial")}, err: errors.New("reset by peer")},
				}, nil
			},
			writer:         &recordingTurnWriter{},
			expectedErr:    ErrStreamInterrupted,
			expectedStatus: http.StatusOK,
			expectedType:   "text/plain",
			expectedBody:   "partial",
			expectedWrites: 1,
		},
		"client-write-failure": {
			stream: func() (domain.GenerationStream, error) {
				return domain.GenerationStream{
					ContentType: "text/plain",
					Body:        &scriptedBody{chunks: [][]byte{[]byte("a"), []byte("b")}, err: io.EOF},
				}, nil
			},
			writer:         &recordingTurnWriter{failWrite: errors.New("broken pipe")},
			expectedErr:    ErrStreamInterrupted,
			expectedStatus: http.StatusOK,
			expectedType:   "text/plain",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			backend := domain.NewMockInferenceBackend(t)
			stream, streamErr := tt.stream()
			backend.EXPECT().ChatStream(mock.Anything, "http://public", req).Return(stream, streamErr)

			relay := NewStreamingRelayImpl(backend, log.New(io.Discard, "", 0), time.Minute)
			err := relay.Passthrough(context.Background(), tt.writer, endpoint, req)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStatus, tt.writer.statusCode)
			assert.Equal(t, tt.expectedType, tt.writer.contentType)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, tt.writer.body.String())
			}
			assert.Equal(t, tt.expectedWrites, tt.writer.writes)
			if body, ok := stream.Body.(*scriptedBody); ok {
				assert.True(t, body.closed)
			}
		})
	}
}

// blockingBody blocks until its context is cancelled, like an idle upstream.
type blockingBody struct {
	ctx    context.Context
	sent   bool
	closed chan struct{}
}

func (b *blockingBody) Read(p []byte) (int, error) {
	if !b.sent {
		b.sent = true
		return copy(p, "first"), nil
	}
	<-b.ctx.Done()
	return 0, b.ctx.Err()
}

func (b *blockingBody) Close() error {
	close(b.closed)
	return nil
}

func TestStreamingRelayImpl_Passthrough_clientDisconnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var logs bytes.Buffer

	backend := domain.NewMockInferenceBackend(t)
	body := &blockingBody{closed: make(chan struct{})}
	backend.EXPECT().ChatStream(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(streamCtx context.Context, _ string, _ domain.BackendChatRequest) (domain.GenerationStream, error) {
			body.ctx = streamCtx
			return domain.GenerationStream{ContentType: "text/plain", Body: body}, nil
		})

	w := &recordingTurnWriter{}
	relay := NewStreamingRelayImpl(backend, log.New(&logs, "", 0), time.Minute)

	done := make(chan error, 1)
	go func() {
		done <- relay.Passthrough(ctx, w, domain.BackendEndpoint{BaseURL: "http://local"}, domain.BackendChatRequest{})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("passthrough did not stop after client disconnect")
	}
	<-body.closed
	assert.Contains(t, logs.String(), "client disconnected")
}
