package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	// EventStreamContentType is the content type of synthesized single-frame responses.
	EventStreamContentType = "text/event-stream"
	// DefaultStreamContentType is used when the backend does not name one.
	DefaultStreamContentType = "text/plain; charset=utf-8"
	// StreamChunkSize is the read buffer size for relayed generation output.
	StreamChunkSize = 1024
)

var (
	// ErrGenerationFailed means the backend stream could not be opened.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrStreamInterrupted means the stream broke after bytes were sent to the client.
	ErrStreamInterrupted = errors.New("generation stream interrupted")
)

// StreamingRelay delivers a turn's response to the client.
type StreamingRelay interface {
	// SingleFrame writes exactly one synthesized event and ends the response.
	SingleFrame(ctx context.Context, w domain.TurnWriter, event domain.RelayEvent) error
	// Passthrough opens a streamed generation and forwards it chunk by chunk.
	Passthrough(ctx context.Context, w domain.TurnWriter, endpoint domain.BackendEndpoint, req domain.BackendChatRequest) error
}

// StreamingRelayImpl is the implementation of StreamingRelay.
type StreamingRelayImpl struct {
	backend domain.InferenceBackend
	logger  *log.Logger
	timeout time.Duration
}

// NewStreamingRelayImpl creates a new instance of StreamingRelayImpl.
func NewStreamingRelayImpl(backend domain.InferenceBackend, logger *log.Logger, timeout time.Duration) StreamingRelayImpl {
	return StreamingRelayImpl{
		backend: backend,
		logger:  logger,
		timeout: timeout,
	}
}

// SingleFrame encodes the event as one server-sent event.
func (s StreamingRelayImpl) SingleFrame(ctx context.Context, w domain.TurnWriter, event domain.RelayEvent) error {
	_, span := telemetry.Start(ctx)
	defer span.End()

	frame, err := EncodeRelayEvent(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if err := w.Begin(event.StatusCode, EventStreamContentType); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	err = w.Write(frame)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// EncodeRelayEvent renders a relay event as an SSE frame.
func EncodeRelayEvent(event domain.RelayEvent) ([]byte, error) {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode relay event: %w", err)
	}
	return fmt.Appendf(nil, "event: %s\ndata: %s\n\n", event.Type, data), nil
}

// Passthrough forwards the backend byte stream unmodified. Nothing is sent to
// the client until the first chunk arrives, so an upstream failure before that
// point is still reported as a single error frame.
func (s StreamingRelayImpl) Passthrough(ctx context.Context, w domain.TurnWriter, endpoint domain.BackendEndpoint, req domain.BackendChatRequest) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	genCtx, cancel := context.WithTimeout(spanCtx, s.timeout)
	defer cancel()

	stream, err := s.backend.ChatStream(genCtx, endpoint.BaseURL, req)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		s.logger.Printf("StreamingRelay: failed to open generation stream on %s: %v", endpoint.Kind, err)
		if frameErr := s.SingleFrame(spanCtx, w, generationFailedEvent()); frameErr != nil {
			return errors.Join(fmt.Errorf("%w: %w", ErrGenerationFailed, err), frameErr)
		}
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	defer stream.Body.Close() //nolint:errcheck

	contentType := stream.ContentType
	if contentType == "" {
		contentType = DefaultStreamContentType
	}

	started := false
	buf := make([]byte, StreamChunkSize)
	for {
		n, readErr := stream.Body.Read(buf)
		if n > 0 {
			if !started {
				if err := w.Begin(http.StatusOK, contentType); err != nil {
					return s.clientGone(spanCtx, err)
				}
				started = true
			}
			if err := w.Write(buf[:n]); err != nil {
				return s.clientGone(spanCtx, err)
			}
		}

		if readErr == nil {
			continue
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if ctx.Err() != nil {
			return s.clientGone(spanCtx, ctx.Err())
		}
		if !started {
			telemetry.RecordErrorAndStatus(span, readErr)
			s.logger.Printf("StreamingRelay: generation stream failed before first byte: %v", readErr)
			if frameErr := s.SingleFrame(spanCtx, w, generationFailedEvent()); frameErr != nil {
				return errors.Join(fmt.Errorf("%w: %w", ErrGenerationFailed, readErr), frameErr)
			}
			return fmt.Errorf("%w: %w", ErrGenerationFailed, readErr)
		}
		err := fmt.Errorf("%w: %w", ErrStreamInterrupted, readErr)
		telemetry.RecordErrorAndStatus(span, err)
		s.logger.Printf("StreamingRelay: %v", err)
		return err
	}

	if !started {
		// An empty upstream body still produces a well-formed empty response.
		if err := w.Begin(http.StatusOK, contentType); err != nil {
			return s.clientGone(spanCtx, err)
		}
	}
	return nil
}

// clientGone handles a failed client write or a cancelled request. The
// upstream body is closed by the deferred Close in Passthrough.
func (s StreamingRelayImpl) clientGone(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		s.logger.Printf("StreamingRelay: client disconnected: %v", err)
		return nil
	}
	err = fmt.Errorf("%w: %w", ErrStreamInterrupted, err)
	s.logger.Printf("StreamingRelay: %v", err)
	return err
}

func generationFailedEvent() domain.RelayEvent {
	return domain.RelayEvent{
		Type:       domain.RelayEventType_Error,
		StatusCode: http.StatusBadGateway,
		Payload: domain.RelayPayload{
			Status:   domain.ToolResultStatus_Error,
			Category: domain.RelayErrorCategory_GenerationFailed,
			Message:  "The language model could not generate a response.",
		},
	}
}

// InitStreamingRelay initializes the StreamingRelay use case.
type InitStreamingRelay struct {
	Backend domain.InferenceBackend `resolve:""`
	Logger  *log.Logger             `resolve:""`
	Timeout time.Duration           `config:"GENERATION_TIMEOUT" default:"300s"`
}

// Initialize registers the StreamingRelay use case in the dependency container.
func (i InitStreamingRelay) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[StreamingRelay](NewStreamingRelayImpl(i.Backend, i.Logger, i.Timeout))
	return ctx, nil
}
