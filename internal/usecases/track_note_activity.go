package usecases

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// TrackNoteActivity accounts for note lifecycle events consumed from the broker.
type TrackNoteActivity interface {
	// Execute records a batch of events. An error means the batch must be redelivered.
	Execute(ctx context.Context, events []domain.NoteEvent) error
}

// TrackNoteActivityImpl is the implementation of the TrackNoteActivity use case.
type TrackNoteActivityImpl struct {
	logger *log.Logger
}

// NewTrackNoteActivityImpl creates a new instance of TrackNoteActivityImpl.
func NewTrackNoteActivityImpl(logger *log.Logger) TrackNoteActivityImpl {
	return TrackNoteActivityImpl{logger: logger}
}

// Execute counts the events per type and logs one summary line per batch.
func (uc TrackNoteActivityImpl) Execute(ctx context.Context, events []domain.NoteEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.Int("events.count", len(events)))

	if err := spanCtx.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	counts := map[domain.EventType]int{}
	owners := map[uuid.UUID]struct{}{}
	for _, e := range events {
		switch e.Type {
		case domain.EventType_NOTE_CREATED, domain.EventType_NOTE_DELETED:
			counts[e.Type]++
			owners[e.OwnerID] = struct{}{}
			RecordNoteEvent(spanCtx, e.Type)
		default:
			uc.logger.Printf("TrackNoteActivity: ignoring event %q for note %s", e.Type, e.NoteID)
		}
	}

	if len(counts) == 0 {
		return nil
	}

	parts := make([]string, 0, len(counts))
	for t, n := range counts {
		parts = append(parts, fmt.Sprintf("%s=%d", t, n))
	}
	sort.Strings(parts)
	uc.logger.Printf("TrackNoteActivity: %s across %d owners", strings.Join(parts, " "), len(owners))
	return nil
}

// InitTrackNoteActivity initializes the TrackNoteActivity use case.
type InitTrackNoteActivity struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the TrackNoteActivity use case in the dependency container.
func (i InitTrackNoteActivity) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TrackNoteActivity](NewTrackNoteActivityImpl(i.Logger))
	return ctx, nil
}
