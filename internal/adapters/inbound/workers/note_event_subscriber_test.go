package workers

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNoteEventSubscriber_Run(t *testing.T) {
	ownerID := uuid.MustParse("22222222-0000-4000-8000-000000000002")
	created := domain.NoteEvent{
		Type:      domain.EventType_NOTE_CREATED,
		NoteID:    uuid.MustParse("11111111-0000-4000-8000-000000000001"),
		OwnerID:   ownerID,
		CreatedAt: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC),
	}
	deleted := domain.NoteEvent{
		Type:      domain.EventType_NOTE_DELETED,
		NoteID:    uuid.MustParse("11111111-0000-4000-8000-000000000001"),
		OwnerID:   ownerID,
		CreatedAt: time.Date(2026, 1, 27, 11, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		payloads        func(t *testing.T) [][]byte
		setExpectations func(tracker *usecases.MockTrackNoteActivity, calls chan []domain.NoteEvent)
		expectedCalls   int
		expectedEvents  []domain.NoteEvent
		expectedLog     string
	}{
		"tracks-decoded-events": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{noteEventPayload(t, created), noteEventPayload(t, deleted)}
			},
			setExpectations: func(tracker *usecases.MockTrackNoteActivity, calls chan []domain.NoteEvent) {
				tracker.EXPECT().Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, events []domain.NoteEvent) error {
						calls <- events
						return nil
					})
			},
			expectedCalls:  1,
			expectedEvents: []domain.NoteEvent{created, deleted},
		},
		"malformed-message-is-dropped": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{[]byte("not json"), noteEventPayload(t, created)}
			},
			setExpectations: func(tracker *usecases.MockTrackNoteActivity, calls chan []domain.NoteEvent) {
				tracker.EXPECT().Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, events []domain.NoteEvent) error {
						calls <- events
						return nil
					})
			},
			expectedCalls:  1,
			expectedEvents: []domain.NoteEvent{created},
			expectedLog:    "dropping malformed message",
		},
		"failed-batch-is-redelivered": {
			payloads: func(t *testing.T) [][]byte {
				return [][]byte{noteEventPayload(t, created)}
			},
			setExpectations: func(tracker *usecases.MockTrackNoteActivity, calls chan []domain.NoteEvent) {
				tracker.EXPECT().Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, events []domain.NoteEvent) error {
						calls <- events
						return assert.AnError
					}).Once()
				tracker.EXPECT().Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, events []domain.NoteEvent) error {
						calls <- events
						return nil
					})
			},
			expectedCalls:  2,
			expectedEvents: []domain.NoteEvent{created},
			expectedLog:    "tracking note activity failed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			client, topicName := setupPubSubServer(t, ctx, "Notes", "note-activity")

			calls := make(chan []domain.NoteEvent, 10)
			tracker := usecases.NewMockTrackNoteActivity(t)
			tt.setExpectations(tracker, calls)

			var buf bytes.Buffer
			subscriber := NoteEventSubscriber{
				Logger:            log.New(&buf, "", 0),
				Client:            client,
				Interval:          20 * time.Millisecond,
				BatchSize:         10,
				SubscriptionID:    "note-activity",
				TrackNoteActivity: tracker,
			}

			cancel, doneChan := run(t, ctx, subscriber)

			require.NoError(t, publishMessages(ctx, client, topicName, tt.payloads(t)))

			var received []domain.NoteEvent
			for range tt.expectedCalls {
				select {
				case events := <-calls:
					received = events
				case <-time.After(5 * time.Second):
					t.Fatal("timeout waiting for note activity to be tracked")
				}
			}

			// a batch can be split across ticks; gather what is still in flight
			for len(received) < len(tt.expectedEvents) {
				select {
				case events := <-calls:
					received = append(received, events...)
				case <-time.After(5 * time.Second):
					t.Fatal("timeout waiting for remaining note events")
				}
			}

			cancel()
			waitRunnableStop(t, doneChan)

			assert.ElementsMatch(t, tt.expectedEvents, received)
			if tt.expectedLog != "" {
				assert.Contains(t, buf.String(), tt.expectedLog)
			}
		})
	}
}
