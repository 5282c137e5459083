package usecases

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRelayOutboxImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	eventID2 := uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")
	noteID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")

	newEvent := func(id uuid.UUID, eventType domain.EventType, retryCount int) domain.OutboxEvent {
		return domain.OutboxEvent{
			ID:         id,
			EntityType: domain.OutboxEntityType_Note,
			EntityID:   noteID,
			Topic:      domain.OutboxTopic_Notes,
			EventType:  eventType,
			CreatedAt:  fixedTime,
			RetryCount: retryCount,
			MaxRetries: 3,
		}
	}

	tests := map[string]struct {
		setExpectations func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher)
		expectedErr     error
		expectedLog     string
	}{
		"success-relay-and-delete": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				oe := newEvent(eventID, domain.EventType_NOTE_CREATED, 0)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{oe}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, oe).Return(nil)
				outbox.EXPECT().DeleteEvent(mock.Anything, eventID).Return(nil)
			},
		},
		"success-relay-multiple-events": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				events := []domain.OutboxEvent{
					newEvent(eventID, domain.EventType_NOTE_CREATED, 0),
					newEvent(eventID2, domain.EventType_NOTE_DELETED, 0),
				}
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return(events, nil)
				for _, event := range events {
					publisher.EXPECT().PublishEvent(mock.Anything, event).Return(nil)
					outbox.EXPECT().DeleteEvent(mock.Anything, event.ID).Return(nil)
				}
			},
		},
		"publish-error-retry": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				oe := newEvent(eventID, domain.EventType_NOTE_CREATED, 0)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{oe}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, oe).Return(errors.New("publish error"))
				outbox.EXPECT().UpdateEvent(mock.Anything, eventID, domain.OutboxStatus_Pending, 1, "publish error").Return(nil)
			},
		},
		"publish-error-max-retries": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				oe := newEvent(eventID, domain.EventType_NOTE_CREATED, 2)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{oe}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, oe).Return(errors.New("publish error"))
				outbox.EXPECT().UpdateEvent(mock.Anything, eventID, domain.OutboxStatus_Failed, 3, "publish error").Return(nil)
			},
			expectedLog: "parking NOTE.CREATED event " + eventID.String() + " as FAILED after 3 attempts: publish error",
		},
		"delete-error-is-logged": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				oe := newEvent(eventID, domain.EventType_NOTE_CREATED, 0)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{oe}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, oe).Return(nil)
				outbox.EXPECT().DeleteEvent(mock.Anything, eventID).Return(errors.New("delete error"))
			},
			expectedLog: "relay failed for event " + eventID.String() + ": delete error",
		},
		"fetch-error": {
			setExpectations: func(outbox *domain.MockOutboxRepository, _ *domain.MockEventPublisher) {
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return(nil, errors.New("fetch error"))
			},
			expectedErr: errors.New("fetch error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			outbox := domain.NewMockOutboxRepository(t)
			publisher := domain.NewMockEventPublisher(t)

			uow.EXPECT().Outbox().Return(outbox)
			uow.EXPECT().
				Execute(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
					return fn(uow)
				})
			tt.setExpectations(outbox, publisher)

			var logs bytes.Buffer
			err := NewRelayOutboxImpl(uow, publisher, log.New(&logs, "", 0), 100).Execute(context.Background())
			assert.Equal(t, tt.expectedErr, err)
			if tt.expectedLog != "" {
				assert.Contains(t, logs.String(), tt.expectedLog)
			}
		})
	}
}

func TestInitRelayOutbox_Initialize(t *testing.T) {
	i := InitRelayOutbox{
		Uow:       domain.NewMockUnitOfWork(t),
		Logger:    log.New(&bytes.Buffer{}, "", 0),
		Publisher: domain.NewMockEventPublisher(t),
		BatchSize: 50,
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[RelayOutbox]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
