package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

const (
	outboxResultPublished = "published"
	outboxResultRetried   = "retried"
	outboxResultParked    = "parked"
)

// RelayOutbox moves note events from the outbox table to the broker.
type RelayOutbox interface {
	// Execute relays one batch of pending events.
	Execute(ctx context.Context) error
}

// RelayOutboxImpl publishes pending note events and keeps their retry bookkeeping.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *log.Logger
	batchSize int
}

// NewRelayOutboxImpl creates a new instance of RelayOutboxImpl.
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *log.Logger, batchSize int) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Execute fetches and relays one batch inside a single transaction, so the rows stay
// locked against other relays until their outcome is stored.
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, r.batchSize)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int("outbox.batch", len(events)))

		for _, event := range events {
			result, err := r.relayEvent(spanCtx, uow, event)
			if err != nil {
				r.logger.Printf("RelayOutbox: relay failed for event %s: %v", event.ID, err)
				continue
			}
			RecordOutboxRelay(spanCtx, result)
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// relayEvent publishes one event. A published event is deleted; a failed one is
// retried until MaxRetries and then parked as FAILED.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) (string, error) {
	publishErr := r.publisher.PublishEvent(ctx, event)
	if publishErr == nil {
		return outboxResultPublished, uow.Outbox().DeleteEvent(ctx, event.ID)
	}

	attempts := event.RetryCount + 1
	status, result := domain.OutboxStatus_Pending, outboxResultRetried
	if attempts >= event.MaxRetries {
		status, result = domain.OutboxStatus_Failed, outboxResultParked
		r.logger.Printf("RelayOutbox: parking %s event %s as FAILED after %d attempts: %v",
			event.EventType, event.ID, attempts, publishErr)
	}
	return result, uow.Outbox().UpdateEvent(ctx, event.ID, status, attempts, publishErr.Error())
}

// InitRelayOutbox registers the RelayOutbox use case.
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Logger    *log.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
	BatchSize int                   `config:"OUTBOX_BATCH_SIZE" default:"100"`
}

// Initialize registers the RelayOutbox implementation in the dependency container.
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger, iro.BatchSize))
	return ctx, nil
}
