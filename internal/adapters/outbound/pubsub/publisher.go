package pubsub

import (
	"context"
	"sync"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubEventPublisher implements domain.EventPublisher on Google Cloud Pub/Sub.
// Messages are ordered by entity, so a note's CREATED event is delivered before its DELETED event.
type PubSubEventPublisher struct {
	client     *pubsubV2.Client
	mu         *sync.Mutex
	publishers map[domain.OutboxTopic]*pubsubV2.Publisher
}

// NewPubSubEventPublisher creates a new instance of PubSubEventPublisher.
func NewPubSubEventPublisher(client *pubsubV2.Client) PubSubEventPublisher {
	return PubSubEventPublisher{
		client:     client,
		mu:         &sync.Mutex{},
		publishers: map[domain.OutboxTopic]*pubsubV2.Publisher{},
	}
}

// PublishEvent publishes event to its topic and waits for the broker to accept it.
func (p PubSubEventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
	)
	defer span.End()

	orderingKey := event.EntityID.String()
	publisher := p.publisher(event.Topic)

	result := publisher.Publish(spanCtx, &pubsubV2.Message{
		Data:        event.Payload,
		OrderingKey: orderingKey,
		Attributes: map[string]string{
			"event_id":    event.ID.String(),
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   orderingKey,
			"created_at":  event.CreatedAt.UTC().Format(time.RFC3339Nano),
		},
	})

	_, err := result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		// A failed publish pauses its ordering key until resumed.
		publisher.ResumePublish(orderingKey)
		return err
	}
	return nil
}

func (p PubSubEventPublisher) publisher(topic domain.OutboxTopic) *pubsubV2.Publisher {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pub, ok := p.publishers[topic]; ok {
		return pub
	}
	pub := p.client.Publisher(string(topic))
	pub.EnableMessageOrdering = true
	p.publishers[topic] = pub
	return pub
}

// Stop flushes and stops every topic publisher.
func (p PubSubEventPublisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for topic, pub := range p.publishers {
		pub.Stop()
		delete(p.publishers, topic)
	}
}

// InitPublisher initializes the domain.EventPublisher implementation.
type InitPublisher struct {
	Client    *pubsubV2.Client `resolve:""`
	publisher PubSubEventPublisher
}

// Initialize registers the PubSubEventPublisher as the domain.EventPublisher.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	i.publisher = NewPubSubEventPublisher(i.Client)
	depend.Register[domain.EventPublisher](i.publisher)
	return ctx, nil
}

// Close stops the topic publishers before the client is closed.
func (i *InitPublisher) Close() {
	if i.publisher.mu != nil {
		i.publisher.Stop()
	}
}
