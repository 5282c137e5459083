package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// NoteEventSubscriber consumes note lifecycle events from Pub/Sub in batches
// and hands them to the activity tracker.
type NoteEventSubscriber struct {
	Logger              *log.Logger                `resolve:""`
	Client              *pubsub.Client             `resolve:""`
	Interval            time.Duration              `config:"NOTE_EVENTS_BATCH_INTERVAL" default:"3s"`
	BatchSize           int                        `config:"NOTE_EVENTS_BATCH_SIZE" default:"20"`
	SubscriptionID      string                     `config:"PUBSUB_SUBSCRIPTION_ID" default:"note-activity"`
	TrackNoteActivity   usecases.TrackNoteActivity `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the subscriber worker.
func (s NoteEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("NoteEventSubscriber: running...")

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// Receive blocks until ctx is done, so it runs in the background.
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// acked after the batch is processed
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("NoteEventSubscriber: stopping...")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

func (s NoteEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("NoteEventSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	events := make([]domain.NoteEvent, 0, len(batch))
	valid := make([]*pubsub.Message, 0, len(batch))
	for _, msg := range batch {
		var event domain.NoteEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			// redelivering a payload that can never decode would loop forever
			s.Logger.Printf("NoteEventSubscriber: dropping malformed message %s: %v", msg.ID, err)
			msg.Ack()
			continue
		}
		events = append(events, event)
		valid = append(valid, msg)
	}

	if len(events) == 0 {
		return
	}

	if err := s.TrackNoteActivity.Execute(ctx, events); err != nil {
		s.Logger.Printf("NoteEventSubscriber: tracking note activity failed: %v", err)
		for _, msg := range valid {
			msg.Nack()
		}
		return
	}

	for _, msg := range valid {
		msg.Ack()
	}
}
