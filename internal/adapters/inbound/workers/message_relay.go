package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// MessageRelay periodically drains the note outbox and publishes the events to Pub/Sub.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic processing of outbox events.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Println("MessageRelay: running...")
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := mr.RelayOutbox.Execute(ctx); err != nil {
				mr.Logger.Printf("MessageRelay: error processing batch: %v", err)
			}
			if mr.workerExecutionChan != nil {
				mr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}
