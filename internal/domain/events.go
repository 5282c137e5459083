package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_NOTE_CREATED represents the event when a note is created.
	EventType_NOTE_CREATED EventType = "NOTE.CREATED"
	// EventType_NOTE_DELETED represents the event when a note is deleted.
	EventType_NOTE_DELETED EventType = "NOTE.DELETED"
)

// NoteEvent represents a note lifecycle event.
type NoteEvent struct {
	Type      EventType `json:"type"`
	NoteID    uuid.UUID `json:"note_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
