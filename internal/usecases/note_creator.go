package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// NoteCreator defines the interface for creating notes within a unit of work.
type NoteCreator interface {
	Create(ctx context.Context, uow domain.UnitOfWork, ownerID uuid.UUID, title, content string) (domain.Note, error)
}

// NoteCreatorImpl is the implementation of the NoteCreator use case.
type NoteCreatorImpl struct {
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewNoteCreatorImpl creates a new instance of NoteCreatorImpl.
func NewNoteCreatorImpl(timeProvider domain.CurrentTimeProvider) NoteCreatorImpl {
	return NoteCreatorImpl{
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Create validates and stores a note and records its NOTE.CREATED event in the same unit of work.
func (nc NoteCreatorImpl) Create(ctx context.Context, uow domain.UnitOfWork, ownerID uuid.UUID, title, content string) (domain.Note, error) {
	now := nc.timeProvider.Now()

	note := domain.Note{
		ID:        nc.createUUID(),
		OwnerID:   ownerID,
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
	}
	if err := note.Validate(); err != nil {
		return domain.Note{}, err
	}

	if err := uow.Note().CreateNote(ctx, note); err != nil {
		return domain.Note{}, err
	}

	err := uow.Outbox().CreateNoteEvent(ctx, domain.NoteEvent{
		Type:      domain.EventType_NOTE_CREATED,
		NoteID:    note.ID,
		OwnerID:   ownerID,
		CreatedAt: now,
	})
	if err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

// InitNoteCreator initializes the NoteCreator use case.
type InitNoteCreator struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the NoteCreator use case in the dependency container.
func (i InitNoteCreator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[NoteCreator](NewNoteCreatorImpl(i.TimeProvider))
	return ctx, nil
}
