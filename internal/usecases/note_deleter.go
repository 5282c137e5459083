package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// NoteDeleter defines the interface for deleting notes within a unit of work.
type NoteDeleter interface {
	Delete(ctx context.Context, uow domain.UnitOfWork, ownerID, id uuid.UUID) error
}

// NoteDeleterImpl is the implementation of the NoteDeleter interface.
type NoteDeleterImpl struct {
	timeProvider domain.CurrentTimeProvider
}

// NewNoteDeleterImpl creates a new instance of NoteDeleterImpl.
func NewNoteDeleterImpl(timeProvider domain.CurrentTimeProvider) NoteDeleterImpl {
	return NoteDeleterImpl{
		timeProvider: timeProvider,
	}
}

// Delete removes the caller's note. A note owned by someone else is reported as forbidden.
func (nd NoteDeleterImpl) Delete(ctx context.Context, uow domain.UnitOfWork, ownerID, id uuid.UUID) error {
	owner, found, err := uow.Note().GetNoteOwner(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.NewNotFoundErr(fmt.Sprintf("note with ID %s not found", id))
	}
	if owner != ownerID {
		return domain.NewForbiddenErr(fmt.Sprintf("note with ID %s belongs to another user", id))
	}

	deleted, err := uow.Note().DeleteNote(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundErr(fmt.Sprintf("note with ID %s not found", id))
	}

	return uow.Outbox().CreateNoteEvent(ctx, domain.NoteEvent{
		Type:      domain.EventType_NOTE_DELETED,
		NoteID:    id,
		OwnerID:   ownerID,
		CreatedAt: nd.timeProvider.Now(),
	})
}

// InitNoteDeleter initializes the NoteDeleter.
type InitNoteDeleter struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the NoteDeleter use case in the dependency container.
func (i InitNoteDeleter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[NoteDeleter](NewNoteDeleterImpl(i.TimeProvider))
	return ctx, nil
}
