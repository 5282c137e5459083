package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// DeleteNote defines the interface for the DeleteNote use case.
type DeleteNote interface {
	Execute(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteNoteImpl is the implementation of the DeleteNote use case.
type DeleteNoteImpl struct {
	uow     domain.UnitOfWork
	deleter NoteDeleter
}

// NewDeleteNoteImpl creates a new instance of DeleteNoteImpl.
func NewDeleteNoteImpl(uow domain.UnitOfWork, deleter NoteDeleter) DeleteNoteImpl {
	return DeleteNoteImpl{
		uow:     uow,
		deleter: deleter,
	}
}

// Execute deletes the owner's note in its own transaction.
func (dn DeleteNoteImpl) Execute(ctx context.Context, ownerID, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := dn.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return dn.deleter.Delete(spanCtx, uow, ownerID, id)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitDeleteNote initializes the DeleteNote use case.
type InitDeleteNote struct {
	Uow     domain.UnitOfWork `resolve:""`
	Deleter NoteDeleter       `resolve:""`
}

// Initialize registers the DeleteNote use case in the dependency container.
func (i InitDeleteNote) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteNote](NewDeleteNoteImpl(i.Uow, i.Deleter))
	return ctx, nil
}
