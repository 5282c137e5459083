package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// CreateNote defines the interface for the CreateNote use case.
type CreateNote interface {
	Execute(ctx context.Context, ownerID uuid.UUID, title, content string) (domain.Note, error)
}

// CreateNoteImpl is the implementation of the CreateNote use case.
type CreateNoteImpl struct {
	uow     domain.UnitOfWork
	creator NoteCreator
}

// NewCreateNoteImpl creates a new instance of CreateNoteImpl.
func NewCreateNoteImpl(uow domain.UnitOfWork, creator NoteCreator) CreateNoteImpl {
	return CreateNoteImpl{
		uow:     uow,
		creator: creator,
	}
}

// Execute creates a note for the owner in its own transaction.
func (cn CreateNoteImpl) Execute(ctx context.Context, ownerID uuid.UUID, title, content string) (domain.Note, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var note domain.Note
	err := cn.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		var err error
		note, err = cn.creator.Create(spanCtx, uow, ownerID, title, content)
		return err
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Note{}, err
	}
	return note, nil
}

// InitCreateNote initializes the CreateNote use case.
type InitCreateNote struct {
	Uow     domain.UnitOfWork `resolve:""`
	Creator NoteCreator       `resolve:""`
}

// Initialize registers the CreateNote use case in the dependency container.
func (i InitCreateNote) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateNote](NewCreateNoteImpl(i.Uow, i.Creator))
	return ctx, nil
}
