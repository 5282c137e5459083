package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetNote defines the interface for the GetNote use case.
type GetNote interface {
	Query(ctx context.Context, ownerID, id uuid.UUID) (domain.Note, error)
}

// GetNoteImpl is the implementation of the GetNote use case.
type GetNoteImpl struct {
	noteRepo domain.NoteRepository
}

// NewGetNoteImpl creates a new instance of GetNoteImpl.
func NewGetNoteImpl(noteRepo domain.NoteRepository) GetNoteImpl {
	return GetNoteImpl{noteRepo: noteRepo}
}

// Query returns the owner's note or a NotFoundErr.
func (gn GetNoteImpl) Query(ctx context.Context, ownerID, id uuid.UUID) (domain.Note, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	note, found, err := gn.noteRepo.GetNote(spanCtx, ownerID, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Note{}, err
	}
	if !found {
		return domain.Note{}, domain.NewNotFoundErr(fmt.Sprintf("note with ID %s not found", id))
	}
	return note, nil
}

// InitGetNote initializes the GetNote use case.
type InitGetNote struct {
	NoteRepo domain.NoteRepository `resolve:""`
}

// Initialize registers the GetNote use case in the dependency container.
func (i InitGetNote) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetNote](NewGetNoteImpl(i.NoteRepo))
	return ctx, nil
}
