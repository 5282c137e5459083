package tools

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// NoteDeleterTool deletes one of the caller's notes.
type NoteDeleterTool struct {
	uow     domain.UnitOfWork
	deleter usecases.NoteDeleter
}

// NewNoteDeleterTool creates a new instance of NoteDeleterTool.
func NewNoteDeleterTool(uow domain.UnitOfWork, deleter usecases.NoteDeleter) NoteDeleterTool {
	return NoteDeleterTool{
		uow:     uow,
		deleter: deleter,
	}
}

// Descriptor returns the tool descriptor for NoteDeleterTool.
func (t NoteDeleterTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "delete_note",
		Description: "Delete one note by id. Only use when the user names the note id explicitly.",
		Parameters: []domain.ToolParameter{
			{
				Name:        "id",
				Type:        domain.ToolParameterType_String,
				Description: "The note id (UUID).",
				Required:    true,
			},
		},
	}
}

// Invoke deletes the note in its own transaction.
func (t NoteDeleterTool) Invoke(ctx context.Context, args domain.ToolArguments, caller domain.Identity) (domain.ToolResult, error) {
	id, err := parseNoteID(args.String("id"))
	if err != nil {
		return domain.ToolResult{}, err
	}

	err = t.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		return t.deleter.Delete(ctx, uow, caller.UserID, id)
	})
	if err != nil {
		return domain.ToolResult{}, err
	}
	return domain.NewToolSuccess(fmt.Sprintf("Note %s deleted.", id)), nil
}
