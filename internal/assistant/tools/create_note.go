package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// NoteCreatorTool stores a new note for the caller.
type NoteCreatorTool struct {
	uow     domain.UnitOfWork
	creator usecases.NoteCreator
}

// NewNoteCreatorTool creates a new instance of NoteCreatorTool.
func NewNoteCreatorTool(uow domain.UnitOfWork, creator usecases.NoteCreator) NoteCreatorTool {
	return NoteCreatorTool{
		uow:     uow,
		creator: creator,
	}
}

// Descriptor returns the tool descriptor for NoteCreatorTool.
func (t NoteCreatorTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "create_note",
		Description: "Save a new note for the user. Use when the user asks to note, write down or remember something (\"notiere\", \"merke dir\").",
		Parameters: []domain.ToolParameter{
			{
				Name:        "content",
				Type:        domain.ToolParameterType_String,
				Description: "The note text, without the command words.",
				Required:    true,
			},
			{
				Name:        "title",
				Type:        domain.ToolParameterType_String,
				Description: "Short title. Omit to use the first line of the content.",
			},
		},
	}
}

// Invoke creates the note in its own transaction.
func (t NoteCreatorTool) Invoke(ctx context.Context, args domain.ToolArguments, caller domain.Identity) (domain.ToolResult, error) {
	content := strings.TrimSpace(args.String("content"))
	title := strings.TrimSpace(args.String("title"))
	if title == "" {
		title = domain.DeriveNoteTitle(content)
	}

	var note domain.Note
	err := t.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		n, err := t.creator.Create(ctx, uow, caller.UserID, title, content)
		if err != nil {
			return err
		}
		note = n
		return nil
	})
	if err != nil {
		return domain.ToolResult{}, err
	}

	return domain.NewToolSuccess(fmt.Sprintf("Note %q saved (id %s).", note.Title, note.ID)), nil
}
