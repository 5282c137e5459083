package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// NoteReaderTool returns the full text of one note.
type NoteReaderTool struct {
	getNote usecases.GetNote
}

// NewNoteReaderTool creates a new instance of NoteReaderTool.
func NewNoteReaderTool(getNote usecases.GetNote) NoteReaderTool {
	return NoteReaderTool{getNote: getNote}
}

// Descriptor returns the tool descriptor for NoteReaderTool.
func (t NoteReaderTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "get_note",
		Description: "Show the full content of one note by id.",
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

// Invoke reads the note.
func (t NoteReaderTool) Invoke(ctx context.Context, args domain.ToolArguments, caller domain.Identity) (domain.ToolResult, error) {
	id, err := parseNoteID(args.String("id"))
	if err != nil {
		return domain.ToolResult{}, err
	}

	note, err := t.getNote.Query(ctx, caller.UserID, id)
	if err != nil {
		return domain.ToolResult{}, err
	}
	return domain.NewToolSuccess(fmt.Sprintf("%s (%s)\n\n%s",
		note.Title,
		note.CreatedAt.Format(time.DateTime),
		note.Content,
	)), nil
}
