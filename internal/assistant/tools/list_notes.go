package tools

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// NoteListerTool lists the caller's newest notes.
type NoteListerTool struct {
	listNotes usecases.ListNotes
}

// NewNoteListerTool creates a new instance of NoteListerTool.
func NewNoteListerTool(listNotes usecases.ListNotes) NoteListerTool {
	return NoteListerTool{listNotes: listNotes}
}

// Descriptor returns the tool descriptor for NoteListerTool.
func (t NoteListerTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "list_notes",
		Description: "List the user's most recent notes, optionally only those created since a date.",
		Parameters: []domain.ToolParameter{
			{
				Name:        "limit",
				Type:        domain.ToolParameterType_Integer,
				Description: fmt.Sprintf("Maximum number of notes, 1 to %d.", domain.MaxNotesLimit),
				Default:     domain.DefaultNotesLimit,
			},
			sinceParameter,
		},
	}
}

// Invoke lists the notes.
func (t NoteListerTool) Invoke(ctx context.Context, args domain.ToolArguments, caller domain.Identity) (domain.ToolResult, error) {
	var opts []usecases.ListNotesOptions
	if since := args.String("since"); since != "" {
		opts = append(opts, usecases.WithSince(since))
	}

	notes, err := t.listNotes.Query(ctx, caller.UserID, args.Int("limit"), opts...)
	if err != nil {
		return domain.ToolResult{}, err
	}
	if len(notes) == 0 {
		return domain.NewToolSuccess("You have no notes yet."), nil
	}

	msg, err := formatNoteList(fmt.Sprintf("Your latest %s:", pluralNotes(len(notes))), notes)
	if err != nil {
		return domain.ToolResult{}, err
	}
	return domain.NewToolSuccess(msg), nil
}

var sinceParameter = domain.ToolParameter{
	Name:        "since",
	Type:        domain.ToolParameterType_String,
	Description: "Only notes created on or after this day, e.g. today, gestern, last week, 2026-01-15.",
}
