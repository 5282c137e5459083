package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// NoteSearchTool finds notes whose title or content contain a phrase.
type NoteSearchTool struct {
	listNotes usecases.ListNotes
}

// NewNoteSearchTool creates a new instance of NoteSearchTool.
func NewNoteSearchTool(listNotes usecases.ListNotes) NoteSearchTool {
	return NoteSearchTool{listNotes: listNotes}
}

// Descriptor returns the tool descriptor for NoteSearchTool.
func (t NoteSearchTool) Descriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "search_notes",
		Description: "Search the user's notes for a word or phrase (case-insensitive).",
		Parameters: []domain.ToolParameter{
			{
				Name:        "query",
				Type:        domain.ToolParameterType_String,
				Description: "Text to look for in title or content.",
				Required:    true,
			},
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

// Invoke runs the search.
func (t NoteSearchTool) Invoke(ctx context.Context, args domain.ToolArguments, caller domain.Identity) (domain.ToolResult, error) {
	query := strings.TrimSpace(args.String("query"))
	if query == "" {
		return domain.ToolResult{}, domain.NewValidationErr("query must not be empty")
	}

	opts := []usecases.ListNotesOptions{usecases.WithSearchQuery(query)}
	if since := args.String("since"); since != "" {
		opts = append(opts, usecases.WithSince(since))
	}

	notes, err := t.listNotes.Query(ctx, caller.UserID, args.Int("limit"), opts...)
	if err != nil {
		return domain.ToolResult{}, err
	}
	if len(notes) == 0 {
		return domain.NewToolSuccess(fmt.Sprintf("No notes match %q.", query)), nil
	}

	msg, err := formatNoteList(fmt.Sprintf("Found %s matching %q:", pluralNotes(len(notes)), query), notes)
	if err != nil {
		return domain.ToolResult{}, err
	}
	return domain.NewToolSuccess(msg), nil
}
