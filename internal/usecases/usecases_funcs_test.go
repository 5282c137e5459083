package usecases

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
)

// stubTool is a Tool whose Invoke is a plain function.
type stubTool struct {
	descriptor domain.ToolDescriptor
	invoke     func(ctx context.Context, args domain.ToolArguments, caller domain.Identity) (domain.ToolResult, error)
}

func (s stubTool) Descriptor() domain.ToolDescriptor {
	return s.descriptor
}

func (s stubTool) Invoke(ctx context.Context, args domain.ToolArguments, caller domain.Identity) (domain.ToolResult, error) {
	if s.invoke == nil {
		return domain.NewToolSuccess("ok"), nil
	}
	return s.invoke(ctx, args, caller)
}

// staticRegistry is a map-backed ToolRegistry for tests.
type staticRegistry map[string]domain.Tool

func newStaticRegistry(tools ...domain.Tool) staticRegistry {
	r := staticRegistry{}
	for _, t := range tools {
		r[t.Descriptor().Name] = t
	}
	return r
}

func (r staticRegistry) Lookup(name string) (domain.Tool, bool) {
	t, ok := r[name]
	return t, ok
}

func (r staticRegistry) Descriptors() []domain.ToolDescriptor {
	out := make([]domain.ToolDescriptor, 0, len(r))
	for _, t := range r {
		out = append(out, t.Descriptor())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r staticRegistry) Projection() (string, error) {
	return "tools[1]{name}:\n  create_note", nil
}

func createNoteDescriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "create_note",
		Description: "Creates a note",
		Parameters: []domain.ToolParameter{
			{Name: "content", Type: domain.ToolParameterType_String, Required: true},
			{Name: "title", Type: domain.ToolParameterType_String},
		},
	}
}

func listNotesDescriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "list_notes",
		Description: "Lists notes",
		Parameters: []domain.ToolParameter{
			{Name: "limit", Type: domain.ToolParameterType_Integer, Default: domain.DefaultNotesLimit},
			{Name: "since", Type: domain.ToolParameterType_String},
		},
	}
}

// recordingTurnWriter captures everything a turn sends to the client.
type recordingTurnWriter struct {
	statusCode  int
	contentType string
	begins      int
	body        bytes.Buffer
	writes      int
	failWrite   error
}

func (w *recordingTurnWriter) Begin(statusCode int, contentType string) error {
	if w.begins > 0 {
		return errors.New("begin called twice")
	}
	w.begins++
	w.statusCode = statusCode
	w.contentType = contentType
	return nil
}

func (w *recordingTurnWriter) Write(chunk []byte) error {
	if w.failWrite != nil {
		return w.failWrite
	}
	w.writes++
	w.body.Write(chunk)
	return nil
}
