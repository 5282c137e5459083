package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTool(t *testing.T, name string, params ...domain.ToolParameter) *domain.MockTool {
	tool := domain.NewMockTool(t)
	tool.EXPECT().Descriptor().Return(domain.ToolDescriptor{
		Name:        name,
		Description: "does " + name,
		Parameters:  params,
	}).Maybe()
	return tool
}

func TestToolRegistry_Lookup(t *testing.T) {
	createTool := newTestTool(t, "create_note")
	listTool := newTestTool(t, "list_notes")
	registry := NewToolRegistry(createTool, listTool)

	tests := map[string]struct {
		name     string
		expected domain.Tool
		found    bool
	}{
		"known": {
			name:     "create_note",
			expected: createTool,
			found:    true,
		},
		"unknown": {
			name:  "drop_table",
			found: false,
		},
		"case-sensitive": {
			name:  "Create_Note",
			found: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, found := registry.Lookup(tt.name)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestToolRegistry_Descriptors(t *testing.T) {
	registry := NewToolRegistry(
		newTestTool(t, "search_notes"),
		newTestTool(t, "create_note"),
		newTestTool(t, "list_notes"),
	)

	descriptors := registry.Descriptors()
	require.Len(t, descriptors, 3)
	assert.Equal(t, "create_note", descriptors[0].Name)
	assert.Equal(t, "list_notes", descriptors[1].Name)
	assert.Equal(t, "search_notes", descriptors[2].Name)
}

func TestToolRegistry_Projection(t *testing.T) {
	registry := NewToolRegistry(
		newTestTool(t, "create_note", domain.ToolParameter{
			Name:        "content",
			Type:        domain.ToolParameterType_String,
			Description: "note text",
			Required:    true,
		}),
		newTestTool(t, "list_notes", domain.ToolParameter{
			Name:    "limit",
			Type:    domain.ToolParameterType_Integer,
			Default: 10,
		}),
	)

	projection, err := registry.Projection()
	require.NoError(t, err)
	assert.Contains(t, projection, "create_note")
	assert.Contains(t, projection, "list_notes")
	assert.Contains(t, projection, "content")
	assert.Contains(t, projection, "integer")
	assert.Less(t, strings.Index(projection, "create_note"), strings.Index(projection, "list_notes"))
}

func TestInitToolRegistry_Initialize(t *testing.T) {
	i := InitToolRegistry{
		Uow:         domain.NewMockUnitOfWork(t),
		NoteCreator: usecases.NewMockNoteCreator(t),
		NoteDeleter: usecases.NewMockNoteDeleter(t),
		ListNotes:   usecases.NewMockListNotes(t),
		GetNote:     usecases.NewMockGetNote(t),
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	registry, err := depend.Resolve[domain.ToolRegistry]()
	require.NoError(t, err)

	names := make([]string, 0)
	for _, d := range registry.Descriptors() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"create_note", "delete_note", "get_note", "list_notes", "search_notes"}, names)
}
