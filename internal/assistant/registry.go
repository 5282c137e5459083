package assistant

import (
	"context"
	"fmt"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/assistant/tools"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
)

// ToolRegistry is the fixed set of tools the gateway can run. It is built once
// at startup and never modified.
type ToolRegistry struct {
	tools map[string]domain.Tool
}

// NewToolRegistry creates a registry from tools. A later tool with the same
// name replaces an earlier one.
func NewToolRegistry(tools ...domain.Tool) ToolRegistry {
	toolMap := make(map[string]domain.Tool, len(tools))
	for _, tool := range tools {
		toolMap[tool.Descriptor().Name] = tool
	}
	return ToolRegistry{tools: toolMap}
}

// Lookup returns the tool registered under name.
func (r ToolRegistry) Lookup(name string) (domain.Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Descriptors returns all tool descriptors ordered by name.
func (r ToolRegistry) Descriptors() []domain.ToolDescriptor {
	res := make([]domain.ToolDescriptor, 0, len(r.tools))
	for _, tool := range r.tools {
		res = append(res, tool.Descriptor())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res
}

type toolProjection struct {
	Name        string                `toon:"name"`
	Description string                `toon:"description"`
	Parameters  []parameterProjection `toon:"parameters"`
}

type parameterProjection struct {
	Name        string `toon:"name"`
	Type        string `toon:"type"`
	Required    bool   `toon:"required"`
	Description string `toon:"description"`
}

type registryProjection struct {
	Tools []toolProjection `toon:"tools"`
}

// Projection renders the descriptors as TOON for the classifier prompt.
func (r ToolRegistry) Projection() (string, error) {
	descriptors := r.Descriptors()
	projection := registryProjection{Tools: make([]toolProjection, 0, len(descriptors))}
	for _, d := range descriptors {
		params := make([]parameterProjection, 0, len(d.Parameters))
		for _, p := range d.Parameters {
			params = append(params, parameterProjection{
				Name:        p.Name,
				Type:        string(p.Type),
				Required:    p.Required,
				Description: p.Description,
			})
		}
		projection.Tools = append(projection.Tools, toolProjection{
			Name:        d.Name,
			Description: d.Description,
			Parameters:  params,
		})
	}

	out, err := toon.MarshalString(projection, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal tool registry: %w", err)
	}
	return out, nil
}

// InitToolRegistry builds the tool registry and registers it as domain.ToolRegistry.
type InitToolRegistry struct {
	Uow         domain.UnitOfWork    `resolve:""`
	NoteCreator usecases.NoteCreator `resolve:""`
	NoteDeleter usecases.NoteDeleter `resolve:""`
	ListNotes   usecases.ListNotes   `resolve:""`
	GetNote     usecases.GetNote     `resolve:""`
}

// Initialize registers the ToolRegistry in the dependency container.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ToolRegistry](NewToolRegistry(
		tools.NewNoteCreatorTool(i.Uow, i.NoteCreator),
		tools.NewNoteListerTool(i.ListNotes),
		tools.NewNoteSearchTool(i.ListNotes),
		tools.NewNoteReaderTool(i.GetNote),
		tools.NewNoteDeleterTool(i.Uow, i.NoteDeleter),
	))
	return ctx, nil
}
