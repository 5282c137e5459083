package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "chatgateway-tools"
	serverVersion = "1.0.0"
)

// ToolServer exposes the tool registry to MCP clients over streamable HTTP.
// Calls go through the same executor as chat turns, so argument validation
// and owner scoping are identical.
type ToolServer struct {
	registry domain.ToolRegistry
	executor usecases.ToolExecutor
	logger   *log.Logger
	handler  http.Handler
}

// NewToolServer creates a new ToolServer.
func NewToolServer(registry domain.ToolRegistry, executor usecases.ToolExecutor, logger *log.Logger) *ToolServer {
	s := &ToolServer{
		registry: registry,
		executor: executor,
		logger:   logger,
	}
	s.handler = mcpsdk.NewStreamableHTTPHandler(s.serverFor, &mcpsdk.StreamableHTTPOptions{
		Stateless: true,
	})
	return s
}

// ServeHTTP serves the MCP endpoint. The request context must carry the caller identity.
func (s *ToolServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// serverFor builds a server bound to the caller of r. A nil server makes the SDK reject the request.
func (s *ToolServer) serverFor(r *http.Request) *mcpsdk.Server {
	caller, ok := domain.IdentityFromContext(r.Context())
	if !ok {
		return nil
	}
	return s.newServer(caller)
}

func (s *ToolServer) newServer(caller domain.Identity) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: serverName, Version: serverVersion}, nil)
	for _, d := range s.registry.Descriptors() {
		server.AddTool(&mcpsdk.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: toInputSchema(d),
		}, s.callTool(d.Name, caller))
	}
	return server
}

func (s *ToolServer) callTool(name string, caller domain.Identity) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			return toCallToolResult(domain.NewToolError(err.Error())), nil
		}

		result, err := s.executor.Execute(ctx, domain.ToolCall{ToolName: name, Arguments: args}, caller)
		if err != nil {
			s.logger.Printf("ToolServer: tool %s failed: %v", name, err)
			return nil, fmt.Errorf("tool %s failed", name)
		}
		return toCallToolResult(result), nil
	}
}

// decodeArguments keeps numbers as json.Number so integer arguments bind the same way
// they do for classifier output.
func decodeArguments(raw json.RawMessage) (domain.ToolArguments, error) {
	args := domain.ToolArguments{}
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return args, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil {
		return nil, errors.New("arguments must be a JSON object")
	}
	return args, nil
}

func toInputSchema(d domain.ToolDescriptor) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
	for _, p := range d.Parameters {
		prop := &jsonschema.Schema{
			Type:        string(p.Type),
			Description: p.Description,
		}
		if p.Default != nil {
			if raw, err := json.Marshal(p.Default); err == nil {
				prop.Default = raw
			}
		}
		schema.Properties[p.Name] = prop
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return schema
}

func toCallToolResult(result domain.ToolResult) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: result.Message}},
		IsError: result.Status == domain.ToolResultStatus_Error,
	}
}

// InitToolServer initializes the MCP tool server.
type InitToolServer struct {
	Registry domain.ToolRegistry   `resolve:""`
	Executor usecases.ToolExecutor `resolve:""`
	Logger   *log.Logger           `resolve:""`
}

// Initialize registers the ToolServer in the dependency container.
func (i InitToolServer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[*ToolServer](NewToolServer(i.Registry, i.Executor, i.Logger))
	return ctx, nil
}
