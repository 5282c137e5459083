package domain

import (
	"context"
)

// ToolParameterType is the declared type of a tool argument.
type ToolParameterType string

const (
	ToolParameterType_String  ToolParameterType = "string"
	ToolParameterType_Integer ToolParameterType = "integer"
)

// ToolParameter describes one declared tool argument.
type ToolParameter struct {
	Name        string            `json:"name"`
	Type        ToolParameterType `json:"type"`
	Description string            `json:"description"`
	Required    bool              `json:"required"`
	// Default is applied when an optional argument is absent. Nil means no default.
	Default any `json:"default,omitempty"`
}

// ToolDescriptor describes a tool to the classifier and to MCP clients.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ToolParameter `json:"parameters"`
}

// Parameter returns the declared parameter with the given name.
func (d ToolDescriptor) Parameter(name string) (ToolParameter, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ToolParameter{}, false
}

// ToolArguments maps argument names to values.
type ToolArguments map[string]any

// String returns the string argument with the given name.
func (a ToolArguments) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Int returns the integer argument with the given name.
func (a ToolArguments) Int(name string) int {
	switch v := a[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// Has reports whether the argument is present.
func (a ToolArguments) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// ToolCall is a parsed, not yet validated, request to run a tool.
type ToolCall struct {
	ToolName  string
	Arguments ToolArguments
}

// ToolResultStatus is the outcome of a tool invocation.
type ToolResultStatus string

const (
	ToolResultStatus_Success ToolResultStatus = "success"
	ToolResultStatus_Error   ToolResultStatus = "error"
)

// ToolResult is the only tool output ever surfaced to a client.
type ToolResult struct {
	Status  ToolResultStatus `json:"status"`
	Message string           `json:"message"`
}

// NewToolSuccess builds a successful ToolResult.
func NewToolSuccess(message string) ToolResult {
	return ToolResult{Status: ToolResultStatus_Success, Message: message}
}

// NewToolError builds a failed ToolResult.
func NewToolError(message string) ToolResult {
	return ToolResult{Status: ToolResultStatus_Error, Message: message}
}

// Tool is one registry entry: a descriptor bound to its handler.
type Tool interface {
	// Descriptor returns the static tool description.
	Descriptor() ToolDescriptor
	// Invoke runs the tool with validated arguments on behalf of caller.
	Invoke(ctx context.Context, args ToolArguments, caller Identity) (ToolResult, error)
}

// ToolRegistry is the fixed catalog of tools available to the gateway.
type ToolRegistry interface {
	// Lookup returns the tool registered under name.
	Lookup(name string) (Tool, bool)
	// Descriptors returns all descriptors ordered by name.
	Descriptors() []ToolDescriptor
	// Projection serializes the descriptors for the classifier prompt.
	Projection() (string, error)
}
