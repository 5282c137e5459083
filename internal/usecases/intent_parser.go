package usecases

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
)

// NoToolSentinel is the classifier reply that routes a turn to generation.
const NoToolSentinel = "NO_TOOL"

const maxReportedToolNameLength = 64

// unknownToolReason is what the client sees when the classifier names a tool
// outside the registry. The name itself is only logged.
const unknownToolReason = "The assistant requested a tool that is not available."

// classifierReply is the JSON object the classifier is asked to produce.
type classifierReply struct {
	ToolName  any             `json:"tool_name"`
	Arguments json.RawMessage `json:"arguments"`
}

// parseClassifierReply turns untrusted classifier output into a dispatch decision.
// It never fails: anything that is not a well-formed request for a known tool
// becomes NoTool, except a well-formed request naming an unknown tool.
func parseClassifierReply(text string, registry domain.ToolRegistry) domain.DispatchDecision {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == NoToolSentinel {
		return domain.NoToolDecision()
	}

	raw, ok := extractFirstJSONObject(trimmed)
	if !ok {
		return domain.NoToolDecision()
	}

	var reply classifierReply
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	if err := dec.Decode(&reply); err != nil {
		return domain.NoToolDecision()
	}

	name, ok := reply.ToolName.(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" || name == NoToolSentinel {
		return domain.NoToolDecision()
	}

	tool, found := registry.Lookup(name)
	if !found {
		return domain.DispatchDecision{
			Kind:   domain.DispatchDecision_ToolCallFailure,
			Call:   domain.ToolCall{ToolName: truncateRunes(name, maxReportedToolNameLength)},
			Reason: unknownToolReason,
		}
	}

	return domain.DispatchDecision{
		Kind: domain.DispatchDecision_ToolCall,
		Call: domain.ToolCall{
			ToolName:  name,
			Arguments: declaredArguments(reply.Arguments, tool.Descriptor()),
		},
	}
}

// declaredArguments decodes the arguments object and drops undeclared keys.
// Malformed arguments yield an empty map so that required-parameter checks report them.
func declaredArguments(raw json.RawMessage, descriptor domain.ToolDescriptor) domain.ToolArguments {
	args := domain.ToolArguments{}
	if len(raw) == 0 {
		return args
	}

	var decoded map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err != nil {
		return args
	}

	for key, value := range decoded {
		if _, declared := descriptor.Parameter(key); declared {
			args[key] = value
		}
	}
	return args
}

// extractFirstJSONObject returns the first balanced {...} substring of text.
// Braces inside JSON strings are ignored. When an opening brace never closes,
// the scan restarts at the next opening brace.
func extractFirstJSONObject(text string) (string, bool) {
	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end, ok := matchObject(text, start); ok {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func matchObject(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
