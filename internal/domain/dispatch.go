package domain

// DispatchDecisionKind is the outcome of classifying a chat turn.
type DispatchDecisionKind string

const (
	// DispatchDecision_NoTool routes the turn to generation.
	DispatchDecision_NoTool DispatchDecisionKind = "no_tool"
	// DispatchDecision_ToolCall routes the turn to the tool executor.
	DispatchDecision_ToolCall DispatchDecisionKind = "tool_call"
	// DispatchDecision_ToolCallFailure means the classifier named a tool the registry does not know.
	DispatchDecision_ToolCallFailure DispatchDecisionKind = "tool_call_failure"
)

// DispatchDecision is the structured result of intent classification.
type DispatchDecision struct {
	Kind DispatchDecisionKind
	// Call is set for ToolCall and carries the requested name for ToolCallFailure.
	Call ToolCall
	// Reason explains a ToolCallFailure in user-safe terms.
	Reason string
}

// NoToolDecision returns the decision that routes a turn to generation.
func NoToolDecision() DispatchDecision {
	return DispatchDecision{Kind: DispatchDecision_NoTool}
}
