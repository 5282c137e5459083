package domain

// RelayEventType names a synthesized single-frame event.
type RelayEventType string

const (
	RelayEventType_ToolResult RelayEventType = "tool_result"
	RelayEventType_Error      RelayEventType = "error"
)

// RelayErrorCategory is the coarse, client-visible class of a failed turn.
type RelayErrorCategory string

const (
	RelayErrorCategory_InvalidTurn           RelayErrorCategory = "invalid_turn"
	RelayErrorCategory_DispatcherUnavailable RelayErrorCategory = "dispatcher_unavailable"
	RelayErrorCategory_ModelUnavailable      RelayErrorCategory = "model_unavailable"
	RelayErrorCategory_GenerationFailed      RelayErrorCategory = "generation_failed"
	RelayErrorCategory_Internal              RelayErrorCategory = "internal"
)

// RelayPayload is the JSON body of a synthesized event.
type RelayPayload struct {
	Status   ToolResultStatus   `json:"status"`
	Message  string             `json:"message"`
	Tool     string             `json:"tool,omitempty"`
	Category RelayErrorCategory `json:"category,omitempty"`
}

// RelayEvent is one synthesized event plus the HTTP status it is delivered with.
type RelayEvent struct {
	Type       RelayEventType
	StatusCode int
	Payload    RelayPayload
}

// TurnWriter is the client side of a chat turn response.
type TurnWriter interface {
	// Begin sends the status code and content type. It must be called once, before Write.
	Begin(statusCode int, contentType string) error
	// Write sends a chunk to the client and flushes it immediately.
	Write(chunk []byte) error
}
