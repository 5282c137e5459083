package inference

// ChatMessage is a backend chat message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature *float64      `json:"temperature,omitempty"`
}

// ChatResponse is a non-streaming /chat reply.
// Ollama-style backends answer with Message, OpenAI-compatible ones with Choices.
type ChatResponse struct {
	Model   string       `json:"model,omitempty"`
	Message *ChatMessage `json:"message,omitempty"`
	Choices []Choice     `json:"choices,omitempty"`
}

// Choice represents an OpenAI-compatible completion choice
type Choice struct {
	Index   int         `json:"index"`
	Message ChatMessage `json:"message"`
}

// Content returns the assistant text of the reply
func (r ChatResponse) Content() (string, bool) {
	if r.Message != nil {
		return r.Message.Content, true
	}
	if len(r.Choices) > 0 {
		return r.Choices[0].Message.Content, true
	}
	return "", false
}

// LoadModelRequest is the body of POST /load_model
type LoadModelRequest struct {
	Model string `json:"model"`
}

// ModelsResponse is the body of GET /models.
// Entries are either plain names or objects with a name field.
type ModelsResponse struct {
	Models []any `json:"models"`
}

// Names returns the model names in the order the backend listed them
func (r ModelsResponse) Names() []string {
	names := make([]string, 0, len(r.Models))
	for _, m := range r.Models {
		switch v := m.(type) {
		case string:
			names = append(names, v)
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				names = append(names, name)
			}
		}
	}
	return names
}
