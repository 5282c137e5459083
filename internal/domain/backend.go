package domain

import (
	"context"
	"io"
	"time"
)

// BackendKind identifies which candidate inference endpoint was selected.
type BackendKind string

const (
	BackendKind_Local  BackendKind = "local"
	BackendKind_Public BackendKind = "public"
)

// BackendEndpoint is the inference endpoint chosen for a single request.
type BackendEndpoint struct {
	Kind               BackendKind
	BaseURL            string
	LastKnownReachable bool
	CheckedAt          time.Time
	// LoadedModel is the model reported by the health check, empty when unknown.
	LoadedModel string
}

// BackendHealth is the decoded body of the backend's /health endpoint.
type BackendHealth struct {
	Status      string
	LoadedModel string
	// Raw keeps the full health document for the admin status view.
	Raw map[string]any
}

// ModelLoadResult is the backend's answer to a model load request.
type ModelLoadResult struct {
	StatusCode int
	Body       map[string]any
}

// BackendChatRequest is the payload for the backend /chat endpoint.
type BackendChatRequest struct {
	Model       string
	Messages    ChatTurn
	Temperature *float64
}

// GenerationStream is an open streamed generation response.
// The caller owns Body and must close it.
type GenerationStream struct {
	ContentType string
	Body        io.ReadCloser
}

// InferenceBackend is the outbound port to the remote text-generation service.
type InferenceBackend interface {
	// Health calls GET /health on the given base URL.
	Health(ctx context.Context, baseURL string) (BackendHealth, error)
	// ListModels calls GET /models on the given base URL.
	ListModels(ctx context.Context, baseURL string) ([]string, error)
	// LoadModel calls POST /load_model on the given base URL.
	LoadModel(ctx context.Context, baseURL, model string) (ModelLoadResult, error)
	// Chat performs a non-streaming POST /chat and returns the assistant content.
	Chat(ctx context.Context, baseURL string, req BackendChatRequest) (string, error)
	// ChatStream performs a streaming POST /chat. It returns once the response
	// headers are received; a non-2xx status is reported as an error.
	ChatStream(ctx context.Context, baseURL string, req BackendChatRequest) (GenerationStream, error)
}

// BackendLocator selects the inference endpoint for the current request.
type BackendLocator interface {
	// Resolve never fails: any health check failure selects the public endpoint.
	Resolve(ctx context.Context) BackendEndpoint
}
