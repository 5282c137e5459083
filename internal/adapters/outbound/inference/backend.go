package inference

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// Backend adapts APIClient to the domain.InferenceBackend interface.
type Backend struct {
	client APIClient
	admin  APIClient
}

// NewBackendAdapter creates a new adapter. The client serves the health and chat calls,
// the admin client serves model management.
func NewBackendAdapter(client, admin APIClient) Backend {
	return Backend{client: client, admin: admin}
}

// Health implements domain.InferenceBackend.Health
func (b Backend) Health(ctx context.Context, baseURL string) (domain.BackendHealth, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	raw, err := b.client.Health(spanCtx, baseURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.BackendHealth{}, err
	}

	health := domain.BackendHealth{Raw: raw}
	health.Status, _ = raw["status"].(string)
	health.LoadedModel, _ = raw["loaded_model_name"].(string)
	return health, nil
}

// ListModels implements domain.InferenceBackend.ListModels
func (b Backend) ListModels(ctx context.Context, baseURL string) ([]string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := b.admin.Models(spanCtx, baseURL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return resp.Names(), nil
}

// LoadModel implements domain.InferenceBackend.LoadModel
func (b Backend) LoadModel(ctx context.Context, baseURL, model string) (domain.ModelLoadResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	status, body, err := b.admin.LoadModel(spanCtx, baseURL, LoadModelRequest{Model: model})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ModelLoadResult{}, err
	}
	return domain.ModelLoadResult{StatusCode: status, Body: body}, nil
}

// Chat implements domain.InferenceBackend.Chat
func (b Backend) Chat(ctx context.Context, baseURL string, req domain.BackendChatRequest) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := b.client.Chat(spanCtx, baseURL, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}

	content, ok := resp.Content()
	if !ok {
		err := errors.New("no message in response")
		telemetry.RecordErrorAndStatus(span, err)
		return "", err
	}
	return content, nil
}

// ChatStream implements domain.InferenceBackend.ChatStream
func (b Backend) ChatStream(ctx context.Context, baseURL string, req domain.BackendChatRequest) (domain.GenerationStream, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := b.client.ChatStream(spanCtx, baseURL, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.GenerationStream{}, err
	}

	return domain.GenerationStream{
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}

func toChatRequest(req domain.BackendChatRequest) ChatRequest {
	out := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}
	for i, msg := range req.Messages {
		out.Messages[i] = ChatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return out
}

// InitInferenceBackend initializes the domain.InferenceBackend dependency
type InitInferenceBackend struct {
	HttpClient *http.Client `resolve:""`
	APIKey     string       `config:"BACKEND_API_KEY" default:""`
}

// Initialize registers the InferenceBackend
func (i InitInferenceBackend) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.InferenceBackend](NewBackendAdapter(
		NewAPIClient(i.APIKey, telemetry.NewHttpClient()),
		NewAPIClient(i.APIKey, i.HttpClient),
	))
	return ctx, nil
}
