package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.yaml.in/yaml/v3"
)

// IntentDispatcher decides whether a chat turn should run a tool or go to generation.
type IntentDispatcher interface {
	Classify(ctx context.Context, turn domain.ChatTurn, endpoint domain.BackendEndpoint, model string) (domain.DispatchDecision, error)
}

// IntentDispatcherImpl asks the backend to classify the latest user message.
type IntentDispatcherImpl struct {
	backend  domain.InferenceBackend
	registry domain.ToolRegistry
	logger   *log.Logger
	timeout  time.Duration
}

// NewIntentDispatcherImpl creates a new instance of IntentDispatcherImpl.
func NewIntentDispatcherImpl(
	backend domain.InferenceBackend,
	registry domain.ToolRegistry,
	logger *log.Logger,
	timeout time.Duration,
) IntentDispatcherImpl {
	return IntentDispatcherImpl{
		backend:  backend,
		registry: registry,
		logger:   logger,
		timeout:  timeout,
	}
}

// Classify sends one non-streaming, deterministic classification request and
// parses the reply. Only transport failures are returned as errors.
func (d IntentDispatcherImpl) Classify(ctx context.Context, turn domain.ChatTurn, endpoint domain.BackendEndpoint, model string) (domain.DispatchDecision, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	latest, ok := turn.LatestUserMessage()
	if !ok {
		return domain.NoToolDecision(), nil
	}

	messages, err := d.buildMessages(latest)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DispatchDecision{}, err
	}

	classifyCtx, cancel := context.WithTimeout(spanCtx, d.timeout)
	defer cancel()

	temperature := 0.0
	reply, err := d.backend.Chat(classifyCtx, endpoint.BaseURL, domain.BackendChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: &temperature,
	})
	if err != nil {
		err = domain.NewBackendUnavailableErr("intent classification failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.DispatchDecision{}, err
	}

	decision := parseClassifierReply(reply, d.registry)
	span.SetAttributes(
		attribute.String("dispatch.kind", string(decision.Kind)),
		attribute.String("dispatch.tool", decision.Call.ToolName),
	)
	if decision.Kind == domain.DispatchDecision_ToolCallFailure {
		d.logger.Printf("IntentDispatcher: classifier requested unknown tool %q", decision.Call.ToolName)
	}
	return decision, nil
}

func (d IntentDispatcherImpl) buildMessages(latest domain.ChatMessage) (domain.ChatTurn, error) {
	projection, err := d.registry.Projection()
	if err != nil {
		return nil, fmt.Errorf("failed to project tool registry: %w", err)
	}

	prompt, err := loadPrompt(classifierPrompt, "prompts/classifier.yml")
	if err != nil {
		return nil, err
	}

	messages := make(domain.ChatTurn, 0, len(prompt)+1)
	for _, msg := range prompt {
		if msg.Role == domain.ChatRole_System {
			msg.Content = fmt.Sprintf(msg.Content, NoToolSentinel, projection)
		}
		messages = append(messages, msg)
	}
	return append(messages, domain.ChatMessage{
		Role:    domain.ChatRole_User,
		Content: latest.Content,
	}), nil
}

//go:embed prompts/classifier.yml
var classifierPrompt embed.FS

//go:embed prompts/framing.yml
var framingPrompt embed.FS

// loadPrompt decodes an embedded prompt file into chat messages.
func loadPrompt(fs embed.FS, name string) ([]domain.ChatMessage, error) {
	file, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open prompt %s: %w", name, err)
	}
	defer file.Close() //nolint:errcheck

	var messages []domain.ChatMessage
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode prompt %s: %w", name, err)
	}
	return messages, nil
}

// InitIntentDispatcher initializes the IntentDispatcher use case.
type InitIntentDispatcher struct {
	Backend  domain.InferenceBackend `resolve:""`
	Registry domain.ToolRegistry     `resolve:""`
	Logger   *log.Logger             `resolve:""`
	Timeout  time.Duration           `config:"CLASSIFY_TIMEOUT" default:"15s"`
}

// Initialize registers the IntentDispatcher use case in the dependency container.
func (i InitIntentDispatcher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[IntentDispatcher](NewIntentDispatcherImpl(i.Backend, i.Registry, i.Logger, i.Timeout))
	return ctx, nil
}
