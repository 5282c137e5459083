package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// TurnState is a step of the chat turn state machine.
type TurnState string

const (
	TurnState_Start         TurnState = "START"
	TurnState_Resolving     TurnState = "RESOLVING"
	TurnState_Classifying   TurnState = "CLASSIFYING"
	TurnState_ExecutingTool TurnState = "EXECUTING_TOOL"
	TurnState_Generating    TurnState = "GENERATING"
	TurnState_Done          TurnState = "DONE"
	TurnState_Error         TurnState = "ERROR"
)

const (
	turnOutcomeTool       = "tool"
	turnOutcomeGeneration = "generation"
	unknownToolMetricName = "unknown"
)

// SubmitChatTurn handles one chat request from validation to the final byte.
type SubmitChatTurn interface {
	// Execute writes the whole response through w. An error is returned only when
	// the response could not be completed; the client has already been answered.
	Execute(ctx context.Context, turn domain.ChatTurn, caller domain.Identity, w domain.TurnWriter) error
}

// SubmitChatTurnImpl is the gateway orchestrator.
type SubmitChatTurnImpl struct {
	locator       domain.BackendLocator
	backend       domain.InferenceBackend
	dispatcher    IntentDispatcher
	executor      ToolExecutor
	relay         StreamingRelay
	logger        *log.Logger
	model         string
	lookupTimeout time.Duration
	createUUID    func() uuid.UUID
}

// NewSubmitChatTurnImpl creates a new instance of SubmitChatTurnImpl.
func NewSubmitChatTurnImpl(
	locator domain.BackendLocator,
	backend domain.InferenceBackend,
	dispatcher IntentDispatcher,
	executor ToolExecutor,
	relay StreamingRelay,
	logger *log.Logger,
	model string,
	lookupTimeout time.Duration,
) SubmitChatTurnImpl {
	return SubmitChatTurnImpl{
		locator:       locator,
		backend:       backend,
		dispatcher:    dispatcher,
		executor:      executor,
		relay:         relay,
		logger:        logger,
		model:         model,
		lookupTimeout: lookupTimeout,
		createUUID:    uuid.New,
	}
}

// turnRun carries the per-turn state through the state machine.
type turnRun struct {
	id     uuid.UUID
	state  TurnState
	logger *log.Logger
}

func (r *turnRun) moveTo(next TurnState) {
	r.logger.Printf("SubmitChatTurn: turn %s %s -> %s", r.id, r.state, next)
	r.state = next
}

// Execute runs the turn: resolve a backend, classify the latest user message,
// then either run a tool or stream a generated answer.
func (sct SubmitChatTurnImpl) Execute(ctx context.Context, turn domain.ChatTurn, caller domain.Identity, w domain.TurnWriter) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	run := &turnRun{id: sct.createUUID(), state: TurnState_Start, logger: sct.logger}
	span.SetAttributes(attribute.String("turn.id", run.id.String()))

	if err := turn.Validate(); err != nil {
		return sct.fail(spanCtx, run, w, http.StatusBadRequest, domain.RelayErrorCategory_InvalidTurn, err.Error(), err)
	}

	run.moveTo(TurnState_Resolving)
	endpoint := sct.locator.Resolve(spanCtx)
	model, err := sct.selectModel(spanCtx, endpoint)
	if err != nil {
		return sct.fail(spanCtx, run, w, http.StatusServiceUnavailable, domain.RelayErrorCategory_ModelUnavailable,
			"No language model is currently available.", err)
	}
	span.SetAttributes(
		attribute.String("backend.kind", string(endpoint.Kind)),
		attribute.String("backend.model", model),
	)

	run.moveTo(TurnState_Classifying)
	decision, err := sct.dispatcher.Classify(spanCtx, turn, endpoint, model)
	if err != nil {
		return sct.fail(spanCtx, run, w, http.StatusServiceUnavailable, domain.RelayErrorCategory_DispatcherUnavailable,
			"The assistant is temporarily unavailable. Please try again later.", err)
	}

	switch decision.Kind {
	case domain.DispatchDecision_ToolCall, domain.DispatchDecision_ToolCallFailure:
		return sct.executeTool(spanCtx, run, w, decision, caller)
	default:
		return sct.generate(spanCtx, run, w, turn, endpoint, model)
	}
}

func (sct SubmitChatTurnImpl) executeTool(ctx context.Context, run *turnRun, w domain.TurnWriter, decision domain.DispatchDecision, caller domain.Identity) error {
	run.moveTo(TurnState_ExecutingTool)

	var result domain.ToolResult
	tool := decision.Call.ToolName
	if decision.Kind == domain.DispatchDecision_ToolCallFailure {
		// the name came from the classifier and is not echoed back
		tool = ""
		result = domain.NewToolError(decision.Reason)
		RecordToolInvocation(ctx, unknownToolMetricName, result.Status)
	} else {
		var err error
		result, err = sct.executor.Execute(ctx, decision.Call, caller)
		if err != nil {
			return sct.fail(ctx, run, w, http.StatusInternalServerError, domain.RelayErrorCategory_Internal,
				"An internal error occurred.", err)
		}
	}

	err := sct.relay.SingleFrame(ctx, w, domain.RelayEvent{
		Type:       domain.RelayEventType_ToolResult,
		StatusCode: http.StatusOK,
		Payload: domain.RelayPayload{
			Status:  result.Status,
			Message: result.Message,
			Tool:    tool,
		},
	})
	run.moveTo(TurnState_Done)
	RecordChatTurn(ctx, turnOutcomeTool)
	return err
}

func (sct SubmitChatTurnImpl) generate(ctx context.Context, run *turnRun, w domain.TurnWriter, turn domain.ChatTurn, endpoint domain.BackendEndpoint, model string) error {
	run.moveTo(TurnState_Generating)

	messages := turn
	if !turn.StartsWithSystem() {
		framing, err := loadFraming()
		if err != nil {
			return sct.fail(ctx, run, w, http.StatusInternalServerError, domain.RelayErrorCategory_Internal,
				"An internal error occurred.", err)
		}
		messages = turn.WithSystemFraming(framing)
	}

	err := sct.relay.Passthrough(ctx, w, endpoint, domain.BackendChatRequest{
		Model:    model,
		Messages: messages,
	})
	if errors.Is(err, ErrGenerationFailed) {
		run.moveTo(TurnState_Error)
		RecordChatTurn(ctx, string(domain.RelayErrorCategory_GenerationFailed))
		return err
	}
	run.moveTo(TurnState_Done)
	RecordChatTurn(ctx, turnOutcomeGeneration)
	return err
}

// selectModel prefers the configured model, then the model reported by the
// backend. The public endpoint is asked only when no model is known yet.
func (sct SubmitChatTurnImpl) selectModel(ctx context.Context, endpoint domain.BackendEndpoint) (string, error) {
	if sct.model != "" {
		return sct.model, nil
	}
	if endpoint.LoadedModel != "" {
		return endpoint.LoadedModel, nil
	}
	if endpoint.Kind == domain.BackendKind_Local {
		return "", errors.New("local backend reports no loaded model")
	}

	lookupCtx, cancel := context.WithTimeout(ctx, sct.lookupTimeout)
	defer cancel()

	health, err := sct.backend.Health(lookupCtx, endpoint.BaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to query public backend health: %w", err)
	}
	if strings.TrimSpace(health.LoadedModel) == "" {
		return "", errors.New("public backend reports no loaded model")
	}
	return health.LoadedModel, nil
}

// fail moves the turn to ERROR and answers the client with one error frame.
// The cause is logged, never sent. A client that went away gets no frame.
func (sct SubmitChatTurnImpl) fail(ctx context.Context, run *turnRun, w domain.TurnWriter, status int, category domain.RelayErrorCategory, message string, cause error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		sct.logger.Printf("SubmitChatTurn: turn %s canceled by client in %s: %v", run.id, run.state, cause)
		return nil
	}

	run.moveTo(TurnState_Error)
	sct.logger.Printf("SubmitChatTurn: turn %s failed with %s: %v", run.id, category, cause)
	RecordChatTurn(ctx, string(category))

	return sct.relay.SingleFrame(ctx, w, domain.RelayEvent{
		Type:       domain.RelayEventType_Error,
		StatusCode: status,
		Payload: domain.RelayPayload{
			Status:   domain.ToolResultStatus_Error,
			Category: category,
			Message:  message,
		},
	})
}

func loadFraming() (domain.ChatMessage, error) {
	messages, err := loadPrompt(framingPrompt, "prompts/framing.yml")
	if err != nil {
		return domain.ChatMessage{}, err
	}
	if len(messages) == 0 {
		return domain.ChatMessage{}, errors.New("framing prompt is empty")
	}
	return messages[0], nil
}

// InitSubmitChatTurn initializes the SubmitChatTurn use case.
type InitSubmitChatTurn struct {
	Locator       domain.BackendLocator   `resolve:""`
	Backend       domain.InferenceBackend `resolve:""`
	Dispatcher    IntentDispatcher        `resolve:""`
	Executor      ToolExecutor            `resolve:""`
	Relay         StreamingRelay          `resolve:""`
	Logger        *log.Logger             `resolve:""`
	Model         string                  `config:"LLM_MODEL" default:""`
	LookupTimeout time.Duration           `config:"MODEL_LOOKUP_TIMEOUT" default:"5s"`
}

// Initialize registers the SubmitChatTurn use case in the dependency container.
func (i InitSubmitChatTurn) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SubmitChatTurn](NewSubmitChatTurnImpl(
		i.Locator,
		i.Backend,
		i.Dispatcher,
		i.Executor,
		i.Relay,
		i.Logger,
		i.Model,
		i.LookupTimeout,
	))
	return ctx, nil
}
