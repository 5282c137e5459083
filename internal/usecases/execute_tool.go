package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

const genericToolErrorMessage = "The action could not be completed. Please try again later."

// ToolExecutor validates a tool call and runs it on behalf of the caller.
type ToolExecutor interface {
	// Execute returns a ToolResult for every outcome a client may see. The error
	// return is reserved for failures that must abort the turn.
	Execute(ctx context.Context, call domain.ToolCall, caller domain.Identity) (domain.ToolResult, error)
}

// ToolExecutorImpl is the implementation of ToolExecutor over a ToolRegistry.
type ToolExecutorImpl struct {
	registry domain.ToolRegistry
	logger   *log.Logger
}

// NewToolExecutorImpl creates a new instance of ToolExecutorImpl.
func NewToolExecutorImpl(registry domain.ToolRegistry, logger *log.Logger) ToolExecutorImpl {
	return ToolExecutorImpl{
		registry: registry,
		logger:   logger,
	}
}

// Execute looks up the tool, binds the arguments to its descriptor and invokes it.
func (e ToolExecutorImpl) Execute(ctx context.Context, call domain.ToolCall, caller domain.Identity) (domain.ToolResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.String("tool.name", call.ToolName))

	tool, found := e.registry.Lookup(call.ToolName)
	if !found {
		result := domain.NewToolError(fmt.Sprintf("Unknown tool %q.", call.ToolName))
		RecordToolInvocation(spanCtx, call.ToolName, result.Status)
		return result, nil
	}

	args, err := BindToolArguments(tool.Descriptor(), call.Arguments)
	if err != nil {
		result := domain.NewToolError(err.Error())
		RecordToolInvocation(spanCtx, call.ToolName, result.Status)
		return result, nil
	}

	result, err := e.invoke(spanCtx, tool, args, caller)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolResult{}, err
	}

	RecordToolInvocation(spanCtx, call.ToolName, result.Status)
	return result, nil
}

// invoke runs the tool and converts its error into a user-safe ToolResult.
// A panic inside the tool is returned as an error.
func (e ToolExecutorImpl) invoke(ctx context.Context, tool domain.Tool, args domain.ToolArguments, caller domain.Identity) (result domain.ToolResult, err error) {
	name := tool.Descriptor().Name
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", name, r)
		}
	}()

	result, toolErr := tool.Invoke(ctx, args, caller)
	if toolErr == nil {
		return result, nil
	}

	if msg, ok := userSafeMessage(toolErr); ok {
		return domain.NewToolError(msg), nil
	}

	e.logger.Printf("ToolExecutor: tool %s failed for user %s: %v", name, caller.UserID, toolErr)
	return domain.NewToolError(genericToolErrorMessage), nil
}

func userSafeMessage(err error) (string, bool) {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		forbiddenErr  *domain.ForbiddenErr
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error(), true
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error(), true
	case errors.As(err, &forbiddenErr):
		return forbiddenErr.Error(), true
	}
	return "", false
}

// BindToolArguments coerces raw arguments to the declared parameter types,
// applies defaults and checks required parameters. Undeclared keys are dropped.
func BindToolArguments(descriptor domain.ToolDescriptor, raw domain.ToolArguments) (domain.ToolArguments, error) {
	bound := domain.ToolArguments{}
	for _, param := range descriptor.Parameters {
		value, present := raw[param.Name]
		if present && value != nil {
			coerced, err := coerceArgument(param, value)
			if err != nil {
				return nil, err
			}
			bound[param.Name] = coerced
			continue
		}

		if param.Required {
			return nil, domain.NewValidationErr(fmt.Sprintf("missing required argument %q", param.Name))
		}
		if param.Default != nil {
			bound[param.Name] = param.Default
		}
	}
	return bound, nil
}

func coerceArgument(param domain.ToolParameter, value any) (any, error) {
	switch param.Type {
	case domain.ToolParameterType_String:
		if s, ok := coerceString(value); ok {
			return s, nil
		}
		return nil, domain.NewValidationErr(fmt.Sprintf("argument %q must be a string", param.Name))
	case domain.ToolParameterType_Integer:
		if n, ok := coerceInt(value); ok {
			return n, nil
		}
		return nil, domain.NewValidationErr(fmt.Sprintf("argument %q must be an integer", param.Name))
	}
	return nil, domain.NewValidationErr(fmt.Sprintf("argument %q has an unsupported type", param.Name))
}

func coerceString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

func coerceInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return integralFloat(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return integralFloat(f)
	}
	return 0, false
}

func integralFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up, so the upper bound is -math.MinInt, exclusive.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

// InitToolExecutor initializes the ToolExecutor use case.
type InitToolExecutor struct {
	Registry domain.ToolRegistry `resolve:""`
	Logger   *log.Logger         `resolve:""`
}

// Initialize registers the ToolExecutor use case in the dependency container.
func (i InitToolExecutor) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ToolExecutor](NewToolExecutorImpl(i.Registry, i.Logger))
	return ctx, nil
}
