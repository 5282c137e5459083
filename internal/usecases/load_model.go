package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// LoadModel defines the use case for switching the backend's loaded model.
type LoadModel interface {
	Execute(ctx context.Context, model string) (domain.ModelLoadResult, error)
}

// LoadModelImpl implements the LoadModel use case.
type LoadModelImpl struct {
	locator domain.BackendLocator
	backend domain.InferenceBackend
	logger  *log.Logger
}

// NewLoadModelImpl creates a new LoadModelImpl instance.
func NewLoadModelImpl(locator domain.BackendLocator, backend domain.InferenceBackend, logger *log.Logger) LoadModelImpl {
	return LoadModelImpl{
		locator: locator,
		backend: backend,
		logger:  logger,
	}
}

// Execute asks the selected backend to load model and returns its answer as is.
func (uc LoadModelImpl) Execute(ctx context.Context, model string) (domain.ModelLoadResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	model = strings.TrimSpace(model)
	if model == "" {
		err := domain.NewValidationErr("model is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ModelLoadResult{}, err
	}

	endpoint := uc.locator.Resolve(spanCtx)
	result, err := uc.backend.LoadModel(spanCtx, endpoint.BaseURL, model)
	if err != nil {
		err = domain.NewBackendUnavailableErr("model load request failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ModelLoadResult{}, err
	}

	uc.logger.Printf("LoadModel: %s backend answered %d for model %q", endpoint.Kind, result.StatusCode, model)
	return result, nil
}

// InitLoadModel initializes the LoadModel use case.
type InitLoadModel struct {
	Locator domain.BackendLocator   `resolve:""`
	Backend domain.InferenceBackend `resolve:""`
	Logger  *log.Logger             `resolve:""`
}

// Initialize registers the LoadModel use case in the dependency container.
func (i InitLoadModel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[LoadModel](NewLoadModelImpl(i.Locator, i.Backend, i.Logger))
	return ctx, nil
}
