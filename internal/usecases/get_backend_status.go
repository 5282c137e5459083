package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// BackendStatus is the admin view of the currently selected backend.
type BackendStatus struct {
	Endpoint        domain.BackendEndpoint
	Health          domain.BackendHealth
	AvailableModels []string
}

// GetBackendStatus defines the use case for inspecting the inference backend.
type GetBackendStatus interface {
	Query(ctx context.Context) (BackendStatus, error)
}

// GetBackendStatusImpl implements the GetBackendStatus use case.
type GetBackendStatusImpl struct {
	locator domain.BackendLocator
	backend domain.InferenceBackend
}

// NewGetBackendStatusImpl creates a new GetBackendStatusImpl instance.
func NewGetBackendStatusImpl(locator domain.BackendLocator, backend domain.InferenceBackend) GetBackendStatusImpl {
	return GetBackendStatusImpl{
		locator: locator,
		backend: backend,
	}
}

// Query reports the health and model list of the endpoint a chat turn would use now.
func (uc GetBackendStatusImpl) Query(ctx context.Context) (BackendStatus, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	endpoint := uc.locator.Resolve(spanCtx)

	health, err := uc.backend.Health(spanCtx, endpoint.BaseURL)
	if err != nil {
		err = domain.NewBackendUnavailableErr("backend health check failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return BackendStatus{}, err
	}

	models, err := uc.backend.ListModels(spanCtx, endpoint.BaseURL)
	if err != nil {
		err = domain.NewBackendUnavailableErr("backend model listing failed", err)
		telemetry.RecordErrorAndStatus(span, err)
		return BackendStatus{}, err
	}

	return BackendStatus{
		Endpoint:        endpoint,
		Health:          health,
		AvailableModels: models,
	}, nil
}

// InitGetBackendStatus initializes the GetBackendStatus use case.
type InitGetBackendStatus struct {
	Locator domain.BackendLocator   `resolve:""`
	Backend domain.InferenceBackend `resolve:""`
}

// Initialize registers the GetBackendStatus use case in the dependency container.
func (i InitGetBackendStatus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetBackendStatus](NewGetBackendStatusImpl(i.Locator, i.Backend))
	return ctx, nil
}
