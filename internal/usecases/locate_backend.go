package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// BackendLocatorImpl checks the local backend on every call and falls back to the public one.
type BackendLocatorImpl struct {
	backend       domain.InferenceBackend
	timeProvider  domain.CurrentTimeProvider
	logger        *log.Logger
	localURL      string
	publicURL     string
	healthTimeout time.Duration
}

// NewBackendLocatorImpl creates a new instance of BackendLocatorImpl.
func NewBackendLocatorImpl(
	backend domain.InferenceBackend,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	localURL, publicURL string,
	healthTimeout time.Duration,
) BackendLocatorImpl {
	return BackendLocatorImpl{
		backend:       backend,
		timeProvider:  timeProvider,
		logger:        logger,
		localURL:      localURL,
		publicURL:     publicURL,
		healthTimeout: healthTimeout,
	}
}

// Resolve returns the local endpoint when a single bounded health check succeeds,
// and the public endpoint otherwise. There is no retry and no cached state.
func (bl BackendLocatorImpl) Resolve(ctx context.Context) domain.BackendEndpoint {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	endpoint := bl.checkLocal(spanCtx)
	span.SetAttributes(
		attribute.String("backend.kind", string(endpoint.Kind)),
		attribute.Bool("backend.reachable", endpoint.LastKnownReachable),
	)
	RecordBackendResolution(spanCtx, endpoint.Kind)
	return endpoint
}

func (bl BackendLocatorImpl) checkLocal(ctx context.Context) domain.BackendEndpoint {
	public := domain.BackendEndpoint{
		Kind:    domain.BackendKind_Public,
		BaseURL: bl.publicURL,
	}

	if bl.localURL == "" {
		public.CheckedAt = bl.timeProvider.Now()
		return public
	}

	healthCtx, cancel := context.WithTimeout(ctx, bl.healthTimeout)
	defer cancel()

	health, err := bl.backend.Health(healthCtx, bl.localURL)
	now := bl.timeProvider.Now()
	if err != nil {
		bl.logger.Printf("BackendLocator: local backend unreachable, using public endpoint: %v", err)
		public.CheckedAt = now
		return public
	}

	return domain.BackendEndpoint{
		Kind:               domain.BackendKind_Local,
		BaseURL:            bl.localURL,
		LastKnownReachable: true,
		CheckedAt:          now,
		LoadedModel:        health.LoadedModel,
	}
}

// InitBackendLocator initializes the BackendLocator and registers it in the dependency container.
type InitBackendLocator struct {
	Backend       domain.InferenceBackend    `resolve:""`
	TimeProvider  domain.CurrentTimeProvider `resolve:""`
	Logger        *log.Logger                `resolve:""`
	LocalURL      string                     `config:"BACKEND_LOCAL_URL" default:""`
	PublicURL     string                     `config:"BACKEND_PUBLIC_URL"`
	HealthTimeout time.Duration              `config:"BACKEND_HEALTH_TIMEOUT" default:"1s"`
}

// Initialize registers the BackendLocatorImpl as domain.BackendLocator.
func (i InitBackendLocator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.BackendLocator](NewBackendLocatorImpl(
		i.Backend,
		i.TimeProvider,
		i.Logger,
		i.LocalURL,
		i.PublicURL,
		i.HealthTimeout,
	))
	return ctx, nil
}
