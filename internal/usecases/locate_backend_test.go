package usecases

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/inference"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBackendLocatorImpl_Resolve(t *testing.T) {
	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		localURL        string
		setExpectations func(backend *domain.MockInferenceBackend)
		expected        domain.BackendEndpoint
	}{
		"local-healthy": {
			localURL: "http://local:8000",
			setExpectations: func(backend *domain.MockInferenceBackend) {
				backend.EXPECT().Health(mock.Anything, "http://local:8000").
					RunAndReturn(func(ctx context.Context, _ string) (domain.BackendHealth, error) {
						_, hasDeadline := ctx.Deadline()
						assert.True(t, hasDeadline)
						return domain.BackendHealth{Status: "ok", LoadedModel: "llama-3"}, nil
					})
			},
			expected: domain.BackendEndpoint{
				Kind:               domain.BackendKind_Local,
				BaseURL:            "http://local:8000",
				LastKnownReachable: true,
				CheckedAt:          now,
				LoadedModel:        "llama-3",
			},
		},
		"local-unreachable": {
			localURL: "http://local:8000",
			setExpectations: func(backend *domain.MockInferenceBackend) {
				backend.EXPECT().Health(mock.Anything, "http://local:8000").
					Return(domain.BackendHealth{}, errors.New("context deadline exceeded")).Once()
			},
			expected: domain.BackendEndpoint{
				Kind:      domain.BackendKind_Public,
				BaseURL:   "https://public.example.com",
				CheckedAt: now,
			},
		},
		"no-local-configured": {
			setExpectations: func(*domain.MockInferenceBackend) {},
			expected: domain.BackendEndpoint{
				Kind:      domain.BackendKind_Public,
				BaseURL:   "https://public.example.com",
				CheckedAt: now,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			backend := domain.NewMockInferenceBackend(t)
			tt.setExpectations(backend)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(now)

			locator := NewBackendLocatorImpl(
				backend,
				timeProvider,
				log.New(&bytes.Buffer{}, "", 0),
				tt.localURL,
				"https://public.example.com",
				100*time.Millisecond,
			)

			assert.Equal(t, tt.expected, locator.Resolve(context.Background()))
		})
	}
}

func TestBackendLocatorImpl_Resolve_PlainTextHealth(t *testing.T) {
	local := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte("OK"))
	}))
	defer local.Close()

	client := inference.NewAPIClient("", local.Client())
	now := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC)
	timeProvider := domain.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(now)

	locator := NewBackendLocatorImpl(
		inference.NewBackendAdapter(client, client),
		timeProvider,
		log.New(&bytes.Buffer{}, "", 0),
		local.URL,
		"https://public.example.com",
		time.Second,
	)

	endpoint := locator.Resolve(context.Background())
	assert.Equal(t, domain.BackendKind_Local, endpoint.Kind)
	assert.Equal(t, local.URL, endpoint.BaseURL)
	assert.True(t, endpoint.LastKnownReachable)
	assert.Empty(t, endpoint.LoadedModel)
}
