package http

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthenticate(t *testing.T) {
	tests := map[string]struct {
		prepare         func(r *http.Request)
		setExpectations func(resolver *domain.MockIdentityResolver)
		expectedStatus  int
		expectedMessage string
	}{
		"bearer-token": {
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good")
			},
			setExpectations: func(resolver *domain.MockIdentityResolver) {
				resolver.EXPECT().Resolve(mock.Anything, "good").Return(testCaller, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"lowercase-scheme": {
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "bearer good")
			},
			setExpectations: func(resolver *domain.MockIdentityResolver) {
				resolver.EXPECT().Resolve(mock.Anything, "good").Return(testCaller, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"session-cookie": {
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
			},
			setExpectations: func(resolver *domain.MockIdentityResolver) {
				resolver.EXPECT().Resolve(mock.Anything, "cookie-token").Return(testCaller, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"missing-token": {
			prepare:         func(r *http.Request) {},
			setExpectations: func(resolver *domain.MockIdentityResolver) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "authentication required",
		},
		"basic-auth-is-ignored": {
			prepare: func(r *http.Request) {
				r.SetBasicAuth("user", "pass")
			},
			setExpectations: func(resolver *domain.MockIdentityResolver) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "authentication required",
		},
		"expired-session": {
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer old")
			},
			setExpectations: func(resolver *domain.MockIdentityResolver) {
				resolver.EXPECT().Resolve(mock.Anything, "old").
					Return(domain.Identity{}, domain.NewUnauthorizedErr("session expired"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "session expired",
		},
		"resolver-failure": {
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer x")
			},
			setExpectations: func(resolver *domain.MockIdentityResolver) {
				resolver.EXPECT().Resolve(mock.Anything, "x").Return(domain.Identity{}, errors.New("boom"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid session",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resolver := domain.NewMockIdentityResolver(t)
			tt.setExpectations(resolver)

			var seen domain.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = domain.IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()

			Authenticate(resolver, log.New(io.Discard, "", 0))(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, testCaller, seen)
			} else {
				resp := decodeErrorResp(t, w)
				assert.Equal(t, gen.UNAUTHORIZED, resp.Error.Code)
				assert.Equal(t, tt.expectedMessage, resp.Error.Message)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := map[string]struct {
		identity       *domain.Identity
		expectedStatus int
	}{
		"admin": {
			identity:       &adminCaller,
			expectedStatus: http.StatusNoContent,
		},
		"regular-user": {
			identity:       &testCaller,
			expectedStatus: http.StatusForbidden,
		},
		"no-identity": {
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
			if tt.identity != nil {
				req = req.WithContext(domain.WithIdentity(req.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()

			RequireAdmin(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequireAdminUnder(t *testing.T) {
	tests := map[string]struct {
		path           string
		identity       domain.Identity
		expectedStatus int
	}{
		"admin-path-regular-user": {
			path:           "/api/admin/status",
			identity:       testCaller,
			expectedStatus: http.StatusForbidden,
		},
		"admin-path-admin": {
			path:           "/api/admin/status",
			identity:       adminCaller,
			expectedStatus: http.StatusNoContent,
		},
		"other-path-regular-user": {
			path:           "/api/notes",
			identity:       testCaller,
			expectedStatus: http.StatusNoContent,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req = req.WithContext(domain.WithIdentity(req.Context(), tt.identity))
			w := httptest.NewRecorder()

			RequireAdminUnder("/api/admin/")(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestGatewayServer_Routes(t *testing.T) {
	tests := map[string]struct {
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		"healthz-is-public": {
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		"chat-requires-session": {
			method:         http.MethodPost,
			path:           "/api/chat",
			expectedStatus: http.StatusUnauthorized,
		},
		"mcp-requires-session": {
			method:         http.MethodPost,
			path:           "/mcp",
			expectedStatus: http.StatusUnauthorized,
		},
		"admin-route-forbidden-for-users": {
			method:         http.MethodGet,
			path:           "/api/admin/status",
			token:          userToken,
			expectedStatus: http.StatusForbidden,
		},
		"invalid-note-id": {
			method:         http.MethodGet,
			path:           "/api/notes/not-a-uuid",
			token:          userToken,
			expectedStatus: http.StatusBadRequest,
		},
		"unknown-route": {
			method:         http.MethodGet,
			path:           "/api/unknown",
			token:          userToken,
			expectedStatus: http.StatusNotFound,
		},
		"method-not-allowed": {
			method:         http.MethodPut,
			path:           "/api/notes",
			token:          userToken,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := newTestServer(t)
			w := serve(server, httptest.NewRequest(tt.method, tt.path, nil), tt.token)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
