package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testCaller = domain.Identity{
		UserID: uuid.MustParse("22222222-0000-4000-8000-000000000002"),
		Email:  "user@example.com",
	}
	adminCaller = domain.Identity{
		UserID:  uuid.MustParse("33333333-0000-4000-8000-000000000003"),
		Email:   "admin@example.com",
		IsAdmin: true,
	}
	domainNote = domain.Note{
		ID:        uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		OwnerID:   testCaller.UserID,
		Title:     "Einkauf",
		Content:   "Milch kaufen",
		CreatedAt: time.Date(2026, 1, 22, 10, 30, 0, 0, time.UTC),
	}
)

// newTestServer returns a server whose identity resolver accepts userToken and adminToken.
func newTestServer(t *testing.T) *GatewayServer {
	t.Helper()

	resolver := domain.NewMockIdentityResolver(t)
	resolver.EXPECT().Resolve(mock.Anything, userToken).Return(testCaller, nil).Maybe()
	resolver.EXPECT().Resolve(mock.Anything, adminToken).Return(adminCaller, nil).Maybe()

	return &GatewayServer{
		Logger:           log.New(io.Discard, "", 0),
		IdentityResolver: resolver,
	}
}

func serve(server *GatewayServer, req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}

func decodeErrorResp(t *testing.T, w *httptest.ResponseRecorder) gen.ErrorResp {
	t.Helper()

	var resp gen.ErrorResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v", err)
	}
	return resp
}
