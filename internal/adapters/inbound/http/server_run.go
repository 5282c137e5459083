package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*GatewayServer)(nil)

// GatewayServer is the HTTP front of the chat gateway: chat turns, notes, admin and MCP.
type GatewayServer struct {
	Port                    int                       `config:"HTTP_PORT" default:"8080"`
	Logger                  *log.Logger               `resolve:""`
	IdentityResolver        domain.IdentityResolver   `resolve:""`
	SubmitChatTurnUseCase   usecases.SubmitChatTurn   `resolve:""`
	ListNotesUseCase        usecases.ListNotes        `resolve:""`
	GetNoteUseCase          usecases.GetNote          `resolve:""`
	CreateNoteUseCase       usecases.CreateNote       `resolve:""`
	DeleteNoteUseCase       usecases.DeleteNote       `resolve:""`
	GetBackendStatusUseCase usecases.GetBackendStatus `resolve:""`
	LoadModelUseCase        usecases.LoadModel        `resolve:""`
	ToolServer              *mcp.ToolServer           `resolve:""`
}

// Handler builds the routing tree. Everything under /api and /mcp requires a session,
// everything under /api/admin/ requires an admin.
func (api GatewayServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", api.Healthz)

	authenticate := Authenticate(api.IdentityResolver, api.Logger)
	if api.ToolServer != nil {
		mux.Handle("/mcp", telemetry.Middleware("chatgateway-mcp")(authenticate(api.ToolServer)))
	}

	// Create the OpenAPI handler with auth and telemetry middlewares, the last one runs first
	return gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			RequireAdminUnder("/api/admin/"),
			authenticate,
			telemetry.Middleware("chatgateway-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			respondError(w, badRequest(err.Error()))
		},
	})
}

// Healthz reports that the process is serving requests.
func (api GatewayServer) Healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.MessageResp{Message: "ok"})
}

// Run starts the HTTP server for the GatewayServer.
func (api GatewayServer) Run(ctx context.Context) error {
	// Apply CORS at the top-level so preflight requests hit it, too.
	h := cors.AllowAll().Handler(api.Handler())

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("GatewayServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("GatewayServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("GatewayServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the GatewayServer is ready by performing a health check.
func (api GatewayServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
