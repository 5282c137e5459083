package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/inference"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/session"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
)

// NewChatGatewayApp creates and returns a new instance of the chat gateway application.
func NewChatGatewayApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitNoteRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&inference.InitInferenceBackend{},
			&session.InitIdentityResolver{},

			&usecases.InitNoteCreator{},
			&usecases.InitNoteDeleter{},
			&usecases.InitListNotes{},
			&usecases.InitGetNote{},
			&assistant.InitToolRegistry{},

			&usecases.InitBackendLocator{},
			&usecases.InitIntentDispatcher{},
			&usecases.InitToolExecutor{},
			&usecases.InitStreamingRelay{},
			&usecases.InitSubmitChatTurn{},
			&usecases.InitCreateNote{},
			&usecases.InitDeleteNote{},
			&usecases.InitGetBackendStatus{},
			&usecases.InitLoadModel{},
			&usecases.InitRelayOutbox{},
			&usecases.InitTrackNoteActivity{},
			&mcp.InitToolServer{},
		).
		Host(
			&http.GatewayServer{},
			&workers.MessageRelay{},
			&workers.NoteEventSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
