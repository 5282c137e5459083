package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
)

func (api GatewayServer) GetBackendStatus(w http.ResponseWriter, r *http.Request) {
	status, err := api.GetBackendStatusUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("GatewayServer: backend status failed: %v", err)
		respondError(w, toBackendError(err))
		return
	}

	health := status.Health.Raw
	if health == nil {
		health = map[string]any{"status": status.Health.Status}
	}
	models := status.AvailableModels
	if models == nil {
		models = []string{}
	}

	respondJSON(w, http.StatusOK, gen.BackendStatusResp{
		Backend: gen.BackendRef{
			Kind:    string(status.Endpoint.Kind),
			BaseUrl: status.Endpoint.BaseURL,
		},
		Status:          health,
		AvailableModels: models,
	})
}

// LoadModel proxies the request and relays the backend's own status code and body.
func (api GatewayServer) LoadModel(w http.ResponseWriter, r *http.Request) {
	req := gen.LoadModelJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body: "+err.Error()))
		return
	}
	if strings.TrimSpace(req.Model) == "" {
		respondError(w, badRequest("model is required"))
		return
	}

	result, err := api.LoadModelUseCase.Execute(r.Context(), req.Model)
	if err != nil {
		api.Logger.Printf("GatewayServer: load model %q failed: %v", req.Model, err)
		respondError(w, toBackendError(err))
		return
	}

	body := result.Body
	if body == nil {
		body = map[string]any{}
	}
	respondJSON(w, result.StatusCode, body)
}
