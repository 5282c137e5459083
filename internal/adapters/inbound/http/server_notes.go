package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (api GatewayServer) ListNotes(w http.ResponseWriter, r *http.Request, params gen.ListNotesParams) {
	caller, ok := callerFrom(r)
	if !ok {
		respondError(w, unauthorized("authentication required"))
		return
	}

	opts := []usecases.ListNotesOptions{}
	if params.Q != nil && *params.Q != "" {
		opts = append(opts, usecases.WithSearchQuery(*params.Q))
	}
	if params.Since != nil && *params.Since != "" {
		opts = append(opts, usecases.WithSince(*params.Since))
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	notes, err := api.ListNotesUseCase.Query(r.Context(), caller.UserID, limit, opts...)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := gen.ListNotesResp{Items: []gen.Note{}}
	for _, n := range notes {
		resp.Items = append(resp.Items, toNote(n))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api GatewayServer) CreateNote(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		respondError(w, unauthorized("authentication required"))
		return
	}

	req := gen.CreateNoteJSONRequestBody{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest("invalid request body: "+err.Error()))
		return
	}

	note, err := api.CreateNoteUseCase.Execute(r.Context(), caller.UserID, req.Title, req.Content)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, gen.CreateNoteResp{
		Id:      openapi_types.UUID(note.ID),
		Message: fmt.Sprintf("Note %q saved.", note.Title),
	})
}

func (api GatewayServer) GetNote(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	caller, ok := callerFrom(r)
	if !ok {
		respondError(w, unauthorized("authentication required"))
		return
	}

	note, err := api.GetNoteUseCase.Query(r.Context(), caller.UserID, uuid.UUID(id))
	if err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, toNote(note))
}

func (api GatewayServer) DeleteNote(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	caller, ok := callerFrom(r)
	if !ok {
		respondError(w, unauthorized("authentication required"))
		return
	}

	if err := api.DeleteNoteUseCase.Execute(r.Context(), caller.UserID, uuid.UUID(id)); err != nil {
		respondError(w, toError(err))
		return
	}
	respondJSON(w, http.StatusOK, gen.MessageResp{Message: fmt.Sprintf("Note %s deleted.", id)})
}
