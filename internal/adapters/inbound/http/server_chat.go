package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
)

// maxChatRequestBytes bounds the body of a chat turn, history included.
const maxChatRequestBytes = 1 << 20

// SubmitChat handles POST /api/chat. Once the turn has started every outcome,
// including failures, is written by the use case through the turn writer.
func (api GatewayServer) SubmitChat(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(r)
	if !ok {
		respondError(w, unauthorized("authentication required"))
		return
	}

	req := gen.SubmitChatJSONRequestBody{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatRequestBytes)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondJSON(w, http.StatusRequestEntityTooLarge, gen.ErrorResp{
				Error: gen.Error{
					Code:    gen.BADREQUEST,
					Message: "request body too large",
				},
			})
			return
		}
		respondError(w, badRequest("invalid request body: "+err.Error()))
		return
	}

	tw, ok := newFlushingTurnWriter(w)
	if !ok {
		respondError(w, gen.ErrorResp{
			Error: gen.Error{
				Code:    gen.INTERNALERROR,
				Message: "streaming not supported",
			},
		})
		return
	}

	err := api.SubmitChatTurnUseCase.Execute(r.Context(), toChatTurn(req.Messages), caller, tw)
	if err != nil {
		api.Logger.Printf("GatewayServer: chat turn ended early: %v", err)
	}
}
