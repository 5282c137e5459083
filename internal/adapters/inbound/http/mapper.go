package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var (
		validationErr  *domain.ValidationErr
		notFoundErr    *domain.NotFoundErr
		unauthorized   *domain.UnauthorizedErr
		forbiddenErr   *domain.ForbiddenErr
		unavailableErr *domain.BackendUnavailableErr
	)
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &unauthorized):
		errResp.Error.Code = gen.UNAUTHORIZED
		errResp.Error.Message = unauthorized.Error()
	case errors.As(err, &forbiddenErr):
		errResp.Error.Code = gen.FORBIDDEN
		errResp.Error.Message = forbiddenErr.Error()
	case errors.As(err, &unavailableErr):
		errResp.Error.Code = gen.SERVICEUNAVAILABLE
		errResp.Error.Message = unavailableErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

// toBackendError maps admin proxy failures. Anything the backend caused is a 502.
func toBackendError(err error) gen.ErrorResp {
	errResp := toError(err)
	if errResp.Error.Code == gen.SERVICEUNAVAILABLE {
		errResp.Error.Code = gen.BADGATEWAY
	}
	return errResp
}

func toNote(n domain.Note) gen.Note {
	return gen.Note{
		Id:        openapi_types.UUID(n.ID),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}

func toChatTurn(messages []gen.ChatMessage) domain.ChatTurn {
	turn := make(domain.ChatTurn, 0, len(messages))
	for _, m := range messages {
		turn = append(turn, domain.ChatMessage{
			Role:    domain.ChatRole(m.Role),
			Content: m.Content,
		})
	}
	return turn
}
