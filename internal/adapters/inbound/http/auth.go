package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
)

// SessionCookieName is the cookie set by the session service.
const SessionCookieName = "session"

// sessionToken returns the bearer token, falling back to the session cookie.
func sessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		scheme, token, found := strings.Cut(auth, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// Authenticate resolves the caller of every request and stores it in the request context.
func Authenticate(resolver domain.IdentityResolver, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				respondError(w, unauthorized("authentication required"))
				return
			}

			identity, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				var unauthorizedErr *domain.UnauthorizedErr
				if errors.As(err, &unauthorizedErr) {
					respondError(w, unauthorized(unauthorizedErr.Error()))
					return
				}
				logger.Printf("Authenticate: resolving session: %v", err)
				respondError(w, unauthorized("invalid session"))
				return
			}

			next.ServeHTTP(w, r.WithContext(domain.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin rejects callers without the admin flag.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := domain.IdentityFromContext(r.Context())
		if !ok {
			respondError(w, unauthorized("authentication required"))
			return
		}
		if !identity.IsAdmin {
			respondError(w, gen.ErrorResp{
				Error: gen.Error{
					Code:    gen.FORBIDDEN,
					Message: "admin privileges required",
				},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminUnder applies RequireAdmin to the requests whose path starts with prefix.
func RequireAdminUnder(prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		admin := RequireAdmin(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) {
				admin.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(message string) gen.ErrorResp {
	return gen.ErrorResp{
		Error: gen.Error{
			Code:    gen.UNAUTHORIZED,
			Message: message,
		},
	}
}

// callerFrom returns the identity set by Authenticate.
func callerFrom(r *http.Request) (domain.Identity, bool) {
	return domain.IdentityFromContext(r.Context())
}
