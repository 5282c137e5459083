package domain

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller supplied by the session service.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}

// IdentityResolver verifies a session token and returns the caller behind it.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

type identityCtxKey struct{}

// WithIdentity returns a context carrying the caller identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, id)
}

// IdentityFromContext returns the caller identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey{}).(Identity)
	return id, ok
}
