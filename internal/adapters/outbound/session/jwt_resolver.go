// Package session verifies the session tokens issued by the identity service.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of a session token.
type Claims struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

// JWTIdentityResolver implements domain.IdentityResolver for HS256 signed tokens.
type JWTIdentityResolver struct {
	key    []byte
	parser *jwt.Parser
}

// NewJWTIdentityResolver creates a resolver. An empty issuer disables the issuer check.
func NewJWTIdentityResolver(signingKey []byte, issuer string) JWTIdentityResolver {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5 * time.Second),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return JWTIdentityResolver{
		key:    signingKey,
		parser: jwt.NewParser(opts...),
	}
}

// Resolve verifies the token and returns the caller identity.
func (r JWTIdentityResolver) Resolve(ctx context.Context, token string) (domain.Identity, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	if token == "" {
		return domain.Identity{}, domain.NewUnauthorizedErr("missing session token")
	}

	claims := &Claims{}
	_, err := r.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return r.key, nil
	})
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.NewUnauthorizedErr("session expired")
		}
		return domain.Identity{}, domain.NewUnauthorizedErr("invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Identity{}, domain.NewUnauthorizedErr("invalid session subject")
	}

	return domain.Identity{
		UserID:  userID,
		Email:   claims.Email,
		IsAdmin: claims.Admin,
	}, nil
}

// SignToken issues a session token for id. The gateway itself never issues tokens;
// it is used by tests and local tooling that stand in for the identity service.
func SignToken(signingKey []byte, issuer string, id domain.Identity, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		Email: id.Email,
		Admin: id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// InitIdentityResolver registers the domain.IdentityResolver.
type InitIdentityResolver struct {
	SigningKey string `config:"SESSION_SIGNING_KEY"`
	Issuer     string `config:"SESSION_ISSUER" default:""`
}

// Initialize registers the JWTIdentityResolver in the dependency container.
func (i InitIdentityResolver) Initialize(ctx context.Context) (context.Context, error) {
	if len(i.SigningKey) < 16 {
		return ctx, errors.New("SESSION_SIGNING_KEY must be at least 16 characters")
	}
	depend.Register[domain.IdentityResolver](NewJWTIdentityResolver([]byte(i.SigningKey), i.Issuer))
	return ctx, nil
}
