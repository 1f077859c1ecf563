package usecase

import (
	"context"

	"plateful/internal/domain/entity"
)

// AuthResult is the authenticated identity attached to a request.
type AuthResult struct {
	User     *entity.User
	Scopes   []entity.Scope
	IsAPIKey bool
	APIKey   *entity.APIKey // set only when IsAPIKey is true
}

// HasScope reports whether the request was granted a scope.
func (r *AuthResult) HasScope(scope entity.Scope) bool {
	return entity.HasScope(r.Scopes, scope)
}

// AuthUsecase turns a bearer token into an authenticated identity.
type AuthUsecase interface {
	// Authenticate verifies a token, checks API key revocation state when
	// the token is a managed key, and resolves the owning user.
	Authenticate(ctx context.Context, token string) (*AuthResult, error)
}
