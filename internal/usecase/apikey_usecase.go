package usecase

import (
	"context"
	"time"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAPIKeyInput defines the data required to create a managed API key.
type CreateAPIKeyInput struct {
	User      *entity.User
	Name      string
	Scopes    []entity.Scope
	ExpiresAt *time.Time // nil applies the default far-future expiry
}

// CreateAPIKeyOutput returns the key metadata together with the raw token.
// The token is shown exactly once; only its digest is stored.
type CreateAPIKeyOutput struct {
	Key   *entity.APIKey
	Token string
}

// APIKeyUsecase defines business operations for managed API keys.
type APIKeyUsecase interface {
	// CreateKey issues a long-lived token and records its digest for
	// later revocation checks. Requested scopes must be a subset of the
	// owner's own scopes.
	CreateKey(ctx context.Context, input *CreateAPIKeyInput) (*CreateAPIKeyOutput, error)

	// ListKeys returns all keys owned by a user, including revoked ones.
	ListKeys(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error)

	// RevokeKey permanently revokes a key. Only the owner may revoke it.
	RevokeKey(ctx context.Context, userID, keyID uuid.UUID) error
}
