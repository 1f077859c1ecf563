package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAPIKeyNotFound is returned when an API key record is not found.
var ErrAPIKeyNotFound = errors.New("api key not found")

// APIKeyRepository defines persistence operations for managed API keys.
// The key material itself is never stored, only the keyed digest of the
// issued token.
type APIKeyRepository interface {
	// FindByTokenDigest retrieves an API key record by the digest of its
	// token. Revoked and expired keys are still returned so the caller can
	// report the reason for rejection.
	FindByTokenDigest(ctx context.Context, digest string) (*entity.APIKey, error)

	// FindByID retrieves an API key record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.APIKey, error)

	// FindByUserID retrieves all API keys belonging to a user, including
	// revoked ones, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error)

	// Create persists a new API key record.
	Create(ctx context.Context, key *entity.APIKey) error

	// Revoke marks an API key as revoked. Revocation is permanent.
	Revoke(ctx context.Context, id uuid.UUID) error
}
