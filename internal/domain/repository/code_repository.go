package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"
)

// ErrCodeNotFound is returned when no verification code exists for an address.
var ErrCodeNotFound = errors.New("verification code not found")

// CodeRepository defines persistence operations for login verification codes.
// Codes are keyed by the digest of the normalized email address, so at most
// one code exists per address at any time.
type CodeRepository interface {
	// FindByEmailDigest retrieves the current code for an address, or
	// ErrCodeNotFound when none exists.
	FindByEmailDigest(ctx context.Context, digest string) (*entity.VerificationCode, error)

	// Save inserts or replaces the code for its address.
	Save(ctx context.Context, code *entity.VerificationCode) error

	// DeleteByEmailDigest removes the code for an address. Deleting a
	// missing code is not an error.
	DeleteByEmailDigest(ctx context.Context, digest string) error

	// DeleteExpired removes all codes whose expiry has passed and that are
	// not held in a send-count window. Called periodically for cleanup.
	DeleteExpired(ctx context.Context) (int64, error)
}
