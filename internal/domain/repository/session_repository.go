package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session record does not exist or has
// already been removed.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines persistence operations for HTTP session records.
// The session store sits above this interface and handles cookie handling,
// expiry checks and payload encoding.
type SessionRepository interface {
	// Find retrieves a session record by its storage key.
	Find(ctx context.Context, id entity.SessionID) (*entity.SessionRecord, error)

	// Save inserts or replaces a session record.
	Save(ctx context.Context, record *entity.SessionRecord) error

	// Delete removes a session record. Deleting a missing record is not an
	// error.
	Delete(ctx context.Context, id entity.SessionID) error

	// DeleteExpired removes all records whose expiry has passed. Called
	// periodically for cleanup.
	DeleteExpired(ctx context.Context) (int64, error)
}
