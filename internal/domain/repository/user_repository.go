// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Email addresses are stored encrypted, so lookups go through the keyed
// digest of the normalized address rather than the address itself.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindBySub retrieves a single user by their token subject identifier.
	FindBySub(ctx context.Context, sub uuid.UUID) (*entity.User, error)

	// FindByEmailDigest retrieves a single user by the keyed digest of their
	// normalized email address.
	FindByEmailDigest(ctx context.Context, digest string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
