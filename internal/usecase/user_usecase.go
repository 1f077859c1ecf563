package usecase

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines user-account business operations. Email addresses are
// plaintext at this boundary; encryption and digest handling happen inside.
type UserUsecase interface {
	// GetOrCreateByEmail resolves an address to its account, creating the
	// account on first login.
	GetOrCreateByEmail(ctx context.Context, email, name string) (*entity.User, error)

	// GetBySub resolves a token subject to its account.
	GetBySub(ctx context.Context, sub uuid.UUID) (*entity.User, error)

	// CompleteLogin issues a session token for an address whose ownership
	// has just been proven by a verification code.
	CompleteLogin(ctx context.Context, email string) (*LoginOutput, error)
}
