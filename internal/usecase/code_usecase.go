// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RequestCodeInput defines the data required to send a login code.
type RequestCodeInput struct {
	Email     string
	SessionID uuid.UUID
}

// VerifyCodeInput defines the data required to check a submitted code.
type VerifyCodeInput struct {
	Email     string
	Code      string
	SessionID uuid.UUID
}

// --- Output DTOs ---

// RequestCodeOutput reports how many sends remain in the current window.
type RequestCodeOutput struct {
	SendsRemaining int
}

// CodeUsecase drives the login code state machine: issuing and re-issuing
// codes with send limits, and checking submitted codes with attempt limits.
// Both sides escalate to timed cooldowns when their limit is exhausted.
type CodeUsecase interface {
	// RequestCode issues a fresh code for an address and emails it. A
	// repeat request within the send window replaces the previous code
	// and counts against the send limit.
	RequestCode(ctx context.Context, input *RequestCodeInput) (*RequestCodeOutput, error)

	// VerifyCode checks a submitted code. On success the code is
	// consumed and cannot be used again.
	VerifyCode(ctx context.Context, input *VerifyCodeInput) error

	// DeleteCode discards any pending code for an address.
	DeleteCode(ctx context.Context, email string) error
}
