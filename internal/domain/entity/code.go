package entity

import (
	"time"

	"github.com/google/uuid"
)

// Code send/guess limits shared by the login flow and its abuse handling.
const (
	// MaxCodeSends is the number of codes that may be sent in one window.
	MaxCodeSends = 3
	// MaxCodeAttempts is the number of guesses allowed against one code.
	MaxCodeAttempts = 3
	// CodeLifetime is how long a code stays verifiable after issuance.
	CodeLifetime = 5 * time.Minute
	// CodeSendWindow is how long send/attempt counters persist before a
	// resend request resets them.
	CodeSendWindow = 15 * time.Minute
)

// VerificationCode tracks the one-time login code for an (email, session)
// pair. There is exactly one active code per pair: creating a new code always
// supersedes prior state via lookup-then-replace.
type VerificationCode struct {
	ID        uuid.UUID  // Primary key.
	Count     int        // Number of codes sent in the current window.
	Value     string     // Argon2id hash of the code, never the code itself.
	IssuedAt  time.Time  // When the current code was issued.
	ExpiresAt time.Time  // IssuedAt + CodeLifetime.
	Attempts  int        // Guesses made against the current code.
	Cooldown  *time.Time // If set, resend/verify requests are rejected until this time.
	Email     string     // Email the code was sent to (plaintext, short-lived row).
	SessionID uuid.UUID  // Session the code is bound to.
}

// CooldownActive reports whether a cooldown is set and still in the future.
func (c *VerificationCode) CooldownActive(now time.Time) bool {
	return c.Cooldown != nil && now.Before(*c.Cooldown)
}

// Expired reports whether the code is past its expiry.
func (c *VerificationCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// WindowElapsed reports whether the send window has passed since issuance,
// meaning counters should be reset rather than escalated.
func (c *VerificationCode) WindowElapsed(now time.Time) bool {
	return now.Sub(c.IssuedAt) >= CodeSendWindow
}
