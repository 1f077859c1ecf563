package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is the persisted metadata for a managed long-lived token. The raw
// token is handed to the owner exactly once at creation; only its keyed HMAC
// digest is stored, so the key can be recognized for revocation checks but
// never recovered.
type APIKey struct {
	ID        uuid.UUID  // Primary key.
	UserID    uuid.UUID  // Owning user.
	Name      string     // Display name chosen by the owner.
	TokenHash string     // Keyed HMAC digest of the issued token (lookup key).
	Scopes    []string   // Scopes granted to the key.
	ExpiresAt *time.Time // Optional expiry; nil means the token itself carries a far-future exp.
	CreatedAt time.Time  // Creation timestamp.
	RevokedAt *time.Time // Set when the owner revokes the key.
}

// Revoked reports whether the key has been revoked.
func (k *APIKey) Revoked() bool {
	return k.RevokedAt != nil
}

// Expired reports whether the key metadata carries an expiry in the past.
func (k *APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}
