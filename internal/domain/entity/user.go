// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// Login is passwordless: identity is proven by an emailed one-time code, after
// which the user carries a signed token. The email address is stored encrypted
// at rest; EmailDigest is a keyed digest of the normalized address used for
// equality lookups without decryption.
type User struct {
	ID          uuid.UUID // Primary key of the user row.
	Sub         uuid.UUID // Stable token subject, deliberately distinct from the row ID.
	Email       string    // Plaintext email address (encrypted before persistence).
	EmailDigest string    // Keyed HMAC digest of the normalized email, used for lookup.
	Name        string    // The user's display name.
	CreatedAt   time.Time // Timestamp of when this user account was created.
}
