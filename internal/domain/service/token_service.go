package service

import (
	"time"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the verified contents of a signed token.
type Claims struct {
	Subject   uuid.UUID
	Scopes    []entity.Scope
	Type      string // empty for session tokens, "api_key" for API keys
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAPIKey reports whether the token was issued as a managed API key.
func (c *Claims) IsAPIKey() bool {
	return c.Type == "api_key"
}

// TokenService defines the interface for issuing and verifying signed tokens.
// This abstracts the signing algorithm and key handling from the use cases.
type TokenService interface {
	// IssueUserToken creates a session token for a user with the given
	// scopes, using the configured default lifetime.
	IssueUserToken(sub uuid.UUID, scopes []entity.Scope) (string, error)

	// IssueAPIKeyToken creates a long-lived API key token. A nil expiry
	// applies the default API key lifetime.
	IssueAPIKeyToken(sub uuid.UUID, scopes []entity.Scope, expiresAt *time.Time) (string, error)

	// Verify checks a token's signature and claims and returns them when
	// the token is acceptable. Tokens inside the post-expiry grace window
	// are accepted only for the system subject.
	Verify(tokenString string) (*Claims, error)

	// IsExpiredOrExpiring reports whether a token is expired or will
	// expire within the buffer. It inspects the payload only, without
	// verifying the signature, so it must never be used to grant access.
	// Malformed tokens count as expired.
	IsExpiredOrExpiring(tokenString string, within time.Duration) bool
}

// SystemCredentials provides the server's own token for calls it makes to
// its internal API. Implementations cache the token and renew it before it
// expires.
type SystemCredentials interface {
	// ValidToken returns a system token that is not about to expire,
	// renewing the cached one if needed. When renewal fails the stale
	// token is returned along with the renewal error, so a caller may
	// still attempt the request.
	ValidToken() (string, error)
}
