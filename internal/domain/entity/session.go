package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionID is the storage key of a server-side session row. It never leaves
// the server unsigned; what travels over the wire is a SessionToken.
type SessionID = uuid.UUID

// SessionToken is the cookie value a client presents: the session ID,
// optionally HMAC-signed. The sign/unsign boundary between SessionToken and
// SessionID lives in the session store, nowhere else.
type SessionToken string

// SessionRecord is a server-side session row keyed by UUID. The payload is an
// opaque serialized key/value map; it may carry the user's token and other
// data unsuitable for client-side cookie storage.
type SessionRecord struct {
	ID        SessionID // Primary key, doubles as the (unsigned) cookie value.
	Data      []byte    // Serialized session payload.
	ExpiresAt time.Time // Absolute expiry; expired rows are deleted lazily on read.
}

// Expired reports whether the record is past its expiry. Comparison is done
// in UTC end to end to avoid naive/aware timestamp mismatches.
func (s *SessionRecord) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now.UTC())
}
