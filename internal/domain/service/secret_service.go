// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CodeHasher defines the interface for hashing and verifying login codes.
// This abstracts the underlying algorithm (argon2id), keeping the domain pure.
type CodeHasher interface {
	// Hash generates a salted hash from a plaintext code.
	Hash(code string) (string, error)

	// Check compares a plaintext code with a hash in constant time.
	Check(code, hash string) bool
}

// Cipher defines the interface for reversible encryption of stored
// personal data such as email addresses.
type Cipher interface {
	// Encrypt returns the ciphertext for a plaintext string.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt.
	Decrypt(ciphertext string) (string, error)
}

// Digester produces keyed digests used as deterministic lookup keys for
// values that are stored encrypted or not at all.
type Digester interface {
	// DigestEmail digests an email address after normalizing it, so the
	// same mailbox always maps to the same key regardless of case or
	// surrounding whitespace.
	DigestEmail(email string) string

	// DigestToken digests an issued token verbatim. Tokens are
	// case-sensitive, so no normalization is applied.
	DigestToken(token string) string
}

// CodeGenerator produces new login codes from a restricted alphabet that
// avoids visually ambiguous characters.
type CodeGenerator interface {
	// Generate returns a fresh code in display form, e.g. "4AFK-TQ9M".
	Generate() (string, error)
}
