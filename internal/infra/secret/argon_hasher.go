// Package secret implements the cryptographic primitives behind passwordless
// login: code hashing, reversible encryption of personal data, keyed lookup
// digests and code generation.
package secret

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"plateful/internal/errors"

	"golang.org/x/crypto/argon2"
)

// Argon2Params configures the argon2id cost parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultArgon2Params returns the cost parameters used for login codes.
// Codes are short-lived and low-entropy, so the memory cost is kept high.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    4,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  64,
		SaltLen: 16,
	}
}

var errInvalidHash = errors.New("invalid argon2id hash")

// ArgonHasher hashes login codes with argon2id. It implements
// service.CodeHasher.
type ArgonHasher struct {
	params Argon2Params
}

// NewArgonHasher creates a hasher with the given cost parameters.
func NewArgonHasher(params Argon2Params) *ArgonHasher {
	return &ArgonHasher{params: params}
}

// Hash returns an argon2id hash string including parameters and salt.
func (h *ArgonHasher) Hash(code string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	sum := argon2.IDKey([]byte(code), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)
	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(sum)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		encodedSalt,
		encodedHash,
	), nil
}

// Check compares a plaintext code against an encoded hash in constant time.
// Any malformed hash fails the check.
func (h *ArgonHasher) Check(code, hash string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	version, err := parseVersion(parts[2])
	if err != nil || version != argon2.Version {
		return false
	}

	mem, timeCost, threads, err := parseParams(parts[3])
	if err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	actual := argon2.IDKey([]byte(code), salt, timeCost, mem, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func parseVersion(value string) (int, error) {
	if !strings.HasPrefix(value, "v=") {
		return 0, errInvalidHash
	}
	return strconv.Atoi(strings.TrimPrefix(value, "v="))
}

func parseParams(value string) (uint32, uint32, uint8, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return 0, 0, 0, errInvalidHash
	}

	mem, err := parseUint32Param(parts[0], "m=")
	if err != nil {
		return 0, 0, 0, errInvalidHash
	}
	timeCost, err := parseUint32Param(parts[1], "t=")
	if err != nil {
		return 0, 0, 0, errInvalidHash
	}
	threadsVal, err := parseUint32Param(parts[2], "p=")
	if err != nil || threadsVal > 255 {
		return 0, 0, 0, errInvalidHash
	}
	return mem, timeCost, uint8(threadsVal), nil
}

func parseUint32Param(value, prefix string) (uint32, error) {
	if !strings.HasPrefix(value, prefix) {
		return 0, errInvalidHash
	}
	parsed, err := strconv.ParseUint(strings.TrimPrefix(value, prefix), 10, 32)
	if err != nil {
		return 0, errInvalidHash
	}
	return uint32(parsed), nil
}
