package secret

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"strings"
)

// HMACDigester derives deterministic lookup keys with HMAC-SHA512. It
// implements service.Digester.
type HMACDigester struct {
	key []byte
}

// NewHMACDigester creates a digester keyed with the given secret.
func NewHMACDigester(key []byte) *HMACDigester {
	return &HMACDigester{key: key}
}

// DigestEmail digests a normalized email address. Normalization trims
// whitespace and lowercases, so "  User@Example.COM " and
// "user@example.com" map to the same key.
func (d *HMACDigester) DigestEmail(email string) string {
	return d.digest(NormalizeEmail(email))
}

// DigestToken digests an issued token verbatim. Tokens are case-sensitive
// and must not be normalized.
func (d *HMACDigester) DigestToken(token string) string {
	return d.digest(token)
}

func (d *HMACDigester) digest(value string) string {
	mac := hmac.New(sha512.New, d.key)
	mac.Write([]byte(value))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// NormalizeEmail canonicalizes an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
