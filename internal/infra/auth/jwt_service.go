// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"plateful/internal/domain/entity"
	"plateful/internal/domain/service"
	"plateful/internal/errors"
)

const (
	// DefaultTokenLifetime is how long a session token stays valid.
	DefaultTokenLifetime = 12 * time.Hour

	// DefaultAPIKeyLifetime is applied when an API key is created without
	// an explicit expiry. Keys are revocable, so "practically forever".
	DefaultAPIKeyLifetime = 36500 * 24 * time.Hour

	// DefaultGracePeriod is how long after expiry a system token is still
	// accepted while a replacement is minted.
	DefaultGracePeriod = 5 * time.Minute

	// DefaultRenewalBuffer is how far before expiry the cached system
	// token is proactively renewed.
	DefaultRenewalBuffer = 10 * time.Minute
)

// tokenClaims is the wire form of the claims this service signs.
type tokenClaims struct {
	Scope []string `json:"scope"`
	Type  string   `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// JWTOptions configures a JWTService.
type JWTOptions struct {
	PrivateKey     *rsa.PrivateKey
	Issuer         string
	Audience       string
	Lifetime       time.Duration // zero means DefaultTokenLifetime
	APIKeyLifetime time.Duration // zero means DefaultAPIKeyLifetime
	GracePeriod    time.Duration // zero means DefaultGracePeriod
	RenewalBuffer  time.Duration // zero means DefaultRenewalBuffer
	SystemSubject  uuid.UUID
	SystemScopes   []entity.Scope
}

// JWTService signs and verifies PS512 tokens. It also acts as the source of
// the server's own system token, which it caches and renews; expired system
// tokens inside the grace period are still accepted while the replacement is
// minted, so in-flight internal requests do not fail at the rollover moment.
// It implements service.TokenService and service.SystemCredentials.
type JWTService struct {
	privateKey     *rsa.PrivateKey
	publicKey      *rsa.PublicKey
	issuer         string
	audience       string
	lifetime       time.Duration
	apiKeyLifetime time.Duration
	gracePeriod    time.Duration
	renewalBuffer  time.Duration
	systemSubject  uuid.UUID
	systemScopes   []entity.Scope
	systemToken    atomic.Value // string
	logger         *slog.Logger
	now            func() time.Time
}

// NewJWTService is the constructor for JWTService.
func NewJWTService(opts JWTOptions, logger *slog.Logger) (*JWTService, error) {
	if opts.PrivateKey == nil {
		return nil, errors.New("signing key must be provided")
	}
	if opts.Issuer == "" || opts.Audience == "" {
		return nil, errors.New("issuer and audience must be provided")
	}

	s := &JWTService{
		privateKey:     opts.PrivateKey,
		publicKey:      &opts.PrivateKey.PublicKey,
		issuer:         opts.Issuer,
		audience:       opts.Audience,
		lifetime:       opts.Lifetime,
		apiKeyLifetime: opts.APIKeyLifetime,
		gracePeriod:    opts.GracePeriod,
		renewalBuffer:  opts.RenewalBuffer,
		systemSubject:  opts.SystemSubject,
		systemScopes:   opts.SystemScopes,
		logger:         logger,
		now:            time.Now,
	}
	if s.lifetime == 0 {
		s.lifetime = DefaultTokenLifetime
	}
	if s.apiKeyLifetime == 0 {
		s.apiKeyLifetime = DefaultAPIKeyLifetime
	}
	if s.gracePeriod == 0 {
		s.gracePeriod = DefaultGracePeriod
	}
	if s.renewalBuffer == 0 {
		s.renewalBuffer = DefaultRenewalBuffer
	}
	return s, nil
}

// IssueUserToken creates a session token for a user with the given scopes.
func (s *JWTService) IssueUserToken(sub uuid.UUID, scopes []entity.Scope) (string, error) {
	return s.sign(sub, scopes, s.now().Add(s.lifetime), "")
}

// IssueAPIKeyToken creates a long-lived API key token. A nil expiry applies
// the default API key lifetime.
func (s *JWTService) IssueAPIKeyToken(sub uuid.UUID, scopes []entity.Scope, expiresAt *time.Time) (string, error) {
	exp := s.now().Add(s.apiKeyLifetime)
	if expiresAt != nil {
		exp = *expiresAt
	}
	return s.sign(sub, scopes, exp, "api_key")
}

func (s *JWTService) sign(sub uuid.UUID, scopes []entity.Scope, expiresAt time.Time, tokenType string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Scope: scopes,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodPS512, claims)
	signed, err := token.SignedString(s.privateKey)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Verify checks a token's signature and claims. Expiry is evaluated before
// issuer and audience so a tampered-but-expired token is reported as expired.
// An expired token inside the grace period is accepted only when it belongs
// to the system subject; accepting it also triggers minting of a fresh
// system token so the grace path is taken at most briefly.
func (s *JWTService) Verify(tokenString string) (*service.Claims, error) {
	if strings.Count(tokenString, ".") != 2 {
		s.logger.Warn("token rejected", slog.String("reason", "malformed"))
		return nil, errors.New("token is malformed")
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSAPSS); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.publicKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			s.logger.Warn("token rejected", slog.String("reason", "bad signature"))
		case errors.Is(err, jwt.ErrTokenMalformed):
			s.logger.Warn("token rejected", slog.String("reason", "malformed"))
		default:
			s.logger.Warn("token rejected", slog.String("reason", "unparseable"), slog.Any("error", err))
		}
		return nil, errors.Wrap(err, "verify token")
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		s.logger.Warn("token rejected", slog.String("reason", "bad subject"))
		return nil, errors.New("token subject is not a valid identifier")
	}

	now := s.now()
	exp := time.Time{}
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}

	switch {
	case !now.After(exp):
		// valid
	case now.Sub(exp) <= s.gracePeriod && s.systemSubject != uuid.Nil && sub == s.systemSubject:
		if err := s.checkIssuerAudience(&claims); err != nil {
			return nil, err
		}
		s.logger.Warn("system token in grace period, renewing",
			slog.Time("expired_at", exp))
		if err := s.renewSystemToken(); err != nil {
			s.logger.Warn("system token renewal failed", slog.Any("error", err))
		}
		return claimsFromToken(sub, &claims), nil
	default:
		s.logger.Warn("token rejected", slog.String("reason", "expired"),
			slog.Time("expired_at", exp))
		return nil, errors.New("token has expired")
	}

	if err := s.checkIssuerAudience(&claims); err != nil {
		return nil, err
	}
	return claimsFromToken(sub, &claims), nil
}

func (s *JWTService) checkIssuerAudience(claims *tokenClaims) error {
	if claims.Issuer != s.issuer {
		s.logger.Warn("token rejected", slog.String("reason", "wrong issuer"),
			slog.String("issuer", claims.Issuer))
		return errors.New("token issuer mismatch")
	}
	for _, aud := range claims.Audience {
		if aud == s.audience {
			return nil
		}
	}
	s.logger.Warn("token rejected", slog.String("reason", "wrong audience"))
	return errors.New("token audience mismatch")
}

func claimsFromToken(sub uuid.UUID, claims *tokenClaims) *service.Claims {
	out := &service.Claims{
		Subject: sub,
		Scopes:  claims.Scope,
		Type:    claims.Type,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out
}

// IsExpiredOrExpiring reports whether a token is expired or will expire
// within the buffer. Only the payload is decoded; the signature is not
// checked, so the answer must never be used to grant access. Malformed
// tokens count as expired.
func (s *JWTService) IsExpiredOrExpiring(tokenString string, within time.Duration) bool {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return true
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return true
	}

	var body struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Exp == 0 {
		return true
	}

	return time.Unix(body.Exp, 0).Sub(s.now()) <= within
}

// ValidToken returns the cached system token, renewing it first when it is
// expired or about to expire. When renewal fails the stale token is returned
// along with the renewal error, so a caller may still attempt its request.
func (s *JWTService) ValidToken() (string, error) {
	cached, _ := s.systemToken.Load().(string)
	if cached != "" && !s.IsExpiredOrExpiring(cached, s.renewalBuffer) {
		return cached, nil
	}

	if err := s.renewSystemToken(); err != nil {
		if cached != "" {
			return cached, errors.Wrap(err, "renew system token")
		}
		return "", errors.Wrap(err, "renew system token")
	}
	return s.systemToken.Load().(string), nil
}

func (s *JWTService) renewSystemToken() error {
	token, err := s.IssueUserToken(s.systemSubject, s.systemScopes)
	if err != nil {
		return err
	}
	s.systemToken.Store(token)
	s.logger.Info("system token renewed")
	return nil
}

// ParseRSAPrivateKeyPEM parses a PEM-encoded RSA private key.
func ParseRSAPrivateKeyPEM(pemBytes []byte) (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, errors.Wrap(err, "parse RSA private key")
	}
	return key, nil
}

var (
	_ service.TokenService      = (*JWTService)(nil)
	_ service.SystemCredentials = (*JWTService)(nil)
)
