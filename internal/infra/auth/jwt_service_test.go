package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"log/slog"
	"sync"
	"testing"
	"time"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func testSigningKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("generate test key: %v", err)
		}
		testKey = key
	})
	return testKey
}

func newTestService(t *testing.T, opts JWTOptions) *JWTService {
	t.Helper()
	if opts.PrivateKey == nil {
		opts.PrivateKey = testSigningKey(t)
	}
	if opts.Issuer == "" {
		opts.Issuer = "plateful"
	}
	if opts.Audience == "" {
		opts.Audience = "plateful-app"
	}
	svc, err := NewJWTService(opts, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return svc
}

func TestJWTService_IssueAndVerifyUserToken(t *testing.T) {
	svc := newTestService(t, JWTOptions{})
	sub := uuid.New()
	scopes := []entity.Scope{"recipe:read", "recipe:create"}

	token, err := svc.IssueUserToken(sub, scopes)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, sub, claims.Subject)
	assert.Equal(t, scopes, claims.Scopes)
	assert.Empty(t, claims.Type)
	assert.False(t, claims.IsAPIKey())
	assert.WithinDuration(t, time.Now().Add(DefaultTokenLifetime), claims.ExpiresAt, time.Minute)
}

func TestJWTService_IssueAPIKeyToken(t *testing.T) {
	svc := newTestService(t, JWTOptions{})
	sub := uuid.New()

	token, err := svc.IssueAPIKeyToken(sub, []entity.Scope{"recipe:read"}, nil)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "api_key", claims.Type)
	assert.True(t, claims.IsAPIKey())
	assert.WithinDuration(t, time.Now().Add(DefaultAPIKeyLifetime), claims.ExpiresAt, time.Hour)

	expiry := time.Now().Add(48 * time.Hour)
	token, err = svc.IssueAPIKeyToken(sub, []entity.Scope{"recipe:read"}, &expiry)
	require.NoError(t, err)
	claims, err = svc.Verify(token)
	require.NoError(t, err)
	assert.WithinDuration(t, expiry, claims.ExpiresAt, time.Second)
}

func TestJWTService_VerifyRejectsMalformedToken(t *testing.T) {
	svc := newTestService(t, JWTOptions{})

	for _, token := range []string{"", "garbage", "one.two", "a.b.c.d"} {
		_, err := svc.Verify(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestJWTService_VerifyRejectsForeignSignature(t *testing.T) {
	svc := newTestService(t, JWTOptions{})

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	other := newTestService(t, JWTOptions{PrivateKey: otherKey})

	token, err := other.IssueUserToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsWrongIssuerAndAudience(t *testing.T) {
	svc := newTestService(t, JWTOptions{})

	foreignIssuer := newTestService(t, JWTOptions{Issuer: "someone-else"})
	token, err := foreignIssuer.IssueUserToken(uuid.New(), nil)
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.ErrorContains(t, err, "issuer")

	foreignAudience := newTestService(t, JWTOptions{Audience: "other-app"})
	token, err = foreignAudience.IssueUserToken(uuid.New(), nil)
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.ErrorContains(t, err, "audience")
}

func TestJWTService_VerifyReportsExpiryBeforeIssuer(t *testing.T) {
	foreign := newTestService(t, JWTOptions{Issuer: "someone-else"})
	token, err := foreign.IssueUserToken(uuid.New(), nil)
	require.NoError(t, err)

	svc := newTestService(t, JWTOptions{})
	svc.now = func() time.Time { return time.Now().Add(DefaultTokenLifetime + time.Hour) }

	_, err = svc.Verify(token)
	assert.ErrorContains(t, err, "expired")
}

func TestJWTService_VerifyRejectsExpiredUserToken(t *testing.T) {
	svc := newTestService(t, JWTOptions{})

	token, err := svc.IssueUserToken(uuid.New(), nil)
	require.NoError(t, err)

	// One minute past expiry, inside what would be the grace period for a
	// system token. Ordinary users get no grace.
	svc.now = func() time.Time { return time.Now().Add(DefaultTokenLifetime + time.Minute) }
	_, err = svc.Verify(token)
	assert.ErrorContains(t, err, "expired")
}

func TestJWTService_VerifyAcceptsTokenAtExactExpiry(t *testing.T) {
	svc := newTestService(t, JWTOptions{})

	// Timestamps are truncated to whole seconds on the wire, so pin the
	// clock to a whole second for an exact boundary.
	issued := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return issued }

	token, err := svc.IssueUserToken(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(DefaultTokenLifetime) }
	_, err = svc.Verify(token)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(DefaultTokenLifetime + time.Second) }
	_, err = svc.Verify(token)
	assert.ErrorContains(t, err, "expired")
}

func TestJWTService_VerifyAcceptsSystemTokenInGracePeriod(t *testing.T) {
	systemSub := uuid.New()
	svc := newTestService(t, JWTOptions{
		SystemSubject: systemSub,
		SystemScopes:  entity.SystemScopes(),
	})

	token, err := svc.IssueUserToken(systemSub, entity.SystemScopes())
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(DefaultTokenLifetime + time.Minute) }

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, systemSub, claims.Subject)

	// Accepting the grace token minted and cached a replacement.
	renewed, _ := svc.systemToken.Load().(string)
	assert.NotEmpty(t, renewed)
	assert.NotEqual(t, token, renewed)
}

func TestJWTService_VerifyRejectsSystemTokenPastGracePeriod(t *testing.T) {
	systemSub := uuid.New()
	svc := newTestService(t, JWTOptions{SystemSubject: systemSub})

	token, err := svc.IssueUserToken(systemSub, nil)
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Now().Add(DefaultTokenLifetime + DefaultGracePeriod + time.Minute)
	}
	_, err = svc.Verify(token)
	assert.ErrorContains(t, err, "expired")
}

func TestJWTService_IsExpiredOrExpiring(t *testing.T) {
	svc := newTestService(t, JWTOptions{})

	token, err := svc.IssueUserToken(uuid.New(), nil)
	require.NoError(t, err)

	assert.False(t, svc.IsExpiredOrExpiring(token, DefaultRenewalBuffer))
	assert.True(t, svc.IsExpiredOrExpiring(token, DefaultTokenLifetime+time.Minute))

	svc.now = func() time.Time { return time.Now().Add(DefaultTokenLifetime - 5*time.Minute) }
	assert.True(t, svc.IsExpiredOrExpiring(token, DefaultRenewalBuffer))

	for _, bad := range []string{"", "garbage", "a.b", "a.!!!.c", "a.e30.c"} {
		assert.True(t, svc.IsExpiredOrExpiring(bad, DefaultRenewalBuffer), "token %q", bad)
	}
}

func TestJWTService_ValidTokenCachesAndRenews(t *testing.T) {
	systemSub := uuid.New()
	svc := newTestService(t, JWTOptions{
		SystemSubject: systemSub,
		SystemScopes:  entity.SystemScopes(),
	})

	first, err := svc.ValidToken()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// A fresh token is served from the cache.
	again, err := svc.ValidToken()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// Near expiry the token is replaced proactively.
	svc.now = func() time.Time { return time.Now().Add(DefaultTokenLifetime - 5*time.Minute) }
	renewed, err := svc.ValidToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, renewed)

	claims, err := svc.Verify(renewed)
	require.NoError(t, err)
	assert.Equal(t, systemSub, claims.Subject)
	assert.Equal(t, entity.SystemScopes(), claims.Scopes)
}
