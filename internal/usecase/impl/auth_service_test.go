package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	mockRepo "plateful/internal/mocks/repository"
	mockSvc "plateful/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	tokenService *mockSvc.MockTokenService
	apiKeyRepo   *mockRepo.MockAPIKeyRepository
	userRepo     *mockRepo.MockUserRepository
	digester     *mockSvc.MockDigester
	service      *authService
}

func newAuthServiceFixture(t *testing.T) *authServiceFixture {
	f := &authServiceFixture{
		tokenService: mockSvc.NewMockTokenService(t),
		apiKeyRepo:   mockRepo.NewMockAPIKeyRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		digester:     mockSvc.NewMockDigester(t),
	}
	f.service = NewAuthService(
		f.tokenService, f.apiKeyRepo, f.userRepo, f.digester,
		slog.New(slog.DiscardHandler),
	).(*authService)
	return f
}

func TestAuthService_Authenticate_UserToken(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	sub := uuid.New()
	user := &entity.User{ID: uuid.New(), Sub: sub}

	f.tokenService.EXPECT().Verify("token").Return(&service.Claims{
		Subject: sub,
		Scopes:  []entity.Scope{"recipe:read"},
	}, nil)
	f.digester.EXPECT().DigestToken("token").Return("token-digest")
	f.apiKeyRepo.EXPECT().FindByTokenDigest(ctx, "token-digest").
		Return(nil, repository.ErrAPIKeyNotFound)
	f.userRepo.EXPECT().FindBySub(ctx, sub).Return(user, nil)

	result, err := f.service.Authenticate(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, user, result.User)
	assert.False(t, result.IsAPIKey)
	assert.True(t, result.HasScope("recipe:read"))
	assert.False(t, result.HasScope("recipe:delete"))
}

func TestAuthService_Authenticate_APIKey(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	sub := uuid.New()
	user := &entity.User{ID: uuid.New(), Sub: sub}
	key := &entity.APIKey{ID: uuid.New(), UserID: user.ID}

	f.tokenService.EXPECT().Verify("token").Return(&service.Claims{
		Subject: sub,
		Scopes:  []entity.Scope{"recipe:read"},
		Type:    "api_key",
	}, nil)
	f.digester.EXPECT().DigestToken("token").Return("token-digest")
	f.apiKeyRepo.EXPECT().FindByTokenDigest(ctx, "token-digest").Return(key, nil)
	f.userRepo.EXPECT().FindBySub(ctx, sub).Return(user, nil)

	result, err := f.service.Authenticate(ctx, "token")
	require.NoError(t, err)
	assert.True(t, result.IsAPIKey)
	assert.Equal(t, key, result.APIKey)
}

func TestAuthService_Authenticate_RevokedAPIKey(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	revokedAt := time.Now().Add(-time.Hour)
	key := &entity.APIKey{ID: uuid.New(), RevokedAt: &revokedAt}

	f.tokenService.EXPECT().Verify("token").Return(&service.Claims{
		Subject: uuid.New(),
		Type:    "api_key",
	}, nil)
	f.digester.EXPECT().DigestToken("token").Return("token-digest")
	f.apiKeyRepo.EXPECT().FindByTokenDigest(ctx, "token-digest").Return(key, nil)

	_, err := f.service.Authenticate(ctx, "token")
	assertAppError(t, err, domainerrors.ErrAPIKeyRevoked)
}

func TestAuthService_Authenticate_ExpiredAPIKey(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	expiresAt := time.Now().Add(-time.Hour)
	key := &entity.APIKey{ID: uuid.New(), ExpiresAt: &expiresAt}

	f.tokenService.EXPECT().Verify("token").Return(&service.Claims{
		Subject: uuid.New(),
		Type:    "api_key",
	}, nil)
	f.digester.EXPECT().DigestToken("token").Return("token-digest")
	f.apiKeyRepo.EXPECT().FindByTokenDigest(ctx, "token-digest").Return(key, nil)

	_, err := f.service.Authenticate(ctx, "token")
	assertAppError(t, err, domainerrors.ErrAPIKeyExpired)
}

func TestAuthService_Authenticate_APIKeyTokenWithoutRecord(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.tokenService.EXPECT().Verify("token").Return(&service.Claims{
		Subject: uuid.New(),
		Type:    "api_key",
	}, nil)
	f.digester.EXPECT().DigestToken("token").Return("token-digest")
	f.apiKeyRepo.EXPECT().FindByTokenDigest(ctx, "token-digest").
		Return(nil, repository.ErrAPIKeyNotFound)

	_, err := f.service.Authenticate(ctx, "token")
	assertAppError(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()

	f.tokenService.EXPECT().Verify("token").
		Return(nil, errors.New("token has expired"))

	_, err := f.service.Authenticate(ctx, "token")
	assertAppError(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Authenticate_UnknownSubject(t *testing.T) {
	f := newAuthServiceFixture(t)
	ctx := context.Background()
	sub := uuid.New()

	f.tokenService.EXPECT().Verify("token").Return(&service.Claims{Subject: sub}, nil)
	f.digester.EXPECT().DigestToken("token").Return("token-digest")
	f.apiKeyRepo.EXPECT().FindByTokenDigest(ctx, "token-digest").
		Return(nil, repository.ErrAPIKeyNotFound)
	f.userRepo.EXPECT().FindBySub(ctx, sub).
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Authenticate(ctx, "token")
	assertAppError(t, err, domainerrors.ErrTokenInvalid)
}
