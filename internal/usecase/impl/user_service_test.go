package impl

import (
	"context"
	"log/slog"
	"testing"

	"plateful/config"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	mockRepo "plateful/internal/mocks/repository"
	mockSvc "plateful/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetOrCreateByEmail_ExistingUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cipher := mockSvc.NewMockCipher(t)
	digester := mockSvc.NewMockDigester(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := NewUserService(userRepo, cipher, digester, tokenService,
		&config.Config{}, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	existing := &entity.User{
		ID:          uuid.New(),
		Sub:         uuid.New(),
		Email:       "ciphertext",
		EmailDigest: "digest",
	}

	digester.EXPECT().DigestEmail("user@example.com").Return("digest")
	userRepo.EXPECT().FindByEmailDigest(ctx, "digest").Return(existing, nil)

	user, err := service.GetOrCreateByEmail(ctx, "  User@Example.COM ", "")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserService_GetOrCreateByEmail_CreatesOnFirstLogin(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cipher := mockSvc.NewMockCipher(t)
	digester := mockSvc.NewMockDigester(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := NewUserService(userRepo, cipher, digester, tokenService,
		&config.Config{}, slog.New(slog.DiscardHandler))

	ctx := context.Background()

	digester.EXPECT().DigestEmail("user@example.com").Return("digest")
	userRepo.EXPECT().FindByEmailDigest(ctx, "digest").
		Return(nil, repository.ErrUserNotFound)
	cipher.EXPECT().Encrypt("user@example.com").Return("ciphertext", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "ciphertext", user.Email)
			assert.Equal(t, "digest", user.EmailDigest)
			assert.NotEqual(t, uuid.Nil, user.Sub)
			assert.Equal(t, "Alex", user.Name)
		}).
		Return(nil)

	user, err := service.GetOrCreateByEmail(ctx, "user@example.com", "Alex")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserService_GetBySub_DecryptsEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cipher := mockSvc.NewMockCipher(t)
	digester := mockSvc.NewMockDigester(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := NewUserService(userRepo, cipher, digester, tokenService,
		&config.Config{}, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	sub := uuid.New()

	userRepo.EXPECT().FindBySub(ctx, sub).
		Return(&entity.User{Sub: sub, Email: "ciphertext"}, nil)
	cipher.EXPECT().Decrypt("ciphertext").Return("user@example.com", nil)

	user, err := service.GetBySub(ctx, sub)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestUserService_CompleteLogin_IssuesUserScopedToken(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cipher := mockSvc.NewMockCipher(t)
	digester := mockSvc.NewMockDigester(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := NewUserService(userRepo, cipher, digester, tokenService,
		&config.Config{}, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	sub := uuid.New()

	digester.EXPECT().DigestEmail("user@example.com").Return("digest")
	userRepo.EXPECT().FindByEmailDigest(ctx, "digest").
		Return(&entity.User{Sub: sub, Email: "ciphertext"}, nil)
	tokenService.EXPECT().IssueUserToken(sub, entity.UserScopes()).
		Return("signed-token", nil)

	out, err := service.CompleteLogin(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, sub, out.User.Sub)
}

func TestUserService_CompleteLogin_AddsAIScopesWhenEnabled(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cipher := mockSvc.NewMockCipher(t)
	digester := mockSvc.NewMockDigester(t)
	tokenService := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{AI: &config.AIConfig{Enabled: true}}
	service := NewUserService(userRepo, cipher, digester, tokenService,
		cfg, slog.New(slog.DiscardHandler))

	ctx := context.Background()
	sub := uuid.New()

	digester.EXPECT().DigestEmail("user@example.com").Return("digest")
	userRepo.EXPECT().FindByEmailDigest(ctx, "digest").
		Return(&entity.User{Sub: sub}, nil)

	wantScopes := append(entity.UserScopes(), entity.AIScopes()...)
	tokenService.EXPECT().IssueUserToken(sub, wantScopes).
		Return("signed-token", nil)

	out, err := service.CompleteLogin(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
}
