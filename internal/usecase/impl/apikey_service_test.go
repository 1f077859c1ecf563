package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	mockRepo "plateful/internal/mocks/repository"
	mockSvc "plateful/internal/mocks/service"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyService_CreateKey(t *testing.T) {
	apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	digester := mockSvc.NewMockDigester(t)
	service := NewAPIKeyService(apiKeyRepo, tokenService, digester,
		slog.New(slog.DiscardHandler))

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Sub: uuid.New()}
	scopes := []entity.Scope{"recipe:read", "recipe:create"}

	tokenService.EXPECT().IssueAPIKeyToken(owner.Sub, scopes, (*time.Time)(nil)).
		Return("raw-token", nil)
	digester.EXPECT().DigestToken("raw-token").Return("token-digest")
	apiKeyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.APIKey")).
		Run(func(_ context.Context, key *entity.APIKey) {
			assert.Equal(t, owner.ID, key.UserID)
			assert.Equal(t, "CI pipeline", key.Name)
			assert.Equal(t, "token-digest", key.TokenHash)
			assert.Equal(t, []string(scopes), key.Scopes)
		}).
		Return(nil)

	out, err := service.CreateKey(ctx, &usecase.CreateAPIKeyInput{
		User:   owner,
		Name:   "CI pipeline",
		Scopes: scopes,
	})
	require.NoError(t, err)
	assert.Equal(t, "raw-token", out.Token)
	assert.Equal(t, "token-digest", out.Key.TokenHash)
}

func TestAPIKeyService_CreateKey_RejectsUngrantableScope(t *testing.T) {
	apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	digester := mockSvc.NewMockDigester(t)
	service := NewAPIKeyService(apiKeyRepo, tokenService, digester,
		slog.New(slog.DiscardHandler))

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Sub: uuid.New()}

	_, err := service.CreateKey(ctx, &usecase.CreateAPIKeyInput{
		User:   owner,
		Name:   "too powerful",
		Scopes: []entity.Scope{"user:create"},
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestAPIKeyService_CreateKey_RequiresNameAndScopes(t *testing.T) {
	apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	digester := mockSvc.NewMockDigester(t)
	service := NewAPIKeyService(apiKeyRepo, tokenService, digester,
		slog.New(slog.DiscardHandler))

	ctx := context.Background()
	owner := &entity.User{ID: uuid.New()}

	_, err := service.CreateKey(ctx, &usecase.CreateAPIKeyInput{
		User:   owner,
		Scopes: []entity.Scope{"recipe:read"},
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateKey(ctx, &usecase.CreateAPIKeyInput{
		User: owner,
		Name: "no scopes",
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestAPIKeyService_RevokeKey(t *testing.T) {
	apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	digester := mockSvc.NewMockDigester(t)
	service := NewAPIKeyService(apiKeyRepo, tokenService, digester,
		slog.New(slog.DiscardHandler))

	ctx := context.Background()
	ownerID := uuid.New()
	keyID := uuid.New()

	apiKeyRepo.EXPECT().FindByID(ctx, keyID).
		Return(&entity.APIKey{ID: keyID, UserID: ownerID}, nil)
	apiKeyRepo.EXPECT().Revoke(ctx, keyID).Return(nil)

	require.NoError(t, service.RevokeKey(ctx, ownerID, keyID))
}

func TestAPIKeyService_RevokeKey_DeniesNonOwner(t *testing.T) {
	apiKeyRepo := mockRepo.NewMockAPIKeyRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	digester := mockSvc.NewMockDigester(t)
	service := NewAPIKeyService(apiKeyRepo, tokenService, digester,
		slog.New(slog.DiscardHandler))

	ctx := context.Background()
	keyID := uuid.New()

	apiKeyRepo.EXPECT().FindByID(ctx, keyID).
		Return(&entity.APIKey{ID: keyID, UserID: uuid.New()}, nil)

	err := service.RevokeKey(ctx, uuid.New(), keyID)
	assertAppError(t, err, domainerrors.ErrNotOwner)
}
