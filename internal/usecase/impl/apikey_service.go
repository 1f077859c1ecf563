package impl

import (
	"context"
	"log/slog"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// apiKeyService implements the APIKeyUsecase interface.
type apiKeyService struct {
	apiKeyRepo   repository.APIKeyRepository
	tokenService service.TokenService
	digester     service.Digester
	logger       *slog.Logger
}

// NewAPIKeyService is the constructor for apiKeyService. It receives all dependencies as interfaces.
func NewAPIKeyService(
	apiKeyRepo repository.APIKeyRepository,
	tokenService service.TokenService,
	digester service.Digester,
	logger *slog.Logger,
) usecase.APIKeyUsecase {
	return &apiKeyService{
		apiKeyRepo:   apiKeyRepo,
		tokenService: tokenService,
		digester:     digester,
		logger:       logger,
	}
}

// CreateKey issues a long-lived token and records its digest. The raw token
// appears in the output once and is never stored.
func (srv *apiKeyService) CreateKey(ctx context.Context, input *usecase.CreateAPIKeyInput) (*usecase.CreateAPIKeyOutput, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("api key name is required")
	}
	if len(input.Scopes) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one scope is required")
	}

	// A key must not grant more than its owner holds.
	ownerScopes := entity.UserScopes()
	ownerScopes = append(ownerScopes, entity.AIScopes()...)
	for _, scope := range input.Scopes {
		if !entity.HasScope(ownerScopes, scope) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"scope not grantable: " + scope)
		}
	}

	token, err := srv.tokenService.IssueAPIKeyToken(input.User.Sub, input.Scopes, input.ExpiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue api key token")
	}

	key := &entity.APIKey{
		UserID:    input.User.ID,
		Name:      input.Name,
		TokenHash: srv.digester.DigestToken(token),
		Scopes:    input.Scopes,
		ExpiresAt: input.ExpiresAt,
	}
	if err := srv.apiKeyRepo.Create(ctx, key); err != nil {
		return nil, err
	}

	srv.logger.Info("api key created",
		slog.String("key_id", key.ID.String()),
		slog.String("name", key.Name))
	return &usecase.CreateAPIKeyOutput{Key: key, Token: token}, nil
}

// ListKeys returns all keys owned by a user, including revoked ones.
func (srv *apiKeyService) ListKeys(ctx context.Context, userID uuid.UUID) ([]*entity.APIKey, error) {
	return srv.apiKeyRepo.FindByUserID(ctx, userID)
}

// RevokeKey permanently revokes a key after checking ownership.
func (srv *apiKeyService) RevokeKey(ctx context.Context, userID, keyID uuid.UUID) error {
	key, err := srv.apiKeyRepo.FindByID(ctx, keyID)
	if err != nil {
		if errors.Is(err, repository.ErrAPIKeyNotFound) {
			return domainerrors.ErrAPIKeyNotFound
		}
		return errors.Wrap(err, "failed to look up api key")
	}
	if key.UserID != userID {
		srv.logger.Warn("api key revocation denied, not the owner",
			slog.String("key_id", keyID.String()))
		return domainerrors.ErrNotOwner
	}

	if err := srv.apiKeyRepo.Revoke(ctx, keyID); err != nil {
		return err
	}

	srv.logger.Info("api key revoked", slog.String("key_id", keyID.String()))
	return nil
}
