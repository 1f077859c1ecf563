package impl

import (
	"context"
	"log/slog"
	"time"

	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	tokenService service.TokenService
	apiKeyRepo   repository.APIKeyRepository
	userRepo     repository.UserRepository
	digester     service.Digester
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	tokenService service.TokenService,
	apiKeyRepo repository.APIKeyRepository,
	userRepo repository.UserRepository,
	digester service.Digester,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		tokenService: tokenService,
		apiKeyRepo:   apiKeyRepo,
		userRepo:     userRepo,
		digester:     digester,
		logger:       logger,
	}
}

// Authenticate verifies a bearer token and resolves it to an identity.
// Every presented token is looked up in the API key store by digest, so a
// revoked key is rejected even though its signature still verifies.
func (srv *authService) Authenticate(ctx context.Context, token string) (*usecase.AuthResult, error) {
	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	result := &usecase.AuthResult{Scopes: claims.Scopes}

	key, err := srv.apiKeyRepo.FindByTokenDigest(ctx, srv.digester.DigestToken(token))
	switch {
	case err == nil:
		if key.Revoked() {
			srv.logger.Warn("revoked api key presented",
				slog.String("key_id", key.ID.String()))
			return nil, domainerrors.ErrAPIKeyRevoked
		}
		if key.Expired(time.Now()) {
			return nil, domainerrors.ErrAPIKeyExpired
		}
		result.IsAPIKey = true
		result.APIKey = key
	case errors.Is(err, repository.ErrAPIKeyNotFound):
		// A key-typed token with no record cannot be revoked, so it is
		// never accepted.
		if claims.IsAPIKey() {
			srv.logger.Warn("api key token without a key record rejected")
			return nil, domainerrors.ErrTokenInvalid
		}
	default:
		return nil, errors.Wrap(err, "failed to look up api key")
	}

	user, err := srv.userRepo.FindBySub(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Warn("token subject has no account",
				slog.String("sub", claims.Subject.String()))
			return nil, domainerrors.ErrTokenInvalid
		}
		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	result.User = user
	return result, nil
}
