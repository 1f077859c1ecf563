package impl

import (
	"context"
	"log/slog"

	"plateful/config"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/infra/secret"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	cipher       service.Cipher
	digester     service.Digester
	tokenService service.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	cipher service.Cipher,
	digester service.Digester,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:     userRepo,
		cipher:       cipher,
		digester:     digester,
		tokenService: tokenService,
		cfg:          cfg,
		logger:       logger,
	}
}

// GetOrCreateByEmail resolves an address to its account, creating the account
// on first login. The stored email is ciphertext; the returned entity always
// carries the plaintext address.
func (srv *userService) GetOrCreateByEmail(ctx context.Context, email, name string) (*entity.User, error) {
	normalized := secret.NormalizeEmail(email)
	digest := srv.digester.DigestEmail(normalized)

	user, err := srv.userRepo.FindByEmailDigest(ctx, digest)
	if err == nil {
		user.Email = normalized
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	encrypted, err := srv.cipher.Encrypt(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt email")
	}

	user = &entity.User{
		Sub:         uuid.New(),
		Email:       encrypted,
		EmailDigest: digest,
		Name:        name,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	srv.logger.Info("user created", slog.String("sub", user.Sub.String()))
	user.Email = normalized
	return user, nil
}

// GetBySub resolves a token subject to its account.
func (srv *userService) GetBySub(ctx context.Context, sub uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindBySub(ctx, sub)
	if err != nil {
		return nil, err
	}

	plaintext, err := srv.cipher.Decrypt(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt email")
	}
	user.Email = plaintext
	return user, nil
}

// CompleteLogin issues a session token for an address whose ownership has
// just been proven by a verification code.
func (srv *userService) CompleteLogin(ctx context.Context, email string) (*usecase.LoginOutput, error) {
	user, err := srv.GetOrCreateByEmail(ctx, email, "")
	if err != nil {
		return nil, err
	}

	scopes := entity.UserScopes()
	if srv.cfg.AI != nil && srv.cfg.AI.Enabled {
		scopes = append(scopes, entity.AIScopes()...)
	}

	token, err := srv.tokenService.IssueUserToken(user.Sub, scopes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Info("login completed", slog.String("sub", user.Sub.String()))
	return &usecase.LoginOutput{Token: token, User: user}, nil
}
