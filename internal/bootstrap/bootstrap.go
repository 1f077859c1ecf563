// Package bootstrap prepares the database for serving: schema migration and
// the built-in system user the server authenticates its own API calls with.
package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"plateful/config"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/infra/persistence/model"
	"plateful/internal/infra/secret"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// skipEnv disables schema migration and system user creation, for
// deployments that manage the schema externally.
const skipEnv = "SKIP_DB_BOOTSTRAP"

// defaultSystemEmail is used when no system user is configured.
const defaultSystemEmail = "system@plateful.invalid"

// Params bundles what bootstrap needs, injected by Fx. It deliberately
// depends on the user repository rather than the user usecase: the usecase
// needs a token service, and the token service needs bootstrap's result.
type Params struct {
	fx.In

	DB       *gorm.DB
	Config   *config.Config
	UserRepo repository.UserRepository
	Cipher   service.Cipher
	Digester service.Digester
	Logger   *slog.Logger
}

// Result carries what the rest of the wiring needs from bootstrap: the
// resolved system user, whose sub becomes the system token subject.
type Result struct {
	SystemUser *entity.User
}

// SystemSubject returns the system user's token subject, or uuid.Nil when
// bootstrap ran without one.
func (r *Result) SystemSubject() uuid.UUID {
	if r.SystemUser == nil {
		return uuid.Nil
	}

	return r.SystemUser.Sub
}

var once sync.Once

// Run migrates the schema and ensures the system user row exists. The work
// happens once per process regardless of how many providers depend on it.
func Run(params Params) (*Result, error) {
	var (
		result *Result
		runErr error
	)
	once.Do(func() {
		result, runErr = run(params)
	})
	if runErr != nil {
		return nil, runErr
	}
	if result == nil {
		return nil, errors.New("bootstrap already failed in this process")
	}

	return result, nil
}

func run(params Params) (*Result, error) {
	ctx := context.Background()

	if os.Getenv(skipEnv) == "1" {
		params.Logger.Info("database bootstrap skipped", slog.String("env", skipEnv))
		user, err := findSystemUser(ctx, params)
		if err != nil {
			params.Logger.Warn("system user not found, internal api calls disabled",
				slog.String("error", err.Error()))

			return &Result{}, nil
		}

		return &Result{SystemUser: user}, nil
	}

	if err := params.DB.AutoMigrate(
		&model.UserModel{},
		&model.VerificationCodeModel{},
		&model.SessionModel{},
		&model.APIKeyModel{},
		&model.CategoryModel{},
		&model.RecipeModel{},
		&model.IngredientModel{},
		&model.StepModel{},
		&model.ImageModel{},
	); err != nil {
		return nil, errors.Wrap(err, "migrate schema")
	}

	user, err := ensureSystemUser(ctx, params)
	if err != nil {
		return nil, err
	}

	return &Result{SystemUser: user}, nil
}

func systemIdentity(cfg *config.Config) (email, name string) {
	email = defaultSystemEmail
	name = "system"
	if cfg.SystemUser != nil {
		if cfg.SystemUser.Email != "" {
			email = cfg.SystemUser.Email
		}
		if cfg.SystemUser.Name != "" {
			name = cfg.SystemUser.Name
		}
	}

	return email, name
}

func findSystemUser(ctx context.Context, params Params) (*entity.User, error) {
	email, _ := systemIdentity(params.Config)

	return params.UserRepo.FindByEmailDigest(ctx, params.Digester.DigestEmail(email))
}

func ensureSystemUser(ctx context.Context, params Params) (*entity.User, error) {
	email, name := systemIdentity(params.Config)
	normalized := secret.NormalizeEmail(email)
	digest := params.Digester.DigestEmail(normalized)

	user, err := params.UserRepo.FindByEmailDigest(ctx, digest)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "look up system user")
	}

	encrypted, err := params.Cipher.Encrypt(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt system user email")
	}

	user = &entity.User{
		Sub:         uuid.New(),
		Email:       encrypted,
		EmailDigest: digest,
		Name:        name,
	}
	if err := params.UserRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "create system user")
	}
	params.Logger.Info("system user created", slog.String("sub", user.Sub.String()))

	return user, nil
}
