package main

import (
	"context"
	"log/slog"
	"os"

	"plateful/config"
	"plateful/internal/bootstrap"
	"plateful/internal/delivery"
	"plateful/internal/delivery/http"
	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/router/handler"
	"plateful/internal/delivery/http/session"
	"plateful/internal/delivery/worker"
	"plateful/internal/domain/entity"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/infra/apiclient"
	"plateful/internal/infra/auth"
	logs "plateful/internal/infra/log"
	"plateful/internal/infra/mail"
	"plateful/internal/infra/persistence/postgres"
	"plateful/internal/infra/secret"
	"plateful/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			primeSystemToken,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		bootstrap.Run,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCodeRepository,
			postgres.NewSessionRepository,
			postgres.NewAPIKeyRepository,
			postgres.NewRecipeRepository,
			postgres.NewCategoryRepository,
			postgres.NewIngredientRepository,
			postgres.NewStepRepository,
			postgres.NewImageRepository,
			newOwnershipRegistry,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCipher,
			newDigester,
			newCodeHasher,
			newCodeGenerator,
			newTokenService,
			mail.NewMailer,
			newCodeAPI,
		),
	)
}

// newCipher creates the AES cipher for email addresses at rest.
func newCipher(cfg *config.Config) (service.Cipher, error) {
	return secret.NewAESCipher([]byte(cfg.Secrets.EncryptionKey))
}

// newDigester creates the keyed digester for email and token lookups.
func newDigester(cfg *config.Config) service.Digester {
	return secret.NewHMACDigester([]byte(cfg.Secrets.DigestSecret))
}

// newCodeHasher creates the argon2id hasher, with config overrides on top of
// the defaults.
func newCodeHasher(cfg *config.Config) service.CodeHasher {
	params := secret.DefaultArgon2Params()
	if cfg.Argon != nil {
		if cfg.Argon.Time > 0 {
			params.Time = cfg.Argon.Time
		}
		if cfg.Argon.Memory > 0 {
			params.Memory = cfg.Argon.Memory
		}
		if cfg.Argon.Threads > 0 {
			params.Threads = cfg.Argon.Threads
		}
		if cfg.Argon.KeyLen > 0 {
			params.KeyLen = cfg.Argon.KeyLen
		}
		if cfg.Argon.SaltLen > 0 {
			params.SaltLen = cfg.Argon.SaltLen
		}
	}

	return secret.NewArgonHasher(params)
}

func newCodeGenerator() service.CodeGenerator {
	return secret.NewCodeGenerator()
}

// newTokenService builds the JWT service. The same instance serves as the
// token codec and as the source of the system service token.
func newTokenService(cfg *config.Config, boot *bootstrap.Result, logger *slog.Logger) (service.TokenService, service.SystemCredentials, error) {
	pemBytes := []byte(cfg.Secrets.SigningKeyPEM)
	if len(pemBytes) == 0 && cfg.Secrets.SigningKeyPath != "" {
		fileBytes, err := os.ReadFile(cfg.Secrets.SigningKeyPath)
		if err != nil {
			return nil, nil, errors.Wrap(err, "read signing key")
		}
		pemBytes = fileBytes
	}

	privateKey, err := auth.ParseRSAPrivateKeyPEM(pemBytes)
	if err != nil {
		return nil, nil, err
	}

	opts := auth.JWTOptions{
		PrivateKey:    privateKey,
		SystemSubject: boot.SystemSubject(),
		SystemScopes:  entity.SystemScopes(),
	}
	if cfg.JWT != nil {
		opts.Issuer = cfg.JWT.Issuer
		opts.Audience = cfg.JWT.Audience
		opts.Lifetime = cfg.JWT.Lifetime
		opts.APIKeyLifetime = cfg.JWT.APIKeyLifetime
		opts.GracePeriod = cfg.JWT.GracePeriod
		opts.RenewalBuffer = cfg.JWT.RenewalBuffer
	}

	svc, err := auth.NewJWTService(opts, logger)
	if err != nil {
		return nil, nil, err
	}

	return svc, svc, nil
}

// newCodeAPI creates the client the browser handlers use to reach the
// server's own JSON API.
func newCodeAPI(cfg *config.Config, creds service.SystemCredentials, logger *slog.Logger) apiclient.CodeAPI {
	return apiclient.NewClient(cfg, creds, logger)
}

// newOwnershipRegistry maps each protected content type to its repository's
// ownership predicate.
func newOwnershipRegistry(
	recipeRepo repository.RecipeRepository,
	categoryRepo repository.CategoryRepository,
	ingredientRepo repository.IngredientRepository,
	stepRepo repository.StepRepository,
	imageRepo repository.ImageRepository,
) repository.OwnershipRegistry {
	return repository.OwnershipRegistry{
		repository.ContentRecipe:     recipeRepo,
		repository.ContentCategory:   categoryRepo,
		repository.ContentIngredient: ingredientRepo,
		repository.ContentStep:       stepRepo,
		repository.ContentImage:      imageRepo,
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCodeService,
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewAPIKeyService,
			impl.NewContentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			session.NewStore,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCodeHandler,
			handler.NewUserHandler,
			handler.NewAuthHandler,
			handler.NewAPIKeyHandler,
			handler.NewRecipeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// primeSystemToken mints the initial system token so the first browser
// login does not pay the signing latency. Failure is not fatal; the token
// source retries on use.
func primeSystemToken(creds service.SystemCredentials, boot *bootstrap.Result, logger *slog.Logger) {
	if boot.SystemSubject() == uuid.Nil {
		return
	}
	if _, err := creds.ValidToken(); err != nil {
		logger.Warn("failed to prime system token", slog.String("error", err.Error()))
	}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
