// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	"plateful/internal/domain/service"
	"plateful/internal/infra/secret"
	"plateful/internal/usecase"

	"github.com/pkg/errors"
)

// verifyBurnHash is a syntactically valid argon2id hash that no input can
// match. Rejections made before any stored hash is loaded still run a full
// comparison against it, keeping response timing uniform.
const verifyBurnHash = "$argon2id$v=19$m=65536,t=4,p=4$AAAAAAAAAAAAAAAAAAAAAA$" +
	"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// codeService implements the CodeUsecase interface.
//
// The find/update pairs below are separate statements, not a transaction.
// Two concurrent requests for one address may interleave and observe the
// same counter value; the limits here are abuse dampers, not strict quotas,
// so losing an increment occasionally is acceptable.
type codeService struct {
	codeRepo  repository.CodeRepository
	generator service.CodeGenerator
	hasher    service.CodeHasher
	digester  service.Digester
	mailer    service.Mailer
	logger    *slog.Logger
	now       func() time.Time
}

// NewCodeService is the constructor for codeService. It receives all dependencies as interfaces.
func NewCodeService(
	codeRepo repository.CodeRepository,
	generator service.CodeGenerator,
	hasher service.CodeHasher,
	digester service.Digester,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.CodeUsecase {
	return &codeService{
		codeRepo:  codeRepo,
		generator: generator,
		hasher:    hasher,
		digester:  digester,
		mailer:    mailer,
		logger:    logger,
		now:       time.Now,
	}
}

// RequestCode issues a fresh code for an address and emails it.
func (srv *codeService) RequestCode(ctx context.Context, input *usecase.RequestCodeInput) (*usecase.RequestCodeOutput, error) {
	now := srv.now()
	digest := srv.digester.DigestEmail(input.Email)

	existing, err := srv.codeRepo.FindByEmailDigest(ctx, digest)
	if err != nil && !errors.Is(err, repository.ErrCodeNotFound) {
		return nil, errors.Wrap(err, "failed to look up verification code")
	}

	switch {
	case existing == nil:
		return srv.issue(ctx, input, 1, now)

	case existing.WindowElapsed(now):
		// The send window has passed, counters start over.
		return srv.issue(ctx, input, 1, now)

	case existing.CooldownActive(now):
		minutes := minutesUntil(*existing.Cooldown, now)
		srv.logger.Warn("code request rejected during cooldown",
			slog.Int("minutes_remaining", minutes))
		return nil, domainerrors.ErrCodeCooldown.WithDetails(
			fmt.Sprintf("try again in %d minute(s)", minutes))

	case existing.Cooldown != nil:
		// Cooldown served in full; wipe the old state so the next request
		// starts from a clean slate.
		if err := srv.codeRepo.DeleteByEmailDigest(ctx, digest); err != nil {
			return nil, err
		}
		srv.logger.Info("elapsed cooldown cleared, fresh code required")
		return nil, domainerrors.ErrCodeCooldownElapsed

	case existing.Count+1 > entity.MaxCodeSends:
		// Send limit exhausted; escalate the cooldown with the overrun.
		count := existing.Count + 1
		cooldown := now.Add(time.Duration(5*(count-entity.MaxCodeSends)) * time.Minute)
		existing.Count = count
		existing.Cooldown = &cooldown
		if err := srv.codeRepo.Save(ctx, existing); err != nil {
			return nil, err
		}
		minutes := minutesUntil(cooldown, now)
		srv.logger.Warn("code send limit exhausted, cooldown set",
			slog.Int("count", count),
			slog.Int("cooldown_minutes", minutes))
		return nil, domainerrors.ErrCodeCooldown.WithDetails(
			fmt.Sprintf("try again in %d minute(s)", minutes))

	default:
		return srv.issue(ctx, input, existing.Count+1, now)
	}
}

// issue generates, stores and mails a new code, replacing any previous row
// for the address.
func (srv *codeService) issue(ctx context.Context, input *usecase.RequestCodeInput, count int, now time.Time) (*usecase.RequestCodeOutput, error) {
	code, err := srv.generator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate code")
	}

	hash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash code")
	}

	record := &entity.VerificationCode{
		Count:     count,
		Value:     hash,
		IssuedAt:  now,
		ExpiresAt: now.Add(entity.CodeLifetime),
		Attempts:  0,
		Email:     input.Email,
		SessionID: input.SessionID,
	}
	if err := srv.codeRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	if err := srv.mailer.SendLoginCode(ctx, input.Email, code); err != nil {
		srv.logger.Error("failed to send login code", "error", err)
		return nil, errors.Wrap(err, "failed to send login code")
	}

	srv.logger.Info("login code sent", slog.Int("send_count", count))
	return &usecase.RequestCodeOutput{SendsRemaining: entity.MaxCodeSends - count}, nil
}

// VerifyCode checks a submitted code against the stored hash. The attempt
// counter is written before the comparison, so a crashed or abandoned request
// still consumes an attempt.
func (srv *codeService) VerifyCode(ctx context.Context, input *usecase.VerifyCodeInput) error {
	now := srv.now()

	if !secret.CodePattern.MatchString(input.Code) {
		srv.burn(input.Code, verifyBurnHash)
		srv.logger.Warn("code verification rejected, malformed code")
		return domainerrors.ErrValidationFailed.WithDetails("code format is invalid")
	}

	digest := srv.digester.DigestEmail(input.Email)

	code, err := srv.codeRepo.FindByEmailDigest(ctx, digest)
	if err != nil {
		if errors.Is(err, repository.ErrCodeNotFound) {
			return domainerrors.ErrCodeNotFound
		}
		return errors.Wrap(err, "failed to look up verification code")
	}

	if code.SessionID != input.SessionID {
		srv.burn(input.Code, code.Value)
		srv.logger.Warn("code verification rejected, session mismatch")
		return domainerrors.ErrCodeSessionMismatch
	}

	if code.CooldownActive(now) {
		srv.burn(input.Code, code.Value)
		minutes := minutesUntil(*code.Cooldown, now)
		srv.logger.Warn("code verification rejected during cooldown",
			slog.Int("minutes_remaining", minutes))
		return domainerrors.ErrCodeCooldown.WithDetails(
			fmt.Sprintf("try again in %d minute(s)", minutes))
	}

	if code.Expired(now) {
		if err := srv.codeRepo.DeleteByEmailDigest(ctx, digest); err != nil {
			return err
		}
		srv.burn(input.Code, code.Value)
		return domainerrors.ErrCodeExpired
	}

	code.Attempts++
	if code.Attempts >= entity.MaxCodeAttempts {
		cooldown := now.Add(time.Duration(5*(code.Attempts-entity.MaxCodeAttempts+1)) * time.Minute)
		code.Cooldown = &cooldown
		if err := srv.codeRepo.Save(ctx, code); err != nil {
			return err
		}
		srv.burn(input.Code, code.Value)
		minutes := minutesUntil(cooldown, now)
		srv.logger.Warn("code attempt limit exhausted, cooldown set",
			slog.Int("attempts", code.Attempts),
			slog.Int("cooldown_minutes", minutes))
		return domainerrors.ErrCodeCooldown.WithDetails(
			fmt.Sprintf("try again in %d minute(s)", minutes))
	}
	if err := srv.codeRepo.Save(ctx, code); err != nil {
		return err
	}

	if !srv.hasher.Check(input.Code, code.Value) {
		remaining := entity.MaxCodeAttempts - code.Attempts
		srv.logger.Warn("code verification failed",
			slog.Int("attempts_remaining", remaining))
		return domainerrors.ErrCodeMismatch.WithDetails(
			fmt.Sprintf("%d attempt(s) remaining", remaining))
	}

	// Consumed: a code proves ownership exactly once.
	if err := srv.codeRepo.DeleteByEmailDigest(ctx, digest); err != nil {
		return err
	}
	srv.logger.Info("login code verified")
	return nil
}

// DeleteCode discards any pending code for an address.
func (srv *codeService) DeleteCode(ctx context.Context, email string) error {
	return srv.codeRepo.DeleteByEmailDigest(ctx, srv.digester.DigestEmail(email))
}

// burn runs the hash comparison even on paths that reject regardless of the
// submitted value, keeping response timing uniform across branches.
func (srv *codeService) burn(code, hash string) {
	srv.hasher.Check(code, hash)
}

// minutesUntil reports the whole minutes until a deadline, never less than 1.
func minutesUntil(deadline, now time.Time) int {
	minutes := int(math.Ceil(deadline.Sub(now).Minutes()))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
