package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/repository"
	mockRepo "plateful/internal/mocks/repository"
	mockSvc "plateful/internal/mocks/service"
	"plateful/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type codeServiceFixture struct {
	codeRepo  *mockRepo.MockCodeRepository
	generator *mockSvc.MockCodeGenerator
	hasher    *mockSvc.MockCodeHasher
	digester  *mockSvc.MockDigester
	mailer    *mockSvc.MockMailer
	service   *codeService
	now       time.Time
}

func newCodeServiceFixture(t *testing.T) *codeServiceFixture {
	f := &codeServiceFixture{
		codeRepo:  mockRepo.NewMockCodeRepository(t),
		generator: mockSvc.NewMockCodeGenerator(t),
		hasher:    mockSvc.NewMockCodeHasher(t),
		digester:  mockSvc.NewMockDigester(t),
		mailer:    mockSvc.NewMockMailer(t),
		now:       time.Now(),
	}
	f.service = NewCodeService(
		f.codeRepo, f.generator, f.hasher, f.digester, f.mailer,
		slog.New(slog.DiscardHandler),
	).(*codeService)
	f.service.now = func() time.Time { return f.now }
	return f
}

const testDigest = "digest-of-user-at-example-com"

func TestCodeService_RequestCode_FirstSend(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).
		Return(nil, repository.ErrCodeNotFound)
	f.generator.EXPECT().Generate().Return("4AFK-TQ9M", nil)
	f.hasher.EXPECT().Hash("4AFK-TQ9M").Return("hashed", nil)
	f.codeRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		Run(func(_ context.Context, code *entity.VerificationCode) {
			assert.Equal(t, 1, code.Count)
			assert.Equal(t, 0, code.Attempts)
			assert.Equal(t, "hashed", code.Value)
			assert.Equal(t, "user@example.com", code.Email)
			assert.Equal(t, sessionID, code.SessionID)
			assert.Equal(t, f.now.Add(entity.CodeLifetime), code.ExpiresAt)
		}).
		Return(nil)
	f.mailer.EXPECT().SendLoginCode(ctx, "user@example.com", "4AFK-TQ9M").Return(nil)

	out, err := f.service.RequestCode(ctx, &usecase.RequestCodeInput{
		Email:     "user@example.com",
		SessionID: sessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, out.SendsRemaining)
}

func TestCodeService_RequestCode_ResendIncrementsCount(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	existing := &entity.VerificationCode{
		Count:     1,
		IssuedAt:  f.now.Add(-time.Minute),
		ExpiresAt: f.now.Add(4 * time.Minute),
		Email:     "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.generator.EXPECT().Generate().Return("Q3MD-7HRW", nil)
	f.hasher.EXPECT().Hash("Q3MD-7HRW").Return("hashed-2", nil)
	f.codeRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		Run(func(_ context.Context, code *entity.VerificationCode) {
			assert.Equal(t, 2, code.Count)
			assert.Equal(t, 0, code.Attempts)
		}).
		Return(nil)
	f.mailer.EXPECT().SendLoginCode(ctx, "user@example.com", "Q3MD-7HRW").Return(nil)

	out, err := f.service.RequestCode(ctx, &usecase.RequestCodeInput{Email: "user@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.SendsRemaining)
}

func TestCodeService_RequestCode_WindowElapsedResetsCounters(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	existing := &entity.VerificationCode{
		Count:    entity.MaxCodeSends,
		IssuedAt: f.now.Add(-entity.CodeSendWindow - time.Minute),
		Email:    "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.generator.EXPECT().Generate().Return("4AFK-TQ9M", nil)
	f.hasher.EXPECT().Hash("4AFK-TQ9M").Return("hashed", nil)
	f.codeRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		Run(func(_ context.Context, code *entity.VerificationCode) {
			assert.Equal(t, 1, code.Count)
		}).
		Return(nil)
	f.mailer.EXPECT().SendLoginCode(ctx, "user@example.com", "4AFK-TQ9M").Return(nil)

	out, err := f.service.RequestCode(ctx, &usecase.RequestCodeInput{Email: "user@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, out.SendsRemaining)
}

func TestCodeService_RequestCode_ExhaustedSendsSetCooldown(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	existing := &entity.VerificationCode{
		Count:     entity.MaxCodeSends,
		IssuedAt:  f.now.Add(-2 * time.Minute),
		ExpiresAt: f.now.Add(3 * time.Minute),
		Email:     "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.codeRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		Run(func(_ context.Context, code *entity.VerificationCode) {
			assert.Equal(t, entity.MaxCodeSends+1, code.Count)
			require.NotNil(t, code.Cooldown)
			assert.Equal(t, f.now.Add(5*time.Minute), *code.Cooldown)
		}).
		Return(nil)

	_, err := f.service.RequestCode(ctx, &usecase.RequestCodeInput{Email: "user@example.com"})
	assertAppError(t, err, domainerrors.ErrCodeCooldown)
}

func TestCodeService_RequestCode_RejectedDuringCooldown(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	cooldown := f.now.Add(7 * time.Minute)
	existing := &entity.VerificationCode{
		Count:    entity.MaxCodeSends + 1,
		IssuedAt: f.now.Add(-3 * time.Minute),
		Cooldown: &cooldown,
		Email:    "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)

	_, err := f.service.RequestCode(ctx, &usecase.RequestCodeInput{Email: "user@example.com"})
	assertAppError(t, err, domainerrors.ErrCodeCooldown)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "7 minute")
}

func TestCodeService_RequestCode_ElapsedCooldownClearsState(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	cooldown := f.now.Add(-time.Minute)
	existing := &entity.VerificationCode{
		Count:    entity.MaxCodeSends + 1,
		IssuedAt: f.now.Add(-10 * time.Minute),
		Cooldown: &cooldown,
		Email:    "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.codeRepo.EXPECT().DeleteByEmailDigest(ctx, testDigest).Return(nil)
	// No Generate, Save or SendLoginCode expectations: the stale record is
	// deleted and issuance waits for the next request.

	_, err := f.service.RequestCode(ctx, &usecase.RequestCodeInput{Email: "user@example.com"})
	assertAppError(t, err, domainerrors.ErrCodeCooldownElapsed)
}

func TestCodeService_VerifyCode_Success(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()
	sessionID := uuid.New()

	existing := &entity.VerificationCode{
		Count:     1,
		Value:     "hashed",
		IssuedAt:  f.now.Add(-time.Minute),
		ExpiresAt: f.now.Add(4 * time.Minute),
		Email:     "user@example.com",
		SessionID: sessionID,
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.codeRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		Run(func(_ context.Context, code *entity.VerificationCode) {
			assert.Equal(t, 1, code.Attempts)
		}).
		Return(nil)
	f.hasher.EXPECT().Check("4AFK-TQ9M", "hashed").Return(true)
	f.codeRepo.EXPECT().DeleteByEmailDigest(ctx, testDigest).Return(nil)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email:     "user@example.com",
		Code:      "4AFK-TQ9M",
		SessionID: sessionID,
	})
	require.NoError(t, err)
}

func TestCodeService_VerifyCode_MismatchCountsAttempt(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	existing := &entity.VerificationCode{
		Value:     "hashed",
		IssuedAt:  f.now.Add(-time.Minute),
		ExpiresAt: f.now.Add(4 * time.Minute),
		Email:     "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	// The attempt is recorded before the hash comparison runs.
	f.codeRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		Run(func(_ context.Context, code *entity.VerificationCode) {
			assert.Equal(t, 1, code.Attempts)
		}).
		Return(nil)
	f.hasher.EXPECT().Check("XPMD-7HRW", "hashed").Return(false)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email: "user@example.com",
		Code:  "XPMD-7HRW",
	})
	assertAppError(t, err, domainerrors.ErrCodeMismatch)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), "2 attempt")
}

func TestCodeService_VerifyCode_AttemptLimitSetsCooldown(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	existing := &entity.VerificationCode{
		Value:     "hashed",
		Attempts:  entity.MaxCodeAttempts - 1,
		IssuedAt:  f.now.Add(-time.Minute),
		ExpiresAt: f.now.Add(4 * time.Minute),
		Email:     "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.codeRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationCode")).
		Run(func(_ context.Context, code *entity.VerificationCode) {
			assert.Equal(t, entity.MaxCodeAttempts, code.Attempts)
			require.NotNil(t, code.Cooldown)
			assert.Equal(t, f.now.Add(5*time.Minute), *code.Cooldown)
		}).
		Return(nil)
	// The hash is still exercised so timing stays uniform, but the result
	// cannot rescue the request.
	f.hasher.EXPECT().Check("4AFK-TQ9M", "hashed").Return(true)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email: "user@example.com",
		Code:  "4AFK-TQ9M",
	})
	assertAppError(t, err, domainerrors.ErrCodeCooldown)
}

func TestCodeService_VerifyCode_ExpiredCodeIsDeleted(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	existing := &entity.VerificationCode{
		Value:     "hashed",
		IssuedAt:  f.now.Add(-10 * time.Minute),
		ExpiresAt: f.now.Add(-5 * time.Minute),
		Email:     "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.codeRepo.EXPECT().DeleteByEmailDigest(ctx, testDigest).Return(nil)
	f.hasher.EXPECT().Check("4AFK-TQ9M", "hashed").Return(true)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email: "user@example.com",
		Code:  "4AFK-TQ9M",
	})
	assertAppError(t, err, domainerrors.ErrCodeExpired)
}

func TestCodeService_VerifyCode_CooldownBlocksWithoutAttempt(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	cooldown := f.now.Add(4 * time.Minute)
	existing := &entity.VerificationCode{
		Value:     "hashed",
		Attempts:  entity.MaxCodeAttempts,
		Cooldown:  &cooldown,
		IssuedAt:  f.now.Add(-time.Minute),
		ExpiresAt: f.now.Add(4 * time.Minute),
		Email:     "user@example.com",
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.hasher.EXPECT().Check("4AFK-TQ9M", "hashed").Return(true)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email: "user@example.com",
		Code:  "4AFK-TQ9M",
	})
	assertAppError(t, err, domainerrors.ErrCodeCooldown)
	// No Save expectation: the attempt counter is untouched during cooldown.
}

func TestCodeService_VerifyCode_MalformedCodeRejectedBeforeLookup(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	// Entirely composed of characters outside the code alphabet. The gate
	// fires before any repository access, so no stored attempt is consumed;
	// only the timing burn against the reference hash runs.
	f.hasher.EXPECT().Check("0O1l-5S8B", verifyBurnHash).Return(false)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email: "user@example.com",
		Code:  "0O1l-5S8B",
	})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
	f.codeRepo.AssertNotCalled(t, "FindByEmailDigest", mock.Anything, mock.Anything)
	f.codeRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCodeService_VerifyCode_SessionMismatch(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	existing := &entity.VerificationCode{
		Value:     "hashed",
		IssuedAt:  f.now.Add(-time.Minute),
		ExpiresAt: f.now.Add(4 * time.Minute),
		Email:     "user@example.com",
		SessionID: uuid.New(),
	}

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).Return(existing, nil)
	f.hasher.EXPECT().Check("4AFK-TQ9M", "hashed").Return(true)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email:     "user@example.com",
		Code:      "4AFK-TQ9M",
		SessionID: uuid.New(),
	})
	assertAppError(t, err, domainerrors.ErrCodeSessionMismatch)
}

func TestCodeService_VerifyCode_NotFound(t *testing.T) {
	f := newCodeServiceFixture(t)
	ctx := context.Background()

	f.digester.EXPECT().DigestEmail("user@example.com").Return(testDigest)
	f.codeRepo.EXPECT().FindByEmailDigest(ctx, testDigest).
		Return(nil, repository.ErrCodeNotFound)

	err := f.service.VerifyCode(ctx, &usecase.VerifyCodeInput{
		Email: "user@example.com",
		Code:  "4AFK-TQ9M",
	})
	assertAppError(t, err, domainerrors.ErrCodeNotFound)
}

// assertAppError checks that err carries the same business error code as want.
func assertAppError(t *testing.T, err error, want domainerrors.AppError) {
	t.Helper()
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())
}
