package worker

import (
	"context"
	"log/slog"
	"testing"

	mockRepo "plateful/internal/mocks/repository"

	"github.com/pkg/errors"
)

func newTestSweeper(t *testing.T) (*sweeper, *mockRepo.MockCodeRepository, *mockRepo.MockSessionRepository) {
	t.Helper()
	codeRepo := mockRepo.NewMockCodeRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	w := &sweeper{
		logger:      slog.New(slog.DiscardHandler),
		codeRepo:    codeRepo,
		sessionRepo: sessionRepo,
		stop:        make(chan struct{}),
	}
	return w, codeRepo, sessionRepo
}

func TestSweeper_SweepDeletesExpiredCodesAndSessions(t *testing.T) {
	w, codeRepo, sessionRepo := newTestSweeper(t)
	ctx := context.Background()

	codeRepo.EXPECT().DeleteExpired(ctx).Return(3, nil)
	sessionRepo.EXPECT().DeleteExpired(ctx).Return(2, nil)

	w.sweep(ctx)
}

func TestSweeper_SweepContinuesPastCodeFailure(t *testing.T) {
	w, codeRepo, sessionRepo := newTestSweeper(t)
	ctx := context.Background()

	codeRepo.EXPECT().DeleteExpired(ctx).Return(0, errors.New("connection lost"))
	sessionRepo.EXPECT().DeleteExpired(ctx).Return(1, nil)

	w.sweep(ctx)
}
