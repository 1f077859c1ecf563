// Package worker contains the background maintenance delivery: periodic
// sweeps that delete expired login codes and expired sessions.
package worker

import (
	"context"
	"log/slog"
	"time"

	"plateful/internal/delivery"
	"plateful/internal/domain/repository"

	"go.uber.org/fx"
)

// sweepInterval is deliberately coarse. Expired codes and sessions are
// already rejected on read; the sweep only reclaims storage.
const sweepInterval = 24 * time.Hour

// SweeperParams holds dependencies for the maintenance worker, injected by Fx.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Logger      *slog.Logger
	CodeRepo    repository.CodeRepository
	SessionRepo repository.SessionRepository
}

type sweeper struct {
	logger      *slog.Logger
	codeRepo    repository.CodeRepository
	sessionRepo repository.SessionRepository

	stop chan struct{}
}

// NewSweeper creates the maintenance worker delivery.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	w := &sweeper{
		logger:      params.Logger,
		codeRepo:    params.CodeRepo,
		sessionRepo: params.SessionRepo,
		stop:        make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(w.stop)

			return nil
		},
	})

	return w, nil
}

// Serve runs the sweep loop until shutdown. The first sweep happens
// immediately so restarts don't postpone cleanup by a full interval.
func (w *sweeper) Serve(ctx context.Context) error {
	w.logger.Info("Starting maintenance worker", slog.Duration("interval", sweepInterval))

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.stop:
			w.logger.Info("Stopping maintenance worker")

			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *sweeper) sweep(ctx context.Context) {
	if deleted, err := w.codeRepo.DeleteExpired(ctx); err != nil {
		w.logger.Error("expired code sweep failed", slog.String("error", err.Error()))
	} else if deleted > 0 {
		w.logger.Info("expired codes deleted", slog.Int64("count", deleted))
	}

	if deleted, err := w.sessionRepo.DeleteExpired(ctx); err != nil {
		w.logger.Error("expired session sweep failed", slog.String("error", err.Error()))
	} else if deleted > 0 {
		w.logger.Info("expired sessions deleted", slog.Int64("count", deleted))
	}
}
