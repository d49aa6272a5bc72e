package workers

import (
	"context"
	"time"

	"taskhive_backend/internal/logger"
	"taskhive_backend/internal/repositories"
)

// TokenWorker prunes expired refresh tokens on a schedule so revoked and
// stale sessions do not pile up in storage.
type TokenWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	interval         time.Duration
}

func NewTokenWorker(refreshTokenRepo repositories.RefreshTokenRepository) *TokenWorker {
	return &TokenWorker{
		refreshTokenRepo: refreshTokenRepo,
		interval:         time.Hour,
	}
}

func (w *TokenWorker) Start(ctx context.Context) {
	go w.prune(ctx)
}

func (w *TokenWorker) prune(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token worker stopped")
			return
		case <-ticker.C:
			removed, err := w.refreshTokenRepo.DeleteExpired()
			logger.WorkerLog("token", "prune_expired", err)
			if err == nil && removed > 0 {
				logger.Info("pruned expired refresh tokens", "count", removed)
			}
		}
	}
}
