package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=sweeper.go -destination=../mocks/scheduler/mock.go -package=mocks

type notificationService interface {
	SweepDue(ctx context.Context, strategy retry.Strategy, now time.Time) (int, error)
}

// Sweeper periodically promotes due scheduled notifications into the send
// path. It is safe to run several instances; the send claim serializes them.
type Sweeper struct {
	service  notificationService
	interval time.Duration
}

// NewSweeper creates a new scheduler sweeper.
func NewSweeper(service notificationService, interval time.Duration) *Sweeper {
	return &Sweeper{service: service, interval: interval}
}

// Run sweeps on every tick until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.interval).Msg("scheduler sweeper started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler sweeper stopped")
			return
		case now := <-ticker.C:
			processed, err := s.service.SweepDue(ctx, strategy, now)
			if err != nil {
				zlog.Logger.Error().Err(err).Msg("sweep failed")
				continue
			}

			if processed > 0 {
				zlog.Logger.Info().Int("processed", processed).Msg("sweep processed due notifications")
			}
		}
	}
}
