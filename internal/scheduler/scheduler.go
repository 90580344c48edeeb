package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type mirrorFlusher interface {
	FlushPending(ctx context.Context) (int, error)
	Pending() int
}

// Scheduler periodically re-sends reservations whose copy to the
// spreadsheet failed.
type Scheduler struct {
	mirror   mirrorFlusher
	interval time.Duration
	logger   logger.Logger
}

func New(
	mirror mirrorFlusher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		mirror:   mirror,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.mirror.Pending() == 0 {
		return
	}

	flushed, err := s.mirror.FlushPending(ctx)
	if err != nil {
		s.logger.Error("failed to flush mirror queue",
			logger.Int("flushed", flushed),
			logger.Int("pending", s.mirror.Pending()),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("mirror queue flushed",
		logger.Int("flushed", flushed),
	)
}
