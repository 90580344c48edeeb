package service

import (
	"context"
	"sync"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// MirrorService replicates created reservations to the spreadsheet as
// a best-effort side effect. A failed append never rolls back or fails
// the booking: the row goes to a pending queue that the scheduler
// flushes with backoff, and the notifier is alerted.
type MirrorService struct {
	sheet    ports.SheetAppender // nil when no spreadsheet is configured
	notifier ports.BookingNotifier
	logger   logger.Logger
	strategy retry.Strategy

	mu      sync.Mutex
	pending []*domain.Reservation
	lastErr error
}

func NewMirrorService(sheet ports.SheetAppender, notifier ports.BookingNotifier, logger logger.Logger) *MirrorService {
	return &MirrorService{
		sheet:    sheet,
		notifier: notifier,
		logger:   logger,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Mirror satisfies ports.ReservationMirror.
func (s *MirrorService) Mirror(ctx context.Context, r *domain.Reservation) {
	if s.sheet == nil {
		s.logger.Debug("mirror skipped (spreadsheet disabled)",
			logger.String("reservation_id", r.ID),
		)
		return
	}

	if err := s.sheet.AppendReservation(ctx, r); err != nil {
		s.logger.Error("mirror failed, row queued for retry",
			logger.String("reservation_id", r.ID),
			logger.String("error", err.Error()),
		)
		s.enqueue(r, err)
		s.notifier.NotifyMirrorFailed(ctx, r, err)
		return
	}

	s.recordResult(nil)
	s.logger.Info("reservation mirrored",
		logger.String("reservation_id", r.ID),
	)
}

// FlushPending retries every queued row with backoff. Rows that still
// fail go back to the queue for the next flush; the first error is
// returned so the caller can log it.
func (s *MirrorService) FlushPending(ctx context.Context) (int, error) {
	s.mu.Lock()
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(queued) == 0 {
		return 0, nil
	}

	flushed := 0
	var firstErr error
	for _, r := range queued {
		r := r
		err := retry.Do(func() error {
			return s.sheet.AppendReservation(ctx, r)
		}, s.strategy)
		if err != nil {
			s.enqueue(r, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		flushed++
	}

	if firstErr == nil {
		s.recordResult(nil)
	}

	return flushed, firstErr
}

// Pending reports how many rows still wait for a successful mirror.
func (s *MirrorService) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// LastError returns the outcome of the most recent mirror attempt, nil
// after a success.
func (s *MirrorService) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *MirrorService) enqueue(r *domain.Reservation, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, r)
	s.lastErr = err
}

func (s *MirrorService) recordResult(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}
