package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

// ReservationStore is the in-memory reservation collection for the
// session. Records are append-only: there is no update or delete path,
// and stored records are treated as immutable.
type ReservationStore struct {
	mu      sync.RWMutex
	entries []*domain.Reservation
	nextSeq int
}

func NewReservationStore(initial []domain.Reservation) *ReservationStore {
	s := &ReservationStore{
		entries: make([]*domain.Reservation, 0, len(initial)),
		nextSeq: len(initial) + 1,
	}
	for i := range initial {
		r := initial[i]
		s.entries = append(s.entries, &r)
	}
	return s
}

// Append stores the reservation and assigns its identifier. Callers
// never pick ids: the store keeps the RES-prefixed zero-padded format
// of the seed data, and the sequence only grows, so ids stay unique
// even past three digits.
func (s *ReservationStore) Append(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = fmt.Sprintf("RES%03d", s.nextSeq)
	s.nextSeq++
	s.entries = append(s.entries, r)

	return r, nil
}

// ListByProperty returns the property's confirmed reservations in
// insertion order. Cancelled reservations are filtered out here, so
// callers only ever see records that block availability.
func (s *ReservationStore) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*domain.Reservation
	for _, r := range s.entries {
		if r.PropertyID == propertyID && r.Blocks() {
			res = append(res, r)
		}
	}
	return res, nil
}

// List returns every reservation regardless of status.
func (s *ReservationStore) List(ctx context.Context) ([]*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*domain.Reservation, len(s.entries))
	copy(res, s.entries)
	return res, nil
}

func (s *ReservationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
