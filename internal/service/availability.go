package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports"
)

// AvailabilityService decides whether a property is free for a stay by
// scanning its confirmed reservations for date overlaps. It is pure:
// no side effects, no caching, linear in the property's reservations.
type AvailabilityService struct {
	reservations ports.ReservationRepo
}

func NewAvailabilityService(reservations ports.ReservationRepo) *AvailabilityService {
	return &AvailabilityService{reservations: reservations}
}

// IsAvailable assumes checkin < checkout; callers validate the
// ordering before getting here.
func (s *AvailabilityService) IsAvailable(ctx context.Context, propertyID string, checkin, checkout time.Time) (bool, error) {
	reserved, err := s.reservations.ListByProperty(ctx, propertyID)
	if err != nil {
		return false, fmt.Errorf("list reservations: %w", err)
	}

	for _, r := range reserved {
		if domain.Overlaps(checkin, checkout, r.Checkin, r.Checkout) {
			return false, nil
		}
	}

	return true, nil
}
