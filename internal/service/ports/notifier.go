package ports

import (
	"context"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

type BookingNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation, p *domain.Property)
	NotifyMirrorFailed(ctx context.Context, r *domain.Reservation, err error)
}
