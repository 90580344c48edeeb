package ports

import (
	"context"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

type ReservationRepo interface {
	Append(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
}
