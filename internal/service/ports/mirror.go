package ports

import (
	"context"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

// ReservationMirror receives every created reservation for best-effort
// replication to the external store. Implementations must never fail
// the booking: outcomes are observed through logs and the pending
// queue, not through return values.
type ReservationMirror interface {
	Mirror(ctx context.Context, r *domain.Reservation)
}

// SheetAppender is the write half of the spreadsheet client.
type SheetAppender interface {
	AppendReservation(ctx context.Context, r *domain.Reservation) error
}
