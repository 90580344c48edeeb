package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID         string            `json:"id"`
	PropertyID string            `json:"property_id"`
	GuestName  string            `json:"guest_name"`
	Email      string            `json:"email"`
	Checkin    time.Time         `json:"checkin"`
	Checkout   time.Time         `json:"checkout"`
	Guests     int               `json:"guests"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	TotalPrice int64             `json:"total_price"`
}

// Blocks reports whether the reservation holds its property for its
// date range. Only confirmed reservations block availability.
func (r *Reservation) Blocks() bool {
	return r.Status == ReservationStatusConfirmed
}

type CreateReservationInput struct {
	PropertyID string
	GuestName  string
	Email      string
	Checkin    time.Time
	Checkout   time.Time
	Guests     int
}
