package dto

type CreateReservationRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
	GuestName  string `json:"guest_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Checkin    string `json:"checkin" binding:"required"`
	Checkout   string `json:"checkout" binding:"required"`
	Guests     int    `json:"guests" binding:"required,gt=0"`
}
