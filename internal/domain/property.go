package domain

// Property is one rental unit from the catalog. The catalog is loaded
// once at startup and properties are never mutated afterwards.
type Property struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	City          string `json:"city"`
	PricePerNight int64  `json:"price_per_night"`
	Capacity      int    `json:"capacity"`
	Available     bool   `json:"available"`
	Description   string `json:"description"`
	Image         string `json:"image"`
}

type PropertyDetails struct {
	Property     Property      `json:"property"`
	Reservations []Reservation `json:"reservations"`
}
