package dto

import (
	"fmt"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
)

type PropertyResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	City        string `json:"city"`
	Price       string `json:"price"`
	Capacity    int    `json:"capacity"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type PropertyDetailsResponse struct {
	Property     PropertyResponse      `json:"property"`
	Reservations []ReservationResponse `json:"reservations"`
}

type ReservationResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	GuestName  string `json:"guest_name"`
	Email      string `json:"email"`
	Checkin    string `json:"checkin"`
	Checkout   string `json:"checkout"`
	Guests     int    `json:"guests"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	TotalPrice string `json:"total_price"`
}

type SearchDiagnostics struct {
	TotalInCity   int `json:"total_in_city"`
	WithConflicts int `json:"with_conflicts"`
}

type SearchResponse struct {
	Message     string             `json:"message"`
	Count       int                `json:"count"`
	Properties  []PropertyResponse `json:"properties"`
	Diagnostics *SearchDiagnostics `json:"diagnostics,omitempty"`
}

type CityResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		City:        p.City,
		Price:       domain.FormatPrice(p.PricePerNight) + " / noche",
		Capacity:    p.Capacity,
		Available:   p.Available,
		Description: p.Description,
		Image:       p.Image,
	}
}

func ToPropertyDetailsResponse(d *domain.PropertyDetails) PropertyDetailsResponse {
	reservations := make([]ReservationResponse, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		reservations = append(reservations, ToReservationResponse(&r))
	}

	return PropertyDetailsResponse{
		Property:     ToPropertyResponse(&d.Property),
		Reservations: reservations,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		PropertyID: r.PropertyID,
		GuestName:  r.GuestName,
		Email:      r.Email,
		Checkin:    r.Checkin.Format(domain.DateLayout),
		Checkout:   r.Checkout.Format(domain.DateLayout),
		Guests:     r.Guests,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
		TotalPrice: domain.FormatPrice(r.TotalPrice),
	}
}

func ToSearchResponse(result *domain.SearchResult) SearchResponse {
	properties := make([]PropertyResponse, 0, len(result.Properties))
	for _, p := range result.Properties {
		properties = append(properties, ToPropertyResponse(p))
	}

	resp := SearchResponse{
		Message:    searchMessage(result),
		Count:      len(properties),
		Properties: properties,
	}

	if len(properties) == 0 && result.TotalInCity > 0 {
		resp.Diagnostics = &SearchDiagnostics{
			TotalInCity:   result.TotalInCity,
			WithConflicts: result.WithConflicts,
		}
	}

	return resp
}

// Texts match the ones the search form shows to guests.
func searchMessage(result *domain.SearchResult) string {
	switch {
	case len(result.Properties) > 0:
		return fmt.Sprintf(
			"Se encontraron %d propiedades disponibles para las fechas seleccionadas",
			len(result.Properties),
		)
	case result.TotalInCity == 0:
		return "No hay propiedades en la ciudad seleccionada"
	default:
		return fmt.Sprintf(
			"No hay propiedades disponibles para las fechas seleccionadas. Hay %d propiedades en %s, pero %d tienen reservas en esas fechas.",
			result.TotalInCity, result.CityName, result.WithConflicts,
		)
	}
}

func ToCityResponse(c domain.City) CityResponse {
	return CityResponse{Slug: c.Slug, Name: c.Name}
}
