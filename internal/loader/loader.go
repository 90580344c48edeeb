package loader

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/wb-go/wbf/logger"
)

//go:embed data/properties.json
var propertiesJSON []byte

//go:embed data/reservations.json
var reservationsJSON []byte

// Source is the remote catalog source. A nil Source means local-only
// mode.
type Source interface {
	LoadProperties(ctx context.Context) ([]domain.Property, error)
	LoadReservations(ctx context.Context) ([]domain.Reservation, error)
}

// Load fills the two session collections, preferring the remote
// spreadsheet and falling back unconditionally to the embedded seed
// files on any failure. There is no retry: the fallback is the
// recovery.
func Load(ctx context.Context, src Source, log logger.Logger) ([]domain.Property, []domain.Reservation, error) {
	if src != nil {
		properties, reservations, err := loadRemote(ctx, src)
		if err == nil {
			log.Info("catalog loaded from spreadsheet",
				logger.Int("properties", len(properties)),
				logger.Int("reservations", len(reservations)),
			)
			return properties, reservations, nil
		}
		log.Error("spreadsheet load failed, falling back to embedded data",
			logger.String("error", err.Error()),
		)
	}

	return loadStatic(log)
}

func loadRemote(ctx context.Context, src Source) ([]domain.Property, []domain.Reservation, error) {
	properties, err := src.LoadProperties(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load properties: %w", err)
	}

	reservations, err := src.LoadReservations(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load reservations: %w", err)
	}

	return properties, reservations, nil
}

// Seed records keep the field names of the original data files, with
// the nightly price stored as a display string.
type seedProperty struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	City        string `json:"city"`
	Price       string `json:"price"`
	Capacity    int    `json:"capacity"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type seedReservation struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	GuestName  string `json:"guestName"`
	Email      string `json:"email"`
	Checkin    string `json:"checkin"`
	Checkout   string `json:"checkout"`
	Guests     int    `json:"guests"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	TotalPrice int64  `json:"totalPrice"`
}

func loadStatic(log logger.Logger) ([]domain.Property, []domain.Reservation, error) {
	var seedProps []seedProperty
	if err := json.Unmarshal(propertiesJSON, &seedProps); err != nil {
		return nil, nil, fmt.Errorf("parse embedded properties: %w", err)
	}

	var seedRes []seedReservation
	if err := json.Unmarshal(reservationsJSON, &seedRes); err != nil {
		return nil, nil, fmt.Errorf("parse embedded reservations: %w", err)
	}

	properties := make([]domain.Property, 0, len(seedProps))
	for _, sp := range seedProps {
		price, err := domain.ParsePrice(sp.Price)
		if err != nil {
			return nil, nil, fmt.Errorf("property %s: parse price: %w", sp.ID, err)
		}
		properties = append(properties, domain.Property{
			ID:            sp.ID,
			Title:         sp.Title,
			City:          sp.City,
			PricePerNight: price,
			Capacity:      sp.Capacity,
			Available:     sp.Available,
			Description:   sp.Description,
			Image:         sp.Image,
		})
	}

	reservations := make([]domain.Reservation, 0, len(seedRes))
	for _, sr := range seedRes {
		r, err := reservationFromSeed(sr)
		if err != nil {
			return nil, nil, fmt.Errorf("reservation %s: %w", sr.ID, err)
		}
		reservations = append(reservations, r)
	}

	log.Info("catalog loaded from embedded data",
		logger.Int("properties", len(properties)),
		logger.Int("reservations", len(reservations)),
	)

	return properties, reservations, nil
}

func reservationFromSeed(sr seedReservation) (domain.Reservation, error) {
	checkin, err := domain.ParseDate(sr.Checkin)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("parse checkin: %w", err)
	}
	checkout, err := domain.ParseDate(sr.Checkout)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("parse checkout: %w", err)
	}

	var createdAt time.Time
	if sr.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, sr.CreatedAt)
		if err != nil {
			return domain.Reservation{}, fmt.Errorf("parse createdAt: %w", err)
		}
	}

	return domain.Reservation{
		ID:         sr.ID,
		PropertyID: sr.PropertyID,
		GuestName:  sr.GuestName,
		Email:      sr.Email,
		Checkin:    checkin,
		Checkout:   checkout,
		Guests:     sr.Guests,
		Status:     domain.ReservationStatus(sr.Status),
		CreatedAt:  createdAt,
		TotalPrice: sr.TotalPrice,
	}, nil
}
