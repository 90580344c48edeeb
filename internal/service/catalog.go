package service

import (
	"context"
	"fmt"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports"
)

type CatalogService struct {
	properties   ports.PropertyRepo
	reservations ports.ReservationRepo
}

func NewCatalogService(properties ports.PropertyRepo, reservations ports.ReservationRepo) *CatalogService {
	return &CatalogService{
		properties:   properties,
		reservations: reservations,
	}
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Property, error) {
	return s.properties.List(ctx)
}

// GetDetails returns the property together with its confirmed
// reservations.
func (s *CatalogService) GetDetails(ctx context.Context, id string) (*domain.PropertyDetails, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reserved, err := s.reservations.ListByProperty(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	details := &domain.PropertyDetails{Property: *p}
	details.Reservations = make([]domain.Reservation, len(reserved))
	for i, r := range reserved {
		details.Reservations[i] = *r
	}

	return details, nil
}
