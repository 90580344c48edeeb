package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports"
)

type PricingService struct {
	properties ports.PropertyRepo
}

func NewPricingService(properties ports.PropertyRepo) *PricingService {
	return &PricingService{properties: properties}
}

// TotalPrice charges the property's nightly rate for every started
// night of the stay. An unknown property is an error, never a zero
// total.
func (s *PricingService) TotalPrice(ctx context.Context, propertyID string, checkin, checkout time.Time) (int64, error) {
	p, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return 0, fmt.Errorf("get property: %w", err)
	}

	return p.PricePerNight * int64(domain.Nights(checkin, checkout)), nil
}
