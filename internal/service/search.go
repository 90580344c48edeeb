package service

import (
	"context"
	"fmt"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SearchService struct {
	properties   ports.PropertyRepo
	reservations ports.ReservationRepo
	availability *AvailabilityService
	logger       logger.Logger
}

func NewSearchService(
	properties ports.PropertyRepo,
	reservations ports.ReservationRepo,
	availability *AvailabilityService,
	logger logger.Logger,
) *SearchService {
	return &SearchService{
		properties:   properties,
		reservations: reservations,
		availability: availability,
		logger:       logger,
	}
}

// Search returns the properties matching the criteria: exact city,
// enough capacity, property-level available flag on, and no confirmed
// reservation overlapping the requested range. When nothing matches it
// fills the diagnostic counts used for user feedback.
func (s *SearchService) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	cityName, err := resolveCriteria(criteria)
	if err != nil {
		return nil, err
	}

	properties, err := s.properties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	result := &domain.SearchResult{CityName: cityName}
	for _, p := range properties {
		if p.City != cityName || p.Capacity < criteria.Guests || !p.Available {
			continue
		}

		free, err := s.availability.IsAvailable(ctx, p.ID, criteria.Checkin, criteria.Checkout)
		if err != nil {
			return nil, fmt.Errorf("check availability: %w", err)
		}
		if free {
			result.Properties = append(result.Properties, p)
		}
	}

	if len(result.Properties) == 0 {
		if err := s.fillDiagnostics(ctx, criteria, result); err != nil {
			return nil, err
		}
	}

	s.logStats(ctx, properties, result)

	return result, nil
}

func resolveCriteria(c domain.SearchCriteria) (string, error) {
	if c.City == "" {
		return "", fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	cityName, ok := domain.ResolveCity(c.City)
	if !ok {
		return "", fmt.Errorf("%w: unknown city %q", domain.ErrValidation, c.City)
	}
	if c.Checkin.IsZero() || c.Checkout.IsZero() {
		return "", fmt.Errorf("%w: checkin and checkout dates are required", domain.ErrValidation)
	}
	if !c.Checkin.Before(c.Checkout) {
		return "", fmt.Errorf("%w: checkout must be after checkin", domain.ErrValidation)
	}
	if c.Guests < 1 {
		return "", fmt.Errorf("%w: guests must be a positive number", domain.ErrValidation)
	}
	return cityName, nil
}

// fillDiagnostics counts, for an empty result, how many properties the
// city has at all and how many of those are taken for the requested
// range. Diagnostics only: capacity and the available flag are
// deliberately ignored here.
func (s *SearchService) fillDiagnostics(ctx context.Context, criteria domain.SearchCriteria, result *domain.SearchResult) error {
	properties, err := s.properties.List(ctx)
	if err != nil {
		return fmt.Errorf("list properties: %w", err)
	}

	for _, p := range properties {
		if p.City != result.CityName {
			continue
		}
		result.TotalInCity++

		reserved, err := s.reservations.ListByProperty(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("list reservations: %w", err)
		}
		for _, r := range reserved {
			if domain.Overlaps(criteria.Checkin, criteria.Checkout, r.Checkin, r.Checkout) {
				result.WithConflicts++
				break
			}
		}
	}

	return nil
}

func (s *SearchService) logStats(ctx context.Context, properties []*domain.Property, result *domain.SearchResult) {
	all, err := s.reservations.List(ctx)
	if err != nil {
		return
	}

	confirmed := 0
	inCity := 0
	propertyCity := make(map[string]string, len(properties))
	for _, p := range properties {
		propertyCity[p.ID] = p.City
	}
	for _, r := range all {
		if r.Blocks() {
			confirmed++
		}
		if propertyCity[r.PropertyID] == result.CityName {
			inCity++
		}
	}

	s.logger.LogAttrs(ctx, logger.DebugLevel, "search processed",
		logger.String("city", result.CityName),
		logger.Int("matched", len(result.Properties)),
		logger.Int("total_reservations", len(all)),
		logger.Int("confirmed_reservations", confirmed),
		logger.Int("city_reservations", inCity),
	)
}
