package service

import (
	"context"
	"testing"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func searchCriteria(t *testing.T) domain.SearchCriteria {
	t.Helper()
	return domain.SearchCriteria{
		City:     "bogota",
		Checkin:  day(t, "2024-06-01"),
		Checkout: day(t, "2024-06-03"),
		Guests:   2,
	}
}

func newSearchService(t *testing.T) (*mocks.MockPropertyRepo, *mocks.MockReservationRepo, *SearchService) {
	t.Helper()
	properties := mocks.NewMockPropertyRepo(t)
	reservations := mocks.NewMockReservationRepo(t)
	svc := NewSearchService(properties, reservations, NewAvailabilityService(reservations), newTestLogger(t))
	return properties, reservations, svc
}

func TestSearchService_Search_Match(t *testing.T) {
	properties, reservations, svc := newSearchService(t)

	properties.EXPECT().List(mock.Anything).Return([]*domain.Property{
		{ID: "P1", City: "Bogotá", Capacity: 4, Available: true, PricePerNight: 100000},
	}, nil)
	reservations.EXPECT().ListByProperty(mock.Anything, "P1").Return(nil, nil)
	reservations.EXPECT().List(mock.Anything).Return(nil, nil)

	result, err := svc.Search(context.Background(), searchCriteria(t))

	require.NoError(t, err)
	require.Len(t, result.Properties, 1)
	assert.Equal(t, "P1", result.Properties[0].ID)
	assert.Equal(t, "Bogotá", result.CityName)
}

func TestSearchService_Search_CapacityTooSmall(t *testing.T) {
	properties, reservations, svc := newSearchService(t)

	properties.EXPECT().List(mock.Anything).Return([]*domain.Property{
		{ID: "P1", City: "Bogotá", Capacity: 4, Available: true},
	}, nil)
	reservations.EXPECT().ListByProperty(mock.Anything, "P1").Return(nil, nil)
	reservations.EXPECT().List(mock.Anything).Return(nil, nil)

	criteria := searchCriteria(t)
	criteria.Guests = 6

	result, err := svc.Search(context.Background(), criteria)

	require.NoError(t, err)
	assert.Empty(t, result.Properties)
	assert.Equal(t, 1, result.TotalInCity)
	assert.Equal(t, 0, result.WithConflicts)
}

func TestSearchService_Search_UnavailableFlagExcludes(t *testing.T) {
	properties, reservations, svc := newSearchService(t)

	properties.EXPECT().List(mock.Anything).Return([]*domain.Property{
		{ID: "P1", City: "Bogotá", Capacity: 4, Available: false},
	}, nil)
	reservations.EXPECT().ListByProperty(mock.Anything, "P1").Return(nil, nil)
	reservations.EXPECT().List(mock.Anything).Return(nil, nil)

	result, err := svc.Search(context.Background(), searchCriteria(t))

	require.NoError(t, err)
	assert.Empty(t, result.Properties)
	// the flag does not matter for diagnostics
	assert.Equal(t, 1, result.TotalInCity)
}

func TestSearchService_Search_ConflictDiagnostics(t *testing.T) {
	properties, reservations, svc := newSearchService(t)

	taken := []*domain.Reservation{
		{ID: "RES001", PropertyID: "P1", Status: domain.ReservationStatusConfirmed,
			Checkin: day(t, "2024-06-01"), Checkout: day(t, "2024-06-05")},
	}

	properties.EXPECT().List(mock.Anything).Return([]*domain.Property{
		{ID: "P1", City: "Bogotá", Capacity: 4, Available: true},
	}, nil)
	reservations.EXPECT().ListByProperty(mock.Anything, "P1").Return(taken, nil)
	reservations.EXPECT().List(mock.Anything).Return(taken, nil)

	result, err := svc.Search(context.Background(), searchCriteria(t))

	require.NoError(t, err)
	assert.Empty(t, result.Properties)
	assert.Equal(t, 1, result.TotalInCity)
	assert.Equal(t, 1, result.WithConflicts)
}

func TestSearchService_Search_OtherCityNotCounted(t *testing.T) {
	properties, reservations, svc := newSearchService(t)

	properties.EXPECT().List(mock.Anything).Return([]*domain.Property{
		{ID: "P1", City: "Medellín", Capacity: 4, Available: true},
	}, nil)
	reservations.EXPECT().List(mock.Anything).Return(nil, nil)

	result, err := svc.Search(context.Background(), searchCriteria(t))

	require.NoError(t, err)
	assert.Empty(t, result.Properties)
	assert.Equal(t, 0, result.TotalInCity)
	assert.Equal(t, 0, result.WithConflicts)
}

func TestSearchService_Search_Validation(t *testing.T) {
	_, _, svc := newSearchService(t)

	tests := []struct {
		name   string
		mutate func(*domain.SearchCriteria)
	}{
		{"missing city", func(c *domain.SearchCriteria) { c.City = "" }},
		{"unknown city", func(c *domain.SearchCriteria) { c.City = "paris" }},
		{"missing dates", func(c *domain.SearchCriteria) { c.Checkin = time.Time{}; c.Checkout = time.Time{} }},
		{"inverted dates", func(c *domain.SearchCriteria) { c.Checkin, c.Checkout = c.Checkout, c.Checkin }},
		{"equal dates", func(c *domain.SearchCriteria) { c.Checkout = c.Checkin }},
		{"zero guests", func(c *domain.SearchCriteria) { c.Guests = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := searchCriteria(t)
			tt.mutate(&criteria)

			_, err := svc.Search(context.Background(), criteria)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}
