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

func TestPricingService_TotalPrice(t *testing.T) {
	properties := mocks.NewMockPropertyRepo(t)
	svc := NewPricingService(properties)

	// listed as "$100.000 / noche"
	properties.EXPECT().GetByID(mock.Anything, "P1").Return(&domain.Property{
		ID:            "P1",
		PricePerNight: 100000,
	}, nil)

	total, err := svc.TotalPrice(context.Background(), "P1", day(t, "2024-06-01"), day(t, "2024-06-04"))

	require.NoError(t, err)
	assert.Equal(t, int64(300000), total)
}

func TestPricingService_PartialDayChargesOneNight(t *testing.T) {
	properties := mocks.NewMockPropertyRepo(t)
	svc := NewPricingService(properties)

	properties.EXPECT().GetByID(mock.Anything, "P1").Return(&domain.Property{
		ID:            "P1",
		PricePerNight: 100000,
	}, nil)

	checkin := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	checkout := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	total, err := svc.TotalPrice(context.Background(), "P1", checkin, checkout)

	require.NoError(t, err)
	assert.Equal(t, int64(100000), total)
}

func TestPricingService_PropertyNotFound(t *testing.T) {
	properties := mocks.NewMockPropertyRepo(t)
	svc := NewPricingService(properties)

	properties.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPropertyNotFound)

	_, err := svc.TotalPrice(context.Background(), "missing", day(t, "2024-06-01"), day(t, "2024-06-04"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}
