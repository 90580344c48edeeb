package repository

import (
	"context"
	"testing"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReservations() []domain.Reservation {
	checkin := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	return []domain.Reservation{
		{ID: "RES001", PropertyID: "P1", Status: domain.ReservationStatusConfirmed, Checkin: checkin, Checkout: checkin.AddDate(0, 0, 3)},
		{ID: "RES002", PropertyID: "P2", Status: domain.ReservationStatusConfirmed, Checkin: checkin, Checkout: checkin.AddDate(0, 0, 2)},
		{ID: "RES003", PropertyID: "P1", Status: domain.ReservationStatusCancelled, Checkin: checkin, Checkout: checkin.AddDate(0, 0, 5)},
	}
}

func TestReservationStore_Append_AssignsSequentialIDs(t *testing.T) {
	store := NewReservationStore(seedReservations())

	first, err := store.Append(context.Background(), &domain.Reservation{PropertyID: "P3"})
	require.NoError(t, err)
	assert.Equal(t, "RES004", first.ID)

	second, err := store.Append(context.Background(), &domain.Reservation{PropertyID: "P3"})
	require.NoError(t, err)
	assert.Equal(t, "RES005", second.ID)

	assert.Equal(t, 5, store.Len())
}

func TestReservationStore_Append_EmptyStore(t *testing.T) {
	store := NewReservationStore(nil)

	r, err := store.Append(context.Background(), &domain.Reservation{PropertyID: "P1"})
	require.NoError(t, err)
	assert.Equal(t, "RES001", r.ID)
}

func TestReservationStore_ListByProperty_FiltersConfirmed(t *testing.T) {
	store := NewReservationStore(seedReservations())

	res, err := store.ListByProperty(context.Background(), "P1")
	require.NoError(t, err)

	// RES003 is cancelled and must not show up
	require.Len(t, res, 1)
	assert.Equal(t, "RES001", res[0].ID)
}

func TestReservationStore_ListByProperty_InsertionOrder(t *testing.T) {
	store := NewReservationStore(seedReservations())

	_, err := store.Append(context.Background(), &domain.Reservation{
		PropertyID: "P1",
		Status:     domain.ReservationStatusConfirmed,
	})
	require.NoError(t, err)

	res, err := store.ListByProperty(context.Background(), "P1")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "RES001", res[0].ID)
	assert.Equal(t, "RES004", res[1].ID)
}

func TestReservationStore_List_ReturnsAllStatuses(t *testing.T) {
	store := NewReservationStore(seedReservations())

	res, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 3)
}

func TestPropertyStore_GetByID(t *testing.T) {
	store := NewPropertyStore([]domain.Property{
		{ID: "P1", Title: "Apartamento en el centro", City: "Bogotá"},
		{ID: "P2", Title: "Casa campestre", City: "Pereira"},
	})

	p, err := store.GetByID(context.Background(), "P2")
	require.NoError(t, err)
	assert.Equal(t, "Casa campestre", p.Title)

	_, err = store.GetByID(context.Background(), "P9")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestPropertyStore_List_KeepsOrder(t *testing.T) {
	store := NewPropertyStore([]domain.Property{
		{ID: "P2"}, {ID: "P1"}, {ID: "P3"},
	})

	props, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 3)
	assert.Equal(t, "P2", props[0].ID)
	assert.Equal(t, "P1", props[1].ID)
	assert.Equal(t, "P3", props[2].ID)
}
