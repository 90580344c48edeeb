package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/handler/dto"
	hmocks "github.com/AlexaBaqueroCoder/HouseLy/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSearchSvc, *hmocks.MockBookingSvc, *hmocks.MockCatalogSvc, http.Handler) {
	t.Helper()
	searchSvc := hmocks.NewMockSearchSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	catalogSvc := hmocks.NewMockCatalogSvc(t)

	h := NewHandler(searchSvc, bookingSvc, catalogSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/search", h.Search)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/properties", h.ListProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.GET("/cities", h.ListCities)
	}

	return searchSvc, bookingSvc, catalogSvc, r
}

// --- Search ---

func TestHandler_Search_Success(t *testing.T) {
	searchSvc, _, _, r := setupRouter(t)

	result := &domain.SearchResult{
		CityName: "Bogotá",
		Properties: []*domain.Property{
			{ID: "P1", Title: "Apartamento en Chapinero", City: "Bogotá", PricePerNight: 180000, Capacity: 3, Available: true},
		},
	}
	searchSvc.EXPECT().Search(mock.Anything, mock.Anything).Return(result, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?city=bogota&checkin=2026-09-10&checkout=2026-09-12&guests=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "$180.000 / noche", resp.Properties[0].Price)
	assert.Nil(t, resp.Diagnostics)
}

func TestHandler_Search_NoResultsWithDiagnostics(t *testing.T) {
	searchSvc, _, _, r := setupRouter(t)

	result := &domain.SearchResult{
		CityName:      "Cartagena",
		TotalInCity:   3,
		WithConflicts: 2,
	}
	searchSvc.EXPECT().Search(mock.Anything, mock.Anything).Return(result, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?city=cartagena&checkin=2026-09-10&checkout=2026-09-12&guests=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	require.NotNil(t, resp.Diagnostics)
	assert.Equal(t, 3, resp.Diagnostics.TotalInCity)
	assert.Equal(t, 2, resp.Diagnostics.WithConflicts)
}

func TestHandler_Search_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?city=bogota&checkin=10/09/2026&checkout=2026-09-12&guests=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Search_ValidationError(t *testing.T) {
	searchSvc, _, _, r := setupRouter(t)

	searchSvc.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?city=atlantis", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	reservation := &domain.Reservation{
		ID:         "RES004",
		PropertyID: "P1",
		GuestName:  "Laura Martínez",
		Email:      "laura@example.com",
		Checkin:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Checkout:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		Status:     domain.ReservationStatusConfirmed,
		CreatedAt:  time.Now().UTC(),
		TotalPrice: 360000,
	}

	bookingSvc.EXPECT().CreateReservation(mock.Anything, mock.Anything).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		PropertyID: "P1",
		GuestName:  "Laura Martínez",
		Email:      "laura@example.com",
		Checkin:    "2026-09-10",
		Checkout:   "2026-09-12",
		Guests:     2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RES004", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "$360.000", resp.TotalPrice)
}

func TestHandler_CreateReservation_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"property_id":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"property_id":"P1","guest_name":"Laura","email":"laura@example.com","checkin":"not-a-date","checkout":"2026-09-12","guests":2}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_DateConflict(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().CreateReservation(mock.Anything, mock.Anything).Return(nil, domain.ErrDateConflict)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		PropertyID: "P1",
		GuestName:  "Laura Martínez",
		Email:      "laura@example.com",
		Checkin:    "2026-09-10",
		Checkout:   "2026-09-12",
		Guests:     2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReservation_PropertyNotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().CreateReservation(mock.Anything, mock.Anything).Return(nil, domain.ErrPropertyNotFound)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		PropertyID: "P99",
		GuestName:  "Laura Martínez",
		Email:      "laura@example.com",
		Checkin:    "2026-09-10",
		Checkout:   "2026-09-12",
		Guests:     2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Properties ---

func TestHandler_ListProperties_Success(t *testing.T) {
	_, _, catalogSvc, r := setupRouter(t)

	properties := []*domain.Property{
		{ID: "P1", Title: "Apartamento en Chapinero", City: "Bogotá", PricePerNight: 180000},
		{ID: "P2", Title: "Loft en El Poblado", City: "Medellín", PricePerNight: 220000},
	}
	catalogSvc.EXPECT().List(mock.Anything).Return(properties, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PropertyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetProperty_Success(t *testing.T) {
	_, _, catalogSvc, r := setupRouter(t)

	details := &domain.PropertyDetails{
		Property: domain.Property{ID: "P1", Title: "Apartamento en Chapinero", City: "Bogotá", PricePerNight: 180000},
		Reservations: []domain.Reservation{
			{ID: "RES001", PropertyID: "P1", Status: domain.ReservationStatusConfirmed},
		},
	}
	catalogSvc.EXPECT().GetDetails(mock.Anything, "P1").Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/P1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PropertyDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "P1", resp.Property.ID)
	assert.Len(t, resp.Reservations, 1)
}

func TestHandler_GetProperty_NotFound(t *testing.T) {
	_, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().GetDetails(mock.Anything, "P99").Return(nil, domain.ErrPropertyNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/P99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Cities ---

func TestHandler_ListCities(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, len(domain.Cities))
	assert.Equal(t, "cartagena", resp[0].Slug)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	_, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().GetDetails(mock.Anything, "P1").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/P1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
