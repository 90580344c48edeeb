package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SearchSvc interface {
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}

type BookingSvc interface {
	CreateReservation(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
}

type CatalogSvc interface {
	List(ctx context.Context) ([]*domain.Property, error)
	GetDetails(ctx context.Context, id string) (*domain.PropertyDetails, error)
}

type Handler struct {
	searchService  SearchSvc
	bookingService BookingSvc
	catalogService CatalogSvc
}

func NewHandler(searchService SearchSvc, bookingService BookingSvc, catalogService CatalogSvc) *Handler {
	return &Handler{
		searchService:  searchService,
		bookingService: bookingService,
		catalogService: catalogService,
	}
}

// Search

func (h *Handler) Search(c *ginext.Context) {
	criteria := domain.SearchCriteria{City: c.Query("city")}

	if raw := c.Query("checkin"); raw != "" {
		checkin, err := domain.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid checkin format, expected YYYY-MM-DD",
			})
			return
		}
		criteria.Checkin = checkin
	}

	if raw := c.Query("checkout"); raw != "" {
		checkout, err := domain.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid checkout format, expected YYYY-MM-DD",
			})
			return
		}
		criteria.Checkout = checkout
	}

	if raw := c.Query("guests"); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid guests value"})
			return
		}
		criteria.Guests = guests
	}

	result, err := h.searchService.Search(c.Request.Context(), criteria)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(result))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkin, err := domain.ParseDate(req.Checkin)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid checkin format, expected YYYY-MM-DD",
		})
		return
	}

	checkout, err := domain.ParseDate(req.Checkout)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid checkout format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateReservationInput{
		PropertyID: req.PropertyID,
		GuestName:  req.GuestName,
		Email:      req.Email,
		Checkin:    checkin,
		Checkout:   checkout,
		Guests:     req.Guests,
	}

	reservation, err := h.bookingService.CreateReservation(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// Properties

func (h *Handler) ListProperties(c *ginext.Context) {
	properties, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PropertyResponse, 0, len(properties))
	for _, p := range properties {
		resp = append(resp, dto.ToPropertyResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetProperty(c *ginext.Context) {
	details, err := h.catalogService.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyDetailsResponse(details))
}

// Cities

func (h *Handler) ListCities(c *ginext.Context) {
	resp := make([]dto.CityResponse, 0, len(domain.Cities))
	for _, city := range domain.Cities {
		resp = append(resp, dto.ToCityResponse(city))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDateConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
