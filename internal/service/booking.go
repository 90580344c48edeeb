package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AlexaBaqueroCoder/HouseLy/internal/domain"
	"github.com/AlexaBaqueroCoder/HouseLy/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	reservations ports.ReservationRepo
	properties   ports.PropertyRepo
	availability *AvailabilityService
	pricing      *PricingService
	mirror       ports.ReservationMirror
	notifier     ports.BookingNotifier
	logger       logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewBookingService(
	reservations ports.ReservationRepo,
	properties ports.PropertyRepo,
	availability *AvailabilityService,
	pricing *PricingService,
	mirror ports.ReservationMirror,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		reservations: reservations,
		properties:   properties,
		availability: availability,
		pricing:      pricing,
		mirror:       mirror,
		notifier:     notifier,
		logger:       logger,
		locks:        make(map[string]*sync.Mutex),
	}
}

// CreateReservation books a stay. Availability is a precondition
// enforced here, not left to the caller: an overlapping confirmed
// reservation fails the call with domain.ErrDateConflict. The append
// to the in-memory store is the durability point; mirroring to the
// spreadsheet and notifying run afterwards as best-effort side effects
// and never fail the booking.
func (s *BookingService) CreateReservation(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if err := validateReservationInput(input); err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("check property: %w", err)
	}

	if input.Guests > property.Capacity {
		return nil, fmt.Errorf("%w: property %s holds at most %d guests", domain.ErrValidation, property.ID, property.Capacity)
	}

	// The availability check and the append must not interleave with
	// another booking for the same property.
	unlock := s.lockProperty(input.PropertyID)
	defer unlock()

	free, err := s.availability.IsAvailable(ctx, input.PropertyID, input.Checkin, input.Checkout)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !free {
		return nil, domain.ErrDateConflict
	}

	total, err := s.pricing.TotalPrice(ctx, input.PropertyID, input.Checkin, input.Checkout)
	if err != nil {
		return nil, fmt.Errorf("total price: %w", err)
	}

	reservation := &domain.Reservation{
		PropertyID: input.PropertyID,
		GuestName:  input.GuestName,
		Email:      input.Email,
		Checkin:    input.Checkin,
		Checkout:   input.Checkout,
		Guests:     input.Guests,
		Status:     domain.ReservationStatusConfirmed,
		CreatedAt:  time.Now().UTC(),
		TotalPrice: total,
	}

	stored, err := s.reservations.Append(ctx, reservation)
	if err != nil {
		return nil, fmt.Errorf("append reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", stored.ID),
		logger.String("property_id", stored.PropertyID),
		logger.String("guest", stored.GuestName),
		logger.Int64("total_price", stored.TotalPrice),
	)

	go s.mirror.Mirror(context.WithoutCancel(ctx), stored)
	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), stored, property)

	return stored, nil
}

func validateReservationInput(input domain.CreateReservationInput) error {
	if input.PropertyID == "" {
		return fmt.Errorf("%w: property_id is required", domain.ErrValidation)
	}
	if input.GuestName == "" {
		return fmt.Errorf("%w: guest_name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if input.Checkin.IsZero() || input.Checkout.IsZero() {
		return fmt.Errorf("%w: checkin and checkout dates are required", domain.ErrValidation)
	}
	if !input.Checkin.Before(input.Checkout) {
		return fmt.Errorf("%w: checkout must be after checkin", domain.ErrValidation)
	}
	if input.Guests < 1 {
		return fmt.Errorf("%w: guests must be a positive number", domain.ErrValidation)
	}
	return nil
}

// lockProperty serializes check-then-append per property, so two
// overlapping requests cannot both pass the availability check.
func (s *BookingService) lockProperty(propertyID string) func() {
	s.mu.Lock()
	l, ok := s.locks[propertyID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[propertyID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}
