package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"fleetrental/internal/domains/booking/model"
	"fleetrental/internal/domains/booking/model/dto"
	"fleetrental/internal/domains/booking/repository"
	customerRepo "fleetrental/internal/domains/customer/repository"
	vehicleRepo "fleetrental/internal/domains/vehicle/repository"
	"fleetrental/shared/failure"
	"fleetrental/shared/timezone"
)

type Booking interface {
	Book(ctx context.Context, req dto.CreateBookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, bookingID int) error
	CheckExpiry(ctx context.Context) int
	Get(id int) (dto.BookingResponse, error)
	GetAll() dto.GetBookingsResponse
	GetByCustomer(customerID int) dto.GetBookingsResponse
}

type serviceImpl struct {
	ledger   repository.Ledger
	catalog  vehicleRepo.Catalog
	registry customerRepo.Registry
}

func New(ledger repository.Ledger, catalog vehicleRepo.Catalog, registry customerRepo.Registry) Booking {
	return &serviceImpl{
		ledger:   ledger,
		catalog:  catalog,
		registry: registry,
	}
}

// Book validates the request and, on success, rents the vehicle out:
// availability flips to false and a new active booking enters the ledger.
//
// Validation is ordered and fails fast on the first violated rule, so the
// caller always sees the same error for the same bad input: vehicle
// present, customer present, dates present, start not in the past, end
// not before start, vehicle available. A failed validation leaves every
// collection untouched.
func (s *serviceImpl) Book(ctx context.Context, req dto.CreateBookingRequest) (*model.Booking, error) {
	vehicle, ok := s.catalog.FindByID(req.VehicleID)
	if !ok {
		return nil, failure.InvalidBooking("no vehicle selected for booking")
	}

	customer, ok := s.registry.FindByID(req.CustomerID)
	if !ok {
		return nil, failure.InvalidBooking("no customer attached to booking")
	}

	startDate, endDate, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	today := timezone.Today()

	if startDate.Before(today) {
		return nil, failure.InvalidDateRange("start date cannot be in the past")
	}

	if endDate.Before(startDate) {
		return nil, failure.InvalidDateRange("end date cannot be before start date")
	}

	if !vehicle.Available {
		return nil, failure.VehicleUnavailable("vehicle " + vehicle.Model + " is already rented")
	}

	vehicle.Available = false

	booking := &model.Booking{
		StartDate: startDate,
		EndDate:   endDate,
		Customer:  customer,
		Vehicle:   vehicle,
		Status:    model.StatusActive,
	}
	s.ledger.Insert(booking)

	log.Info().
		Int("booking_id", booking.ID).
		Int("customer_id", customer.ID).
		Int("vehicle_id", vehicle.ID).
		Str("start", timezone.FormatDate(startDate)).
		Str("end", timezone.FormatDate(endDate)).
		Msg("booking created")

	return booking, nil
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	var zero time.Time

	if start == "" || end == "" {
		return zero, zero, failure.InvalidDateRange("booking dates are required")
	}

	startDate, err := timezone.ParseDate(start)
	if err != nil {
		return zero, zero, failure.InvalidDateRange("start date is not a valid date")
	}

	endDate, err := timezone.ParseDate(end)
	if err != nil {
		return zero, zero, failure.InvalidDateRange("end date is not a valid date")
	}

	return startDate, endDate, nil
}

// Cancel ends an active booking early. The booking stays in the ledger
// with a terminal cancelled status and the vehicle becomes available
// again. Cancelling a completed or already cancelled booking fails.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID int) error {
	booking, ok := s.ledger.FindByID(bookingID)
	if !ok {
		return failure.NotFound(model.EntityName)
	}

	// Only an active booking holds a vehicle to release; cancelling a
	// terminal one again would be a silent no-op otherwise.
	if !booking.Active() {
		return failure.Conflict("a " + string(booking.Status) + " booking cannot be cancelled")
	}

	if err := booking.Transition(model.StatusCancelled); err != nil {
		return err
	}

	booking.Vehicle.Available = true

	log.Info().
		Int("booking_id", booking.ID).
		Int("vehicle_id", booking.Vehicle.ID).
		Msg("booking cancelled, vehicle released")

	return nil
}

// CheckExpiry sweeps the ledger and completes every active booking whose
// end date has passed, releasing the bound vehicle. The sweep is
// idempotent: completed bookings are terminal and never picked up again.
// It returns the number of bookings it expired.
func (s *serviceImpl) CheckExpiry(ctx context.Context) int {
	today := timezone.Today()
	expired := 0

	for _, booking := range s.ledger.ListActive() {
		if !booking.Expired(today) {
			continue
		}

		if err := booking.Transition(model.StatusCompleted); err != nil {
			log.Error().Err(err).Int("booking_id", booking.ID).Msg("failed to complete expired booking")
			continue
		}

		booking.Vehicle.Available = true
		expired++

		log.Info().
			Int("booking_id", booking.ID).
			Int("vehicle_id", booking.Vehicle.ID).
			Msg("booking expired and vehicle auto-returned")
	}

	return expired
}

func (s *serviceImpl) Get(id int) (res dto.BookingResponse, err error) {
	booking, ok := s.ledger.FindByID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll() (res dto.GetBookingsResponse) {
	res.FromModels(s.ledger.List())
	return res
}

// GetByCustomer returns one customer's personal booking history.
func (s *serviceImpl) GetByCustomer(customerID int) (res dto.GetBookingsResponse) {
	res.FromModels(s.ledger.ListByCustomer(customerID))
	return res
}
