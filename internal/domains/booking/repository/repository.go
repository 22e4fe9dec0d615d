package repository

import (
	"fleetrental/internal/domains/booking/model"
)

// Ledger is the canonical in-memory booking collection, active and
// terminal records alike.
type Ledger interface {
	Insert(booking *model.Booking) *model.Booking
	Restore(booking *model.Booking)
	FindByID(id int) (*model.Booking, bool)
	List() []*model.Booking
	ListActive() []*model.Booking
	ListByCustomer(customerID int) []*model.Booking
	ActiveByVehicle(vehicleID int) (*model.Booking, bool)
	Len() int
	Clear()
}

type ledgerImpl struct {
	bookings []*model.Booking
	nextID   int
}

func New() Ledger {
	return &ledgerImpl{nextID: 1}
}

// Insert assigns the next sequential id and appends the booking.
func (l *ledgerImpl) Insert(booking *model.Booking) *model.Booking {
	booking.ID = l.nextID
	l.nextID++
	l.bookings = append(l.bookings, booking)

	return booking
}

// Restore appends a booking keeping its persisted id and keeps the id
// counter above every restored id.
func (l *ledgerImpl) Restore(booking *model.Booking) {
	l.bookings = append(l.bookings, booking)
	if booking.ID >= l.nextID {
		l.nextID = booking.ID + 1
	}
}

func (l *ledgerImpl) FindByID(id int) (*model.Booking, bool) {
	for _, booking := range l.bookings {
		if booking.ID == id {
			return booking, true
		}
	}
	return nil, false
}

// List returns the ledger in insertion order. The returned slice is a
// copy; the bookings themselves are shared.
func (l *ledgerImpl) List() []*model.Booking {
	out := make([]*model.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

func (l *ledgerImpl) ListActive() []*model.Booking {
	var out []*model.Booking
	for _, booking := range l.bookings {
		if booking.Active() {
			out = append(out, booking)
		}
	}
	return out
}

// ListByCustomer returns the personal booking history of one customer.
func (l *ledgerImpl) ListByCustomer(customerID int) []*model.Booking {
	var out []*model.Booking
	for _, booking := range l.bookings {
		if booking.Customer != nil && booking.Customer.ID == customerID {
			out = append(out, booking)
		}
	}
	return out
}

// ActiveByVehicle returns the active booking holding the given vehicle,
// if any. At most one can exist at a time.
func (l *ledgerImpl) ActiveByVehicle(vehicleID int) (*model.Booking, bool) {
	for _, booking := range l.bookings {
		if booking.Active() && booking.Vehicle != nil && booking.Vehicle.ID == vehicleID {
			return booking, true
		}
	}
	return nil, false
}

func (l *ledgerImpl) Len() int {
	return len(l.bookings)
}

func (l *ledgerImpl) Clear() {
	l.bookings = nil
	l.nextID = 1
}
