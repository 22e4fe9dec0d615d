package model

import (
	"fmt"
	"time"

	customerModel "fleetrental/internal/domains/customer/model"
	vehicleModel "fleetrental/internal/domains/vehicle/model"
	"fleetrental/shared/failure"
	"fleetrental/shared/timezone"
)

const (
	EntityName = "booking"
)

// Status is the booking lifecycle state, persisted as a string.
type Status string

const (
	StatusActive    Status = "active"    // vehicle is rented out
	StatusCompleted Status = "completed" // ended by the expiry sweep
	StatusCancelled Status = "cancelled" // ended early by the customer or an admin
)

// allowTransition is the directed graph of legal status changes.
// Completed and cancelled are terminal.
var allowTransition = map[Status][]Status{
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, s := range allowTransition[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ParseStatus maps a persisted status word to a Status. The booleans
// "true" and "false" are accepted as legacy aliases for active and
// completed, from record sets written before cancellations were kept
// in history.
func ParseStatus(value string) (Status, error) {
	switch value {
	case string(StatusActive), "true":
		return StatusActive, nil
	case string(StatusCompleted), "false":
		return StatusCompleted, nil
	case string(StatusCancelled):
		return StatusCancelled, nil
	default:
		return "", failure.CorruptRecord("unknown booking status " + value)
	}
}

// Booking binds one customer to one vehicle for a closed date range.
// Both references are non-owning; the registry and the catalog own the
// entities, the ledger owns the booking.
type Booking struct {
	ID        int
	StartDate time.Time
	EndDate   time.Time
	Customer  *customerModel.Customer
	Vehicle   *vehicleModel.Vehicle
	Status    Status
}

// Transition applies a status change, refusing anything outside the
// allowed graph.
func (b *Booking) Transition(to Status) error {
	if !CanTransition(b.Status, to) {
		return failure.Conflict(fmt.Sprintf("invalid booking status transition: %s -> %s", b.Status, to))
	}

	b.Status = to

	return nil
}

// Active reports whether the vehicle is still rented under this booking.
func (b *Booking) Active() bool {
	return b.Status == StatusActive
}

// Days returns the number of charged rental days. Ranges shorter than one
// day are charged as one.
func (b *Booking) Days() int {
	days := timezone.DaysBetween(b.StartDate, b.EndDate)
	if days < 1 {
		days = 1
	}
	return days
}

// Cost computes the total rental cost from the bound vehicle's policy.
// Cost is never stored; it is derived on demand.
func (b *Booking) Cost() float64 {
	return b.Vehicle.Cost(b.Days())
}

// CostFormatted renders the total cost for display, e.g. "$390.00".
func (b *Booking) CostFormatted() string {
	return fmt.Sprintf("$%.2f", b.Cost())
}

// StatusFormatted renders the status for display.
func (b *Booking) StatusFormatted() string {
	switch b.Status {
	case StatusActive:
		return "Active"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Completed"
	}
}

// Expired reports whether the booking's end date lies strictly before the
// given calendar date.
func (b *Booking) Expired(today time.Time) bool {
	return timezone.DateOf(today).After(timezone.DateOf(b.EndDate))
}
