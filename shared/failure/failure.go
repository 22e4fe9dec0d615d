package failure

import (
	"errors"
)

// Kind classifies a failure so callers can react without string matching.
type Kind string

const (
	KindInvalidBooking     Kind = "invalid_booking"
	KindVehicleUnavailable Kind = "vehicle_unavailable"
	KindInvalidDateRange   Kind = "invalid_date_range"
	KindDuplicateLicense   Kind = "duplicate_license"
	KindInvalidVehicleData Kind = "invalid_vehicle_data"
	KindCorruptRecord      Kind = "corrupt_record"
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
	KindUnauthorized       Kind = "unauthorized"
	KindConflict           Kind = "conflict"
	KindInternal           Kind = "internal"
)

// Failure is a wrapper for error messages classified by kind. The UI
// collaborator decides how each kind is presented; the core only reports.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// InvalidBooking returns a new Failure for a booking with a missing or
// unresolvable vehicle/customer reference.
func InvalidBooking(msg string) error {
	return &Failure{Kind: KindInvalidBooking, Message: msg}
}

// VehicleUnavailable returns a new Failure for operations on an already
// rented vehicle.
func VehicleUnavailable(msg string) error {
	return &Failure{Kind: KindVehicleUnavailable, Message: msg}
}

// InvalidDateRange returns a new Failure for missing or out-of-order
// booking dates.
func InvalidDateRange(msg string) error {
	return &Failure{Kind: KindInvalidDateRange, Message: msg}
}

// DuplicateLicense returns a new Failure for a vehicle creation attempt
// that reuses an existing license number.
func DuplicateLicense(msg string) error {
	return &Failure{Kind: KindDuplicateLicense, Message: msg}
}

// InvalidVehicleData returns a new Failure for logically wrong vehicle
// input such as a negative rate or an empty model name.
func InvalidVehicleData(msg string) error {
	return &Failure{Kind: KindInvalidVehicleData, Message: msg}
}

// CorruptRecord returns a new Failure for a malformed or truncated
// persisted record line.
func CorruptRecord(msg string) error {
	return &Failure{Kind: KindCorruptRecord, Message: msg}
}

// InvalidInput returns a new Failure for input that fails validation
// outside the vehicle-specific rules.
func InvalidInput(msg string) error {
	return &Failure{Kind: KindInvalidInput, Message: msg}
}

// NotFound returns a new Failure for a missing entity.
func NotFound(entityName string) error {
	return &Failure{Kind: KindNotFound, Message: entityName + " not found"}
}

// Unauthorized returns a new Failure for rejected credentials.
func Unauthorized(msg string) error {
	return &Failure{Kind: KindUnauthorized, Message: msg}
}

// Conflict returns a new Failure for conflict situations.
func Conflict(msg string) error {
	return &Failure{Kind: KindConflict, Message: msg}
}

// InternalError returns a new Failure wrapping an unexpected error.
func InternalError(err error) error {
	if err != nil {
		return &Failure{Kind: KindInternal, Message: err.Error()}
	}

	return nil
}

// KindOf returns the kind of an error interface.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// Is reports whether the error carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
