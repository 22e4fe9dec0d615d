package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"fleetrental/shared/failure"
)

func TestConstructorsCarryKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind failure.Kind
	}{
		{"invalid booking", failure.InvalidBooking("no vehicle selected"), failure.KindInvalidBooking},
		{"vehicle unavailable", failure.VehicleUnavailable("vehicle is already rented"), failure.KindVehicleUnavailable},
		{"invalid date range", failure.InvalidDateRange("end date before start date"), failure.KindInvalidDateRange},
		{"duplicate license", failure.DuplicateLicense("license ABC-1 already registered"), failure.KindDuplicateLicense},
		{"invalid vehicle data", failure.InvalidVehicleData("daily rate must not be negative"), failure.KindInvalidVehicleData},
		{"corrupt record", failure.CorruptRecord("truncated vehicle record"), failure.KindCorruptRecord},
		{"not found", failure.NotFound("booking"), failure.KindNotFound},
		{"unauthorized", failure.Unauthorized("invalid username or password"), failure.KindUnauthorized},
		{"conflict", failure.Conflict("username taken"), failure.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.KindOf(tt.err); got != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got)
			}
			if tt.err.Error() == "" {
				t.Error("expected non-empty message")
			}
			if !failure.Is(tt.err, tt.kind) {
				t.Errorf("expected Is(err, %s) to be true", tt.kind)
			}
		})
	}
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("booking rejected: %w", failure.VehicleUnavailable("vehicle is already rented"))

	if got := failure.KindOf(err); got != failure.KindVehicleUnavailable {
		t.Errorf("expected wrapped error to keep kind %s, got %s", failure.KindVehicleUnavailable, got)
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := failure.KindOf(errors.New("disk on fire")); got != failure.KindInternal {
		t.Errorf("expected plain error to map to %s, got %s", failure.KindInternal, got)
	}
}

func TestInternalErrorNil(t *testing.T) {
	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil for nil input, got %v", err)
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := failure.NotFound("vehicle")
	if err.Error() != "vehicle not found" {
		t.Errorf("expected 'vehicle not found', got %q", err.Error())
	}
}
