package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetrental/internal/domains/booking/model"
	vehicleModel "fleetrental/internal/domains/vehicle/model"
	"fleetrental/shared/failure"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{"active to completed", model.StatusActive, model.StatusCompleted, true},
		{"active to cancelled", model.StatusActive, model.StatusCancelled, true},
		{"same status is a no-op", model.StatusActive, model.StatusActive, true},
		{"completed is terminal", model.StatusCompleted, model.StatusActive, false},
		{"completed cannot cancel", model.StatusCompleted, model.StatusCancelled, false},
		{"cancelled is terminal", model.StatusCancelled, model.StatusActive, false},
		{"cancelled cannot complete", model.StatusCancelled, model.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransition(t *testing.T) {
	booking := &model.Booking{Status: model.StatusActive}

	require.NoError(t, booking.Transition(model.StatusCompleted))
	assert.Equal(t, model.StatusCompleted, booking.Status)

	err := booking.Transition(model.StatusActive)
	require.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.KindOf(err))
	assert.Equal(t, model.StatusCompleted, booking.Status)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		value   string
		want    model.Status
		corrupt bool
	}{
		{value: "active", want: model.StatusActive},
		{value: "completed", want: model.StatusCompleted},
		{value: "cancelled", want: model.StatusCancelled},
		{value: "true", want: model.StatusActive},
		{value: "false", want: model.StatusCompleted},
		{value: "pending", corrupt: true},
		{value: "", corrupt: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := model.ParseStatus(tt.value)

			if tt.corrupt {
				require.Error(t, err)
				assert.Equal(t, failure.KindCorruptRecord, failure.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysAndCost(t *testing.T) {
	car := &vehicleModel.Vehicle{
		ID:        1,
		Model:     "Toyota Corolla",
		DailyRate: 100,
		Variant:   vehicleModel.CarSpec{Automatic: true},
	}

	booking := &model.Booking{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		Vehicle:   car,
		Status:    model.StatusActive,
	}

	assert.Equal(t, 3, booking.Days())
	assert.InDelta(t, 390.0, booking.Cost(), 0.0001)
	assert.Equal(t, "$390.00", booking.CostFormatted())
}

func TestDaysMinimumOneDay(t *testing.T) {
	sameDay := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	booking := &model.Booking{StartDate: sameDay, EndDate: sameDay}
	assert.Equal(t, 1, booking.Days())
}

func TestStatusFormatted(t *testing.T) {
	booking := &model.Booking{Status: model.StatusActive}
	assert.Equal(t, "Active", booking.StatusFormatted())

	booking.Status = model.StatusCompleted
	assert.Equal(t, "Completed", booking.StatusFormatted())

	booking.Status = model.StatusCancelled
	assert.Equal(t, "Cancelled", booking.StatusFormatted())
}

func TestExpired(t *testing.T) {
	end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	booking := &model.Booking{EndDate: end}

	assert.False(t, booking.Expired(end), "end date itself is not expired")
	assert.False(t, booking.Expired(end.AddDate(0, 0, -1)))
	assert.True(t, booking.Expired(end.AddDate(0, 0, 1)))
}
