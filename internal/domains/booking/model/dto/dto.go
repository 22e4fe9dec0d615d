package dto

import (
	"fleetrental/internal/domains/booking/model"
	"fleetrental/shared/timezone"
)

type CreateBookingRequest struct {
	CustomerID int    `json:"customer_id"`
	VehicleID  int    `json:"vehicle_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

type BookingResponse struct {
	ID            int    `json:"id"`
	CustomerName  string `json:"customer_name"`
	VehicleModel  string `json:"vehicle_model"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Status        string `json:"status"`
	CostFormatted string `json:"cost_formatted"`
}

func (r *BookingResponse) FromModel(booking *model.Booking) {
	r.ID = booking.ID
	r.CustomerName = booking.Customer.Name
	r.VehicleModel = booking.Vehicle.Model
	r.StartDate = timezone.FormatDate(booking.StartDate)
	r.EndDate = timezone.FormatDate(booking.EndDate)
	r.Status = booking.StatusFormatted()
	r.CostFormatted = booking.CostFormatted()
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []*model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
