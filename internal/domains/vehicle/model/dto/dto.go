package dto

import (
	"fleetrental/internal/domains/vehicle/model"
)

type CreateVehicleRequest struct {
	Kind      string  `json:"kind"       validate:"required,oneof=Car Bike Van"`
	Model     string  `json:"model"      validate:"required,max=100"`
	License   string  `json:"license"    validate:"required,max=32"`
	DailyRate float64 `json:"daily_rate" validate:"gte=0"`

	// Variant attribute; exactly one is meaningful for the chosen kind.
	Automatic      bool    `json:"automatic"`
	HelmetIncluded bool    `json:"helmet_included"`
	LoadCapacity   float64 `json:"load_capacity" validate:"gte=0"`
}

func (c *CreateVehicleRequest) ToModel() model.Vehicle {
	var variant model.Variant

	switch model.Kind(c.Kind) {
	case model.KindCar:
		variant = model.CarSpec{Automatic: c.Automatic}
	case model.KindBike:
		variant = model.BikeSpec{HelmetIncluded: c.HelmetIncluded}
	case model.KindVan:
		variant = model.VanSpec{LoadCapacity: c.LoadCapacity}
	}

	return model.Vehicle{
		Model:     c.Model,
		License:   c.License,
		DailyRate: c.DailyRate,
		Available: true,
		Variant:   variant,
	}
}

type VehicleResponse struct {
	ID            int     `json:"id"`
	Kind          string  `json:"kind"`
	Model         string  `json:"model"`
	License       string  `json:"license"`
	DailyRate     float64 `json:"daily_rate"`
	RateFormatted string  `json:"rate_formatted"`
	Available     bool    `json:"available"`
	Status        string  `json:"status"`
}

func (r *VehicleResponse) FromModel(vehicle *model.Vehicle) {
	r.ID = vehicle.ID
	r.Kind = string(vehicle.Kind())
	r.Model = vehicle.Model
	r.License = vehicle.License
	r.DailyRate = vehicle.DailyRate
	r.RateFormatted = vehicle.RateFormatted()
	r.Available = vehicle.Available
	r.Status = vehicle.StatusFormatted()
}

type GetVehiclesResponse struct {
	Vehicles  []VehicleResponse `json:"vehicles"`
	TotalData int               `json:"total_data"`
}

func (r *GetVehiclesResponse) FromModels(models []*model.Vehicle) {
	r.TotalData = len(models)

	r.Vehicles = make([]VehicleResponse, len(models))
	for i, mod := range models {
		r.Vehicles[i].FromModel(mod)
	}
}
