package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"fleetrental/internal/domains/vehicle/model"
	"fleetrental/internal/domains/vehicle/model/dto"
	"fleetrental/internal/domains/vehicle/repository"
	"fleetrental/shared/failure"
	"fleetrental/shared/validator"
)

type Vehicle interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*model.Vehicle, error)
	Remove(ctx context.Context, id int) error
	CostOf(id, days int) (float64, error)
	Get(id int) (dto.VehicleResponse, error)
	GetAll() dto.GetVehiclesResponse
	GetAllByRate() dto.GetVehiclesResponse
}

type serviceImpl struct {
	catalog repository.Catalog
}

func New(catalog repository.Catalog) Vehicle {
	return &serviceImpl{catalog: catalog}
}

// Create validates the request, refuses duplicate license numbers and
// appends a new vehicle to the catalog with the next sequential id.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehicleRequest) (*model.Vehicle, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Str("model", req.Model).Msg("rejected vehicle creation input")

		return nil, failure.InvalidVehicleData(err.Error())
	}

	if _, exists := s.catalog.FindByLicense(req.License); exists {
		return nil, failure.DuplicateLicense("license " + req.License + " is already registered")
	}

	vehicle := req.ToModel()
	s.catalog.Insert(&vehicle)

	log.Info().
		Int("id", vehicle.ID).
		Str("kind", string(vehicle.Kind())).
		Str("model", vehicle.Model).
		Msg("vehicle added to catalog")

	return &vehicle, nil
}

// Remove deletes a vehicle from the catalog. A rented vehicle cannot be
// removed; the ids of every vehicle after the removed one shift down to
// keep the sequence dense.
func (s *serviceImpl) Remove(ctx context.Context, id int) error {
	index := s.catalog.IndexOf(id)
	if index < 0 {
		return failure.NotFound(model.EntityName)
	}

	vehicle, _ := s.catalog.FindByID(id)
	if !vehicle.Available {
		return failure.VehicleUnavailable("vehicle is currently rented and cannot be removed")
	}

	s.catalog.RemoveAt(index)

	log.Info().Int("id", id).Str("model", vehicle.Model).Msg("vehicle removed from catalog")

	return nil
}

// CostOf computes the rental cost of a vehicle for the given number of
// days. Days below one are normalized up to one.
func (s *serviceImpl) CostOf(id, days int) (float64, error) {
	vehicle, ok := s.catalog.FindByID(id)
	if !ok {
		return 0, failure.NotFound(model.EntityName)
	}

	return vehicle.Cost(days), nil
}

func (s *serviceImpl) Get(id int) (res dto.VehicleResponse, err error) {
	vehicle, ok := s.catalog.FindByID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(vehicle)

	return res, nil
}

func (s *serviceImpl) GetAll() (res dto.GetVehiclesResponse) {
	res.FromModels(s.catalog.List())
	return res
}

// GetAllByRate lists the catalog ordered by daily rate, cheapest first.
func (s *serviceImpl) GetAllByRate() (res dto.GetVehiclesResponse) {
	res.FromModels(s.catalog.SortedByRate())
	return res
}
