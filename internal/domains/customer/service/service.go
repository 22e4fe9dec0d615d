package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"fleetrental/internal/domains/customer/model"
	"fleetrental/internal/domains/customer/model/dto"
	"fleetrental/internal/domains/customer/repository"
	"fleetrental/shared/constant"
	"fleetrental/shared/failure"
	"fleetrental/shared/password"
	"fleetrental/shared/validator"
)

type Customer interface {
	Register(ctx context.Context, req dto.RegisterCustomerRequest) (*model.Customer, error)
	Get(id int) (dto.CustomerResponse, error)
	GetAll() dto.GetCustomersResponse
}

type serviceImpl struct {
	registry repository.Registry
}

func New(registry repository.Registry) Customer {
	return &serviceImpl{registry: registry}
}

// Register validates the signup input, refuses duplicate usernames and
// appends a new customer with a bcrypt-hashed password. The role defaults
// to customer when the request leaves it empty.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterCustomerRequest) (*model.Customer, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("rejected signup input")

		return nil, failure.InvalidInput(err.Error())
	}

	if _, exists := s.registry.FindByUsername(req.Username); exists {
		return nil, failure.Conflict("username " + req.Username + " is already taken")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return nil, failure.InternalError(err)
	}

	role := req.Role
	if role == "" {
		role = constant.RoleCustomer
	}

	customer := req.ToModel(hashed, role)
	s.registry.Insert(&customer)

	log.Info().
		Int("id", customer.ID).
		Str("username", customer.Account.Username).
		Str("role", role).
		Msg("customer registered")

	return &customer, nil
}

func (s *serviceImpl) Get(id int) (res dto.CustomerResponse, err error) {
	customer, ok := s.registry.FindByID(id)
	if !ok {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) GetAll() (res dto.GetCustomersResponse) {
	res.FromModels(s.registry.List())
	return res
}
