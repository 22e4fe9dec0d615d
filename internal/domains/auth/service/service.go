package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"fleetrental/infras/jwt"
	"fleetrental/internal/domains/auth/model/dto"
	customerDto "fleetrental/internal/domains/customer/model/dto"
	customerRepo "fleetrental/internal/domains/customer/repository"
	customerService "fleetrental/internal/domains/customer/service"
	"fleetrental/shared/failure"
	"fleetrental/shared/password"
	"fleetrental/shared/validator"
)

type Auth interface {
	Register(ctx context.Context, req customerDto.RegisterCustomerRequest) (customerDto.CustomerResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	registry   customerRepo.Registry
	customers  customerService.Customer
	jwtService jwt.JWT
}

func New(registry customerRepo.Registry, customers customerService.Customer, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		registry:   registry,
		customers:  customers,
		jwtService: jwtService,
	}
}

// Register signs up a new customer account. Duplicate usernames and
// field validation are enforced by the customer service.
func (s *serviceImpl) Register(ctx context.Context, req customerDto.RegisterCustomerRequest) (res customerDto.CustomerResponse, err error) {
	customer, err := s.customers.Register(ctx, req)
	if err != nil {
		return res, err
	}

	res.FromModel(customer)

	return res, nil
}

// Login checks the credentials against the registry and hands back a
// token pair. Unknown usernames and wrong passwords produce the same
// error so the response leaks nothing about which part was wrong.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return res, failure.InvalidInput(err.Error())
	}

	customer, ok := s.registry.FindByUsername(req.Username)
	if !ok {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized("invalid username or password")
	}

	if err := password.Verify(req.Password, customer.Account.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid username or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(customer.ID, customer.Account.Username, customer.Account.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, failure.InternalError(err)
	}

	res.CustomerID = customer.ID
	res.Name = customer.Name
	res.Role = customer.Account.Role
	res.FromTokenPair(tokenPair)

	log.Info().
		Int("customer_id", customer.ID).
		Str("username", customer.Account.Username).
		Msg("customer logged in")

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
