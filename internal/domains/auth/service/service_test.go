package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetrental/config"
	"fleetrental/infras/jwt"
	"fleetrental/internal/domains/auth/model/dto"
	"fleetrental/internal/domains/auth/service"
	customerDto "fleetrental/internal/domains/customer/model/dto"
	customerRepo "fleetrental/internal/domains/customer/repository"
	customerService "fleetrental/internal/domains/customer/service"
	"fleetrental/shared/constant"
	"fleetrental/shared/failure"
)

func newAuthService(t *testing.T) (service.Auth, customerRepo.Registry) {
	t.Helper()

	registry := customerRepo.New()
	customers := customerService.New(registry)
	jwtService := jwt.New(config.Get())

	return service.New(registry, customers, jwtService), registry
}

func registerRequest() customerDto.RegisterCustomerRequest {
	return customerDto.RegisterCustomerRequest{
		Name:     "Ahmed Ali",
		Email:    "ahmed@gmail.com",
		Username: "ahmed",
		Password: "secret",
	}
}

func TestRegister(t *testing.T) {
	svc, registry := newAuthService(t)

	res, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, res.ID)
	assert.Equal(t, "ahmed", res.Username)
	assert.Equal(t, constant.RoleCustomer, res.Role)

	stored, ok := registry.FindByUsername("ahmed")
	require.True(t, ok)
	assert.NotEqual(t, "secret", stored.Account.Password, "password must be stored hashed")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	require.Error(t, err)
	assert.Equal(t, failure.KindConflict, failure.KindOf(err))
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	res, err := svc.Login(ctx, dto.LoginRequest{Username: "ahmed", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.CustomerID)
	assert.Equal(t, "Ahmed Ali", res.Name)
	assert.Equal(t, constant.RoleCustomer, res.Role)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Positive(t, res.ExpiresIn)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{name: "unknown username", req: dto.LoginRequest{Username: "nobody", Password: "secret"}},
		{name: "wrong password", req: dto.LoginRequest{Username: "ahmed", Password: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, failure.KindUnauthorized, failure.KindOf(err))
			assert.EqualError(t, err, "invalid username or password")
		})
	}
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	login, err := svc.Login(ctx, dto.LoginRequest{Username: "ahmed", Password: "secret"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	_, err = svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "garbage"})
	require.Error(t, err)
	assert.Equal(t, failure.KindUnauthorized, failure.KindOf(err))
}
