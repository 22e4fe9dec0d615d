// Package di is the composition root: it builds the repositories,
// services and the persistence gateway in dependency order. The object
// graph is small enough to wire by hand.
package di

import (
	"fmt"

	"fleetrental/config"
	"fleetrental/infras/jwt"
	"fleetrental/infras/textstore"
	"fleetrental/internal/persistence"
	"fleetrental/internal/report"

	authService "fleetrental/internal/domains/auth/service"
	bookingRepository "fleetrental/internal/domains/booking/repository"
	bookingService "fleetrental/internal/domains/booking/service"
	customerRepository "fleetrental/internal/domains/customer/repository"
	customerService "fleetrental/internal/domains/customer/service"
	vehicleRepository "fleetrental/internal/domains/vehicle/repository"
	vehicleService "fleetrental/internal/domains/vehicle/service"
)

// App bundles every built component. The UI collaborator talks to the
// services; the repositories are exposed for persistence and seeding.
type App struct {
	Config *config.Config

	Registry customerRepository.Registry
	Catalog  vehicleRepository.Catalog
	Ledger   bookingRepository.Ledger

	Customers customerService.Customer
	Vehicles  vehicleService.Vehicle
	Bookings  bookingService.Booking
	Auth      authService.Auth

	Gateway persistence.Gateway
	Report  report.Report
}

func InitializeApp() (*App, error) {
	cfg := config.Get()

	store, err := textstore.New(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data store: %w", err)
	}

	registry := customerRepository.New()
	catalog := vehicleRepository.New()
	ledger := bookingRepository.New()

	customers := customerService.New(registry)
	vehicles := vehicleService.New(catalog)
	bookings := bookingService.New(ledger, catalog, registry)
	auth := authService.New(registry, customers, jwt.New(cfg))

	return &App{
		Config:    cfg,
		Registry:  registry,
		Catalog:   catalog,
		Ledger:    ledger,
		Customers: customers,
		Vehicles:  vehicles,
		Bookings:  bookings,
		Auth:      auth,
		Gateway:   persistence.New(store, registry, catalog, ledger, cfg),
		Report:    report.New(registry, catalog, ledger),
	}, nil
}
