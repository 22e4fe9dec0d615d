package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"fleetrental/config"
	"fleetrental/di"
	customerDto "fleetrental/internal/domains/customer/model/dto"
	"fleetrental/shared/constant"
	"fleetrental/shared/logger"
)

// The app performs one maintenance run over the rental ledger: restore
// the saved state, seed the admin account on first start, complete every
// booking whose end date has passed and save the result. The interactive
// front end drives the services directly and is not part of this binary.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	app, err := di.InitializeApp()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize application")
		os.Exit(1)
	}

	ctx := context.Background()

	report, err := app.Gateway.LoadAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")
		os.Exit(1)
	}

	seedAdmin(ctx, app)

	expired := app.Bookings.CheckExpiry(ctx)

	if err := app.Gateway.SaveAll(ctx); err != nil {
		log.Error().Err(err).Msg("failed to save state")
		os.Exit(1)
	}

	log.Info().
		Int("customers", report.Customers).
		Int("vehicles", report.Vehicles).
		Int("bookings", report.Bookings).
		Int("dropped_bookings", report.DroppedBookings).
		Int("corrupt_records", report.CorruptRecords).
		Int("expired_bookings", expired).
		Msg("maintenance run complete")
}

// seedAdmin registers the configured admin account when the registry is
// empty, so a fresh install always has a way in. A blank seed password
// disables seeding.
func seedAdmin(ctx context.Context, app *di.App) {
	if app.Registry.Len() > 0 || app.Config.Seed.AdminPassword == "" {
		return
	}

	_, err := app.Customers.Register(ctx, customerDto.RegisterCustomerRequest{
		Name:     app.Config.Seed.AdminName,
		Email:    app.Config.Seed.AdminEmail,
		Username: app.Config.Seed.AdminUsername,
		Password: app.Config.Seed.AdminPassword,
		Role:     constant.RoleAdmin,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to seed admin account")
		return
	}

	log.Info().Str("username", app.Config.Seed.AdminUsername).Msg("admin account seeded")
}
