package persistence

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"fleetrental/config"
	"fleetrental/infras/textstore"
	bookingRepo "fleetrental/internal/domains/booking/repository"
	customerRepo "fleetrental/internal/domains/customer/repository"
	vehicleRepo "fleetrental/internal/domains/vehicle/repository"
)

// LoadReport tells the caller what a load actually restored. Dropped
// bookings and corrupt lines are not errors, but hiding the counts would
// hide data loss.
type LoadReport struct {
	Customers       int
	Vehicles        int
	Bookings        int
	DroppedBookings int
	CorruptRecords  int
}

// Gateway moves the whole in-memory state to and from the record files.
// Load replaces the current state wholesale; partial loads never happen.
type Gateway interface {
	SaveAll(ctx context.Context) error
	LoadAll(ctx context.Context) (LoadReport, error)
}

type gatewayImpl struct {
	store    *textstore.Store
	registry customerRepo.Registry
	catalog  vehicleRepo.Catalog
	ledger   bookingRepo.Ledger
	cfg      *config.Config
}

func New(store *textstore.Store, registry customerRepo.Registry, catalog vehicleRepo.Catalog, ledger bookingRepo.Ledger, cfg *config.Config) Gateway {
	return &gatewayImpl{
		store:    store,
		registry: registry,
		catalog:  catalog,
		ledger:   ledger,
		cfg:      cfg,
	}
}

// SaveAll writes the three collections to their record files. Each file
// is replaced atomically; a failed write leaves the previous file intact.
func (g *gatewayImpl) SaveAll(ctx context.Context) error {
	customers := g.registry.List()
	customerLines := make([]string, 0, len(customers))
	for _, customer := range customers {
		customerLines = append(customerLines, encodeCustomer(customer))
	}

	if err := g.store.WriteLines(g.cfg.Data.CustomersFile, customerLines); err != nil {
		log.Error().Err(err).Msg("failed to save customers")

		return fmt.Errorf("failed to save customers: %w", err)
	}

	vehicles := g.catalog.List()
	vehicleLines := make([]string, 0, len(vehicles)*2)
	for _, vehicle := range vehicles {
		vehicleLines = append(vehicleLines, encodeVehicle(vehicle)...)
	}

	if err := g.store.WriteLines(g.cfg.Data.VehiclesFile, vehicleLines); err != nil {
		log.Error().Err(err).Msg("failed to save vehicles")

		return fmt.Errorf("failed to save vehicles: %w", err)
	}

	bookings := g.ledger.List()
	bookingLines := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		bookingLines = append(bookingLines, encodeBooking(booking))
	}

	if err := g.store.WriteLines(g.cfg.Data.BookingsFile, bookingLines); err != nil {
		log.Error().Err(err).Msg("failed to save bookings")

		return fmt.Errorf("failed to save bookings: %w", err)
	}

	log.Info().
		Int("customers", len(customers)).
		Int("vehicles", len(vehicles)).
		Int("bookings", len(bookings)).
		Msg("state saved")

	return nil
}

// LoadAll clears the three collections and restores them from the record
// files. Ids are restored verbatim. Corrupt lines are logged, counted and
// skipped; a corrupt file never aborts the load. Bookings whose customer
// or vehicle cannot be resolved are dropped and counted. After each
// restored booking the referenced vehicle's availability is reconciled
// with the booking status, so an availability flag that drifted in the
// file cannot survive a load.
func (g *gatewayImpl) LoadAll(ctx context.Context) (LoadReport, error) {
	var report LoadReport

	g.registry.Clear()
	g.catalog.Clear()
	g.ledger.Clear()

	if err := g.loadCustomers(&report); err != nil {
		return report, err
	}
	if err := g.loadVehicles(&report); err != nil {
		return report, err
	}
	if err := g.loadBookings(&report); err != nil {
		return report, err
	}

	log.Info().
		Int("customers", report.Customers).
		Int("vehicles", report.Vehicles).
		Int("bookings", report.Bookings).
		Int("dropped_bookings", report.DroppedBookings).
		Int("corrupt_records", report.CorruptRecords).
		Msg("state loaded")

	return report, nil
}

func (g *gatewayImpl) loadCustomers(report *LoadReport) error {
	lines, err := g.store.ReadLines(g.cfg.Data.CustomersFile)
	if err != nil {
		return fmt.Errorf("failed to load customers: %w", err)
	}

	for _, line := range lines {
		customer, err := decodeCustomer(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping corrupt customer record")
			report.CorruptRecords++
			continue
		}

		g.registry.Restore(customer)
		report.Customers++
	}

	return nil
}

// loadVehicles walks the file two lines at a time. A primary record that
// is itself corrupt, or whose variant-data line is missing or tagged for
// a different kind, is skipped on its own: the following line is left in
// place so a later well-formed record pair still loads.
func (g *gatewayImpl) loadVehicles(report *LoadReport) error {
	lines, err := g.store.ReadLines(g.cfg.Data.VehiclesFile)
	if err != nil {
		return fmt.Errorf("failed to load vehicles: %w", err)
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isVariantDataLine(line) {
			log.Warn().Str("line", line).Msg("skipping stray variant-data record")
			report.CorruptRecords++
			continue
		}

		vehicle, kind, err := decodeVehiclePrimary(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping corrupt vehicle record")
			report.CorruptRecords++
			continue
		}

		// The variant-data line must follow with the matching tag. When
		// it does not, only the primary record is lost.
		if i+1 >= len(lines) || !variantTagMatches(kind, lines[i+1]) {
			log.Warn().Str("line", line).Msg("skipping vehicle record with missing variant data")
			report.CorruptRecords++
			continue
		}

		variant, err := decodeVariantData(kind, lines[i+1])
		i++
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping vehicle record with unusable variant data")
			report.CorruptRecords++
			continue
		}

		vehicle.Variant = variant
		g.catalog.Restore(vehicle)
		report.Vehicles++
	}

	return nil
}

func (g *gatewayImpl) loadBookings(report *LoadReport) error {
	lines, err := g.store.ReadLines(g.cfg.Data.BookingsFile)
	if err != nil {
		return fmt.Errorf("failed to load bookings: %w", err)
	}

	for _, line := range lines {
		rec, err := decodeBooking(line)
		if err != nil {
			log.Warn().Err(err).Str("line", line).Msg("skipping corrupt booking record")
			report.CorruptRecords++
			continue
		}

		customer, ok := g.registry.FindByID(rec.CustomerID)
		if !ok {
			log.Warn().Int("booking_id", rec.ID).Int("customer_id", rec.CustomerID).Msg("dropping booking with unresolvable customer")
			report.DroppedBookings++
			continue
		}

		vehicle, ok := g.catalog.FindByID(rec.VehicleID)
		if !ok {
			log.Warn().Int("booking_id", rec.ID).Int("vehicle_id", rec.VehicleID).Msg("dropping booking with unresolvable vehicle")
			report.DroppedBookings++
			continue
		}

		booking := rec.toModel(customer, vehicle)
		g.ledger.Restore(booking)
		report.Bookings++

		// Reconcile availability: an active booking holds its vehicle,
		// anything terminal does not.
		vehicle.Available = !booking.Active()
	}

	return nil
}
