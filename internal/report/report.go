package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"

	bookingModel "fleetrental/internal/domains/booking/model"
	bookingRepo "fleetrental/internal/domains/booking/repository"
	customerRepo "fleetrental/internal/domains/customer/repository"
	vehicleRepo "fleetrental/internal/domains/vehicle/repository"
	"fleetrental/shared/timezone"
)

// Report renders the current fleet state as a PDF document: the catalog,
// the booking ledger and the revenue realized by completed and active
// bookings. Cancelled bookings appear in the ledger section but never
// count toward revenue.
type Report interface {
	Generate(ctx context.Context) ([]byte, error)
}

type serviceImpl struct {
	registry customerRepo.Registry
	catalog  vehicleRepo.Catalog
	ledger   bookingRepo.Ledger
}

func New(registry customerRepo.Registry, catalog vehicleRepo.Catalog, ledger bookingRepo.Ledger) Report {
	return &serviceImpl{
		registry: registry,
		catalog:  catalog,
		ledger:   ledger,
	}
}

func (s *serviceImpl) Generate(ctx context.Context) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Fleet Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLEET REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated: "+timezone.FormatDate(timezone.Now()))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Customers: %d   Vehicles: %d   Bookings: %d",
		s.registry.Len(), s.catalog.Len(), s.ledger.Len()))
	pdf.Ln(10)

	s.writeVehicles(pdf)
	revenue := s.writeBookings(pdf)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total revenue: $%.2f", revenue))
	pdf.Ln(8)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Error().Err(err).Msg("failed to render fleet report")

		return nil, fmt.Errorf("failed to render fleet report: %w", err)
	}

	log.Info().Int("bytes", buf.Len()).Msg("fleet report generated")

	return buf.Bytes(), nil
}

func (s *serviceImpl) writeVehicles(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Vehicles")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)

	vehicles := s.catalog.SortedByRate()
	if len(vehicles) == 0 {
		pdf.Cell(0, 6, "No vehicles in the catalog.")
		pdf.Ln(8)
		return
	}

	for _, vehicle := range vehicles {
		line := fmt.Sprintf("#%d  %-4s %s (%s)  %s  %s",
			vehicle.ID, vehicle.Kind(), vehicle.Model, vehicle.License,
			vehicle.RateFormatted(), vehicle.StatusFormatted())
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}

func (s *serviceImpl) writeBookings(pdf *gofpdf.Fpdf) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Bookings")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)

	bookings := s.ledger.List()
	if len(bookings) == 0 {
		pdf.Cell(0, 6, "No bookings in the ledger.")
		pdf.Ln(8)
		return 0
	}

	var revenue float64
	for _, booking := range bookings {
		line := fmt.Sprintf("#%d  %s  %s -> %s  %s  %s  %s",
			booking.ID, booking.Customer.Name,
			timezone.FormatDate(booking.StartDate), timezone.FormatDate(booking.EndDate),
			booking.Vehicle.Model, booking.StatusFormatted(), booking.CostFormatted())
		pdf.Cell(0, 6, line)
		pdf.Ln(6)

		if booking.Status != bookingModel.StatusCancelled {
			revenue += booking.Cost()
		}
	}

	return revenue
}
