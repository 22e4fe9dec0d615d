package persistence

import (
	"strconv"
	"strings"
	"time"

	bookingModel "fleetrental/internal/domains/booking/model"
	customerModel "fleetrental/internal/domains/customer/model"
	vehicleModel "fleetrental/internal/domains/vehicle/model"
	"fleetrental/shared/constant"
	"fleetrental/shared/failure"
	"fleetrental/shared/timezone"
)

const fieldSeparator = ","

// sanitize keeps free-text fields from breaking the record format. The
// separator never appears inside a stored value.
func sanitize(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, fieldSeparator, " "))
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// encodeCustomer renders one customer as
// id,name,email,username,password,roleCode.
func encodeCustomer(customer *customerModel.Customer) string {
	return strings.Join([]string{
		strconv.Itoa(customer.ID),
		sanitize(customer.Name),
		sanitize(customer.Email),
		sanitize(customer.Account.Username),
		sanitize(customer.Account.Password),
		customerModel.RoleCode(customer.Account.Role),
	}, fieldSeparator)
}

func decodeCustomer(line string) (*customerModel.Customer, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 6 {
		return nil, failure.CorruptRecord("customer record needs 6 fields, got " + strconv.Itoa(len(fields)))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, failure.CorruptRecord("customer id is not a number: " + fields[0])
	}

	role, err := customerModel.RoleFromCode(fields[5])
	if err != nil {
		return nil, err
	}

	return &customerModel.Customer{
		ID:    id,
		Name:  fields[1],
		Email: fields[2],
		Account: customerModel.Account{
			Username: fields[3],
			Password: fields[4],
			Role:     role,
		},
	}, nil
}

// encodeVehicle renders one vehicle as two lines: the primary record
// kind,id,model,license,rate,available and the variant-data record that
// carries the kind-specific attribute.
func encodeVehicle(vehicle *vehicleModel.Vehicle) []string {
	primary := strings.Join([]string{
		string(vehicle.Kind()),
		strconv.Itoa(vehicle.ID),
		sanitize(vehicle.Model),
		sanitize(vehicle.License),
		formatRate(vehicle.DailyRate),
		strconv.FormatBool(vehicle.Available),
	}, fieldSeparator)

	var data string
	switch variant := vehicle.Variant.(type) {
	case vehicleModel.CarSpec:
		data = constant.TagCarData + fieldSeparator + strconv.FormatBool(variant.Automatic)
	case vehicleModel.BikeSpec:
		data = constant.TagBikeData + fieldSeparator + strconv.FormatBool(variant.HelmetIncluded)
	case vehicleModel.VanSpec:
		data = constant.TagVanData + fieldSeparator + formatRate(variant.LoadCapacity)
	}

	return []string{primary, data}
}

// variantDataTags maps each vehicle kind to the tag its variant-data
// line must open with.
var variantDataTags = map[vehicleModel.Kind]string{
	vehicleModel.KindCar:  constant.TagCarData,
	vehicleModel.KindBike: constant.TagBikeData,
	vehicleModel.KindVan:  constant.TagVanData,
}

// decodeVehiclePrimary parses the first of a vehicle's two lines. The
// kind is returned separately; the vehicle carries no variant yet.
func decodeVehiclePrimary(line string) (*vehicleModel.Vehicle, vehicleModel.Kind, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 6 {
		return nil, "", failure.CorruptRecord("vehicle record needs 6 fields, got " + strconv.Itoa(len(fields)))
	}

	kind := vehicleModel.Kind(fields[0])
	if !kind.Valid() {
		return nil, "", failure.CorruptRecord("unknown vehicle kind: " + fields[0])
	}

	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, "", failure.CorruptRecord("vehicle id is not a number: " + fields[1])
	}

	rate, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return nil, "", failure.CorruptRecord("vehicle rate is not a number: " + fields[4])
	}

	available, err := strconv.ParseBool(fields[5])
	if err != nil {
		return nil, "", failure.CorruptRecord("vehicle availability is not a bool: " + fields[5])
	}

	vehicle := &vehicleModel.Vehicle{
		ID:        id,
		Model:     fields[2],
		License:   fields[3],
		DailyRate: rate,
		Available: available,
	}

	return vehicle, kind, nil
}

// variantTagMatches reports whether the line opens with the variant-data
// tag belonging to the given kind.
func variantTagMatches(kind vehicleModel.Kind, line string) bool {
	tag, _, _ := strings.Cut(line, fieldSeparator)
	return tag == variantDataTags[kind]
}

// decodeVariantData parses the second line and returns the payload for
// the given kind. The caller has already matched the tag.
func decodeVariantData(kind vehicleModel.Kind, line string) (vehicleModel.Variant, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 2 {
		return nil, failure.CorruptRecord("variant-data record needs 2 fields, got " + strconv.Itoa(len(fields)))
	}

	switch kind {
	case vehicleModel.KindCar:
		automatic, err := strconv.ParseBool(fields[1])
		if err != nil {
			return nil, failure.CorruptRecord("car automatic flag is not a bool: " + fields[1])
		}
		return vehicleModel.CarSpec{Automatic: automatic}, nil
	case vehicleModel.KindBike:
		helmet, err := strconv.ParseBool(fields[1])
		if err != nil {
			return nil, failure.CorruptRecord("bike helmet flag is not a bool: " + fields[1])
		}
		return vehicleModel.BikeSpec{HelmetIncluded: helmet}, nil
	default:
		capacity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, failure.CorruptRecord("van load capacity is not a number: " + fields[1])
		}
		return vehicleModel.VanSpec{LoadCapacity: capacity}, nil
	}
}

// isVariantDataLine reports whether a line opens with any variant-data
// tag. Used to tell a stray second line from a broken primary record.
func isVariantDataLine(line string) bool {
	tag, _, _ := strings.Cut(line, fieldSeparator)
	for _, known := range variantDataTags {
		if tag == known {
			return true
		}
	}
	return false
}

// bookingRecord is a decoded booking line before its customer and
// vehicle references are resolved against the registry and catalog.
type bookingRecord struct {
	ID         int
	StartDate  time.Time
	EndDate    time.Time
	CustomerID int
	VehicleID  int
	Status     bookingModel.Status
}

// toModel links a decoded record to its resolved customer and vehicle.
func (r bookingRecord) toModel(customer *customerModel.Customer, vehicle *vehicleModel.Vehicle) *bookingModel.Booking {
	return &bookingModel.Booking{
		ID:        r.ID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Customer:  customer,
		Vehicle:   vehicle,
		Status:    r.Status,
	}
}

// encodeBooking renders one booking as
// id,startDate,endDate,customerId,vehicleId,status.
func encodeBooking(booking *bookingModel.Booking) string {
	return strings.Join([]string{
		strconv.Itoa(booking.ID),
		timezone.FormatDate(booking.StartDate),
		timezone.FormatDate(booking.EndDate),
		strconv.Itoa(booking.Customer.ID),
		strconv.Itoa(booking.Vehicle.ID),
		string(booking.Status),
	}, fieldSeparator)
}

func decodeBooking(line string) (bookingRecord, error) {
	var rec bookingRecord

	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 6 {
		return rec, failure.CorruptRecord("booking record needs 6 fields, got " + strconv.Itoa(len(fields)))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return rec, failure.CorruptRecord("booking id is not a number: " + fields[0])
	}

	start, err := timezone.ParseDate(fields[1])
	if err != nil {
		return rec, failure.CorruptRecord("booking start date is not a date: " + fields[1])
	}

	end, err := timezone.ParseDate(fields[2])
	if err != nil {
		return rec, failure.CorruptRecord("booking end date is not a date: " + fields[2])
	}

	customerID, err := strconv.Atoi(fields[3])
	if err != nil {
		return rec, failure.CorruptRecord("booking customer id is not a number: " + fields[3])
	}

	vehicleID, err := strconv.Atoi(fields[4])
	if err != nil {
		return rec, failure.CorruptRecord("booking vehicle id is not a number: " + fields[4])
	}

	status, err := bookingModel.ParseStatus(fields[5])
	if err != nil {
		return rec, err
	}

	rec = bookingRecord{
		ID:         id,
		StartDate:  start,
		EndDate:    end,
		CustomerID: customerID,
		VehicleID:  vehicleID,
		Status:     status,
	}

	return rec, nil
}
