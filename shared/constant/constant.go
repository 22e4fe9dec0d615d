package constant

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	// Single-character role codes used in persisted customer records.
	RoleCodeAdmin    = "A"
	RoleCodeCustomer = "c"
)

// Type tags on vehicle primary records and the variant-data lines
// that immediately follow them.
const (
	TagCar  = "Car"
	TagBike = "Bike"
	TagVan  = "Van"

	TagCarData  = "CAR_DATA"
	TagBikeData = "BIKE_DATA"
	TagVanData  = "VAN_DATA"
)

const (
	// DateFormat is the ISO-8601 calendar-date layout used in booking records.
	DateFormat = "2006-01-02"
)
