package model

import (
	"fmt"
	"sort"

	"fleetrental/shared/constant"
)

const (
	EntityName = "vehicle"
)

// Kind tags the vehicle variant. The same tags appear on persisted
// primary records.
type Kind string

const (
	KindCar  Kind = constant.TagCar
	KindBike Kind = constant.TagBike
	KindVan  Kind = constant.TagVan
)

// Tax fractions are fixed per variant.
var taxFractions = map[Kind]float64{
	KindCar:  0.30,
	KindBike: 0.10,
	KindVan:  0.15,
}

// Valid reports whether the kind is one of the known variants.
func (k Kind) Valid() bool {
	_, ok := taxFractions[k]
	return ok
}

// TaxFraction returns the tax fraction applied to rentals of this kind.
func (k Kind) TaxFraction() float64 {
	return taxFractions[k]
}

// Variant carries the attribute unique to a vehicle kind. Exactly one
// implementation exists per kind; dispatch happens on Kind(), never on
// concrete type switches outside this package and the persistence codec.
type Variant interface {
	Kind() Kind
}

// CarSpec is the Car payload.
type CarSpec struct {
	Automatic bool
}

func (CarSpec) Kind() Kind { return KindCar }

// BikeSpec is the Bike payload.
type BikeSpec struct {
	HelmetIncluded bool
}

func (BikeSpec) Kind() Kind { return KindBike }

// VanSpec is the Van payload.
type VanSpec struct {
	LoadCapacity float64
}

func (VanSpec) Kind() Kind { return KindVan }

// Vehicle is one entry of the catalog. Bookings reference it by pointer
// and never own it; the catalog owns the canonical list.
type Vehicle struct {
	ID        int
	Model     string
	License   string
	DailyRate float64
	Available bool
	Variant   Variant
}

// Kind returns the variant tag of the vehicle.
func (v *Vehicle) Kind() Kind {
	if v.Variant == nil {
		return ""
	}
	return v.Variant.Kind()
}

// Cost returns the rental cost for the given number of days:
// days * dailyRate * (1 + taxFraction). Days below one are charged as
// one full day.
func (v *Vehicle) Cost(days int) float64 {
	if days < 1 {
		days = 1
	}
	return float64(days) * v.DailyRate * (1 + v.Kind().TaxFraction())
}

// RateFormatted renders the daily rate for display, e.g. "$50.00/day".
func (v *Vehicle) RateFormatted() string {
	return fmt.Sprintf("$%.2f/day", v.DailyRate)
}

// StatusFormatted renders availability for display.
func (v *Vehicle) StatusFormatted() string {
	if v.Available {
		return "Available"
	}
	return "Rented"
}

// SortByRate orders vehicles by daily rate ascending. The sort is stable,
// so equal rates keep insertion order.
func SortByRate(vehicles []*Vehicle) {
	sort.SliceStable(vehicles, func(i, j int) bool {
		return vehicles[i].DailyRate < vehicles[j].DailyRate
	})
}
