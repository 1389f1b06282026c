// internal/domain/vehicle/entity.go
package vehicle

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// Fuel is the fuel type of a vehicle. Values are stored as-is in the
// database, so Label keeps a raw-value fallback for anything outside the
// known set.
type Fuel string

// Transmission is the transmission type of a vehicle.
type Transmission string

const (
	FuelGasoline Fuel = "gasoline"
	FuelDiesel   Fuel = "diesel"
	FuelHybrid   Fuel = "hybrid"
	FuelElectric Fuel = "electric"

	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

var fuelLabels = map[Fuel]string{
	FuelGasoline: "Benzin",
	FuelDiesel:   "Dizel",
	FuelHybrid:   "Hibrid",
	FuelElectric: "Elektro",
}

var transmissionLabels = map[Transmission]string{
	TransmissionManual:    "Manuelni",
	TransmissionAutomatic: "Automatik",
}

// Label returns the display label for the fuel type, or the raw value for
// anything outside the known enumeration.
func (f Fuel) Label() string {
	if label, ok := fuelLabels[f]; ok {
		return label
	}
	return string(f)
}

// IsValid reports whether the value is one of the known fuel types.
func (f Fuel) IsValid() bool {
	_, ok := fuelLabels[f]
	return ok
}

// Label returns the display label for the transmission type, or the raw
// value for anything outside the known enumeration.
func (t Transmission) Label() string {
	if label, ok := transmissionLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsValid reports whether the value is one of the known transmission types.
func (t Transmission) IsValid() bool {
	_, ok := transmissionLabels[t]
	return ok
}

// Vehicle is one catalog entry representing a car for sale.
type Vehicle struct {
	ID    string `json:"id" db:"id"`
	Brand string `json:"brand" db:"brand"`
	Model string `json:"model" db:"model"`
	Year  int    `json:"year" db:"year"`

	// OldPrice is set only while a discount is being advertised
	Price    float64         `json:"price" db:"price"`
	OldPrice sql.NullFloat64 `json:"old_price,omitempty" db:"old_price"`

	// Specs
	Mileage      int          `json:"mileage" db:"mileage"`
	Fuel         Fuel         `json:"fuel" db:"fuel"`
	Transmission Transmission `json:"transmission" db:"transmission"`
	PowerKW      float64      `json:"power_kw" db:"power_kw"`
	Color        string       `json:"color" db:"color"`
	Description  string       `json:"description" db:"description"`

	// Media and equipment
	Images   pq.StringArray `json:"images" db:"images"`
	Features pq.StringArray `json:"features" db:"features"`

	// Placement flags; ExclusiveOrder is meaningful only while Exclusive is set
	Featured       bool          `json:"featured" db:"featured"`
	Exclusive      bool          `json:"exclusive" db:"exclusive"`
	ExclusiveOrder sql.NullInt32 `json:"exclusive_order,omitempty" db:"exclusive_order"`

	PublishedAt time.Time `json:"published_at" db:"published_at"`

	// Timestamps
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt sql.NullTime `json:"deleted_at,omitempty" db:"deleted_at"`
}

// HasDiscount reports whether the vehicle advertises a previous price above
// the current one.
func (v *Vehicle) HasDiscount() bool {
	return v.OldPrice.Valid && v.OldPrice.Float64 > v.Price
}

// FilterCriteria is a sparse set of optional constraints narrowing a vehicle
// collection. A zero-value field imposes no restriction on that dimension.
type FilterCriteria struct {
	// Query is matched case-insensitively against brand, model, description,
	// color and feature tags.
	Query string `form:"q"`

	// Brand is an exact, case-sensitive match.
	Brand string `form:"brand"`

	// Model is a case-insensitive substring match.
	Model string `form:"model"`

	YearFrom  *int     `form:"year_from"`
	YearTo    *int     `form:"year_to"`
	PriceFrom *float64 `form:"price_from"`
	PriceTo   *float64 `form:"price_to"`

	// Fuels is match-any; an empty set imposes no constraint.
	Fuels []Fuel `form:"fuel"`

	MaxMileage   *int         `form:"max_mileage"`
	Transmission Transmission `form:"transmission"`

	ExclusiveOnly bool `form:"exclusive"`
}
