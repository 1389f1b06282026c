// internal/domain/vehicle/dto.go
package vehicle

import "time"

// CreateVehicleRequest for adding a new vehicle through the CMS
type CreateVehicleRequest struct {
	Brand        string       `json:"brand" binding:"required"`
	Model        string       `json:"model" binding:"required"`
	Year         int          `json:"year" binding:"required,min=1950,max=2100"`
	Price        float64      `json:"price" binding:"required,min=0"`
	OldPrice     *float64     `json:"old_price"`
	Mileage      int          `json:"mileage" binding:"min=0"`
	Fuel         Fuel         `json:"fuel" binding:"required"`
	Transmission Transmission `json:"transmission" binding:"required"`
	PowerKW      float64      `json:"power_kw" binding:"required,min=0"`
	Color        string       `json:"color" binding:"required"`
	Description  string       `json:"description"`
	Images       []string     `json:"images" binding:"required,min=1"`
	Features     []string     `json:"features" binding:"required,min=1"`
	Featured     bool         `json:"featured"`
	Exclusive    bool         `json:"exclusive"`
	PublishedAt  *time.Time   `json:"published_at"`
}

// UpdateVehicleRequest for editing an existing vehicle; nil fields keep
// their current value
type UpdateVehicleRequest struct {
	Brand         *string       `json:"brand"`
	Model         *string       `json:"model"`
	Year          *int          `json:"year" binding:"omitempty,min=1950,max=2100"`
	Price         *float64      `json:"price" binding:"omitempty,min=0"`
	OldPrice      *float64      `json:"old_price"`
	ClearOldPrice bool          `json:"clear_old_price"`
	Mileage       *int          `json:"mileage" binding:"omitempty,min=0"`
	Fuel          *Fuel         `json:"fuel"`
	Transmission  *Transmission `json:"transmission"`
	PowerKW       *float64      `json:"power_kw" binding:"omitempty,min=0"`
	Color         *string       `json:"color"`
	Description   *string       `json:"description"`
	Images        []string      `json:"images" binding:"omitempty,min=1"`
	Features      []string      `json:"features" binding:"omitempty,min=1"`
	Featured      *bool         `json:"featured"`
	Exclusive     *bool         `json:"exclusive"`
}

// ReorderExclusiveRequest carries the complete new display order of the
// exclusive list, first to last.
type ReorderExclusiveRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// ListResponse is the public catalog listing payload.
type ListResponse struct {
	Vehicles []Vehicle `json:"vehicles"`
	Total    int       `json:"total"`
}

// FilterMeta feeds the storefront filter panel.
type FilterMeta struct {
	Brands        []string          `json:"brands"`
	PriceMin      float64           `json:"price_min"`
	PriceMax      float64           `json:"price_max"`
	YearMin       int               `json:"year_min"`
	YearMax       int               `json:"year_max"`
	Fuels         map[string]string `json:"fuels"`
	Transmissions map[string]string `json:"transmissions"`
}

// CompareRow is one row of the side-by-side comparison table: a label
// plus one formatted cell per compared vehicle.
type CompareRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// CompareResponse is the side-by-side comparison payload.
type CompareResponse struct {
	Vehicles []Vehicle    `json:"vehicles"`
	Rows     []CompareRow `json:"rows"`
}
