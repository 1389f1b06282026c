// internal/domain/inquiry/entity.go
package inquiry

import (
	"database/sql"
	"time"
)

// Inquiry is one contact-form submission, optionally tied to a vehicle the
// visitor was looking at.
type Inquiry struct {
	ID        string         `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	Email     string         `json:"email" db:"email"`
	Phone     sql.NullString `json:"phone,omitempty" db:"phone"`
	Message   string         `json:"message" db:"message"`
	VehicleID sql.NullString `json:"vehicle_id,omitempty" db:"vehicle_id"`
	Read      bool           `json:"read" db:"read"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
