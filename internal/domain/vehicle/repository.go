// internal/domain/vehicle/repository.go
package vehicle

import "context"

// Repository is the persistence contract for the vehicle catalog. The
// public catalog only needs the read side; the CMS uses the full set.
type Repository interface {
	Reader

	Create(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, id string, v *Vehicle) error
	SoftDelete(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) error

	// ListExclusive returns exclusive vehicles ordered by their display order.
	ListExclusive(ctx context.Context) ([]Vehicle, error)

	// UpdateExclusiveOrder applies the given id -> position assignments in a
	// single transaction; ids absent from the map are untouched.
	UpdateExclusiveOrder(ctx context.Context, positions map[string]int) error
}

// Reader is the read-only slice of the catalog used by the public site.
// Both the postgres repository and the static fallback file satisfy it.
type Reader interface {
	// ListActive returns the published, non-deleted catalog snapshot in
	// newest-first order.
	ListActive(ctx context.Context) ([]Vehicle, error)
	FindByID(ctx context.Context, id string) (*Vehicle, error)
}
