// internal/repository/postgres/vehicle_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vehicleColumns = `id, brand, model, year, price, old_price, mileage, fuel,
       transmission, power_kw, color, description, images, features,
       featured, exclusive, exclusive_order, published_at,
       created_at, updated_at, deleted_at`

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// Create inserts a new vehicle
func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			id, brand, model, year, price, old_price, mileage, fuel,
			transmission, power_kw, color, description, images, features,
			featured, exclusive, exclusive_order, published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		v.ID, v.Brand, v.Model, v.Year, v.Price, v.OldPrice, v.Mileage, v.Fuel,
		v.Transmission, v.PowerKW, v.Color, v.Description, v.Images, v.Features,
		v.Featured, v.Exclusive, v.ExclusiveOrder, v.PublishedAt,
	).Scan(&v.CreatedAt, &v.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// FindByID retrieves a vehicle by ID, soft-deleted records excluded
func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1 AND deleted_at IS NULL
	`

	row := r.db.QueryRow(ctx, query, id)
	v, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return v, nil
}

// ListActive returns the published catalog snapshot, newest first
func (r *VehicleRepository) ListActive(ctx context.Context) ([]vehicle.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE deleted_at IS NULL
		ORDER BY published_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	return collectVehicles(rows)
}

// ListExclusive returns exclusive vehicles in display order
func (r *VehicleRepository) ListExclusive(ctx context.Context) ([]vehicle.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE exclusive AND deleted_at IS NULL
		ORDER BY exclusive_order NULLS LAST, published_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusive vehicles: %w", err)
	}
	defer rows.Close()

	return collectVehicles(rows)
}

// Update replaces a vehicle's mutable fields
func (r *VehicleRepository) Update(ctx context.Context, id string, v *vehicle.Vehicle) error {
	query := `
		UPDATE vehicles
		SET brand = $1, model = $2, year = $3, price = $4, old_price = $5,
		    mileage = $6, fuel = $7, transmission = $8, power_kw = $9,
		    color = $10, description = $11, images = $12, features = $13,
		    featured = $14, exclusive = $15, exclusive_order = $16,
		    updated_at = now()
		WHERE id = $17 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(
		ctx, query,
		v.Brand, v.Model, v.Year, v.Price, v.OldPrice,
		v.Mileage, v.Fuel, v.Transmission, v.PowerKW,
		v.Color, v.Description, v.Images, v.Features,
		v.Featured, v.Exclusive, v.ExclusiveOrder,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete marks a vehicle as deleted without removing the row
func (r *VehicleRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE vehicles
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SetFeatured toggles the featured flag
func (r *VehicleRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	query := `
		UPDATE vehicles
		SET featured = $1, updated_at = now()
		WHERE id = $2 AND deleted_at IS NULL
	`

	tag, err := r.db.Exec(ctx, query, featured, id)
	if err != nil {
		return fmt.Errorf("failed to set featured flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// UpdateExclusiveOrder applies the given id -> position assignments in one
// transaction, so a reorder either fully lands or not at all.
func (r *VehicleRepository) UpdateExclusiveOrder(ctx context.Context, positions map[string]int) error {
	if len(positions) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE vehicles
		SET exclusive_order = $1, updated_at = now()
		WHERE id = $2 AND exclusive AND deleted_at IS NULL
	`
	for id, pos := range positions {
		tag, err := tx.Exec(ctx, query, pos, id)
		if err != nil {
			return fmt.Errorf("failed to update position of vehicle %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("vehicle %s: %w", id, xerrors.ErrNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle
	err := row.Scan(
		&v.ID, &v.Brand, &v.Model, &v.Year, &v.Price, &v.OldPrice, &v.Mileage, &v.Fuel,
		&v.Transmission, &v.PowerKW, &v.Color, &v.Description, &v.Images, &v.Features,
		&v.Featured, &v.Exclusive, &v.ExclusiveOrder, &v.PublishedAt,
		&v.CreatedAt, &v.UpdatedAt, &v.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectVehicles(rows pgx.Rows) ([]vehicle.Vehicle, error) {
	var vehicles []vehicle.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
