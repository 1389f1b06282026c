// internal/repository/fallback/vehicle_file_repo.go

// Package fallback serves the public catalog from a static JSON file when
// the database is unreachable at startup. It is read-only: the CMS surface
// is unavailable in fallback mode.
package fallback

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"
)

// fileVehicle is the on-disk shape; optional fields are plain pointers
// rather than sql.Null* wrappers.
type fileVehicle struct {
	ID             string    `json:"id"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	Price          float64   `json:"price"`
	OldPrice       *float64  `json:"old_price"`
	Mileage        int       `json:"mileage"`
	Fuel           string    `json:"fuel"`
	Transmission   string    `json:"transmission"`
	PowerKW        float64   `json:"power_kw"`
	Color          string    `json:"color"`
	Description    string    `json:"description"`
	Images         []string  `json:"images"`
	Features       []string  `json:"features"`
	Featured       bool      `json:"featured"`
	Exclusive      bool      `json:"exclusive"`
	ExclusiveOrder *int      `json:"exclusive_order"`
	PublishedAt    time.Time `json:"published_at"`
}

// VehicleFileRepository satisfies vehicle.Reader from an immutable snapshot
// loaded once at construction.
type VehicleFileRepository struct {
	vehicles []vehicle.Vehicle
	byID     map[string]int
}

// NewVehicleFileRepository loads and decodes the fallback file.
func NewVehicleFileRepository(path string) (*VehicleFileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback file: %w", err)
	}

	var records []fileVehicle
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode fallback file: %w", err)
	}

	repo := &VehicleFileRepository{
		vehicles: make([]vehicle.Vehicle, 0, len(records)),
		byID:     make(map[string]int, len(records)),
	}
	for _, rec := range records {
		repo.vehicles = append(repo.vehicles, toEntity(rec))
	}

	// same newest-first contract as the postgres repository
	sort.SliceStable(repo.vehicles, func(i, j int) bool {
		return repo.vehicles[i].PublishedAt.After(repo.vehicles[j].PublishedAt)
	})
	for i, v := range repo.vehicles {
		repo.byID[v.ID] = i
	}

	return repo, nil
}

func toEntity(rec fileVehicle) vehicle.Vehicle {
	v := vehicle.Vehicle{
		ID:           rec.ID,
		Brand:        rec.Brand,
		Model:        rec.Model,
		Year:         rec.Year,
		Price:        rec.Price,
		Mileage:      rec.Mileage,
		Fuel:         vehicle.Fuel(rec.Fuel),
		Transmission: vehicle.Transmission(rec.Transmission),
		PowerKW:      rec.PowerKW,
		Color:        rec.Color,
		Description:  rec.Description,
		Images:       rec.Images,
		Features:     rec.Features,
		Featured:     rec.Featured,
		Exclusive:    rec.Exclusive,
		PublishedAt:  rec.PublishedAt,
	}
	if rec.OldPrice != nil {
		v.OldPrice = sql.NullFloat64{Float64: *rec.OldPrice, Valid: true}
	}
	if rec.ExclusiveOrder != nil {
		v.ExclusiveOrder = sql.NullInt32{Int32: int32(*rec.ExclusiveOrder), Valid: true}
	}
	return v
}

// ListActive returns a copy of the snapshot so callers cannot disturb it.
func (r *VehicleFileRepository) ListActive(ctx context.Context) ([]vehicle.Vehicle, error) {
	out := make([]vehicle.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

// FindByID looks up one record from the snapshot.
func (r *VehicleFileRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	v := r.vehicles[idx]
	return &v, nil
}
