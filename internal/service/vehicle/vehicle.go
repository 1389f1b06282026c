// internal/service/vehicle/vehicle.go
package vehicle

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// VehicleService is the CMS side of the catalog: creating, editing and
// curating vehicles. The public storefront never goes through it.
type VehicleService struct {
	repo   vehicle.Repository
	logger *zap.Logger
}

func NewVehicleService(repo vehicle.Repository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		repo:   repo,
		logger: logger,
	}
}

// ========== Create / Update / Delete ==========

// Create adds a new vehicle to the catalog.
func (s *VehicleService) Create(ctx context.Context, req *vehicle.CreateVehicleRequest) (*vehicle.Vehicle, error) {
	if !req.Fuel.IsValid() || !req.Transmission.IsValid() {
		return nil, xerrors.ErrInvalidInput
	}

	publishedAt := time.Now()
	if req.PublishedAt != nil {
		publishedAt = *req.PublishedAt
	}

	v := &vehicle.Vehicle{
		ID:           ulid.Make().String(),
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Fuel:         req.Fuel,
		Transmission: req.Transmission,
		PowerKW:      req.PowerKW,
		Color:        req.Color,
		Description:  req.Description,
		Images:       req.Images,
		Features:     req.Features,
		Featured:     req.Featured,
		Exclusive:    req.Exclusive,
		PublishedAt:  publishedAt,
	}
	if req.OldPrice != nil {
		v.OldPrice = sql.NullFloat64{Float64: *req.OldPrice, Valid: true}
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("vehicle created",
		zap.String("vehicle_id", v.ID),
		zap.String("brand", v.Brand),
		zap.String("model", v.Model),
	)
	return v, nil
}

// Update edits an existing vehicle. Nil request fields keep their current
// value; ClearOldPrice removes an advertised discount.
func (s *VehicleService) Update(ctx context.Context, id string, req *vehicle.UpdateVehicleRequest) (*vehicle.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Brand != nil {
		v.Brand = *req.Brand
	}
	if req.Model != nil {
		v.Model = *req.Model
	}
	if req.Year != nil {
		v.Year = *req.Year
	}
	if req.Price != nil {
		v.Price = *req.Price
	}
	if req.OldPrice != nil {
		v.OldPrice = sql.NullFloat64{Float64: *req.OldPrice, Valid: true}
	}
	if req.ClearOldPrice {
		v.OldPrice = sql.NullFloat64{}
	}
	if req.Mileage != nil {
		v.Mileage = *req.Mileage
	}
	if req.Fuel != nil {
		if !req.Fuel.IsValid() {
			return nil, xerrors.ErrInvalidInput
		}
		v.Fuel = *req.Fuel
	}
	if req.Transmission != nil {
		if !req.Transmission.IsValid() {
			return nil, xerrors.ErrInvalidInput
		}
		v.Transmission = *req.Transmission
	}
	if req.PowerKW != nil {
		v.PowerKW = *req.PowerKW
	}
	if req.Color != nil {
		v.Color = *req.Color
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Images != nil {
		v.Images = req.Images
	}
	if req.Features != nil {
		v.Features = req.Features
	}
	if req.Featured != nil {
		v.Featured = *req.Featured
	}
	if req.Exclusive != nil {
		v.Exclusive = *req.Exclusive
		if !v.Exclusive {
			// dropping out of the showcase also drops the curated position
			v.ExclusiveOrder = sql.NullInt32{}
		}
	}

	if err := s.repo.Update(ctx, id, v); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle updated", zap.String("vehicle_id", id))
	return v, nil
}

// Delete soft-deletes a vehicle; it disappears from the storefront but stays
// in the database.
func (s *VehicleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("vehicle deleted", zap.String("vehicle_id", id))
	return nil
}

// SetFeatured toggles the landing-page highlight flag.
func (s *VehicleService) SetFeatured(ctx context.Context, id string, featured bool) error {
	return s.repo.SetFeatured(ctx, id, featured)
}

// ========== Exclusive Showcase Curation ==========

// ListExclusive returns the showcase in its curated order for the CMS
// reorder screen.
func (s *VehicleService) ListExclusive(ctx context.Context) ([]vehicle.Vehicle, error) {
	return s.repo.ListExclusive(ctx)
}

// ReorderExclusive applies a complete new display order for the exclusive
// showcase. The request must list every exclusive vehicle exactly once; the
// update is computed as a diff against the current positions so unchanged
// rows are not rewritten, and is applied in one transaction.
func (s *VehicleService) ReorderExclusive(ctx context.Context, req *vehicle.ReorderExclusiveRequest) error {
	current, err := s.repo.ListExclusive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load exclusive vehicles: %w", err)
	}

	currentPos := make(map[string]int, len(current))
	for _, v := range current {
		pos := -1
		if v.ExclusiveOrder.Valid {
			pos = int(v.ExclusiveOrder.Int32)
		}
		currentPos[v.ID] = pos
	}

	if len(req.IDs) != len(current) {
		return xerrors.ErrInvalidInput
	}

	changes := make(map[string]int)
	seen := make(map[string]bool, len(req.IDs))
	for i, id := range req.IDs {
		if seen[id] {
			return xerrors.ErrInvalidInput
		}
		seen[id] = true

		pos, ok := currentPos[id]
		if !ok {
			return xerrors.ErrInvalidInput
		}
		if want := i + 1; pos != want {
			changes[id] = want
		}
	}

	if len(changes) == 0 {
		return nil
	}

	if err := s.repo.UpdateExclusiveOrder(ctx, changes); err != nil {
		return fmt.Errorf("failed to apply new order: %w", err)
	}

	s.logger.Info("exclusive showcase reordered",
		zap.Int("total", len(req.IDs)),
		zap.Int("moved", len(changes)),
	)
	return nil
}
