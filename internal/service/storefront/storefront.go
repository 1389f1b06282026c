// internal/service/storefront/storefront.go
package storefront

import (
	"context"
	"fmt"
	"sort"

	"autosalon-service/internal/catalog"
	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"
	"autosalon-service/internal/pkg/format"

	"go.uber.org/zap"
)

const (
	// CompareMin and CompareMax bound the side-by-side comparison.
	CompareMin = 2
	CompareMax = 3
)

// CatalogService serves the public storefront: listing, filtering, sorting,
// comparison and the filter panel metadata. It only needs the read side of
// the catalog, so it runs unchanged on the static fallback snapshot.
type CatalogService struct {
	repo   vehicle.Reader
	logger *zap.Logger
}

func NewCatalogService(repo vehicle.Reader, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the catalog narrowed by criteria and ordered by sortKey.
func (s *CatalogService) List(ctx context.Context, criteria vehicle.FilterCriteria, sortKey catalog.SortKey) (*vehicle.ListResponse, error) {
	vehicles, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	filtered := catalog.Filter(vehicles, criteria)
	sorted := catalog.Sort(filtered, sortKey)

	return &vehicle.ListResponse{
		Vehicles: sorted,
		Total:    len(sorted),
	}, nil
}

// Get returns one vehicle by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Featured returns the vehicles highlighted on the landing page, newest
// first.
func (s *CatalogService) Featured(ctx context.Context) ([]vehicle.Vehicle, error) {
	vehicles, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	featured := make([]vehicle.Vehicle, 0)
	for _, v := range vehicles {
		if v.Featured {
			featured = append(featured, v)
		}
	}
	return catalog.Sort(featured, catalog.SortNewest), nil
}

// Exclusive returns the exclusive-offer vehicles in their curated display
// order. Entries without an assigned position sort after the ordered ones.
func (s *CatalogService) Exclusive(ctx context.Context) ([]vehicle.Vehicle, error) {
	vehicles, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	exclusive := make([]vehicle.Vehicle, 0)
	for _, v := range vehicles {
		if v.Exclusive {
			exclusive = append(exclusive, v)
		}
	}
	return catalog.SortExclusive(exclusive), nil
}

// Compare builds the side-by-side comparison table for 2 or 3 vehicles.
// Duplicate or unknown ids fail the whole request.
func (s *CatalogService) Compare(ctx context.Context, ids []string) (*vehicle.CompareResponse, error) {
	if len(ids) < CompareMin || len(ids) > CompareMax {
		return nil, xerrors.ErrInvalidInput
	}

	seen := make(map[string]bool, len(ids))
	vehicles := make([]vehicle.Vehicle, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, xerrors.ErrInvalidInput
		}
		seen[id] = true

		v, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}

	return &vehicle.CompareResponse{
		Vehicles: vehicles,
		Rows:     compareRows(vehicles),
	}, nil
}

// compareRows renders the comparison table with formatted, display-ready cells.
func compareRows(vehicles []vehicle.Vehicle) []vehicle.CompareRow {
	rows := []vehicle.CompareRow{
		{Label: "Cijena"},
		{Label: "Godište"},
		{Label: "Kilometraža"},
		{Label: "Gorivo"},
		{Label: "Mjenjač"},
		{Label: "Snaga"},
		{Label: "Boja"},
	}

	for _, v := range vehicles {
		rows[0].Values = append(rows[0].Values, format.Price(v.Price))
		rows[1].Values = append(rows[1].Values, fmt.Sprintf("%d", v.Year))
		rows[2].Values = append(rows[2].Values, format.Mileage(v.Mileage))
		rows[3].Values = append(rows[3].Values, v.Fuel.Label())
		rows[4].Values = append(rows[4].Values, v.Transmission.Label())
		rows[5].Values = append(rows[5].Values, format.Power(v.PowerKW))
		rows[6].Values = append(rows[6].Values, v.Color)
	}
	return rows
}

// FilterOptions computes the filter panel metadata from the current catalog:
// distinct brands, price and year bounds, and the labeled enums.
func (s *CatalogService) FilterOptions(ctx context.Context) (*vehicle.FilterMeta, error) {
	vehicles, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	meta := &vehicle.FilterMeta{
		Brands: []string{},
		Fuels: map[string]string{
			string(vehicle.FuelGasoline): vehicle.FuelGasoline.Label(),
			string(vehicle.FuelDiesel):   vehicle.FuelDiesel.Label(),
			string(vehicle.FuelHybrid):   vehicle.FuelHybrid.Label(),
			string(vehicle.FuelElectric): vehicle.FuelElectric.Label(),
		},
		Transmissions: map[string]string{
			string(vehicle.TransmissionManual):    vehicle.TransmissionManual.Label(),
			string(vehicle.TransmissionAutomatic): vehicle.TransmissionAutomatic.Label(),
		},
	}

	brandSeen := make(map[string]bool)
	for i, v := range vehicles {
		if !brandSeen[v.Brand] {
			brandSeen[v.Brand] = true
			meta.Brands = append(meta.Brands, v.Brand)
		}
		if i == 0 {
			meta.PriceMin, meta.PriceMax = v.Price, v.Price
			meta.YearMin, meta.YearMax = v.Year, v.Year
			continue
		}
		if v.Price < meta.PriceMin {
			meta.PriceMin = v.Price
		}
		if v.Price > meta.PriceMax {
			meta.PriceMax = v.Price
		}
		if v.Year < meta.YearMin {
			meta.YearMin = v.Year
		}
		if v.Year > meta.YearMax {
			meta.YearMax = v.Year
		}
	}

	sort.Strings(meta.Brands)
	return meta, nil
}
