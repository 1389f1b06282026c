package storefront

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"autosalon-service/internal/catalog"
	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// mockReader satisfies vehicle.Reader with pluggable behavior.
type mockReader struct {
	listActiveFn func(ctx context.Context) ([]vehicle.Vehicle, error)
	findByIDFn   func(ctx context.Context, id string) (*vehicle.Vehicle, error)
}

func (m *mockReader) ListActive(ctx context.Context) ([]vehicle.Vehicle, error) {
	return m.listActiveFn(ctx)
}

func (m *mockReader) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return m.findByIDFn(ctx, id)
}

func snapshot() []vehicle.Vehicle {
	return []vehicle.Vehicle{
		{
			ID: "veh-1", Brand: "BMW", Model: "320d", Year: 2020, Price: 45000,
			Mileage: 60000, Fuel: vehicle.FuelDiesel, Transmission: vehicle.TransmissionAutomatic,
			PowerKW: 140, Color: "Crna", Featured: true,
			PublishedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "veh-2", Brand: "Audi", Model: "A4", Year: 2018, Price: 25000,
			Mileage: 120000, Fuel: vehicle.FuelGasoline, Transmission: vehicle.TransmissionManual,
			PowerKW: 110, Color: "Siva", Exclusive: true,
			ExclusiveOrder: sql.NullInt32{Int32: 2, Valid: true},
			PublishedAt:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "veh-3", Brand: "Volkswagen", Model: "Golf 8", Year: 2022, Price: 32000,
			Mileage: 15000, Fuel: vehicle.FuelHybrid, Transmission: vehicle.TransmissionAutomatic,
			PowerKW: 110, Color: "Bijela", Featured: true, Exclusive: true,
			ExclusiveOrder: sql.NullInt32{Int32: 1, Valid: true},
			PublishedAt:    time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}

func newTestService(t *testing.T) *CatalogService {
	t.Helper()
	reader := &mockReader{
		listActiveFn: func(ctx context.Context) ([]vehicle.Vehicle, error) {
			return snapshot(), nil
		},
		findByIDFn: func(ctx context.Context, id string) (*vehicle.Vehicle, error) {
			for _, v := range snapshot() {
				if v.ID == id {
					return &v, nil
				}
			}
			return nil, xerrors.ErrNotFound
		},
	}
	return NewCatalogService(reader, zap.NewNop())
}

func TestList_FilterAndSortCompose(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.List(context.Background(), vehicle.FilterCriteria{
		Transmission: vehicle.TransmissionAutomatic,
	}, catalog.SortPriceAsc)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("got total %d, want 2", resp.Total)
	}
	if resp.Vehicles[0].ID != "veh-3" || resp.Vehicles[1].ID != "veh-1" {
		t.Errorf("unexpected order: %s, %s", resp.Vehicles[0].ID, resp.Vehicles[1].ID)
	}
}

func TestList_RepositoryErrorPropagates(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewCatalogService(&mockReader{
		listActiveFn: func(ctx context.Context) ([]vehicle.Vehicle, error) {
			return nil, repoErr
		},
	}, zap.NewNop())

	if _, err := svc.List(context.Background(), vehicle.FilterCriteria{}, catalog.SortNewest); !errors.Is(err, repoErr) {
		t.Errorf("expected wrapped repo error, got %v", err)
	}
}

func TestFeatured_NewestFirst(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("Featured error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d featured vehicles, want 2", len(got))
	}
	if got[0].ID != "veh-3" || got[1].ID != "veh-1" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestExclusive_CuratedOrder(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Exclusive(context.Background())
	if err != nil {
		t.Fatalf("Exclusive error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d exclusive vehicles, want 2", len(got))
	}
	if got[0].ID != "veh-3" || got[1].ID != "veh-2" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestCompare_BuildsFormattedRows(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Compare(context.Background(), []string{"veh-1", "veh-2"})
	if err != nil {
		t.Fatalf("Compare error: %v", err)
	}

	if len(resp.Vehicles) != 2 {
		t.Fatalf("got %d vehicles, want 2", len(resp.Vehicles))
	}
	if len(resp.Rows) != 7 {
		t.Fatalf("got %d rows, want 7", len(resp.Rows))
	}

	price := resp.Rows[0]
	if price.Label != "Cijena" {
		t.Errorf("got first row label %q, want Cijena", price.Label)
	}
	if price.Values[0] != "45.000 KM" {
		t.Errorf("got price cell %q, want 45.000 KM", price.Values[0])
	}

	power := resp.Rows[5]
	if power.Values[1] != "110 kW (150 KS)" {
		t.Errorf("got power cell %q, want 110 kW (150 KS)", power.Values[1])
	}
}

func TestCompare_RejectsBadCardinality(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := [][]string{
		{"veh-1"},
		{"veh-1", "veh-2", "veh-3", "veh-1"},
		{},
	}
	for _, ids := range cases {
		if _, err := svc.Compare(ctx, ids); !errors.Is(err, xerrors.ErrInvalidInput) {
			t.Errorf("Compare(%v): expected ErrInvalidInput, got %v", ids, err)
		}
	}
}

func TestCompare_RejectsDuplicateIDs(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Compare(context.Background(), []string{"veh-1", "veh-1"}); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompare_UnknownIDFailsWholeRequest(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Compare(context.Background(), []string{"veh-1", "missing"}); !errors.Is(err, xerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFilterOptions_ComputedFromSnapshot(t *testing.T) {
	svc := newTestService(t)

	meta, err := svc.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("FilterOptions error: %v", err)
	}

	wantBrands := []string{"Audi", "BMW", "Volkswagen"}
	if len(meta.Brands) != len(wantBrands) {
		t.Fatalf("got brands %v, want %v", meta.Brands, wantBrands)
	}
	for i := range wantBrands {
		if meta.Brands[i] != wantBrands[i] {
			t.Fatalf("got brands %v, want %v", meta.Brands, wantBrands)
		}
	}

	if meta.PriceMin != 25000 || meta.PriceMax != 45000 {
		t.Errorf("got price bounds [%v, %v], want [25000, 45000]", meta.PriceMin, meta.PriceMax)
	}
	if meta.YearMin != 2018 || meta.YearMax != 2022 {
		t.Errorf("got year bounds [%d, %d], want [2018, 2022]", meta.YearMin, meta.YearMax)
	}
	if meta.Fuels["diesel"] != "Dizel" {
		t.Errorf("got fuel label %q, want Dizel", meta.Fuels["diesel"])
	}
}
