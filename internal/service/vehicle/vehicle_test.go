package vehicle

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// mockRepo satisfies vehicle.Repository with pluggable behavior.
type mockRepo struct {
	createFn               func(ctx context.Context, v *vehicle.Vehicle) error
	updateFn               func(ctx context.Context, id string, v *vehicle.Vehicle) error
	softDeleteFn           func(ctx context.Context, id string) error
	setFeaturedFn          func(ctx context.Context, id string, featured bool) error
	listActiveFn           func(ctx context.Context) ([]vehicle.Vehicle, error)
	findByIDFn             func(ctx context.Context, id string) (*vehicle.Vehicle, error)
	listExclusiveFn        func(ctx context.Context) ([]vehicle.Vehicle, error)
	updateExclusiveOrderFn func(ctx context.Context, positions map[string]int) error
}

func (m *mockRepo) Create(ctx context.Context, v *vehicle.Vehicle) error { return m.createFn(ctx, v) }
func (m *mockRepo) Update(ctx context.Context, id string, v *vehicle.Vehicle) error {
	return m.updateFn(ctx, id, v)
}
func (m *mockRepo) SoftDelete(ctx context.Context, id string) error { return m.softDeleteFn(ctx, id) }
func (m *mockRepo) SetFeatured(ctx context.Context, id string, featured bool) error {
	return m.setFeaturedFn(ctx, id, featured)
}
func (m *mockRepo) ListActive(ctx context.Context) ([]vehicle.Vehicle, error) {
	return m.listActiveFn(ctx)
}
func (m *mockRepo) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRepo) ListExclusive(ctx context.Context) ([]vehicle.Vehicle, error) {
	return m.listExclusiveFn(ctx)
}
func (m *mockRepo) UpdateExclusiveOrder(ctx context.Context, positions map[string]int) error {
	return m.updateExclusiveOrderFn(ctx, positions)
}

func exclusivePos(id string, pos int32) vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:             id,
		Exclusive:      true,
		ExclusiveOrder: sql.NullInt32{Int32: pos, Valid: true},
	}
}

func TestCreate_AssignsIDAndDefaults(t *testing.T) {
	var stored *vehicle.Vehicle
	repo := &mockRepo{
		createFn: func(ctx context.Context, v *vehicle.Vehicle) error {
			stored = v
			return nil
		},
	}
	svc := NewVehicleService(repo, zap.NewNop())

	got, err := svc.Create(context.Background(), &vehicle.CreateVehicleRequest{
		Brand: "BMW", Model: "320d", Year: 2020, Price: 45000,
		Fuel: vehicle.FuelDiesel, Transmission: vehicle.TransmissionAutomatic,
		PowerKW: 140, Color: "Crna",
		Images:   []string{"a.jpg"},
		Features: []string{"Navigacija"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if got.ID == "" {
		t.Error("expected a generated id")
	}
	if got.PublishedAt.IsZero() {
		t.Error("expected published_at to default to now")
	}
	if stored == nil || stored.ID != got.ID {
		t.Error("vehicle was not passed to the repository")
	}
}

func TestCreate_RejectsUnknownEnums(t *testing.T) {
	svc := NewVehicleService(&mockRepo{}, zap.NewNop())

	_, err := svc.Create(context.Background(), &vehicle.CreateVehicleRequest{
		Brand: "BMW", Model: "320d", Year: 2020, Price: 45000,
		Fuel: vehicle.Fuel("steam"), Transmission: vehicle.TransmissionManual,
	})
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_AppliesOnlyProvidedFields(t *testing.T) {
	existing := vehicle.Vehicle{
		ID: "veh-1", Brand: "BMW", Model: "320d", Price: 45000,
		OldPrice: sql.NullFloat64{Float64: 48000, Valid: true},
	}
	var updated *vehicle.Vehicle
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id string) (*vehicle.Vehicle, error) {
			v := existing
			return &v, nil
		},
		updateFn: func(ctx context.Context, id string, v *vehicle.Vehicle) error {
			updated = v
			return nil
		},
	}
	svc := NewVehicleService(repo, zap.NewNop())

	newPrice := 43000.0
	got, err := svc.Update(context.Background(), "veh-1", &vehicle.UpdateVehicleRequest{
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if got.Price != 43000 {
		t.Errorf("got price %v, want 43000", got.Price)
	}
	if got.Brand != "BMW" || got.Model != "320d" {
		t.Error("untouched fields changed")
	}
	if !got.OldPrice.Valid {
		t.Error("old price cleared without clear_old_price")
	}
	if updated == nil {
		t.Fatal("vehicle was not passed to the repository")
	}
}

func TestUpdate_ClearOldPrice(t *testing.T) {
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id string) (*vehicle.Vehicle, error) {
			return &vehicle.Vehicle{
				ID: "veh-1", Price: 45000,
				OldPrice: sql.NullFloat64{Float64: 48000, Valid: true},
			}, nil
		},
		updateFn: func(ctx context.Context, id string, v *vehicle.Vehicle) error { return nil },
	}
	svc := NewVehicleService(repo, zap.NewNop())

	got, err := svc.Update(context.Background(), "veh-1", &vehicle.UpdateVehicleRequest{
		ClearOldPrice: true,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.OldPrice.Valid {
		t.Error("old price still set after clear_old_price")
	}
}

func TestUpdate_LeavingShowcaseDropsPosition(t *testing.T) {
	repo := &mockRepo{
		findByIDFn: func(ctx context.Context, id string) (*vehicle.Vehicle, error) {
			v := exclusivePos("veh-1", 2)
			return &v, nil
		},
		updateFn: func(ctx context.Context, id string, v *vehicle.Vehicle) error { return nil },
	}
	svc := NewVehicleService(repo, zap.NewNop())

	exclusive := false
	got, err := svc.Update(context.Background(), "veh-1", &vehicle.UpdateVehicleRequest{
		Exclusive: &exclusive,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Exclusive || got.ExclusiveOrder.Valid {
		t.Errorf("expected showcase membership and position cleared, got %+v", got)
	}
}

func TestReorderExclusive_MinimalDiff(t *testing.T) {
	var applied map[string]int
	repo := &mockRepo{
		listExclusiveFn: func(ctx context.Context) ([]vehicle.Vehicle, error) {
			return []vehicle.Vehicle{
				exclusivePos("a", 1),
				exclusivePos("b", 2),
				exclusivePos("c", 3),
			}, nil
		},
		updateExclusiveOrderFn: func(ctx context.Context, positions map[string]int) error {
			applied = positions
			return nil
		},
	}
	svc := NewVehicleService(repo, zap.NewNop())

	// a stays first; b and c swap
	err := svc.ReorderExclusive(context.Background(), &vehicle.ReorderExclusiveRequest{
		IDs: []string{"a", "c", "b"},
	})
	if err != nil {
		t.Fatalf("ReorderExclusive error: %v", err)
	}

	if len(applied) != 2 {
		t.Fatalf("got %d position updates, want 2: %v", len(applied), applied)
	}
	if applied["c"] != 2 || applied["b"] != 3 {
		t.Errorf("unexpected positions: %v", applied)
	}
}

func TestReorderExclusive_NoChangesSkipsWrite(t *testing.T) {
	repo := &mockRepo{
		listExclusiveFn: func(ctx context.Context) ([]vehicle.Vehicle, error) {
			return []vehicle.Vehicle{exclusivePos("a", 1), exclusivePos("b", 2)}, nil
		},
		updateExclusiveOrderFn: func(ctx context.Context, positions map[string]int) error {
			t.Fatal("write should not happen when the order is unchanged")
			return nil
		},
	}
	svc := NewVehicleService(repo, zap.NewNop())

	err := svc.ReorderExclusive(context.Background(), &vehicle.ReorderExclusiveRequest{
		IDs: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("ReorderExclusive error: %v", err)
	}
}

func TestReorderExclusive_AssignsPositionsToUnordered(t *testing.T) {
	var applied map[string]int
	repo := &mockRepo{
		listExclusiveFn: func(ctx context.Context) ([]vehicle.Vehicle, error) {
			// b has never been ordered
			return []vehicle.Vehicle{
				exclusivePos("a", 1),
				{ID: "b", Exclusive: true},
			}, nil
		},
		updateExclusiveOrderFn: func(ctx context.Context, positions map[string]int) error {
			applied = positions
			return nil
		},
	}
	svc := NewVehicleService(repo, zap.NewNop())

	err := svc.ReorderExclusive(context.Background(), &vehicle.ReorderExclusiveRequest{
		IDs: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("ReorderExclusive error: %v", err)
	}
	if len(applied) != 1 || applied["b"] != 2 {
		t.Errorf("unexpected positions: %v", applied)
	}
}

func TestReorderExclusive_RejectsIncompleteOrForeignIDs(t *testing.T) {
	repo := &mockRepo{
		listExclusiveFn: func(ctx context.Context) ([]vehicle.Vehicle, error) {
			return []vehicle.Vehicle{exclusivePos("a", 1), exclusivePos("b", 2)}, nil
		},
	}
	svc := NewVehicleService(repo, zap.NewNop())
	ctx := context.Background()

	cases := [][]string{
		{"a"},                // missing b
		{"a", "b", "c"},      // c is not exclusive
		{"a", "a"},           // duplicate
		{"a", "other-id"},    // foreign id
	}
	for _, ids := range cases {
		err := svc.ReorderExclusive(ctx, &vehicle.ReorderExclusiveRequest{IDs: ids})
		if !errors.Is(err, xerrors.ErrInvalidInput) {
			t.Errorf("ReorderExclusive(%v): expected ErrInvalidInput, got %v", ids, err)
		}
	}
}
