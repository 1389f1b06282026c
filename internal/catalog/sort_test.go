package catalog

import (
	"database/sql"
	"testing"
	"time"

	"autosalon-service/internal/domain/vehicle"
)

func TestSort_PriceAscending(t *testing.T) {
	got := Sort(testVehicles(), SortPriceAsc)
	assertIDs(t, got, "veh-2", "veh-3", "veh-1")
}

func TestSort_PriceDescending(t *testing.T) {
	got := Sort(testVehicles(), SortPriceDesc)
	assertIDs(t, got, "veh-1", "veh-3", "veh-2")
}

func TestSort_PriceRoundTrip(t *testing.T) {
	// with no price ties, descending is exactly ascending reversed
	asc := Sort(testVehicles(), SortPriceAsc)
	desc := Sort(testVehicles(), SortPriceDesc)
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("asc %v is not the reverse of desc %v", ids(asc), ids(desc))
		}
	}
}

func TestSort_Year(t *testing.T) {
	got := Sort(testVehicles(), SortYearAsc)
	assertIDs(t, got, "veh-2", "veh-1", "veh-3")

	got = Sort(testVehicles(), SortYearDesc)
	assertIDs(t, got, "veh-3", "veh-1", "veh-2")
}

func TestSort_Mileage(t *testing.T) {
	got := Sort(testVehicles(), SortMileageAsc)
	assertIDs(t, got, "veh-3", "veh-1", "veh-2")

	got = Sort(testVehicles(), SortMileageDesc)
	assertIDs(t, got, "veh-2", "veh-1", "veh-3")
}

func TestSort_NewestFirst(t *testing.T) {
	got := Sort(testVehicles(), SortNewest)
	assertIDs(t, got, "veh-3", "veh-1", "veh-2")
}

func TestSort_UnknownKeyKeepsInputOrder(t *testing.T) {
	got := Sort(testVehicles(), SortKey("bogus"))
	assertIDs(t, got, "veh-1", "veh-2", "veh-3")
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	vehicles := testVehicles()
	before := ids(vehicles)

	Sort(vehicles, SortPriceAsc)

	after := ids(vehicles)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input order changed: before %v, after %v", before, after)
		}
	}
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	vehicles := []vehicle.Vehicle{
		{ID: "a", Price: 10000},
		{ID: "b", Price: 10000},
		{ID: "c", Price: 9000},
		{ID: "d", Price: 10000},
	}
	got := Sort(vehicles, SortPriceAsc)
	assertIDs(t, got, "c", "a", "b", "d")
}

func TestSort_EmptyInput(t *testing.T) {
	got := Sort(nil, SortPriceAsc)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d items", len(got))
	}
}

func TestSortExclusive_CuratedPositionsFirst(t *testing.T) {
	vehicles := []vehicle.Vehicle{
		{ID: "unordered-new", PublishedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "pos-2", ExclusiveOrder: sql.NullInt32{Int32: 2, Valid: true}},
		{ID: "unordered-old", PublishedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "pos-1", ExclusiveOrder: sql.NullInt32{Int32: 1, Valid: true}},
	}
	got := SortExclusive(vehicles)
	assertIDs(t, got, "pos-1", "pos-2", "unordered-new", "unordered-old")
}

func TestSortExclusive_DoesNotMutateInput(t *testing.T) {
	vehicles := []vehicle.Vehicle{
		{ID: "b", ExclusiveOrder: sql.NullInt32{Int32: 2, Valid: true}},
		{ID: "a", ExclusiveOrder: sql.NullInt32{Int32: 1, Valid: true}},
	}
	SortExclusive(vehicles)
	assertIDs(t, vehicles, "b", "a")
}
