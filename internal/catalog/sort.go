// internal/catalog/sort.go
package catalog

import (
	"sort"

	"autosalon-service/internal/domain/vehicle"
)

// SortKey selects the ordering of a catalog listing.
type SortKey string

const (
	SortPriceAsc    SortKey = "price-asc"
	SortPriceDesc   SortKey = "price-desc"
	SortYearAsc     SortKey = "year-asc"
	SortYearDesc    SortKey = "year-desc"
	SortMileageAsc  SortKey = "mileage-asc"
	SortMileageDesc SortKey = "mileage-desc"

	// SortNewest orders by publication date, most recent first. It is the
	// default for any unrecognized key.
	SortNewest SortKey = "newest"
)

// Sort returns a newly ordered copy of the input; the input slice itself is
// never reordered. The sort is stable, so records with equal keys keep
// their relative order. An unrecognized key returns a copy in the original
// order.
func Sort(vehicles []vehicle.Vehicle, key SortKey) []vehicle.Vehicle {
	result := make([]vehicle.Vehicle, len(vehicles))
	copy(result, vehicles)

	var less func(a, b *vehicle.Vehicle) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b *vehicle.Vehicle) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b *vehicle.Vehicle) bool { return a.Price > b.Price }
	case SortYearAsc:
		less = func(a, b *vehicle.Vehicle) bool { return a.Year < b.Year }
	case SortYearDesc:
		less = func(a, b *vehicle.Vehicle) bool { return a.Year > b.Year }
	case SortMileageAsc:
		less = func(a, b *vehicle.Vehicle) bool { return a.Mileage < b.Mileage }
	case SortMileageDesc:
		less = func(a, b *vehicle.Vehicle) bool { return a.Mileage > b.Mileage }
	case SortNewest:
		less = func(a, b *vehicle.Vehicle) bool { return a.PublishedAt.After(b.PublishedAt) }
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(&result[i], &result[j])
	})
	return result
}

// SortExclusive orders the exclusive showcase by its curated positions,
// lowest first. Entries without an assigned position sort after the ordered
// ones, newest first. The input is never reordered.
func SortExclusive(vehicles []vehicle.Vehicle) []vehicle.Vehicle {
	result := make([]vehicle.Vehicle, len(vehicles))
	copy(result, vehicles)

	sort.SliceStable(result, func(i, j int) bool {
		a, b := &result[i], &result[j]
		switch {
		case a.ExclusiveOrder.Valid && b.ExclusiveOrder.Valid:
			return a.ExclusiveOrder.Int32 < b.ExclusiveOrder.Int32
		case a.ExclusiveOrder.Valid:
			return true
		case b.ExclusiveOrder.Valid:
			return false
		default:
			return a.PublishedAt.After(b.PublishedAt)
		}
	})
	return result
}
