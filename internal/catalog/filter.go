// internal/catalog/filter.go

// Package catalog implements the query engine behind the public vehicle
// listing: pure filtering and ordering over an in-memory snapshot supplied
// by the caller. Nothing here touches storage or holds state between calls,
// so every function is safe for concurrent use.
package catalog

import (
	"strings"

	"autosalon-service/internal/domain/vehicle"
)

// Filter returns the vehicles matching every supplied criteria field, in
// their original relative order. The input slice is never modified. Records
// are assumed to be already validated; criteria are not validated either,
// an inverted range simply matches nothing.
func Filter(vehicles []vehicle.Vehicle, criteria vehicle.FilterCriteria) []vehicle.Vehicle {
	result := make([]vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if matches(&v, &criteria) {
			result = append(result, v)
		}
	}
	return result
}

func matches(v *vehicle.Vehicle, c *vehicle.FilterCriteria) bool {
	if c.Query != "" && !matchesQuery(v, c.Query) {
		return false
	}
	if c.Brand != "" && v.Brand != c.Brand {
		return false
	}
	if c.Model != "" && !strings.Contains(strings.ToLower(v.Model), strings.ToLower(c.Model)) {
		return false
	}
	if c.YearFrom != nil && v.Year < *c.YearFrom {
		return false
	}
	if c.YearTo != nil && v.Year > *c.YearTo {
		return false
	}
	if c.PriceFrom != nil && v.Price < *c.PriceFrom {
		return false
	}
	if c.PriceTo != nil && v.Price > *c.PriceTo {
		return false
	}
	if len(c.Fuels) > 0 && !containsFuel(c.Fuels, v.Fuel) {
		return false
	}
	if c.MaxMileage != nil && v.Mileage > *c.MaxMileage {
		return false
	}
	if c.Transmission != "" && v.Transmission != c.Transmission {
		return false
	}
	if c.ExclusiveOnly && !v.Exclusive {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring search over the record's
// textual fields joined by whitespace.
func matchesQuery(v *vehicle.Vehicle, query string) bool {
	parts := []string{v.Brand, v.Model, v.Description, v.Color}
	parts = append(parts, v.Features...)
	haystack := strings.ToLower(strings.Join(parts, " "))
	return strings.Contains(haystack, strings.ToLower(query))
}

func containsFuel(fuels []vehicle.Fuel, f vehicle.Fuel) bool {
	for _, candidate := range fuels {
		if candidate == f {
			return true
		}
	}
	return false
}
