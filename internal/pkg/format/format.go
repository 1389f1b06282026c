// internal/pkg/format/format.go

// Package format renders raw numeric values as the localized strings the
// storefront displays. Inputs are always raw numerics; the helpers are
// presentation-only and carry no error conditions.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices and distances are grouped the Bosnian/Croatian way (25.000, not
// 25,000).
var printer = message.NewPrinter(language.Croatian)

// KWToHP converts engine power from kilowatts to the displayed
// horsepower-equivalent unit (KS).
const KWToHP = 1.36

// Price renders an amount as a grouped whole-unit figure with the currency
// suffix. Fractional currency is rounded away, never truncated.
func Price(amount float64) string {
	return printer.Sprintf("%d KM", int64(math.Round(amount)))
}

// Mileage renders an odometer reading with grouping and the unit suffix.
func Mileage(km int) string {
	return printer.Sprintf("%d km", km)
}

// Power renders engine power in both units side by side, e.g.
// "110 kW (150 KS)".
func Power(kw float64) string {
	hp := int64(math.Round(kw * KWToHP))
	return printer.Sprintf("%d kW (%d KS)", int64(math.Round(kw)), hp)
}
