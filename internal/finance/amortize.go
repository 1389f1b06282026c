// internal/finance/amortize.go

// Package finance implements the fixed-rate, fixed-term loan calculator
// shown on vehicle pages. All functions are pure formula evaluators: input
// clamping (down payment within [0, price], term within [12, 84] months,
// rate within [3, 15] percent) is the responsibility of the HTTP boundary.
package finance

import "math"

// Quote is the result of one amortization calculation. Amounts are raw
// floating-point currency units; rounding happens only at the presentation
// boundary.
type Quote struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
}

// TermQuote is one row of a multi-term comparison table.
type TermQuote struct {
	TermMonths int `json:"term_months"`
	Quote
}

// DefaultCompareTerms are the terms shown in the side-by-side financing
// table on vehicle pages.
var DefaultCompareTerms = []int{36, 60, 84}

// Amortize computes the monthly payment for financing a vehicle of the
// given price with the given down payment over termMonths at the nominal
// annual rate, plus the totals derived from it.
//
// When nothing is left to finance (principal <= 0, or a non-positive term)
// the monthly payment and interest are zero and the total paid is just the
// down payment. A zero rate degrades to straight division of the principal
// over the term rather than the annuity formula.
func Amortize(price, downPayment float64, termMonths int, annualRatePct float64) Quote {
	principal := price - downPayment
	if principal <= 0 || termMonths <= 0 {
		return Quote{MonthlyPayment: 0, TotalPaid: downPayment, TotalInterest: 0}
	}

	var monthly float64
	if annualRatePct == 0 {
		monthly = principal / float64(termMonths)
	} else {
		r := annualRatePct / 100 / 12
		factor := math.Pow(1+r, float64(termMonths))
		monthly = principal * r * factor / (factor - 1)
	}

	totalPaid := monthly*float64(termMonths) + downPayment
	return Quote{
		MonthlyPayment: monthly,
		TotalPaid:      totalPaid,
		TotalInterest:  totalPaid - price,
	}
}

// Compare computes one quote per term, in the given term order, from the
// same price, down payment and rate.
func Compare(price, downPayment, annualRatePct float64, terms []int) []TermQuote {
	quotes := make([]TermQuote, len(terms))
	for i, term := range terms {
		quotes[i] = TermQuote{
			TermMonths: term,
			Quote:      Amortize(price, downPayment, term, annualRatePct),
		}
	}
	return quotes
}
