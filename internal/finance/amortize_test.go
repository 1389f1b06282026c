package finance

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// reference recomputes the annuity formula independently so expectations
// are derived, not hardcoded.
func reference(principal float64, term int, annualRatePct float64) float64 {
	r := annualRatePct / 100 / 12
	factor := math.Pow(1+r, float64(term))
	return principal * r * factor / (factor - 1)
}

func TestAmortize_StandardLoan(t *testing.T) {
	// 30000 price, 6000 down, 60 months at 6.9%, principal 24000
	got := Amortize(30000, 6000, 60, 6.9)

	wantMonthly := reference(24000, 60, 6.9)
	if !approxEqual(got.MonthlyPayment, wantMonthly) {
		t.Errorf("MonthlyPayment = %f, want %f", got.MonthlyPayment, wantMonthly)
	}
	if !approxEqual(got.TotalPaid, wantMonthly*60+6000) {
		t.Errorf("TotalPaid = %f, want %f", got.TotalPaid, wantMonthly*60+6000)
	}
	if !approxEqual(got.TotalInterest, got.TotalPaid-30000) {
		t.Errorf("TotalInterest = %f, want %f", got.TotalInterest, got.TotalPaid-30000)
	}

	// sanity against the figures the financing page shows
	if math.Round(got.MonthlyPayment) != 474 && math.Round(got.MonthlyPayment) != 473 {
		t.Errorf("MonthlyPayment rounds to %f, expected about 473-474", math.Round(got.MonthlyPayment))
	}
}

func TestAmortize_TotalPaidMinusInterestIsPrice(t *testing.T) {
	cases := []struct {
		price, down float64
		term        int
		rate        float64
	}{
		{30000, 6000, 60, 6.9},
		{45000, 0, 84, 3},
		{25000, 12500, 12, 15},
		{18000, 1000, 48, 9.5},
	}
	for _, tc := range cases {
		q := Amortize(tc.price, tc.down, tc.term, tc.rate)
		if !approxEqual(q.TotalPaid-q.TotalInterest, tc.price) {
			t.Errorf("Amortize(%v, %v, %v, %v): TotalPaid-TotalInterest = %f, want %f",
				tc.price, tc.down, tc.term, tc.rate, q.TotalPaid-q.TotalInterest, tc.price)
		}
	}
}

func TestAmortize_FullDownPayment(t *testing.T) {
	// down payment equal to price means no loan at all
	got := Amortize(30000, 30000, 60, 6.9)

	if got.MonthlyPayment != 0 {
		t.Errorf("MonthlyPayment = %f, want 0", got.MonthlyPayment)
	}
	if got.TotalPaid != 30000 {
		t.Errorf("TotalPaid = %f, want 30000", got.TotalPaid)
	}
	if got.TotalInterest != 0 {
		t.Errorf("TotalInterest = %f, want 0", got.TotalInterest)
	}
}

func TestAmortize_DownPaymentAbovePrice(t *testing.T) {
	got := Amortize(30000, 35000, 60, 6.9)
	if got.MonthlyPayment != 0 || got.TotalInterest != 0 {
		t.Errorf("expected zero payment and interest, got %+v", got)
	}
}

func TestAmortize_ZeroRate(t *testing.T) {
	// rate 0 is unreachable through the UI clamp but must not divide by zero
	got := Amortize(24000, 0, 48, 0)

	if !approxEqual(got.MonthlyPayment, 500) {
		t.Errorf("MonthlyPayment = %f, want 500", got.MonthlyPayment)
	}
	if !approxEqual(got.TotalInterest, 0) {
		t.Errorf("TotalInterest = %f, want 0", got.TotalInterest)
	}
}

func TestAmortize_NonPositiveTerm(t *testing.T) {
	got := Amortize(30000, 6000, 0, 6.9)
	if got.MonthlyPayment != 0 || got.TotalPaid != 6000 {
		t.Errorf("expected degenerate quote, got %+v", got)
	}
}

func TestAmortize_Deterministic(t *testing.T) {
	a := Amortize(30000, 6000, 60, 6.9)
	b := Amortize(30000, 6000, 60, 6.9)
	if a != b {
		t.Errorf("identical inputs produced different quotes: %+v vs %+v", a, b)
	}
}

func TestCompare_OneQuotePerTermInOrder(t *testing.T) {
	terms := []int{36, 60, 84}
	quotes := Compare(30000, 6000, 6.9, terms)

	if len(quotes) != len(terms) {
		t.Fatalf("got %d quotes, want %d", len(quotes), len(terms))
	}
	for i, q := range quotes {
		if q.TermMonths != terms[i] {
			t.Errorf("quotes[%d].TermMonths = %d, want %d", i, q.TermMonths, terms[i])
		}
		want := Amortize(30000, 6000, terms[i], 6.9)
		if q.Quote != want {
			t.Errorf("quotes[%d] = %+v, want independently recomputed %+v", i, q.Quote, want)
		}
	}

	// longer terms cost more in interest
	if quotes[0].TotalInterest >= quotes[2].TotalInterest {
		t.Errorf("interest for 36 months (%f) should be below 84 months (%f)",
			quotes[0].TotalInterest, quotes[2].TotalInterest)
	}
}
