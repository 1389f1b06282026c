// internal/service/financing/financing.go
package financing

import (
	"context"

	"autosalon-service/internal/domain/vehicle"
	"autosalon-service/internal/finance"
)

// Clamping bounds for calculator input. Values outside the bounds are pulled
// to the nearest edge rather than rejected, so the storefront sliders can
// never produce an error.
const (
	MinTermMonths = 12
	MaxTermMonths = 84

	MinRatePct = 3.0
	MaxRatePct = 15.0
)

// Params are the raw calculator inputs before clamping.
type Params struct {
	DownPayment   float64 `form:"down" json:"down_payment"`
	TermMonths    int     `form:"term" json:"term_months"`
	AnnualRatePct float64 `form:"rate" json:"annual_rate_pct"`
}

// Result is the calculator payload: the clamped inputs that were actually
// used, the resulting quote, and the multi-term comparison table.
type Result struct {
	Price  float64             `json:"price"`
	Params Params              `json:"params"`
	Quote  finance.Quote       `json:"quote"`
	Terms  []finance.TermQuote `json:"terms"`
}

// FinancingService wraps the pure loan calculator with input clamping and
// vehicle price lookup.
type FinancingService struct {
	repo vehicle.Reader
}

func NewFinancingService(repo vehicle.Reader) *FinancingService {
	return &FinancingService{repo: repo}
}

// Clamp pulls each parameter into its allowed range for the given price.
func Clamp(price float64, p Params) Params {
	if p.DownPayment < 0 {
		p.DownPayment = 0
	}
	if p.DownPayment > price {
		p.DownPayment = price
	}

	if p.TermMonths < MinTermMonths {
		p.TermMonths = MinTermMonths
	}
	if p.TermMonths > MaxTermMonths {
		p.TermMonths = MaxTermMonths
	}

	if p.AnnualRatePct < MinRatePct {
		p.AnnualRatePct = MinRatePct
	}
	if p.AnnualRatePct > MaxRatePct {
		p.AnnualRatePct = MaxRatePct
	}
	return p
}

// Calculate clamps the inputs and evaluates the quote for an explicit price.
func (s *FinancingService) Calculate(price float64, raw Params) *Result {
	p := Clamp(price, raw)
	return &Result{
		Price:  price,
		Params: p,
		Quote:  finance.Amortize(price, p.DownPayment, p.TermMonths, p.AnnualRatePct),
		Terms:  finance.Compare(price, p.DownPayment, p.AnnualRatePct, finance.DefaultCompareTerms),
	}
}

// CalculateForVehicle resolves the vehicle's current price and evaluates the
// quote against it.
func (s *FinancingService) CalculateForVehicle(ctx context.Context, vehicleID string, raw Params) (*Result, error) {
	v, err := s.repo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return s.Calculate(v.Price, raw), nil
}
