package financing

import (
	"context"
	"errors"
	"math"
	"testing"

	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"
)

type mockReader struct {
	findByIDFn func(ctx context.Context, id string) (*vehicle.Vehicle, error)
}

func (m *mockReader) ListActive(ctx context.Context) ([]vehicle.Vehicle, error) {
	return nil, nil
}

func (m *mockReader) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return m.findByIDFn(ctx, id)
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name  string
		price float64
		in    Params
		want  Params
	}{
		{
			name:  "in-range values pass through",
			price: 30000,
			in:    Params{DownPayment: 6000, TermMonths: 60, AnnualRatePct: 6.9},
			want:  Params{DownPayment: 6000, TermMonths: 60, AnnualRatePct: 6.9},
		},
		{
			name:  "negative down payment floors at zero",
			price: 30000,
			in:    Params{DownPayment: -500, TermMonths: 60, AnnualRatePct: 6.9},
			want:  Params{DownPayment: 0, TermMonths: 60, AnnualRatePct: 6.9},
		},
		{
			name:  "down payment capped at price",
			price: 30000,
			in:    Params{DownPayment: 99000, TermMonths: 60, AnnualRatePct: 6.9},
			want:  Params{DownPayment: 30000, TermMonths: 60, AnnualRatePct: 6.9},
		},
		{
			name:  "term pulled up to minimum",
			price: 30000,
			in:    Params{TermMonths: 6, AnnualRatePct: 6.9},
			want:  Params{TermMonths: 12, AnnualRatePct: 6.9},
		},
		{
			name:  "term pulled down to maximum",
			price: 30000,
			in:    Params{TermMonths: 120, AnnualRatePct: 6.9},
			want:  Params{TermMonths: 84, AnnualRatePct: 6.9},
		},
		{
			name:  "rate clamped to both edges",
			price: 30000,
			in:    Params{TermMonths: 60, AnnualRatePct: 0.5},
			want:  Params{TermMonths: 60, AnnualRatePct: 3.0},
		},
		{
			name:  "rate above ceiling",
			price: 30000,
			in:    Params{TermMonths: 60, AnnualRatePct: 22},
			want:  Params{TermMonths: 60, AnnualRatePct: 15},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(tc.price, tc.in)
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCalculate_UsesClampedParams(t *testing.T) {
	svc := NewFinancingService(&mockReader{})

	res := svc.Calculate(30000, Params{DownPayment: -100, TermMonths: 6, AnnualRatePct: 1})

	if res.Params.DownPayment != 0 || res.Params.TermMonths != 12 || res.Params.AnnualRatePct != 3 {
		t.Fatalf("params not clamped: %+v", res.Params)
	}
	if res.Quote.MonthlyPayment <= 0 {
		t.Errorf("expected positive monthly payment, got %v", res.Quote.MonthlyPayment)
	}
	if len(res.Terms) != 3 {
		t.Errorf("got %d comparison terms, want 3", len(res.Terms))
	}
}

func TestCalculate_FullDownPayment(t *testing.T) {
	svc := NewFinancingService(&mockReader{})

	res := svc.Calculate(30000, Params{DownPayment: 30000, TermMonths: 60, AnnualRatePct: 6.9})

	if res.Quote.MonthlyPayment != 0 {
		t.Errorf("got monthly payment %v, want 0", res.Quote.MonthlyPayment)
	}
	if math.Abs(res.Quote.TotalPaid-30000) > 1e-9 {
		t.Errorf("got total paid %v, want 30000", res.Quote.TotalPaid)
	}
}

func TestCalculateForVehicle(t *testing.T) {
	svc := NewFinancingService(&mockReader{
		findByIDFn: func(ctx context.Context, id string) (*vehicle.Vehicle, error) {
			if id != "veh-1" {
				return nil, xerrors.ErrNotFound
			}
			return &vehicle.Vehicle{ID: "veh-1", Price: 45000}, nil
		},
	})

	res, err := svc.CalculateForVehicle(context.Background(), "veh-1", Params{DownPayment: 5000, TermMonths: 60, AnnualRatePct: 6.9})
	if err != nil {
		t.Fatalf("CalculateForVehicle error: %v", err)
	}
	if res.Price != 45000 {
		t.Errorf("got price %v, want 45000", res.Price)
	}

	_, err = svc.CalculateForVehicle(context.Background(), "missing", Params{})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
