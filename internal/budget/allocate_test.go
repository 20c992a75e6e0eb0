package budget

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestAllocate_Defaults(t *testing.T) {
	b, err := Allocate(100000, nil)
	if err != nil {
		t.Fatalf("Allocate(100000, nil) error = %v, want nil", err)
	}

	want := Breakdown{
		CategoryAccommodation: {Amount: 40000, Percentage: 40, Spent: 0},
		CategoryFood:          {Amount: 25000, Percentage: 25, Spent: 0},
		CategoryTransport:     {Amount: 20000, Percentage: 20, Spent: 0},
		CategoryActivities:    {Amount: 15000, Percentage: 15, Spent: 0},
	}
	if !reflect.DeepEqual(b, want) {
		t.Errorf("Allocate(100000, nil) = %v, want %v", b, want)
	}
}

func TestAllocate_CustomPercentages(t *testing.T) {
	b, err := Allocate(100000, map[Category]float64{
		CategoryAccommodation: 50,
		CategoryFood:          20,
		CategoryTransport:     20,
		CategoryActivities:    10,
	})
	if err != nil {
		t.Fatalf("Allocate custom error = %v, want nil", err)
	}

	wantAmounts := map[Category]float64{
		CategoryAccommodation: 50000,
		CategoryFood:          20000,
		CategoryTransport:     20000,
		CategoryActivities:    10000,
	}
	for c, want := range wantAmounts {
		if got := b[c].Amount; got != want {
			t.Errorf("Allocate amount[%s] = %v, want %v", c, got, want)
		}
		if got := b[c].Spent; got != 0 {
			t.Errorf("Allocate spent[%s] = %v, want 0", c, got)
		}
	}
}

func TestAllocate_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		totalBudget float64
		percentages map[Category]float64
	}{
		{
			name:        "zero budget",
			totalBudget: 0,
		},
		{
			name:        "negative budget",
			totalBudget: -100,
		},
		{
			name:        "sum below 100",
			totalBudget: 100000,
			percentages: map[Category]float64{
				CategoryAccommodation: 50,
				CategoryFood:          20,
				CategoryTransport:     20,
				CategoryActivities:    9,
			},
		},
		{
			name:        "missing category",
			totalBudget: 100000,
			percentages: map[Category]float64{
				CategoryAccommodation: 50,
				CategoryFood:          30,
				CategoryTransport:     20,
			},
		},
		{
			name:        "percentage out of range",
			totalBudget: 100000,
			percentages: map[Category]float64{
				CategoryAccommodation: 120,
				CategoryFood:          -20,
				CategoryTransport:     0,
				CategoryActivities:    0,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Allocate(tc.totalBudget, tc.percentages)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("Allocate() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestAllocate_SumTolerance(t *testing.T) {
	// Percentages summing to 100 within 0.01 must be accepted.
	b, err := Allocate(100000, map[Category]float64{
		CategoryAccommodation: 40.003,
		CategoryFood:          25,
		CategoryTransport:     20,
		CategoryActivities:    15,
	})
	if err != nil {
		t.Fatalf("Allocate within tolerance error = %v, want nil", err)
	}
	if b[CategoryAccommodation].Percentage != 40.003 {
		t.Errorf("percentage not echoed back: got %v", b[CategoryAccommodation].Percentage)
	}
}

// Independent per-category rounding may drift the allocated sum from the
// total by at most one unit per category.
func TestAllocate_AmountSumWithinTolerance(t *testing.T) {
	totals := []float64{100, 999.5, 12345.67, 70001, 333333.33}
	pcts := map[Category]float64{
		CategoryAccommodation: 33.33,
		CategoryFood:          33.33,
		CategoryTransport:     16.67,
		CategoryActivities:    16.67,
	}
	for _, total := range totals {
		b, err := Allocate(total, pcts)
		if err != nil {
			t.Fatalf("Allocate(%v) error = %v", total, err)
		}
		sum := 0.0
		for _, c := range Categories() {
			sum += b[c].Amount
		}
		if math.Abs(sum-total) > 4 {
			t.Errorf("Allocate(%v): amounts sum to %v, drift exceeds 4 units", total, sum)
		}
	}
}

func TestAllocate_Idempotent(t *testing.T) {
	pcts := map[Category]float64{
		CategoryAccommodation: 40,
		CategoryFood:          25,
		CategoryTransport:     20,
		CategoryActivities:    15,
	}
	a, err := Allocate(54321, pcts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Allocate(54321, pcts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Allocate not idempotent: %v != %v", a, b)
	}
}

func TestRescale_PreservesSpent(t *testing.T) {
	cur := Breakdown{
		CategoryAccommodation: {Amount: 40000, Percentage: 40, Spent: 12000},
		CategoryFood:          {Amount: 25000, Percentage: 25, Spent: 300.5},
		CategoryTransport:     {Amount: 20000, Percentage: 20, Spent: 0},
		CategoryActivities:    {Amount: 15000, Percentage: 15, Spent: 9999},
	}

	for _, newTotal := range []float64{1, 50000, 100000, 250000} {
		b, err := Rescale(cur, newTotal)
		if err != nil {
			t.Fatalf("Rescale(%v) error = %v", newTotal, err)
		}
		for _, c := range Categories() {
			if b[c].Spent != cur[c].Spent {
				t.Errorf("Rescale(%v) spent[%s] = %v, want %v", newTotal, c, b[c].Spent, cur[c].Spent)
			}
			if b[c].Percentage != cur[c].Percentage {
				t.Errorf("Rescale(%v) percentage[%s] = %v, want %v", newTotal, c, b[c].Percentage, cur[c].Percentage)
			}
			if want := round(newTotal * cur[c].Percentage / 100); b[c].Amount != want {
				t.Errorf("Rescale(%v) amount[%s] = %v, want %v", newTotal, c, b[c].Amount, want)
			}
		}
	}
}

func TestRescale_MissingCategoryFallsBackToDefault(t *testing.T) {
	cur := Breakdown{
		CategoryAccommodation: {Amount: 40000, Percentage: 40, Spent: 500},
	}
	b, err := Rescale(cur, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if got := b[CategoryFood].Percentage; got != DefaultPercentages[CategoryFood] {
		t.Errorf("fallback percentage for food = %v, want %v", got, DefaultPercentages[CategoryFood])
	}
	if got := b[CategoryFood].Spent; got != 0 {
		t.Errorf("fallback spent for food = %v, want 0", got)
	}
	if got := b[CategoryAccommodation].Spent; got != 500 {
		t.Errorf("spent for accommodation = %v, want 500", got)
	}
}

func TestRescale_NonPositiveBudget(t *testing.T) {
	cur := Breakdown{}
	for _, total := range []float64{0, -1} {
		_, err := Rescale(cur, total)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Rescale(%v) error = %v, want ValidationError", total, err)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v, nil", c, got, err, c)
		}
	}

	for _, bad := range []string{"lodging", "", "Food", "ACCOMMODATION"} {
		_, err := ParseCategory(bad)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ParseCategory(%q) error = %v, want ValidationError", bad, err)
		}
	}
}
