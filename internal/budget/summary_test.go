package budget

import "testing"

func testFigures() TripFigures {
	return TripFigures{
		TotalBudget:  100000,
		TotalSpent:   30000,
		DurationDays: 5,
		Travelers:    2,
		Breakdown: Breakdown{
			CategoryAccommodation: {Amount: 40000, Percentage: 40, Spent: 20000},
			CategoryFood:          {Amount: 25000, Percentage: 25, Spent: 10000},
			CategoryTransport:     {Amount: 20000, Percentage: 20, Spent: 0},
			CategoryActivities:    {Amount: 15000, Percentage: 15, Spent: 0},
		},
	}
}

func TestSummarize_TripFigures(t *testing.T) {
	s := Summarize(testFigures())

	if s.Remaining != 70000 {
		t.Errorf("Remaining = %v, want 70000", s.Remaining)
	}
	if s.PercentageUsed != 30 {
		t.Errorf("PercentageUsed = %v, want 30", s.PercentageUsed)
	}
	if s.PerDay != 20000 {
		t.Errorf("PerDay = %v, want 20000", s.PerDay)
	}
	if s.PerPerson != 50000 {
		t.Errorf("PerPerson = %v, want 50000", s.PerPerson)
	}
	if s.PerPersonPerDay != 10000 {
		t.Errorf("PerPersonPerDay = %v, want 10000", s.PerPersonPerDay)
	}
}

func TestSummarize_Categories(t *testing.T) {
	s := Summarize(testFigures())

	if len(s.Categories) != 4 {
		t.Fatalf("len(Categories) = %d, want 4", len(s.Categories))
	}
	// Canonical order.
	for i, c := range Categories() {
		if s.Categories[i].Category != c {
			t.Errorf("Categories[%d] = %s, want %s", i, s.Categories[i].Category, c)
		}
	}

	acc := s.Categories[0]
	if acc.Remaining != 20000 {
		t.Errorf("accommodation remaining = %v, want 20000", acc.Remaining)
	}
	if acc.PercentageUsed != 50 {
		t.Errorf("accommodation percentage used = %v, want 50", acc.PercentageUsed)
	}
	if acc.PerDay != 8000 {
		t.Errorf("accommodation per day = %v, want 8000", acc.PerDay)
	}
	if acc.PerPerson != 20000 {
		t.Errorf("accommodation per person = %v, want 20000", acc.PerPerson)
	}
	if acc.DisplayName == "" || acc.Icon == "" || acc.Color == "" {
		t.Errorf("accommodation display metadata missing: %+v", acc)
	}
}

// Degenerate inputs never raise: zero divisors produce zero-valued figures.
func TestSummarize_ZeroDivisors(t *testing.T) {
	s := Summarize(TripFigures{
		TotalBudget:  0,
		TotalSpent:   0,
		DurationDays: 0,
		Travelers:    0,
		Breakdown: Breakdown{
			CategoryFood: {Amount: 0, Percentage: 25, Spent: 0},
		},
	})

	if s.PercentageUsed != 0 || s.PerDay != 0 || s.PerPerson != 0 || s.PerPersonPerDay != 0 {
		t.Errorf("zero-divisor figures not all 0: %+v", s)
	}
	for _, c := range s.Categories {
		if c.PercentageUsed != 0 || c.PerDay != 0 || c.PerPerson != 0 {
			t.Errorf("zero-divisor category figures not all 0: %+v", c)
		}
	}
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	f := testFigures()
	before := f.Breakdown[CategoryAccommodation]
	_ = Summarize(f)
	if f.Breakdown[CategoryAccommodation] != before {
		t.Errorf("Summarize mutated its input breakdown")
	}
}
