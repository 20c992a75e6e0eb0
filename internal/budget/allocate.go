package budget

import "math"

// Allocation is the budget slice of a single category.
type Allocation struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	Spent      float64 `json:"spent"`
}

// Breakdown maps each of the four categories to its allocation.
type Breakdown map[Category]Allocation

// DefaultPercentages is the split used when the caller supplies none.
var DefaultPercentages = map[Category]float64{
	CategoryAccommodation: 40,
	CategoryFood:          25,
	CategoryTransport:     20,
	CategoryActivities:    15,
}

// percentageSumTolerance is the absolute tolerance when checking that
// custom percentages sum to 100.
const percentageSumTolerance = 0.01

// round is the single monetary rounding used across the engine: round
// half-up to the nearest currency unit.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// Allocate converts a total budget into a per-category breakdown.
// A nil percentages map uses DefaultPercentages. Each category amount is
// rounded independently, so the allocated sum may differ from totalBudget
// by up to one unit per category; that drift is accepted, not corrected.
func Allocate(totalBudget float64, percentages map[Category]float64) (Breakdown, error) {
	if totalBudget <= 0 {
		return nil, NewValidationError("total budget must be positive, got %v", totalBudget)
	}

	if percentages == nil {
		percentages = DefaultPercentages
	} else {
		if err := validatePercentages(percentages); err != nil {
			return nil, err
		}
	}

	b := make(Breakdown, len(DefaultPercentages))
	for _, c := range Categories() {
		pct := percentages[c]
		b[c] = Allocation{
			Amount:     round(totalBudget * pct / 100),
			Percentage: pct,
			Spent:      0,
		}
	}
	return b, nil
}

func validatePercentages(percentages map[Category]float64) error {
	sum := 0.0
	for _, c := range Categories() {
		pct, ok := percentages[c]
		if !ok {
			return NewValidationError("missing category %q in budget percentages", c)
		}
		if pct < 0 || pct > 100 {
			return NewValidationError("percentage for %q out of range [0,100]: %v", c, pct)
		}
		sum += pct
	}
	if math.Abs(sum-100) > percentageSumTolerance {
		return NewValidationError("budget percentages must sum to 100, got %v", sum)
	}
	return nil
}

// Rescale recomputes category amounts for a new total budget, keeping each
// category's existing percentage (default fallback if absent) and carrying
// its spent value forward unchanged. Percentage changes go through Allocate
// instead.
func Rescale(current Breakdown, newTotalBudget float64) (Breakdown, error) {
	if newTotalBudget <= 0 {
		return nil, NewValidationError("total budget must be positive, got %v", newTotalBudget)
	}

	b := make(Breakdown, len(DefaultPercentages))
	for _, c := range Categories() {
		pct := DefaultPercentages[c]
		spent := 0.0
		if cur, ok := current[c]; ok {
			pct = cur.Percentage
			spent = cur.Spent
		}
		b[c] = Allocation{
			Amount:     round(newTotalBudget * pct / 100),
			Percentage: pct,
			Spent:      spent,
		}
	}
	return b, nil
}
