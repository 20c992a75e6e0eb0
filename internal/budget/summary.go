package budget

// TripFigures is the snapshot of a trip's budget state the engine reads.
// All fields are plain values; the engine never mutates them.
type TripFigures struct {
	TotalBudget  float64
	TotalSpent   float64
	DurationDays int
	Travelers    int
	Breakdown    Breakdown
}

// CategorySummary is the read-only projection of one category's allocation.
type CategorySummary struct {
	Category       Category `json:"category"`
	DisplayName    string   `json:"display_name"`
	Description    string   `json:"description"`
	Icon           string   `json:"icon"`
	Color          string   `json:"color"`
	Amount         float64  `json:"amount"`
	Percentage     float64  `json:"percentage"`
	Spent          float64  `json:"spent"`
	Remaining      float64  `json:"remaining"`
	PercentageUsed float64  `json:"percentage_used"`
	PerDay         float64  `json:"per_day"`
	PerPerson      float64  `json:"per_person"`
}

// Summary is the read-only projection of a trip's whole budget.
type Summary struct {
	TotalBudget     float64           `json:"total_budget"`
	TotalSpent      float64           `json:"total_spent"`
	Remaining       float64           `json:"remaining"`
	PercentageUsed  float64           `json:"percentage_used"`
	PerDay          float64           `json:"per_day"`
	PerPerson       float64           `json:"per_person"`
	PerPersonPerDay float64           `json:"per_person_per_day"`
	Categories      []CategorySummary `json:"categories"`
}

// Summarize computes remaining amounts, utilization and per-day/per-person
// figures for a trip. It never errors: zero divisors (budget, duration,
// travelers, category amount) produce 0-valued outputs.
func Summarize(f TripFigures) Summary {
	s := Summary{
		TotalBudget:     f.TotalBudget,
		TotalSpent:      f.TotalSpent,
		Remaining:       f.TotalBudget - f.TotalSpent,
		PercentageUsed:  safePercent(f.TotalSpent, f.TotalBudget),
		PerDay:          safeDivide(f.TotalBudget, float64(f.DurationDays)),
		PerPerson:       safeDivide(f.TotalBudget, float64(f.Travelers)),
		PerPersonPerDay: safeDivide(f.TotalBudget, float64(f.Travelers)*float64(f.DurationDays)),
	}

	s.Categories = make([]CategorySummary, 0, len(DefaultPercentages))
	for _, c := range Categories() {
		a := f.Breakdown[c]
		info := c.Info()
		s.Categories = append(s.Categories, CategorySummary{
			Category:       c,
			DisplayName:    info.DisplayName,
			Description:    info.Description,
			Icon:           info.Icon,
			Color:          info.Color,
			Amount:         a.Amount,
			Percentage:     a.Percentage,
			Spent:          a.Spent,
			Remaining:      a.Amount - a.Spent,
			PercentageUsed: safePercent(a.Spent, a.Amount),
			PerDay:         safeDivide(a.Amount, float64(f.DurationDays)),
			PerPerson:      safeDivide(a.Amount, float64(f.Travelers)),
		})
	}
	return s
}

func safeDivide(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return round(num / den)
}

func safePercent(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round(part / whole * 100)
}
