package budget

import "math"

// HealthStatus is the advisory band a trip's spend ratio falls into.
type HealthStatus string

const (
	HealthExcellent  HealthStatus = "excellent"
	HealthGood       HealthStatus = "good"
	HealthCaution    HealthStatus = "caution"
	HealthCritical   HealthStatus = "critical"
	HealthOverBudget HealthStatus = "over_budget"
)

var healthColors = map[HealthStatus]string{
	HealthExcellent:  "#00B894",
	HealthGood:       "#55EFC4",
	HealthCaution:    "#FDCB6E",
	HealthCritical:   "#E17055",
	HealthOverBudget: "#D63031",
}

// Health summarizes how much of the budget remains, as a 0-100 score.
type Health struct {
	Status         HealthStatus `json:"status"`
	Score          int          `json:"score"`
	PercentageUsed float64      `json:"percentage_used"`
	Color          string       `json:"color"`
}

// Score maps the overall spend ratio to a status band and 0-100 score.
// Band boundaries: exactly 50% used is still excellent, exactly 90% is
// already critical (score 20), exactly 100% is critical with score 0, and
// anything above 100% is over_budget. A non-positive budget counts as 0%
// used. The raw, unrounded ratio picks the band; PercentageUsed in the
// result is rounded for display.
func Score(totalBudget, totalSpent float64) Health {
	used := 0.0
	if totalBudget > 0 {
		used = totalSpent / totalBudget * 100
	}

	var status HealthStatus
	var score float64
	switch {
	case used <= 50:
		status = HealthExcellent
		score = 100 - used
	case used < 75:
		status = HealthGood
		score = 75 - (used - 50)
	case used < 90:
		status = HealthCaution
		score = 50 - (used-75)*2
	case used <= 100:
		status = HealthCritical
		score = 20 - (used-90)*2
	default:
		status = HealthOverBudget
		score = 0
	}

	if score < 0 {
		score = 0
	}

	return Health{
		Status:         status,
		Score:          int(math.Floor(score + 0.5)),
		PercentageUsed: round(used),
		Color:          healthColors[status],
	}
}
