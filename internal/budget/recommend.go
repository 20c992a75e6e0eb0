package budget

import "fmt"

// Recommendation levels, in increasing urgency of display.
const (
	RecommendationTip     = "tip"
	RecommendationWarning = "warning"
	RecommendationAlert   = "alert"
)

// GeneralCategory marks advice that is not tied to one of the four
// spending categories.
const GeneralCategory = "general"

// minPerPersonPerDay is the threshold (in trip currency units) below which
// the daily per-head budget is flagged as too low.
const minPerPersonPerDay = 2000

// categoryAlertThreshold is the utilization percentage above which a
// category triggers an alert.
const categoryAlertThreshold = 80

// Recommendation is a single advisory message. It never blocks anything.
type Recommendation struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Advice is the full advisory output for a trip.
type Advice struct {
	Recommendations []Recommendation `json:"recommendations"`
	BudgetHealth    Health           `json:"budget_health"`
}

// Recommend evaluates the advisory rules against a trip snapshot. Rules fire
// independently, in a fixed order: low daily budget, near-exhausted
// categories, long duration, large group.
func Recommend(f TripFigures) Advice {
	recs := make([]Recommendation, 0, 4)

	if f.DurationDays > 0 && f.Travelers > 0 {
		perHeadPerDay := f.TotalBudget / float64(f.DurationDays) / float64(f.Travelers)
		if perHeadPerDay < minPerPersonPerDay {
			recs = append(recs, Recommendation{
				Type:     RecommendationWarning,
				Category: GeneralCategory,
				Message: fmt.Sprintf("Your budget of %.0f per person per day is quite low. Consider increasing the total budget or shortening the trip.",
					perHeadPerDay),
			})
		}
	}

	for _, c := range Categories() {
		a := f.Breakdown[c]
		if a.Amount <= 0 {
			continue
		}
		used := a.Spent / a.Amount * 100
		if used > categoryAlertThreshold {
			recs = append(recs, Recommendation{
				Type:     RecommendationAlert,
				Category: string(c),
				Message: fmt.Sprintf("You have used %.0f%% of your %s budget.",
					used, c.Info().DisplayName),
			})
		}
	}

	if f.DurationDays > 7 {
		recs = append(recs, Recommendation{
			Type:     RecommendationTip,
			Category: string(CategoryAccommodation),
			Message:  "For trips longer than a week, look for weekly rates or apartment rentals to cut accommodation costs.",
		})
	}

	if f.Travelers > 4 {
		recs = append(recs, Recommendation{
			Type:     RecommendationTip,
			Category: string(CategoryTransport),
			Message:  "With a group this size, renting a van or minibus is often cheaper than individual tickets.",
		})
	}

	return Advice{
		Recommendations: recs,
		BudgetHealth:    Score(f.TotalBudget, f.TotalSpent),
	}
}
