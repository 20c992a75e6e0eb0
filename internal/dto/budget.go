package dto

import "tripwise-backend/internal/budget"

// TripBudgetResponse is the full budget read model for a trip: the
// summarizer projection plus advisory output.
type TripBudgetResponse struct {
	TripID          string                  `json:"trip_id"`
	Currency        string                  `json:"currency"`
	Summary         budget.Summary          `json:"summary"`
	BudgetHealth    budget.Health           `json:"budget_health"`
	Recommendations []budget.Recommendation `json:"recommendations"`
}
