package models

import (
	"time"

	"github.com/google/uuid"

	"tripwise-backend/internal/budget"
)

// Trip statuses derived from the trip dates.
const (
	TripStatusUpcoming = "upcoming"
	TripStatusOngoing  = "ongoing"
	TripStatusPlanning = "planning"
)

// Trip represents a planned journey with its budget state
type Trip struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Destination string           `json:"destination" db:"destination"`
	StartDate   time.Time        `json:"start_date" db:"start_date"`
	EndDate     time.Time        `json:"end_date" db:"end_date"`
	Description string           `json:"description" db:"description"`
	Status      string           `json:"status" db:"status"`
	TotalBudget float64          `json:"total_budget" db:"total_budget"`
	TotalSpent  float64          `json:"total_spent" db:"total_spent"`
	Currency    string           `json:"currency" db:"currency"`
	Travelers   int              `json:"travelers" db:"travelers"`
	Breakdown   budget.Breakdown `json:"budget_breakdown" db:"-"`
	CreatorID   uuid.UUID        `json:"creator_id" db:"creator_id"`
	DeletedAt   *time.Time       `json:"-" db:"deleted_at"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// DeriveTripStatus classifies a trip by its dates relative to now:
// upcoming before the start, ongoing between start and end (inclusive),
// planning otherwise.
func DeriveTripStatus(start, end, now time.Time) string {
	if start.After(now) {
		return TripStatusUpcoming
	}
	if !now.Before(start) && !now.After(end) {
		return TripStatusOngoing
	}
	return TripStatusPlanning
}

// DurationDays is the inclusive day count between the trip dates. A trip
// starting and ending on the same day lasts one day.
func DurationDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Figures projects the trip into the snapshot the budget engine reads.
func (t *Trip) Figures() budget.TripFigures {
	return budget.TripFigures{
		TotalBudget:  t.TotalBudget,
		TotalSpent:   t.TotalSpent,
		DurationDays: DurationDays(t.StartDate, t.EndDate),
		Travelers:    t.Travelers,
		Breakdown:    t.Breakdown,
	}
}
