package dto

import "tripwise-backend/internal/budget"

// CreateTripRequest represents the payload to create a trip
type CreateTripRequest struct {
	Name                    string             `json:"name"`
	Destination             string             `json:"destination"`
	StartDate               string             `json:"start_date"` // ISO 8601 format: YYYY-MM-DD or RFC3339
	EndDate                 string             `json:"end_date"`   // ISO 8601 format: YYYY-MM-DD or RFC3339
	Description             string             `json:"description"`
	TotalBudget             float64            `json:"total_budget"`
	Currency                string             `json:"currency"`
	Travelers               int                `json:"travelers"`
	CustomBudgetPercentages map[string]float64 `json:"custom_budget_percentages,omitempty"`
}

// UpdateTripRequest represents fields allowed to update a trip
// All fields are optional; only provided ones will be updated
type UpdateTripRequest struct {
	Name                    *string            `json:"name"`
	Destination             *string            `json:"destination"`
	Description             *string            `json:"description"`
	StartDate               *string            `json:"start_date"` // ISO 8601
	EndDate                 *string            `json:"end_date"`   // ISO 8601
	TotalBudget             *float64           `json:"total_budget"`
	Travelers               *int               `json:"travelers"`
	CustomBudgetPercentages map[string]float64 `json:"custom_budget_percentages,omitempty"`
}

// AddExpenseRequest records spend against one budget category
type AddExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// TripResponse represents a trip object in responses
type TripResponse struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Destination     string           `json:"destination"`
	StartDate       string           `json:"start_date"`
	EndDate         string           `json:"end_date"`
	DurationDays    int              `json:"duration_days"`
	Description     string           `json:"description"`
	Status          string           `json:"status"`
	TotalBudget     float64          `json:"total_budget"`
	TotalSpent      float64          `json:"total_spent"`
	Currency        string           `json:"currency"`
	Travelers       int              `json:"travelers"`
	BudgetBreakdown budget.Breakdown `json:"budget_breakdown"`
	CreatorID       string           `json:"creator_id"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

// CreateTripResponse envelope
type CreateTripResponse struct {
	Trip TripResponse `json:"trip"`
}

// AddExpenseResponse reports the category and trip totals after an expense
type AddExpenseResponse struct {
	Category       string  `json:"category"`
	CategorySpent  float64 `json:"category_spent"`
	CategoryAmount float64 `json:"category_amount"`
	TotalSpent     float64 `json:"total_spent"`
	TotalBudget    float64 `json:"total_budget"`
}

// TripListItem minimal list item
type TripListItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	TotalBudget float64 `json:"total_budget"`
	TotalSpent  float64 `json:"total_spent"`
	Currency    string  `json:"currency"`
	Travelers   int     `json:"travelers"`
	CreatorID   string  `json:"creator_id"`
	CreatedAt   string  `json:"created_at"`
}

// Pagination info
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// TripListResponse envelope
type TripListResponse struct {
	Trips      []TripListItem `json:"trips"`
	Pagination Pagination     `json:"pagination"`
}
