package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripwise-backend/internal/budget"
	"tripwise-backend/internal/config"
	"tripwise-backend/internal/dto"
	"tripwise-backend/internal/models"
	"tripwise-backend/internal/utils"
)

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	db     *pgxpool.Pool
	config *config.Config
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(db *pgxpool.Pool, cfg *config.Config) *TripsHandler {
	return &TripsHandler{db: db, config: cfg}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateTrip(w, r)
	case http.MethodGet:
		h.ListTrips(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// TripByID dispatches requests under /api/trips/{trip_id} and its
// /budget and /expense sub-resources.
func (h *TripsHandler) TripByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/trips/")
	switch {
	case strings.HasSuffix(rest, "/budget"):
		h.TripBudget(w, r)
	case strings.HasSuffix(rest, "/expense"):
		h.AddExpense(w, r)
	default:
		switch r.Method {
		case http.MethodGet:
			h.TripDetail(w, r)
		case http.MethodPut, http.MethodPatch:
			h.UpdateTrip(w, r)
		case http.MethodDelete:
			h.DeleteTrip(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// tripIDFromPath extracts the trip UUID from /api/trips/{trip_id}[/suffix]
func tripIDFromPath(path string) (uuid.UUID, error) {
	idStr := strings.TrimPrefix(path, "/api/trips/")
	if i := strings.IndexByte(idStr, '/'); i >= 0 {
		idStr = idStr[:i]
	}
	return uuid.Parse(idStr)
}

// parsePercentages converts API percentage keys into budget categories.
// A nil map means "use defaults" and passes through as nil.
func parsePercentages(in map[string]float64) (map[budget.Category]float64, error) {
	if in == nil {
		return nil, nil
	}
	out := make(map[budget.Category]float64, len(in))
	for k, v := range in {
		c, err := budget.ParseCategory(k)
		if err != nil {
			return nil, err
		}
		out[c] = v
	}
	return out, nil
}

// writeBudgetError maps engine validation failures to 400, everything else
// to 500.
func writeBudgetError(w http.ResponseWriter, err error) {
	var verr *budget.ValidationError
	if errors.As(err, &verr) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", verr.Message)
		return
	}
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal error", err.Error())
}

// loadTrip reads one active trip and its budget breakdown rows.
func (h *TripsHandler) loadTrip(ctx context.Context, tripID uuid.UUID) (models.Trip, error) {
	var t models.Trip
	err := h.db.QueryRow(ctx,
		`SELECT id, name, destination, start_date, end_date, description, status, total_budget, total_spent, currency, travelers, creator_id, created_at, updated_at
	       FROM trips WHERE id = $1 AND deleted_at IS NULL`, tripID).Scan(
		&t.ID, &t.Name, &t.Destination, &t.StartDate, &t.EndDate, &t.Description, &t.Status, &t.TotalBudget, &t.TotalSpent, &t.Currency, &t.Travelers, &t.CreatorID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}

	rows, err := h.db.Query(ctx,
		`SELECT category, amount, percentage, spent FROM trip_budgets WHERE trip_id = $1`, tripID)
	if err != nil {
		return t, err
	}
	defer rows.Close()

	t.Breakdown = make(budget.Breakdown, 4)
	for rows.Next() {
		var category string
		var a budget.Allocation
		if err := rows.Scan(&category, &a.Amount, &a.Percentage, &a.Spent); err != nil {
			return t, err
		}
		t.Breakdown[budget.Category(category)] = a
	}
	return t, rows.Err()
}

// saveBreakdown replaces the four budget rows of a trip inside a transaction.
func saveBreakdown(ctx context.Context, tx pgx.Tx, tripID uuid.UUID, b budget.Breakdown) error {
	for _, c := range budget.Categories() {
		a := b[c]
		if _, err := tx.Exec(ctx,
			`INSERT INTO trip_budgets (trip_id, category, amount, percentage, spent)
	         VALUES ($1, $2, $3, $4, $5)
	         ON CONFLICT (trip_id, category)
	         DO UPDATE SET amount = EXCLUDED.amount, percentage = EXCLUDED.percentage, spent = EXCLUDED.spent`,
			tripID, string(c), a.Amount, a.Percentage, a.Spent,
		); err != nil {
			return err
		}
	}
	return nil
}

func tripResponse(t models.Trip) dto.TripResponse {
	return dto.TripResponse{
		ID:              t.ID.String(),
		Name:            t.Name,
		Destination:     t.Destination,
		StartDate:       utils.FormatDate(t.StartDate),
		EndDate:         utils.FormatDate(t.EndDate),
		DurationDays:    models.DurationDays(t.StartDate, t.EndDate),
		Description:     t.Description,
		Status:          t.Status,
		TotalBudget:     t.TotalBudget,
		TotalSpent:      t.TotalSpent,
		Currency:        t.Currency,
		Travelers:       t.Travelers,
		BudgetBreakdown: t.Breakdown,
		CreatorID:       t.CreatorID.String(),
		CreatedAt:       utils.FormatTimestamp(t.CreatedAt),
		UpdatedAt:       utils.FormatTimestamp(t.UpdatedAt),
	}
}

// CreateTrip handles POST /api/trips
// @Summary Create a new trip with its budget breakdown
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Basic validation
	req.Name = strings.TrimSpace(req.Name)
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Name == "" || req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name, destination, start_date, end_date are required")
		return
	}

	// Parse dates (ISO 8601 format: YYYY-MM-DD or RFC3339)
	startAt, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	endAt, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
		return
	}
	if endAt.Before(startAt) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date cannot be before start_date")
		return
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "THB"
	}
	if len(currency) != 3 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "currency must be a 3-letter code")
		return
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}
	if travelers < 1 || travelers > 50 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "travelers must be between 1 and 50")
		return
	}

	// Initial budget breakdown, defaults unless custom percentages given
	pcts, err := parsePercentages(req.CustomBudgetPercentages)
	if err != nil {
		writeBudgetError(w, err)
		return
	}
	breakdown, err := budget.Allocate(req.TotalBudget, pcts)
	if err != nil {
		writeBudgetError(w, err)
		return
	}

	now := time.Now()
	newID := uuid.New()
	status := models.DeriveTripStatus(startAt, endAt, now)

	tx, err := h.db.Begin(context.Background())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer tx.Rollback(context.Background())

	_, err = tx.Exec(context.Background(),
		`INSERT INTO trips (id, name, destination, start_date, end_date, description, status, total_budget, total_spent, currency, travelers, creator_id, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $11, $12, $12)`,
		newID, req.Name, req.Destination, startAt, endAt, req.Description, status, req.TotalBudget, currency, travelers, userID, now,
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if err := saveBreakdown(context.Background(), tx, newID, breakdown); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if err := tx.Commit(context.Background()); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	trip := models.Trip{
		ID:          newID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   startAt,
		EndDate:     endAt,
		Description: req.Description,
		Status:      status,
		TotalBudget: req.TotalBudget,
		TotalSpent:  0,
		Currency:    currency,
		Travelers:   travelers,
		Breakdown:   breakdown,
		CreatorID:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateTripResponse{Trip: tripResponse(trip)})
}

// ListTrips handles GET /api/trips with filters and pagination
// @Summary List trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param status query string false "upcoming|ongoing|planning|all"
// @Param limit query int false "items per page"
// @Param offset query int false "offset"
// @Success 200 {object} dto.TripListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips [get]
func (h *TripsHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	q := r.URL.Query()
	status := strings.ToLower(strings.TrimSpace(q.Get("status")))
	if status == "" {
		status = "all"
	}
	switch status {
	case "all", models.TripStatusUpcoming, models.TripStatusOngoing, models.TripStatusPlanning:
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "invalid status")
		return
	}
	limit := 20
	offset := 0
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			limit = n
		}
	}
	if v := strings.TrimSpace(q.Get("offset")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	// Soft-deleted trips never appear in listings
	var total int
	if err := h.db.QueryRow(context.Background(),
		`SELECT COUNT(1) FROM trips
	      WHERE creator_id = $1 AND deleted_at IS NULL AND ($2 = 'all' OR status = $2)`,
		userID, status).Scan(&total); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	rows, err := h.db.Query(context.Background(),
		`SELECT id, name, destination, start_date, end_date, status, total_budget, total_spent, currency, travelers, creator_id, created_at
	       FROM trips
	      WHERE creator_id = $1 AND deleted_at IS NULL AND ($2 = 'all' OR status = $2)
	      ORDER BY created_at DESC
	      LIMIT $3 OFFSET $4`, userID, status, limit, offset)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer rows.Close()

	items := make([]dto.TripListItem, 0, limit)
	for rows.Next() {
		var id, creatorID uuid.UUID
		var name, destination, st, currency string
		var startAt, endAt, createdAt time.Time
		var totalBudget, totalSpent float64
		var travelers int
		if err := rows.Scan(&id, &name, &destination, &startAt, &endAt, &st, &totalBudget, &totalSpent, &currency, &travelers, &creatorID, &createdAt); err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
		items = append(items, dto.TripListItem{
			ID:          id.String(),
			Name:        name,
			Destination: destination,
			StartDate:   utils.FormatDate(startAt),
			EndDate:     utils.FormatDate(endAt),
			Status:      st,
			TotalBudget: totalBudget,
			TotalSpent:  totalSpent,
			Currency:    currency,
			Travelers:   travelers,
			CreatorID:   creatorID.String(),
			CreatedAt:   utils.FormatTimestamp(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripListResponse{
		Trips: items,
		Pagination: dto.Pagination{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	})
}

// TripDetail handles GET /api/trips/{trip_id}
// @Summary Get trip detail including the budget breakdown
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	t, err := h.loadTrip(context.Background(), tripID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, tripResponse(t))
}

// TripBudget handles GET /api/trips/{trip_id}/budget
// @Summary Get the budget summary, health score and recommendations for a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripBudgetResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/budget [get]
func (h *TripsHandler) TripBudget(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	t, err := h.loadTrip(context.Background(), tripID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
		return
	}

	figures := t.Figures()
	advice := budget.Recommend(figures)

	utils.WriteJSONResponse(w, http.StatusOK, dto.TripBudgetResponse{
		TripID:          t.ID.String(),
		Currency:        t.Currency,
		Summary:         budget.Summarize(figures),
		BudgetHealth:    advice.BudgetHealth,
		Recommendations: advice.Recommendations,
	})
}

// UpdateTrip handles PUT/PATCH /api/trips/{trip_id}
// @Summary Update a trip; budget changes rescale or reallocate the breakdown
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.UpdateTripRequest true "Update payload"
// @Success 200 {object} dto.CreateTripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [put]
func (h *TripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	cur, err := h.loadTrip(context.Background(), tripID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
		return
	}

	// Permission: only creator can update
	if requesterID != cur.CreatorID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only creator can update this trip")
		return
	}

	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	// Prepare new values, default to current if nil
	name := cur.Name
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
		if name == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name cannot be empty")
			return
		}
	}
	destination := cur.Destination
	if req.Destination != nil {
		destination = strings.TrimSpace(*req.Destination)
	}
	description := cur.Description
	if req.Description != nil {
		description = *req.Description
	}

	startDate := cur.StartDate
	if req.StartDate != nil {
		t, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
		startDate = t
	}
	endDate := cur.EndDate
	if req.EndDate != nil {
		t, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format (YYYY-MM-DD or RFC3339)")
			return
		}
		endDate = t
	}
	if endDate.Before(startDate) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date cannot be before start_date")
		return
	}

	travelers := cur.Travelers
	if req.Travelers != nil {
		if *req.Travelers < 1 || *req.Travelers > 50 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "travelers must be between 1 and 50")
			return
		}
		travelers = *req.Travelers
	}

	totalBudget := cur.TotalBudget
	if req.TotalBudget != nil {
		totalBudget = *req.TotalBudget
	}

	// Budget breakdown: custom percentages reallocate (keeping recorded
	// spend per category); a bare total change rescales existing
	// percentages, carrying spend forward.
	breakdown := cur.Breakdown
	breakdownChanged := false
	if req.CustomBudgetPercentages != nil {
		pcts, err := parsePercentages(req.CustomBudgetPercentages)
		if err != nil {
			writeBudgetError(w, err)
			return
		}
		b, err := budget.Allocate(totalBudget, pcts)
		if err != nil {
			writeBudgetError(w, err)
			return
		}
		for c, a := range b {
			a.Spent = cur.Breakdown[c].Spent
			b[c] = a
		}
		breakdown = b
		breakdownChanged = true
	} else if req.TotalBudget != nil && *req.TotalBudget != cur.TotalBudget {
		b, err := budget.Rescale(cur.Breakdown, *req.TotalBudget)
		if err != nil {
			writeBudgetError(w, err)
			return
		}
		breakdown = b
		breakdownChanged = true
	}

	now := time.Now()
	status := models.DeriveTripStatus(startDate, endDate, now)

	tx, err := h.db.Begin(context.Background())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer tx.Rollback(context.Background())

	_, err = tx.Exec(context.Background(),
		`UPDATE trips
	        SET name = $1,
	            destination = $2,
	            description = $3,
	            start_date = $4,
	            end_date = $5,
	            status = $6,
	            total_budget = $7,
	            travelers = $8,
	            updated_at = $9
	      WHERE id = $10`,
		name, destination, description, startDate, endDate, status, totalBudget, travelers, now, cur.ID,
	)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if breakdownChanged {
		if err := saveBreakdown(context.Background(), tx, cur.ID, breakdown); err != nil {
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
			return
		}
	}

	if err := tx.Commit(context.Background()); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	updated := cur
	updated.Name = name
	updated.Destination = destination
	updated.Description = description
	updated.StartDate = startDate
	updated.EndDate = endDate
	updated.Status = status
	updated.TotalBudget = totalBudget
	updated.Travelers = travelers
	updated.Breakdown = breakdown
	updated.UpdatedAt = now

	utils.WriteJSONResponse(w, http.StatusOK, dto.CreateTripResponse{Trip: tripResponse(updated)})
}

// AddExpense handles POST /api/trips/{trip_id}/expense
// @Summary Record spend against one budget category
// @Description Increments the category spend and the trip total. Exceeding the
// @Description category or trip budget is allowed and surfaces only through the
// @Description budget health endpoint.
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.AddExpenseRequest true "Expense payload"
// @Success 200 {object} dto.AddExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id}/expense [post]
func (h *TripsHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	var req dto.AddExpenseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	category, err := budget.ParseCategory(strings.TrimSpace(req.Category))
	if err != nil {
		writeBudgetError(w, err)
		return
	}
	if req.Amount <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "amount must be positive")
		return
	}

	// Ensure the trip exists and is active before mutating
	var exists bool
	if err := h.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM trips WHERE id = $1 AND deleted_at IS NULL)`, tripID).Scan(&exists); err != nil || !exists {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
		return
	}

	// Both counters move by the same amount in one transaction, as SQL
	// increments so concurrent expenses are never dropped.
	tx, err := h.db.Begin(context.Background())
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}
	defer tx.Rollback(context.Background())

	var categorySpent, categoryAmount float64
	err = tx.QueryRow(context.Background(),
		`UPDATE trip_budgets SET spent = spent + $1
	      WHERE trip_id = $2 AND category = $3
	      RETURNING spent, amount`,
		req.Amount, tripID, string(category)).Scan(&categorySpent, &categoryAmount)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	var totalSpent, totalBudget float64
	err = tx.QueryRow(context.Background(),
		`UPDATE trips SET total_spent = total_spent + $1, updated_at = $2
	      WHERE id = $3
	      RETURNING total_spent, total_budget`,
		req.Amount, time.Now(), tripID).Scan(&totalSpent, &totalBudget)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	if err := tx.Commit(context.Background()); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.AddExpenseResponse{
		Category:       string(category),
		CategorySpent:  categorySpent,
		CategoryAmount: categoryAmount,
		TotalSpent:     totalSpent,
		TotalBudget:    totalBudget,
	})
}

// DeleteTrip handles DELETE /api/trips/{trip_id}
// @Summary Soft-delete a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [delete]
func (h *TripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	tripID, err := tripIDFromPath(r.URL.Path)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	var creatorID uuid.UUID
	if err := h.db.QueryRow(context.Background(),
		`SELECT creator_id FROM trips WHERE id = $1 AND deleted_at IS NULL`, tripID).Scan(&creatorID); err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Trip not found")
		return
	}

	if requesterID != creatorID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only creator can delete this trip")
		return
	}

	// Soft delete: budget figures are retained, listings filter them out
	if _, err := h.db.Exec(context.Background(),
		`UPDATE trips SET deleted_at = $1, updated_at = $1 WHERE id = $2`, time.Now(), tripID); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
}
