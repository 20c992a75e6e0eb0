package budget

import (
	"strings"
	"testing"
)

func TestRecommend_NoRulesFire(t *testing.T) {
	// Generous budget, short trip, small group, low utilization.
	a := Recommend(TripFigures{
		TotalBudget:  100000,
		TotalSpent:   10000,
		DurationDays: 5,
		Travelers:    2,
		Breakdown: Breakdown{
			CategoryAccommodation: {Amount: 40000, Percentage: 40, Spent: 5000},
			CategoryFood:          {Amount: 25000, Percentage: 25, Spent: 5000},
			CategoryTransport:     {Amount: 20000, Percentage: 20, Spent: 0},
			CategoryActivities:    {Amount: 15000, Percentage: 15, Spent: 0},
		},
	})

	if len(a.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want none", a.Recommendations)
	}
	if a.BudgetHealth.Status != HealthExcellent {
		t.Errorf("BudgetHealth.Status = %q, want excellent", a.BudgetHealth.Status)
	}
}

func TestRecommend_LowDailyBudgetWarning(t *testing.T) {
	// 10000 / 5 days / 2 travelers = 1000 per head per day, below 2000.
	a := Recommend(TripFigures{
		TotalBudget:  10000,
		DurationDays: 5,
		Travelers:    2,
	})

	if len(a.Recommendations) != 1 {
		t.Fatalf("Recommendations = %v, want exactly one", a.Recommendations)
	}
	r := a.Recommendations[0]
	if r.Type != RecommendationWarning || r.Category != GeneralCategory {
		t.Errorf("got %+v, want warning/general", r)
	}
}

func TestRecommend_CategoryExhaustionAlert(t *testing.T) {
	a := Recommend(TripFigures{
		TotalBudget:  100000,
		TotalSpent:   21000,
		DurationDays: 5,
		Travelers:    2,
		Breakdown: Breakdown{
			CategoryAccommodation: {Amount: 40000, Percentage: 40, Spent: 0},
			CategoryFood:          {Amount: 25000, Percentage: 25, Spent: 21000}, // 84%
			CategoryTransport:     {Amount: 20000, Percentage: 20, Spent: 16000}, // exactly 80%, no alert
			CategoryActivities:    {Amount: 15000, Percentage: 15, Spent: 0},
		},
	})

	if len(a.Recommendations) != 1 {
		t.Fatalf("Recommendations = %v, want exactly one", a.Recommendations)
	}
	r := a.Recommendations[0]
	if r.Type != RecommendationAlert || r.Category != string(CategoryFood) {
		t.Errorf("got %+v, want alert/food", r)
	}
	if !strings.Contains(r.Message, "84%") {
		t.Errorf("alert message %q does not name the utilization", r.Message)
	}
}

func TestRecommend_LongTripAndLargeGroupTips(t *testing.T) {
	a := Recommend(TripFigures{
		TotalBudget:  1000000,
		DurationDays: 10,
		Travelers:    6,
	})

	if len(a.Recommendations) != 2 {
		t.Fatalf("Recommendations = %v, want two tips", a.Recommendations)
	}
	if a.Recommendations[0].Category != string(CategoryAccommodation) || a.Recommendations[0].Type != RecommendationTip {
		t.Errorf("first tip = %+v, want accommodation tip", a.Recommendations[0])
	}
	if a.Recommendations[1].Category != string(CategoryTransport) || a.Recommendations[1].Type != RecommendationTip {
		t.Errorf("second tip = %+v, want transport tip", a.Recommendations[1])
	}
}

// Rules are independent; when all fire they appear in the listed order:
// warning, per-category alerts, duration tip, group tip.
func TestRecommend_AllRulesInOrder(t *testing.T) {
	a := Recommend(TripFigures{
		TotalBudget:  50000, // 50000/8/6 ≈ 1042 per head per day
		TotalSpent:   45000,
		DurationDays: 8,
		Travelers:    6,
		Breakdown: Breakdown{
			CategoryAccommodation: {Amount: 20000, Percentage: 40, Spent: 19000},
			CategoryFood:          {Amount: 12500, Percentage: 25, Spent: 12000},
			CategoryTransport:     {Amount: 10000, Percentage: 20, Spent: 9000},
			CategoryActivities:    {Amount: 7500, Percentage: 15, Spent: 5000},
		},
	})

	wantTypes := []string{
		RecommendationWarning,
		RecommendationAlert, // accommodation 95%
		RecommendationAlert, // food 96%
		RecommendationAlert, // transport 90%
		RecommendationTip,   // long trip
		RecommendationTip,   // large group
	}
	if len(a.Recommendations) != len(wantTypes) {
		t.Fatalf("got %d recommendations, want %d: %v", len(a.Recommendations), len(wantTypes), a.Recommendations)
	}
	for i, want := range wantTypes {
		if a.Recommendations[i].Type != want {
			t.Errorf("recommendation[%d].Type = %q, want %q", i, a.Recommendations[i].Type, want)
		}
	}
	if a.BudgetHealth.Status != HealthCritical {
		t.Errorf("BudgetHealth.Status = %q, want critical", a.BudgetHealth.Status)
	}
}

func TestRecommend_ZeroAmountCategorySkipped(t *testing.T) {
	a := Recommend(TripFigures{
		TotalBudget:  1000000,
		DurationDays: 2,
		Travelers:    1,
		Breakdown: Breakdown{
			CategoryFood: {Amount: 0, Percentage: 0, Spent: 100},
		},
	})
	for _, r := range a.Recommendations {
		if r.Type == RecommendationAlert {
			t.Errorf("alert fired for zero-amount category: %+v", r)
		}
	}
}
