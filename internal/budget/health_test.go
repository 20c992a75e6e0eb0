package budget

import "testing"

func TestScore_Bands(t *testing.T) {
	tests := []struct {
		name        string
		totalBudget float64
		totalSpent  float64
		wantStatus  HealthStatus
		wantScore   int
	}{
		{"nothing spent", 100000, 0, HealthExcellent, 100},
		{"quarter spent", 100000, 25000, HealthExcellent, 75},
		{"exactly half", 100000, 50000, HealthExcellent, 50},
		{"sixty percent", 100000, 60000, HealthGood, 65},
		{"eighty percent", 100000, 80000, HealthCaution, 40},
		{"ninety percent", 70000, 63000, HealthCritical, 20},
		{"ninety five percent", 100000, 95000, HealthCritical, 10},
		{"exactly spent out", 100000, 100000, HealthCritical, 0},
		{"just over budget", 100000, 100000.01, HealthOverBudget, 0},
		{"far over budget", 100000, 250000, HealthOverBudget, 0},
		{"zero budget treated as unused", 0, 0, HealthExcellent, 100},
		{"negative budget treated as unused", -5, 100, HealthExcellent, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Score(tc.totalBudget, tc.totalSpent)
			if h.Status != tc.wantStatus {
				t.Errorf("Score(%v, %v).Status = %q, want %q", tc.totalBudget, tc.totalSpent, h.Status, tc.wantStatus)
			}
			if h.Score != tc.wantScore {
				t.Errorf("Score(%v, %v).Score = %d, want %d", tc.totalBudget, tc.totalSpent, h.Score, tc.wantScore)
			}
		})
	}
}

func TestScore_PercentageUsedRounded(t *testing.T) {
	h := Score(70000, 63000)
	if h.PercentageUsed != 90 {
		t.Errorf("PercentageUsed = %v, want 90", h.PercentageUsed)
	}
}

func TestScore_ColorPerStatus(t *testing.T) {
	seen := map[string]HealthStatus{}
	for _, spent := range []float64{0, 60000, 80000, 95000, 120000} {
		h := Score(100000, spent)
		if h.Color == "" {
			t.Errorf("Score(100000, %v).Color is empty", spent)
		}
		if prev, ok := seen[h.Color]; ok && prev != h.Status {
			t.Errorf("color %q reused for %q and %q", h.Color, prev, h.Status)
		}
		seen[h.Color] = h.Status
	}
}

// Score never goes negative and, past the half-spent point, never increases
// as spend grows.
func TestScore_MonotonicAboveHalf(t *testing.T) {
	const totalBudget = 100000.0
	prev := Score(totalBudget, totalBudget*0.51).Score
	for spent := totalBudget * 0.52; spent <= totalBudget*1.2; spent += totalBudget * 0.01 {
		h := Score(totalBudget, spent)
		if h.Score < 0 {
			t.Fatalf("Score(%v, %v).Score = %d, want >= 0", totalBudget, spent, h.Score)
		}
		if h.Score > prev {
			t.Errorf("score increased from %d to %d at spent=%v", prev, h.Score, spent)
		}
		prev = h.Score
	}
}
