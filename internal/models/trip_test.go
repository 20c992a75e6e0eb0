package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveTripStatus(t *testing.T) {
	now := day("2026-06-15")

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"starts tomorrow", "2026-06-16", "2026-06-20", TripStatusUpcoming},
		{"starts far in the future", "2027-01-01", "2027-01-10", TripStatusUpcoming},
		{"started yesterday", "2026-06-14", "2026-06-20", TripStatusOngoing},
		{"starts today", "2026-06-15", "2026-06-20", TripStatusOngoing},
		{"ends today", "2026-06-10", "2026-06-15", TripStatusOngoing},
		{"ended yesterday", "2026-06-01", "2026-06-14", TripStatusPlanning},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveTripStatus(day(tc.start), day(tc.end), now)
			if got != tc.want {
				t.Errorf("DeriveTripStatus(%s, %s) = %q, want %q", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestDurationDays_Inclusive(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{"2026-06-15", "2026-06-15", 1},
		{"2026-06-15", "2026-06-16", 2},
		{"2026-06-01", "2026-06-30", 30},
		{"2026-06-20", "2026-06-15", 1}, // degenerate, clamped
	}

	for _, tc := range tests {
		got := DurationDays(day(tc.start), day(tc.end))
		if got != tc.want {
			t.Errorf("DurationDays(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}
