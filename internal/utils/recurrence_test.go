package utils

import (
	"testing"
	"time"

	"ubizy/internal/models"
)

func day(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestIsDueNeverCompleted(t *testing.T) {
	ref := day(2026, time.March, 10, 9, 0)
	for _, freq := range []models.Frequency{models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly} {
		if !IsDue(freq, nil, ref) {
			t.Errorf("IsDue(%s, none) = false, want true", freq)
		}
	}
}

func TestIsDueIgnoresReferenceDayCompletions(t *testing.T) {
	ref := day(2026, time.March, 10, 18, 0)
	completed := []time.Time{day(2026, time.March, 10, 8, 0)}
	if !IsDue(models.FrequencyDaily, completed, ref) {
		t.Error("completion on the reference day should not satisfy the habit")
	}
}

func TestIsDueDaily(t *testing.T) {
	done := day(2026, time.March, 9, 10, 0)

	if !IsDue(models.FrequencyDaily, []time.Time{done}, day(2026, time.March, 10, 10, 0)) {
		t.Error("not due a full day after completion")
	}
	// Next morning, less than 24h elapsed: the raw-duration rule says not due.
	if IsDue(models.FrequencyDaily, []time.Time{done}, day(2026, time.March, 10, 9, 0)) {
		t.Error("due before 24 hours elapsed")
	}
}

func TestIsDueWeeklyBoundary(t *testing.T) {
	done := day(2026, time.March, 2, 12, 0)
	for d := 1; d <= 6; d++ {
		ref := done.AddDate(0, 0, d)
		if IsDue(models.FrequencyWeekly, []time.Time{done}, ref) {
			t.Errorf("weekly habit due after %d days", d)
		}
	}
	if !IsDue(models.FrequencyWeekly, []time.Time{done}, done.AddDate(0, 0, 7)) {
		t.Error("weekly habit not due after exactly 7 days")
	}
}

func TestIsDueMonthlyBoundary(t *testing.T) {
	done := day(2026, time.January, 1, 12, 0)
	if IsDue(models.FrequencyMonthly, []time.Time{done}, done.AddDate(0, 0, 29)) {
		t.Error("monthly habit due after 29 days")
	}
	if !IsDue(models.FrequencyMonthly, []time.Time{done}, done.AddDate(0, 0, 30)) {
		t.Error("monthly habit not due after 30 days")
	}
}

func TestIsDueUsesLatestCompletion(t *testing.T) {
	completed := []time.Time{
		day(2026, time.March, 1, 9, 0),
		day(2026, time.March, 8, 9, 0),
		day(2026, time.March, 4, 9, 0),
	}
	if IsDue(models.FrequencyWeekly, completed, day(2026, time.March, 12, 9, 0)) {
		t.Error("should measure from the most recent completion")
	}
	if !IsDue(models.FrequencyWeekly, completed, day(2026, time.March, 15, 9, 0)) {
		t.Error("due a week after the most recent completion")
	}
}

func TestIsDueUnknownFrequency(t *testing.T) {
	completed := []time.Time{day(2026, time.March, 1, 9, 0)}
	if IsDue(models.Frequency("yearly"), completed, day(2026, time.June, 1, 9, 0)) {
		t.Error("unrecognized frequency with history should never be due")
	}
}

func TestUrgency(t *testing.T) {
	now := day(2026, time.March, 10, 15, 0)

	cases := []struct {
		name string
		due  time.Time
		want UrgencyLevel
	}{
		{"earlier today", day(2026, time.March, 10, 8, 0), UrgencyUrgent},
		{"tomorrow evening", day(2026, time.March, 11, 23, 0), UrgencyUrgent},
		{"two days out", day(2026, time.March, 12, 8, 0), UrgencySoon},
		{"a week out", day(2026, time.March, 17, 8, 0), UrgencySoon},
		{"eight days out", day(2026, time.March, 18, 8, 0), UrgencyLater},
		{"overdue", day(2026, time.March, 1, 8, 0), UrgencyUrgent},
	}
	for _, tc := range cases {
		if got := Urgency(tc.due, now); got != tc.want {
			t.Errorf("%s: Urgency = %s, want %s", tc.name, got, tc.want)
		}
	}
}
