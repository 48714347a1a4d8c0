package utils

import (
	"math"
	"time"

	"ubizy/internal/models"
)

// IsDue determines whether a habit with the given frequency should be
// performed on the reference date. Completions falling on the reference
// date's own calendar day are ignored, so marking a habit done today never
// changes today's due-ness; it only moves the boundary for future days.
//
// The day difference is computed from the raw duration between the two
// instants, not between calendar days, so the boundary is sensitive to
// time-of-day. This mirrors the shipped behavior that the views relied on.
func IsDue(frequency models.Frequency, completedDates []time.Time, ref time.Time) bool {
	var last time.Time
	found := false
	for _, d := range completedDates {
		if SameDay(d, ref) {
			continue
		}
		if !found || d.After(last) {
			last = d
			found = true
		}
	}

	// Never completed (or only completed on the reference day itself).
	if !found {
		return true
	}

	diffDays := int(math.Floor(ref.Sub(last).Hours() / 24))

	switch frequency {
	case models.FrequencyDaily:
		return diffDays >= 1
	case models.FrequencyWeekly:
		return diffDays >= 7
	case models.FrequencyMonthly:
		return diffDays >= 30
	default:
		return false
	}
}

// UrgencyLevel buckets how soon an upcoming item needs attention.
type UrgencyLevel string

const (
	UrgencyUrgent UrgencyLevel = "urgent"
	UrgencySoon   UrgencyLevel = "soon"
	UrgencyLater  UrgencyLevel = "later"
)

// Urgency classifies a due instant relative to the start of now's day:
// within a day is urgent, within a week is soon, anything further is later.
func Urgency(due, now time.Time) UrgencyLevel {
	today := StartOfDay(now)
	daysUntil := int(math.Floor(due.Sub(today).Hours() / 24))

	if daysUntil <= 1 {
		return UrgencyUrgent
	}
	if daysUntil <= 7 {
		return UrgencySoon
	}
	return UrgencyLater
}
