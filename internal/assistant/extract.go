package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ubizy/internal/constants"
	"ubizy/internal/models"
)

// Result is one of Reply, TaskSuggestion, EventSuggestion or
// HabitSuggestion. Keeping the variants as separate types means a habit
// suggestion cannot carry an end time and a plain reply cannot carry
// fields at all.
type Result interface {
	isResult()
}

// Reply is a plain conversational response with nothing to confirm.
type Reply struct {
	Text string
}

// TaskSuggestion is a draft task awaiting explicit user confirmation.
type TaskSuggestion struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Category    string
}

// EventSuggestion is a draft event awaiting explicit user confirmation.
type EventSuggestion struct {
	Title       string
	Description string
	Date        string
	Time        string
	EndDate     string
	EndTime     string
	Category    string
}

// HabitSuggestion is a draft habit awaiting explicit user confirmation.
type HabitSuggestion struct {
	Title       string
	Description string
	Frequency   models.Frequency
	Category    string
}

func (Reply) isResult()           {}
func (TaskSuggestion) isResult()  {}
func (EventSuggestion) isResult() {}
func (HabitSuggestion) isResult() {}

var (
	titleRe       = regexp.MustCompile(`(?i)(?:create|add) (?:task|event|habit|schedule)(?: called| titled| named)? ["']?([^"']+)["']?`)
	titleSimpleRe = regexp.MustCompile(`(?i)(?:create|add) (?:task|event|habit|schedule) (.+)`)
	titleDayRe    = regexp.MustCompile(`(?i)(?:on|at|for) (?:today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday|next week|next month|in \d+ days?)`)
	titleRangeRe  = regexp.MustCompile(`(?i)(?:at|from) \d{1,2}(?::\d{2})? ?(?:am|pm)?(?:-|to| until) ?\d{1,2}(?::\d{2})? ?(?:am|pm)?`)
	titleDescRe   = regexp.MustCompile(`(?i)with description ["']?[^"']+["']?`)
	inDaysRe      = regexp.MustCompile(`(?i)in (\d+) days?`)
	numericDateRe = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	timeRe        = regexp.MustCompile(`(?i)at (\d{1,2})(?::(\d{2}))? ?(am|pm)?`)
	endTimeRe     = regexp.MustCompile(`(?i)(?:until|to) (\d{1,2})(?::(\d{2}))? ?(am|pm)?`)
	descQuotedRe  = regexp.MustCompile(`(?i)with description ["']([^"']+)["']`)
	descPlainRe   = regexp.MustCompile(`(?i)described as ["']?([^"']+)["']?`)
	catQuotedRe   = regexp.MustCompile(`(?i)in category ["']([^"']+)["']`)
	catPlainRe    = regexp.MustCompile(`(?i)(?:in|under) (?:the )?category ["']?([^"']+)["']?`)
)

// Extract inspects a free-form message for a creation intent and pulls
// structured fields from it. The first matching intent wins; a message
// can never trigger two. Anything unparseable falls back to a default
// rather than failing.
func Extract(message string, now time.Time) Result {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "create task") || strings.Contains(lower, "add task") {
		date := extractDate(message, now)
		if date == "" {
			date = now.Format(constants.DateFormat)
		}
		timeStr := extractTime(message)
		if timeStr == "" {
			timeStr = constants.DefaultTaskTime
		}
		return TaskSuggestion{
			Title:       extractTitle(message),
			Description: extractDescription(message),
			Date:        date,
			Time:        timeStr,
			Category:    extractCategory(message),
		}
	}

	if strings.Contains(lower, "create event") || strings.Contains(lower, "add event") ||
		strings.Contains(lower, "schedule") {
		date := extractDate(message, now)
		if date == "" {
			date = now.Format(constants.DateFormat)
		}
		startTime := extractTime(message)
		if startTime == "" {
			startTime = constants.DefaultEventStart
		}
		// The end-date scan cannot distinguish a second date in the same
		// sentence from the start date, so it re-runs the start-date scan
		// and falls back to the start date. Known limitation.
		endDate := extractDate(message, now)
		if endDate == "" {
			endDate = date
		}
		endTime := extractEndTime(message)
		if endTime == "" {
			endTime = constants.DefaultEventEnd
		}
		return EventSuggestion{
			Title:       extractTitle(message),
			Description: extractDescription(message),
			Date:        date,
			Time:        startTime,
			EndDate:     endDate,
			EndTime:     endTime,
			Category:    extractCategory(message),
		}
	}

	if strings.Contains(lower, "create habit") || strings.Contains(lower, "add habit") {
		return HabitSuggestion{
			Title:       extractTitle(message),
			Description: extractDescription(message),
			Frequency:   extractFrequency(message),
			Category:    extractCategory(message),
		}
	}

	if strings.Contains(lower, "productivity") || strings.Contains(lower, "tips") ||
		strings.Contains(lower, "advice") {
		return Reply{Text: randomTip()}
	}

	if strings.Contains(lower, "help") || strings.Contains(lower, "how to") {
		return Reply{Text: helpMessage}
	}

	return Reply{Text: randomDefaultResponse()}
}

func extractTitle(message string) string {
	if m := titleRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}

	if m := titleSimpleRe.FindStringSubmatch(message); m != nil {
		title := m[1]
		title = titleDayRe.ReplaceAllString(title, "")
		title = titleRangeRe.ReplaceAllString(title, "")
		title = titleDescRe.ReplaceAllString(title, "")
		return strings.TrimSpace(title)
	}

	// Default title keyed by which keyword literally appears in the
	// message, not by which intent fired.
	switch {
	case strings.Contains(message, "task"):
		return "New Task"
	case strings.Contains(message, "event"):
		return "New Event"
	default:
		return "New Habit"
	}
}

func extractDate(message string, now time.Time) string {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "today") {
		return now.Format(constants.DateFormat)
	}
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1).Format(constants.DateFormat)
	}

	if m := inDaysRe.FindStringSubmatch(message); m != nil {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			return now.AddDate(0, 0, days).Format(constants.DateFormat)
		}
	}

	if m := numericDateRe.FindStringSubmatch(message); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()).
			Format(constants.DateFormat)
	}

	return ""
}

func extractTime(message string) string {
	m := timeRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return clockFromMatch(m)
}

func extractEndTime(message string) string {
	if m := endTimeRe.FindStringSubmatch(message); m != nil {
		return clockFromMatch(m)
	}

	// With no explicit end, default to one hour after the start time when
	// one was given.
	start := extractTime(message)
	if start == "" {
		return ""
	}
	t, err := time.Parse(constants.TimeFormat, start)
	if err != nil {
		return ""
	}
	return t.Add(time.Duration(constants.DefaultEventHours) * time.Hour).Format(constants.TimeFormat)
}

// clockFromMatch converts a (hours, minutes, am/pm) submatch to HH:MM.
func clockFromMatch(m []string) string {
	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	period := strings.ToLower(m[3])

	if period == "pm" && hours < 12 {
		hours += 12
	}
	if period == "am" && hours == 12 {
		hours = 0
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func extractDescription(message string) string {
	if m := descQuotedRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := descPlainRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractCategory(message string) string {
	if m := catQuotedRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := catPlainRe.FindStringSubmatch(message); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractFrequency(message string) models.Frequency {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "daily") {
		return models.FrequencyDaily
	}
	if strings.Contains(lower, "weekly") {
		return models.FrequencyWeekly
	}
	if strings.Contains(lower, "monthly") {
		return models.FrequencyMonthly
	}
	return models.FrequencyDaily
}
