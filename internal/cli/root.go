package cli

import (
	"fmt"
	"time"

	"ubizy/internal/assistant"
	"ubizy/internal/auth"
	"ubizy/internal/constants"
	"ubizy/internal/models"
	"ubizy/internal/planner"
	"ubizy/internal/storage"
	"ubizy/internal/utils"
)

// Context is passed to every command's Run method.
type Context struct {
	Store     storage.Provider
	Planner   *planner.Service
	Assistant *assistant.Assistant
	Session   *auth.Session
	Endpoint  string
}

// ParseWhen resolves a date flag: empty or "today" is the current day,
// "tomorrow" the next, otherwise YYYY-MM-DD.
func ParseWhen(s string) (time.Time, error) {
	now := time.Now()
	switch s {
	case "", "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	default:
		d, err := utils.ParseDate(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD, 'today' or 'tomorrow')", s)
		}
		return d, nil
	}
}

// FormatTask renders a one-line task summary for list output.
func FormatTask(t models.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %s  (due %s)", mark, t.Title, t.DueDate.Format(constants.DateFormat+" "+constants.TimeFormat))
	if t.Category != "" {
		line += fmt.Sprintf("  #%s", t.Category)
	}
	return line
}

// FormatEvent renders a one-line event summary for list output.
func FormatEvent(e models.Event) string {
	mark := " "
	if e.Completed {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %s  (%s - %s)", mark, e.Title,
		e.StartDate.Format(constants.DateFormat+" "+constants.TimeFormat),
		e.EndDate.Format(constants.DateFormat+" "+constants.TimeFormat))
	if e.Category != "" {
		line += fmt.Sprintf("  #%s", e.Category)
	}
	return line
}

// FormatHabit renders a one-line habit summary, marking completion for
// the given day.
func FormatHabit(h models.Habit, day time.Time) string {
	mark := " "
	if h.CompletedOn(day) {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %s  (%s)", mark, h.Title, h.Frequency)
	if h.Category != "" {
		line += fmt.Sprintf("  #%s", h.Category)
	}
	return line
}
