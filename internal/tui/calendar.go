package tui

import (
	"fmt"
	"strings"
	"time"

	"ubizy/internal/utils"
)

// viewCalendar renders a month grid. Days that carry tasks, events, or due
// habits are marked with a dot.
func (m Model) viewCalendar() string {
	var b strings.Builder

	first := time.Date(m.month.Year(), m.month.Month(), 1, 0, 0, 0, 0, time.Local)
	b.WriteString(first.Format("January 2006") + "\n\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	// Leading blanks up to the first weekday.
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", col))

	now := time.Now()
	daysInMonth := first.AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.Local)
		cell := fmt.Sprintf("%3d", day)
		if m.dayHasItems(date) {
			cell += "·"
		} else {
			cell += " "
		}

		switch {
		case utils.SameDay(date, now):
			cell = todayCellStyle.Render(cell)
		case strings.HasSuffix(cell, "·"):
			cell = dueCellStyle.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewDaySummary(now))
	return b.String()
}

func (m Model) dayHasItems(date time.Time) bool {
	items, err := m.planner.ItemsForDay(date)
	if err != nil {
		return false
	}
	return len(items.Tasks) > 0 || len(items.Events) > 0 || len(items.Habits) > 0
}

func (m Model) viewDaySummary(date time.Time) string {
	items, err := m.planner.ItemsForDay(date)
	if err != nil {
		return dangerStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %d tasks, %d events, %d habits\n",
		date.Format("Mon Jan 2"), len(items.Tasks), len(items.Events), len(items.Habits)))
	for _, t := range items.Tasks {
		line := "  task  " + t.Title
		if t.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	for _, e := range items.Events {
		line := fmt.Sprintf("  event %s (%s-%s)", e.Title,
			e.StartDate.Format("15:04"), e.EndDate.Format("15:04"))
		if e.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	for _, h := range items.Habits {
		b.WriteString("  habit " + h.Title + "\n")
	}
	return b.String()
}
