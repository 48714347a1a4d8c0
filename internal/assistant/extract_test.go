package assistant

import (
	"testing"
	"time"

	"ubizy/internal/models"
)

var extractNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func TestExtractTaskWithQuotedTitle(t *testing.T) {
	r := Extract("create task called 'Buy milk' today at 5pm", extractNow)

	task, ok := r.(TaskSuggestion)
	if !ok {
		t.Fatalf("result = %T, want TaskSuggestion", r)
	}
	if task.Title != "Buy milk" {
		t.Errorf("Title = %q", task.Title)
	}
	if task.Date != "2026-03-10" {
		t.Errorf("Date = %q", task.Date)
	}
	if task.Time != "17:00" {
		t.Errorf("Time = %q", task.Time)
	}
}

func TestExtractTaskUnquotedTitleKeepsTrailingWords(t *testing.T) {
	// Without quotes the title scan grabs everything after the command,
	// date phrases included.
	r := Extract("create task pay bills in 3 days", extractNow)

	task, ok := r.(TaskSuggestion)
	if !ok {
		t.Fatalf("result = %T, want TaskSuggestion", r)
	}
	if task.Title != "pay bills in 3 days" {
		t.Errorf("Title = %q", task.Title)
	}
	if task.Date != "2026-03-13" {
		t.Errorf("Date = %q", task.Date)
	}
}

func TestExtractTaskDefaults(t *testing.T) {
	r := Extract("add task 'Email Sam'", extractNow)

	task, ok := r.(TaskSuggestion)
	if !ok {
		t.Fatalf("result = %T, want TaskSuggestion", r)
	}
	if task.Date != "2026-03-10" {
		t.Errorf("Date = %q, want today", task.Date)
	}
	if task.Time != "12:00" {
		t.Errorf("Time = %q, want default", task.Time)
	}
}

func TestExtractTaskNumericDate(t *testing.T) {
	r := Extract("create task 'File taxes' on 4-15-2026", extractNow)

	task := r.(TaskSuggestion)
	if task.Date != "2026-04-15" {
		t.Errorf("Date = %q", task.Date)
	}
}

func TestExtractEventWithTimeRange(t *testing.T) {
	r := Extract("add event called 'Team sync' tomorrow at 10am until 11:30am", extractNow)

	event, ok := r.(EventSuggestion)
	if !ok {
		t.Fatalf("result = %T, want EventSuggestion", r)
	}
	if event.Title != "Team sync" {
		t.Errorf("Title = %q", event.Title)
	}
	if event.Date != "2026-03-11" || event.EndDate != "2026-03-11" {
		t.Errorf("Date = %q, EndDate = %q", event.Date, event.EndDate)
	}
	if event.Time != "10:00" {
		t.Errorf("Time = %q", event.Time)
	}
	if event.EndTime != "11:30" {
		t.Errorf("EndTime = %q", event.EndTime)
	}
}

func TestExtractEventEndTimeDefaultsToHourAfterStart(t *testing.T) {
	r := Extract("create event 'Review' today at 3pm", extractNow)

	event := r.(EventSuggestion)
	if event.Time != "15:00" {
		t.Errorf("Time = %q", event.Time)
	}
	if event.EndTime != "16:00" {
		t.Errorf("EndTime = %q", event.EndTime)
	}
}

func TestExtractScheduleKeywordTriggersEvent(t *testing.T) {
	r := Extract("schedule meeting tomorrow", extractNow)

	event, ok := r.(EventSuggestion)
	if !ok {
		t.Fatalf("result = %T, want EventSuggestion", r)
	}
	// No create/add prefix, and no "event" literal in the message, so the
	// title falls through to the last default.
	if event.Title != "New Habit" {
		t.Errorf("Title = %q", event.Title)
	}
	if event.Date != "2026-03-11" {
		t.Errorf("Date = %q", event.Date)
	}
}

func TestExtractHabit(t *testing.T) {
	r := Extract("add habit called 'Stretch' weekly in category 'health'", extractNow)

	habit, ok := r.(HabitSuggestion)
	if !ok {
		t.Fatalf("result = %T, want HabitSuggestion", r)
	}
	if habit.Title != "Stretch" {
		t.Errorf("Title = %q", habit.Title)
	}
	if habit.Frequency != models.FrequencyWeekly {
		t.Errorf("Frequency = %q", habit.Frequency)
	}
	if habit.Category != "health" {
		t.Errorf("Category = %q", habit.Category)
	}
}

func TestExtractHabitFrequencyDefaultsToDaily(t *testing.T) {
	r := Extract("create habit 'Journal'", extractNow)

	habit := r.(HabitSuggestion)
	if habit.Frequency != models.FrequencyDaily {
		t.Errorf("Frequency = %q", habit.Frequency)
	}
}

func TestExtractDescription(t *testing.T) {
	r := Extract(`create task 'Call dentist' with description "ask about Friday"`, extractNow)

	task := r.(TaskSuggestion)
	if task.Description != "ask about Friday" {
		t.Errorf("Description = %q", task.Description)
	}
}

func TestExtractNoonAndMidnight(t *testing.T) {
	r := Extract("create task 'Lunch' today at 12pm", extractNow)
	if task := r.(TaskSuggestion); task.Time != "12:00" {
		t.Errorf("12pm = %q", task.Time)
	}

	r = Extract("create task 'Backup' today at 12am", extractNow)
	if task := r.(TaskSuggestion); task.Time != "00:00" {
		t.Errorf("12am = %q", task.Time)
	}
}

func TestExtractTipAndHelpIntents(t *testing.T) {
	if _, ok := Extract("any productivity tips?", extractNow).(Reply); !ok {
		t.Error("tips request should produce a plain reply")
	}
	if r, ok := Extract("help", extractNow).(Reply); !ok || r.Text != helpMessage {
		t.Error("help request should produce the help message")
	}
}

func TestExtractFallbackReply(t *testing.T) {
	r, ok := Extract("hello there", extractNow).(Reply)
	if !ok {
		t.Fatal("unrecognized message should produce a plain reply")
	}
	if r.Text == "" {
		t.Error("fallback reply should not be empty")
	}
}
