package models

import (
	"testing"
	"time"
)

func TestParseFrequency(t *testing.T) {
	cases := []struct {
		in      string
		want    Frequency
		wantErr bool
	}{
		{"daily", FrequencyDaily, false},
		{"Weekly", FrequencyWeekly, false},
		{"  MONTHLY ", FrequencyMonthly, false},
		{"yearly", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseFrequency(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseFrequency(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrequency(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseFrequency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTaskValidate(t *testing.T) {
	due := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	task := Task{Title: "Write report", DueDate: due}
	if err := task.Validate(); err != nil {
		t.Errorf("valid task: %v", err)
	}

	task = Task{Title: "   ", DueDate: due}
	if err := task.Validate(); err == nil {
		t.Error("blank title should fail")
	}

	task = Task{Title: "No due date"}
	if err := task.Validate(); err == nil {
		t.Error("zero due date should fail")
	}
}

func TestHabitValidateRejectsUnknownFrequency(t *testing.T) {
	habit := Habit{Title: "Stretch", Frequency: "fortnightly"}
	if err := habit.Validate(); err == nil {
		t.Error("unknown frequency should fail validation")
	}

	habit.Frequency = FrequencyDaily
	if err := habit.Validate(); err != nil {
		t.Errorf("valid habit: %v", err)
	}
}

func TestHabitCompletedOn(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	habit := Habit{
		Title:     "Stretch",
		Frequency: FrequencyDaily,
		CompletedDates: []time.Time{
			time.Date(2026, time.March, 10, 22, 15, 0, 0, time.UTC),
		},
	}

	if !habit.CompletedOn(day) {
		t.Error("completion at a different hour on the same day should count")
	}
	if habit.CompletedOn(day.AddDate(0, 0, -1)) {
		t.Error("no completion on the prior day")
	}
}
