package models

import (
	"fmt"
	"strings"
	"time"
)

// Frequency is how often a habit is meant to be performed.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// ParseFrequency parses user input to a Frequency.
func ParseFrequency(input string) (Frequency, error) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid frequency: %q", input)
	}
	return f, nil
}

// Task is a one-off item with a due instant.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
	Completed   bool      `json:"completed"`
	// IsStatic marks fixed-time vs flexible scheduling. Carried on the
	// record but not consulted by any scheduling logic yet.
	IsStatic bool   `json:"is_static"`
	Category string `json:"category,omitempty"`
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if t.DueDate.IsZero() {
		return fmt.Errorf("task due date cannot be empty")
	}
	return nil
}

// Event is an item occupying a [start, end] interval. End >= start is
// expected but not enforced, matching form behavior.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsStatic    bool      `json:"is_static"`
	Category    string    `json:"category,omitempty"`
	Completed   bool      `json:"completed"`
}

func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title cannot be empty")
	}
	if e.StartDate.IsZero() || e.EndDate.IsZero() {
		return fmt.Errorf("event start and end dates cannot be empty")
	}
	return nil
}

// Habit is a recurring practice. CompletedDates grows by append on
// completion; order is completion order.
type Habit struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	Frequency      Frequency   `json:"frequency"`
	CompletedDates []time.Time `json:"completed_dates"`
	Category       string      `json:"category,omitempty"`
}

func (h *Habit) Validate() error {
	if strings.TrimSpace(h.Title) == "" {
		return fmt.Errorf("habit title cannot be empty")
	}
	if !h.Frequency.IsValid() {
		return fmt.Errorf("invalid frequency: %q", h.Frequency)
	}
	return nil
}

// CompletedOn reports whether the habit has a completion entry on the
// given calendar day.
func (h *Habit) CompletedOn(day time.Time) bool {
	for _, d := range h.CompletedDates {
		if sameDay(d, day) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
