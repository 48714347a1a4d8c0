package planner

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"ubizy/internal/logger"
	"ubizy/internal/models"
	"ubizy/internal/storage"
	"ubizy/internal/utils"
)

// Service is the single owner of the task/event/habit collections. All
// mutations go through it; views only ever see copies.
type Service struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Service {
	return &Service{store: store, now: time.Now}
}

// NewWithClock injects the wall clock, for tests.
func NewWithClock(store storage.Provider, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// TaskDraft carries the caller-supplied fields of a new task.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     time.Time
	IsStatic    bool
	Category    string
}

// EventDraft carries the caller-supplied fields of a new event.
type EventDraft struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	IsStatic    bool
	Category    string
}

// HabitDraft carries the caller-supplied fields of a new habit.
type HabitDraft struct {
	Title       string
	Description string
	Frequency   models.Frequency
	Category    string
}

// Items groups the three collections for day-scoped queries.
type Items struct {
	Tasks  []models.Task
	Events []models.Event
	Habits []models.Habit
}

// CategoryStats is the per-category breakdown derived from the union of
// all three collections. Categories are not stored anywhere; they only
// exist as labels on items.
type CategoryStats struct {
	Name   string
	Tasks  int
	Events int
	Habits int
}

func (s *Service) AddTask(draft TaskDraft) (models.Task, error) {
	task := models.Task{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Completed:   false,
		IsStatic:    draft.IsStatic,
		Category:    draft.Category,
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("invalid task: %w", err)
	}
	if err := s.store.AddTask(task); err != nil {
		return models.Task{}, err
	}
	logger.Debug("Added task", "id", task.ID, "title", task.Title)
	return task, nil
}

func (s *Service) AddEvent(draft EventDraft) (models.Event, error) {
	event := models.Event{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Completed:   false,
		IsStatic:    draft.IsStatic,
		Category:    draft.Category,
	}
	if err := event.Validate(); err != nil {
		return models.Event{}, fmt.Errorf("invalid event: %w", err)
	}
	if err := s.store.AddEvent(event); err != nil {
		return models.Event{}, err
	}
	logger.Debug("Added event", "id", event.ID, "title", event.Title)
	return event, nil
}

func (s *Service) AddHabit(draft HabitDraft) (models.Habit, error) {
	habit := models.Habit{
		ID:             uuid.New().String(),
		Title:          draft.Title,
		Description:    draft.Description,
		Frequency:      draft.Frequency,
		CompletedDates: []time.Time{},
		Category:       draft.Category,
	}
	if err := habit.Validate(); err != nil {
		return models.Habit{}, fmt.Errorf("invalid habit: %w", err)
	}
	if err := s.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}
	logger.Debug("Added habit", "id", habit.ID, "title", habit.Title)
	return habit, nil
}

func (s *Service) CompleteTask(id string) error   { return s.setTaskCompleted(id, true) }
func (s *Service) UncompleteTask(id string) error { return s.setTaskCompleted(id, false) }

func (s *Service) setTaskCompleted(id string, completed bool) error {
	task, err := s.store.GetTask(id)
	if err != nil {
		return ignoreNotFound(err, "task", id)
	}
	task.Completed = completed
	return s.store.UpdateTask(task)
}

func (s *Service) CompleteEvent(id string) error   { return s.setEventCompleted(id, true) }
func (s *Service) UncompleteEvent(id string) error { return s.setEventCompleted(id, false) }

func (s *Service) setEventCompleted(id string, completed bool) error {
	event, err := s.store.GetEvent(id)
	if err != nil {
		return ignoreNotFound(err, "event", id)
	}
	event.Completed = completed
	return s.store.UpdateEvent(event)
}

// CompleteHabit records a completion at the given instant. It is
// idempotent per calendar day: if the habit already has an entry on the
// same day as date, nothing changes.
func (s *Service) CompleteHabit(id string, date time.Time) error {
	habit, err := s.store.GetHabit(id)
	if err != nil {
		return ignoreNotFound(err, "habit", id)
	}
	if habit.CompletedOn(date) {
		return nil
	}
	habit.CompletedDates = append(habit.CompletedDates, date)
	return s.store.UpdateHabit(habit)
}

// UncompleteHabit removes the habit's completion entries for the current
// day. Entries from prior days are never touched.
func (s *Service) UncompleteHabit(id string) error {
	habit, err := s.store.GetHabit(id)
	if err != nil {
		return ignoreNotFound(err, "habit", id)
	}

	today := s.now()
	kept := habit.CompletedDates[:0]
	for _, d := range habit.CompletedDates {
		if !utils.SameDay(d, today) {
			kept = append(kept, d)
		}
	}
	habit.CompletedDates = kept
	return s.store.UpdateHabit(habit)
}

func (s *Service) DeleteTask(id string) error {
	return ignoreNotFound(s.store.DeleteTask(id), "task", id)
}

func (s *Service) DeleteEvent(id string) error {
	return ignoreNotFound(s.store.DeleteEvent(id), "event", id)
}

func (s *Service) DeleteHabit(id string) error {
	return ignoreNotFound(s.store.DeleteHabit(id), "habit", id)
}

func (s *Service) AllTasks() ([]models.Task, error)   { return s.store.GetAllTasks() }
func (s *Service) AllEvents() ([]models.Event, error) { return s.store.GetAllEvents() }
func (s *Service) AllHabits() ([]models.Habit, error) { return s.store.GetAllHabits() }

// TodayItems returns the items relevant to the current calendar day.
// Habits already completed today are still included; the today list shows
// them struck through rather than hiding them.
func (s *Service) TodayItems() (Items, error) {
	return s.ItemsForDay(s.now())
}

// ItemsForDay returns the subset of each collection relevant to ref's
// calendar day:
//   - tasks whose due date falls on that day;
//   - events that start or end on that day, or whose interval strictly
//     spans the whole of it;
//   - habits that are due on ref per their frequency and completion
//     history (completions on ref's own day excluded).
func (s *Service) ItemsForDay(ref time.Time) (Items, error) {
	var items Items

	tasks, err := s.store.GetAllTasks()
	if err != nil {
		return Items{}, err
	}
	for _, t := range tasks {
		if utils.SameDay(t.DueDate, ref) {
			items.Tasks = append(items.Tasks, t)
		}
	}

	dayStart := utils.StartOfDay(ref)
	dayEnd := utils.EndOfDay(ref)
	events, err := s.store.GetAllEvents()
	if err != nil {
		return Items{}, err
	}
	for _, e := range events {
		if utils.SameDay(e.StartDate, ref) || utils.SameDay(e.EndDate, ref) ||
			(e.StartDate.Before(dayStart) && e.EndDate.After(dayEnd)) {
			items.Events = append(items.Events, e)
		}
	}

	habits, err := s.store.GetAllHabits()
	if err != nil {
		return Items{}, err
	}
	for _, h := range habits {
		if utils.IsDue(h.Frequency, h.CompletedDates, ref) {
			items.Habits = append(items.Habits, h)
		}
	}

	return items, nil
}

// Categories derives the category set by scanning the union of the three
// collections, in first-seen order, with per-type counts.
func (s *Service) Categories() ([]CategoryStats, error) {
	tasks, err := s.store.GetAllTasks()
	if err != nil {
		return nil, err
	}
	events, err := s.store.GetAllEvents()
	if err != nil {
		return nil, err
	}
	habits, err := s.store.GetAllHabits()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var stats []CategoryStats
	at := func(name string) *CategoryStats {
		if i, ok := index[name]; ok {
			return &stats[i]
		}
		index[name] = len(stats)
		stats = append(stats, CategoryStats{Name: name})
		return &stats[len(stats)-1]
	}

	for _, t := range tasks {
		if t.Category != "" {
			at(t.Category).Tasks++
		}
	}
	for _, e := range events {
		if e.Category != "" {
			at(e.Category).Events++
		}
	}
	for _, h := range habits {
		if h.Category != "" {
			at(h.Category).Habits++
		}
	}
	return stats, nil
}

// Urgency classifies a due instant against the service clock.
func (s *Service) Urgency(due time.Time) utils.UrgencyLevel {
	return utils.Urgency(due, s.now())
}

// SortTasks orders incomplete tasks before completed ones, and incomplete
// tasks by due date.
func SortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if !a.Completed {
			return a.DueDate.Before(b.DueDate)
		}
		return false
	})
}

// SortEvents orders incomplete events before completed ones, and
// incomplete events by start time.
func SortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if !a.Completed {
			return a.StartDate.Before(b.StartDate)
		}
		return false
	})
}

// SortHabits sinks habits already completed on the given day to the end.
func SortHabits(habits []models.Habit, day time.Time) {
	sort.SliceStable(habits, func(i, j int) bool {
		return !habits[i].CompletedOn(day) && habits[j].CompletedOn(day)
	})
}

// ignoreNotFound turns a lookup miss into a no-op: complete/uncomplete/
// delete on an unknown id silently does nothing.
func ignoreNotFound(err error, kind, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		logger.Debug("Ignoring operation on unknown id", "kind", kind, "id", id)
		return nil
	}
	return err
}
