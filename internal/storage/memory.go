package storage

import (
	"ubizy/internal/models"
)

// MemoryStore keeps all collections in process memory, keyed by id for
// O(1) lookup. This is the default backend: each session owns its own
// instance and nothing outlives the process.
type MemoryStore struct {
	tasks  map[string]models.Task
	events map[string]models.Event
	habits map[string]models.Habit

	// insertion order for listings
	taskOrder  []string
	eventOrder []string
	habitOrder []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:  make(map[string]models.Task),
		events: make(map[string]models.Event),
		habits: make(map[string]models.Habit),
	}
}

func (s *MemoryStore) Init() error { return nil }
func (s *MemoryStore) Load() error { return nil }
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) AddTask(task models.Task) error {
	if _, ok := s.tasks[task.ID]; !ok {
		s.taskOrder = append(s.taskOrder, task.ID)
	}
	s.tasks[task.ID] = task
	return nil
}

func (s *MemoryStore) GetTask(id string) (models.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return models.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *MemoryStore) GetAllTasks() ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		tasks = append(tasks, s.tasks[id])
	}
	return tasks, nil
}

func (s *MemoryStore) UpdateTask(task models.Task) error {
	if _, ok := s.tasks[task.ID]; !ok {
		return ErrNotFound
	}
	s.tasks[task.ID] = task
	return nil
}

func (s *MemoryStore) DeleteTask(id string) error {
	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	s.taskOrder = removeID(s.taskOrder, id)
	return nil
}

func (s *MemoryStore) AddEvent(event models.Event) error {
	if _, ok := s.events[event.ID]; !ok {
		s.eventOrder = append(s.eventOrder, event.ID)
	}
	s.events[event.ID] = event
	return nil
}

func (s *MemoryStore) GetEvent(id string) (models.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return event, nil
}

func (s *MemoryStore) GetAllEvents() ([]models.Event, error) {
	events := make([]models.Event, 0, len(s.eventOrder))
	for _, id := range s.eventOrder {
		events = append(events, s.events[id])
	}
	return events, nil
}

func (s *MemoryStore) UpdateEvent(event models.Event) error {
	if _, ok := s.events[event.ID]; !ok {
		return ErrNotFound
	}
	s.events[event.ID] = event
	return nil
}

func (s *MemoryStore) DeleteEvent(id string) error {
	if _, ok := s.events[id]; !ok {
		return ErrNotFound
	}
	delete(s.events, id)
	s.eventOrder = removeID(s.eventOrder, id)
	return nil
}

func (s *MemoryStore) AddHabit(habit models.Habit) error {
	if _, ok := s.habits[habit.ID]; !ok {
		s.habitOrder = append(s.habitOrder, habit.ID)
	}
	s.habits[habit.ID] = copyHabit(habit)
	return nil
}

func (s *MemoryStore) GetHabit(id string) (models.Habit, error) {
	habit, ok := s.habits[id]
	if !ok {
		return models.Habit{}, ErrNotFound
	}
	return copyHabit(habit), nil
}

func (s *MemoryStore) GetAllHabits() ([]models.Habit, error) {
	habits := make([]models.Habit, 0, len(s.habitOrder))
	for _, id := range s.habitOrder {
		habits = append(habits, copyHabit(s.habits[id]))
	}
	return habits, nil
}

func (s *MemoryStore) UpdateHabit(habit models.Habit) error {
	if _, ok := s.habits[habit.ID]; !ok {
		return ErrNotFound
	}
	s.habits[habit.ID] = copyHabit(habit)
	return nil
}

func (s *MemoryStore) DeleteHabit(id string) error {
	if _, ok := s.habits[id]; !ok {
		return ErrNotFound
	}
	delete(s.habits, id)
	s.habitOrder = removeID(s.habitOrder, id)
	return nil
}

// copyHabit detaches the CompletedDates slice so callers cannot mutate
// store-owned state through a returned record.
func copyHabit(h models.Habit) models.Habit {
	if h.CompletedDates != nil {
		h.CompletedDates = append(h.CompletedDates[:0:0], h.CompletedDates...)
	}
	return h
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
