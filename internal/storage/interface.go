package storage

import (
	"errors"

	"ubizy/internal/models"
)

// ErrNotFound is returned by Get/Update/Delete operations when no record
// matches the given id.
var ErrNotFound = errors.New("record not found")

// Provider is the swappable backing store for the planner. Listings are
// returned in insertion order.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Events
	AddEvent(models.Event) error
	GetEvent(id string) (models.Event, error)
	GetAllEvents() ([]models.Event, error)
	UpdateEvent(models.Event) error
	DeleteEvent(id string) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
}
