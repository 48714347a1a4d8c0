package storage

import (
	"errors"
	"testing"
	"time"

	"ubizy/internal/models"
)

func TestMemoryStoreTaskLifecycle(t *testing.T) {
	s := NewMemoryStore()
	due := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	task := models.Task{ID: "t1", Title: "Write report", DueDate: due}
	if err := s.AddTask(task); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	got, err := s.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "Write report" {
		t.Errorf("Title = %q", got.Title)
	}

	got.Completed = true
	if err := s.UpdateTask(got); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	got, _ = s.GetTask("t1")
	if !got.Completed {
		t.Error("update did not persist")
	}

	if err := s.DeleteTask("t1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := s.GetTask("t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.GetEvent("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetEvent: %v", err)
	}
	if err := s.UpdateHabit(models.Habit{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateHabit: %v", err)
	}
	if err := s.DeleteEvent("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteEvent: %v", err)
	}
}

func TestMemoryStorePreservesInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	for _, id := range []string{"c", "a", "b"} {
		if err := s.AddTask(models.Task{ID: id, Title: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.DeleteTask("a"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddTask(models.Task{ID: "d", Title: "d"}); err != nil {
		t.Fatal(err)
	}

	tasks, _ := s.GetAllTasks()
	want := []string{"c", "b", "d"}
	if len(tasks) != len(want) {
		t.Fatalf("len = %d, want %d", len(tasks), len(want))
	}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Errorf("tasks[%d] = %s, want %s", i, tasks[i].ID, id)
		}
	}
}

func TestMemoryStoreHabitCopyIsDetached(t *testing.T) {
	s := NewMemoryStore()
	done := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)

	if err := s.AddHabit(models.Habit{
		ID:             "h1",
		Title:          "Stretch",
		Frequency:      models.FrequencyDaily,
		CompletedDates: []time.Time{done},
	}); err != nil {
		t.Fatal(err)
	}

	got, _ := s.GetHabit("h1")
	got.CompletedDates[0] = got.CompletedDates[0].AddDate(1, 0, 0)
	got.CompletedDates = append(got.CompletedDates, time.Now())

	fresh, _ := s.GetHabit("h1")
	if len(fresh.CompletedDates) != 1 || !fresh.CompletedDates[0].Equal(done) {
		t.Error("mutating a returned habit leaked into the store")
	}
}
