package planner

import (
	"testing"
	"time"

	"ubizy/internal/models"
	"ubizy/internal/storage"
)

var testNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func newTestService() *Service {
	return NewWithClock(storage.NewMemoryStore(), func() time.Time { return testNow })
}

func TestAddTaskValidates(t *testing.T) {
	svc := newTestService()

	task, err := svc.AddTask(TaskDraft{Title: "Write report", DueDate: testNow})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.ID == "" {
		t.Error("expected generated id")
	}
	if task.Completed {
		t.Error("new task should start incomplete")
	}

	if _, err := svc.AddTask(TaskDraft{Title: "", DueDate: testNow}); err == nil {
		t.Error("expected error for empty title")
	}
}

func TestAddEventAcceptsInvertedInterval(t *testing.T) {
	svc := newTestService()

	// End before start is stored as given; validation only checks that
	// both instants are set, matching form behavior.
	event, err := svc.AddEvent(EventDraft{
		Title:     "Standup",
		StartDate: testNow.Add(2 * time.Hour),
		EndDate:   testNow.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("AddEvent: %v", err)
	}

	events, _ := svc.AllEvents()
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if !events[0].EndDate.Equal(event.EndDate) || !events[0].StartDate.Equal(event.StartDate) {
		t.Error("interval should be stored exactly as given")
	}

	if _, err := svc.AddEvent(EventDraft{Title: "No dates"}); err == nil {
		t.Error("missing dates should still fail validation")
	}
}

func TestCompleteTaskRoundTrip(t *testing.T) {
	svc := newTestService()
	task, _ := svc.AddTask(TaskDraft{Title: "Pay rent", DueDate: testNow})

	if err := svc.CompleteTask(task.ID); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	tasks, _ := svc.AllTasks()
	if !tasks[0].Completed {
		t.Error("task should be completed")
	}

	if err := svc.UncompleteTask(task.ID); err != nil {
		t.Fatalf("UncompleteTask: %v", err)
	}
	tasks, _ = svc.AllTasks()
	if tasks[0].Completed {
		t.Error("task should be incomplete again")
	}
}

func TestCompleteHabitIdempotentPerDay(t *testing.T) {
	svc := newTestService()
	habit, _ := svc.AddHabit(HabitDraft{Title: "Stretch", Frequency: models.FrequencyDaily})

	morning := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)

	if err := svc.CompleteHabit(habit.ID, morning); err != nil {
		t.Fatalf("CompleteHabit: %v", err)
	}
	if err := svc.CompleteHabit(habit.ID, evening); err != nil {
		t.Fatalf("CompleteHabit second call: %v", err)
	}

	habits, _ := svc.AllHabits()
	if got := len(habits[0].CompletedDates); got != 1 {
		t.Errorf("completions = %d, want 1", got)
	}
	if !habits[0].CompletedDates[0].Equal(morning) {
		t.Error("first completion instant should be kept")
	}
}

func TestUncompleteHabitOnlyTouchesToday(t *testing.T) {
	svc := newTestService()
	habit, _ := svc.AddHabit(HabitDraft{Title: "Run", Frequency: models.FrequencyDaily})

	yesterday := testNow.AddDate(0, 0, -1)
	if err := svc.CompleteHabit(habit.ID, yesterday); err != nil {
		t.Fatal(err)
	}
	if err := svc.CompleteHabit(habit.ID, testNow); err != nil {
		t.Fatal(err)
	}

	if err := svc.UncompleteHabit(habit.ID); err != nil {
		t.Fatalf("UncompleteHabit: %v", err)
	}

	habits, _ := svc.AllHabits()
	dates := habits[0].CompletedDates
	if len(dates) != 1 || !dates[0].Equal(yesterday) {
		t.Errorf("completions after undo = %v, want only yesterday's", dates)
	}
}

func TestMutationsOnUnknownIDAreNoOps(t *testing.T) {
	svc := newTestService()

	if err := svc.CompleteTask("missing"); err != nil {
		t.Errorf("CompleteTask: %v", err)
	}
	if err := svc.UncompleteEvent("missing"); err != nil {
		t.Errorf("UncompleteEvent: %v", err)
	}
	if err := svc.CompleteHabit("missing", testNow); err != nil {
		t.Errorf("CompleteHabit: %v", err)
	}
	if err := svc.DeleteTask("missing"); err != nil {
		t.Errorf("DeleteTask: %v", err)
	}
	if err := svc.DeleteHabit("missing"); err != nil {
		t.Errorf("DeleteHabit: %v", err)
	}
}

func TestItemsForDayEventRules(t *testing.T) {
	svc := newTestService()
	ref := time.Date(2026, time.January, 3, 12, 0, 0, 0, time.UTC)

	mustEvent := func(title string, start, end time.Time) {
		t.Helper()
		if _, err := svc.AddEvent(EventDraft{Title: title, StartDate: start, EndDate: end}); err != nil {
			t.Fatal(err)
		}
	}

	// Starts on the day.
	mustEvent("starts", ref, ref.Add(time.Hour))
	// Ends on the day.
	mustEvent("ends", ref.AddDate(0, 0, -1), ref)
	// Strictly spans the day: Jan 1 through Jan 5.
	mustEvent("spans",
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	// Ends exactly at the day's midnight: touches Jan 3 only as its end day.
	mustEvent("ends-at-midnight",
		time.Date(2026, time.January, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC))
	// Entirely elsewhere.
	mustEvent("elsewhere",
		time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 7, 11, 0, 0, 0, time.UTC))

	items, err := svc.ItemsForDay(ref)
	if err != nil {
		t.Fatal(err)
	}

	got := map[string]bool{}
	for _, e := range items.Events {
		got[e.Title] = true
	}
	for _, want := range []string{"starts", "ends", "spans", "ends-at-midnight"} {
		if !got[want] {
			t.Errorf("event %q missing from day view", want)
		}
	}
	if got["elsewhere"] {
		t.Error("unrelated event included in day view")
	}
}

func TestItemsForDaySpanIsStrict(t *testing.T) {
	svc := newTestService()
	ref := time.Date(2026, time.January, 3, 12, 0, 0, 0, time.UTC)

	// Starts exactly at the day's midnight two days later; neither starts,
	// ends, nor strictly spans Jan 4.
	if _, err := svc.AddEvent(EventDraft{
		Title:     "boundary",
		StartDate: time.Date(2026, time.January, 3, 8, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.January, 4, 23, 59, 59, 999000000, time.UTC),
	}); err != nil {
		t.Fatal(err)
	}

	items, err := svc.ItemsForDay(ref.AddDate(0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	// Ends on Jan 4, so the same-day end rule catches it.
	if len(items.Events) != 1 {
		t.Fatalf("events on Jan 4 = %d, want 1", len(items.Events))
	}

	// An interval from Jan 3 08:00 to Jan 5 00:00 must span Jan 4 strictly.
	svc2 := newTestService()
	if _, err := svc2.AddEvent(EventDraft{
		Title:     "strict",
		StartDate: time.Date(2026, time.January, 3, 8, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatal(err)
	}
	items, err = svc2.ItemsForDay(time.Date(2026, time.January, 4, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if len(items.Events) != 1 {
		t.Fatalf("spanning event not visible on the middle day")
	}
}

func TestTodayItemsFiltersTasksAndHabits(t *testing.T) {
	svc := newTestService()

	if _, err := svc.AddTask(TaskDraft{Title: "today", DueDate: testNow.Add(time.Hour)}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddTask(TaskDraft{Title: "tomorrow", DueDate: testNow.AddDate(0, 0, 1)}); err != nil {
		t.Fatal(err)
	}

	fresh, _ := svc.AddHabit(HabitDraft{Title: "due", Frequency: models.FrequencyDaily})
	rested, _ := svc.AddHabit(HabitDraft{Title: "rested", Frequency: models.FrequencyWeekly})
	if err := svc.CompleteHabit(rested.ID, testNow.AddDate(0, 0, -2)); err != nil {
		t.Fatal(err)
	}

	items, err := svc.TodayItems()
	if err != nil {
		t.Fatal(err)
	}

	if len(items.Tasks) != 1 || items.Tasks[0].Title != "today" {
		t.Errorf("tasks = %v", items.Tasks)
	}
	if len(items.Habits) != 1 || items.Habits[0].ID != fresh.ID {
		t.Errorf("habits = %v", items.Habits)
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	svc := newTestService()

	svc.AddTask(TaskDraft{Title: "a", DueDate: testNow, Category: "work"})
	svc.AddTask(TaskDraft{Title: "b", DueDate: testNow, Category: "home"})
	svc.AddEvent(EventDraft{Title: "c", StartDate: testNow, EndDate: testNow.Add(time.Hour), Category: "work"})
	svc.AddHabit(HabitDraft{Title: "d", Frequency: models.FrequencyDaily, Category: "health"})
	svc.AddHabit(HabitDraft{Title: "e", Frequency: models.FrequencyDaily})

	stats, err := svc.Categories()
	if err != nil {
		t.Fatal(err)
	}

	if len(stats) != 3 {
		t.Fatalf("categories = %d, want 3", len(stats))
	}
	if stats[0].Name != "work" || stats[1].Name != "home" || stats[2].Name != "health" {
		t.Errorf("order = %v", stats)
	}
	if stats[0].Tasks != 1 || stats[0].Events != 1 {
		t.Errorf("work counts = %+v", stats[0])
	}
}

func TestSortTasks(t *testing.T) {
	tasks := []models.Task{
		{Title: "done", Completed: true, DueDate: testNow},
		{Title: "later", DueDate: testNow.Add(2 * time.Hour)},
		{Title: "sooner", DueDate: testNow.Add(time.Hour)},
	}
	SortTasks(tasks)

	if tasks[0].Title != "sooner" || tasks[1].Title != "later" || tasks[2].Title != "done" {
		t.Errorf("order = %v, %v, %v", tasks[0].Title, tasks[1].Title, tasks[2].Title)
	}
}

func TestSortHabitsSinksCompleted(t *testing.T) {
	habits := []models.Habit{
		{Title: "done", CompletedDates: []time.Time{testNow}},
		{Title: "todo"},
	}
	SortHabits(habits, testNow)

	if habits[0].Title != "todo" {
		t.Errorf("first habit = %s, want todo", habits[0].Title)
	}
}
