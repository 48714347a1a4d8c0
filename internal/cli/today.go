package cli

import (
	"fmt"
	"time"

	"ubizy/internal/planner"
)

// TodayCmd prints the items relevant to the current calendar day. Habits
// already completed today still appear, marked done, rather than being
// hidden.
type TodayCmd struct {
	Date string `help:"Show items for a specific day instead (YYYY-MM-DD)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	ref := time.Now()
	if c.Date != "" {
		day, err := ParseWhen(c.Date)
		if err != nil {
			return err
		}
		ref = day
	}

	items, err := ctx.Planner.ItemsForDay(ref)
	if err != nil {
		return err
	}

	planner.SortTasks(items.Tasks)
	planner.SortEvents(items.Events)
	planner.SortHabits(items.Habits, ref)

	fmt.Printf("Items for %s\n\n", ref.Format("Mon, Jan 2 2006"))

	fmt.Printf("Tasks (%d)\n", len(items.Tasks))
	for _, t := range items.Tasks {
		fmt.Printf("  %s\n", FormatTask(t))
	}

	fmt.Printf("\nEvents (%d)\n", len(items.Events))
	for _, e := range items.Events {
		fmt.Printf("  %s\n", FormatEvent(e))
	}

	fmt.Printf("\nHabits (%d)\n", len(items.Habits))
	for _, h := range items.Habits {
		fmt.Printf("  %s\n", FormatHabit(h, ref))
	}

	return nil
}

// UpcomingCmd prints every item across all three collections, sorted,
// with urgency labels on future tasks and events.
type UpcomingCmd struct{}

func (c *UpcomingCmd) Run(ctx *Context) error {
	tasks, err := ctx.Planner.AllTasks()
	if err != nil {
		return err
	}
	events, err := ctx.Planner.AllEvents()
	if err != nil {
		return err
	}
	habits, err := ctx.Planner.AllHabits()
	if err != nil {
		return err
	}

	now := time.Now()
	planner.SortTasks(tasks)
	planner.SortEvents(events)
	planner.SortHabits(habits, now)

	fmt.Printf("All items\n\n")

	fmt.Printf("Tasks (%d)\n", len(tasks))
	for _, t := range tasks {
		line := FormatTask(t)
		if !t.Completed && t.DueDate.After(now) {
			line += fmt.Sprintf("  [%s]", ctx.Planner.Urgency(t.DueDate))
		}
		fmt.Printf("  %s\n", line)
	}

	fmt.Printf("\nEvents (%d)\n", len(events))
	for _, e := range events {
		line := FormatEvent(e)
		if !e.Completed && e.StartDate.After(now) {
			line += fmt.Sprintf("  [%s]", ctx.Planner.Urgency(e.StartDate))
		}
		fmt.Printf("  %s\n", line)
	}

	fmt.Printf("\nHabits (%d)\n", len(habits))
	for _, h := range habits {
		fmt.Printf("  %s\n", FormatHabit(h, now))
	}

	return nil
}

// CategoriesCmd prints the categories derived from the union of all
// collections with per-type counts.
type CategoriesCmd struct{}

func (c *CategoriesCmd) Run(ctx *Context) error {
	stats, err := ctx.Planner.Categories()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No categories.")
		return nil
	}
	for _, s := range stats {
		fmt.Printf("%s: %d tasks, %d events, %d habits\n", s.Name, s.Tasks, s.Events, s.Habits)
	}
	return nil
}
