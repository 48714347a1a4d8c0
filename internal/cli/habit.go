package cli

import (
	"fmt"
	"time"

	"ubizy/internal/models"
	"ubizy/internal/planner"
)

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `short:"d" help:"Optional description."`
	Frequency   string `short:"f" help:"Frequency (daily|weekly|monthly)." default:"daily"`
	Category    string `short:"c" help:"Optional category label."`
}

func (c *HabitAddCmd) Validate() error {
	_, err := models.ParseFrequency(c.Frequency)
	return err
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	freq, err := models.ParseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	habit, err := ctx.Planner.AddHabit(planner.HabitDraft{
		Title:       c.Title,
		Description: c.Description,
		Frequency:   freq,
		Category:    c.Category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Title, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Planner.AllHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits.")
		return nil
	}

	now := time.Now()
	planner.SortHabits(habits, now)
	for _, h := range habits {
		fmt.Printf("%s\n    id: %s  completions: %d\n", FormatHabit(h, now), h.ID, len(h.CompletedDates))
	}
	return nil
}

// HabitDoneCmd records today's completion for a habit. Running it twice
// on the same day is a no-op.
type HabitDoneCmd struct {
	ID   string `arg:"" help:"Habit id."`
	Undo bool   `help:"Remove today's completion instead."`
}

func (c *HabitDoneCmd) Run(ctx *Context) error {
	if c.Undo {
		return ctx.Planner.UncompleteHabit(c.ID)
	}
	return ctx.Planner.CompleteHabit(c.ID, time.Now())
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	return ctx.Planner.DeleteHabit(c.ID)
}
