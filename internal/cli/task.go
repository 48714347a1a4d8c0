package cli

import (
	"fmt"
	"time"

	"ubizy/internal/constants"
	"ubizy/internal/planner"
	"ubizy/internal/utils"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Optional description."`
	Date        string `help:"Due date (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
	Time        string `help:"Due time (HH:MM)." default:"${default_task_time}"`
	Static      bool   `help:"Mark the task as fixed-time rather than flexible."`
	Category    string `short:"c" help:"Optional category label."`
}

func (c *TaskAddCmd) Validate() error {
	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
	}
	if _, err := ParseWhen(c.Date); err != nil {
		return err
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	day, err := ParseWhen(c.Date)
	if err != nil {
		return err
	}
	due, err := utils.CombineDateAndTime(day.Format(constants.DateFormat), c.Time, time.Local)
	if err != nil {
		return err
	}

	task, err := ctx.Planner.AddTask(planner.TaskDraft{
		Title:       c.Title,
		Description: c.Description,
		DueDate:     due,
		IsStatic:    c.Static,
		Category:    c.Category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Planner.AllTasks()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	planner.SortTasks(tasks)
	now := time.Now()
	for _, t := range tasks {
		line := FormatTask(t)
		if !t.Completed && t.DueDate.After(now) {
			line += fmt.Sprintf("  [%s]", ctx.Planner.Urgency(t.DueDate))
		}
		fmt.Printf("%s\n    id: %s\n", line, t.ID)
	}
	return nil
}

type TaskCompleteCmd struct {
	ID   string `arg:"" help:"Task id."`
	Undo bool   `help:"Mark the task as not completed instead."`
}

func (c *TaskCompleteCmd) Run(ctx *Context) error {
	if c.Undo {
		return ctx.Planner.UncompleteTask(c.ID)
	}
	return ctx.Planner.CompleteTask(c.ID)
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	return ctx.Planner.DeleteTask(c.ID)
}
