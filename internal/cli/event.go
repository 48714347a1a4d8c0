package cli

import (
	"fmt"
	"time"

	"ubizy/internal/constants"
	"ubizy/internal/planner"
	"ubizy/internal/utils"
)

type EventAddCmd struct {
	Title       string `arg:"" help:"Event title."`
	Description string `short:"d" help:"Optional description."`
	Date        string `help:"Start date (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
	Start       string `help:"Start time (HH:MM)." default:"${default_event_start}"`
	EndDate     string `help:"End date; defaults to the start date."`
	End         string `help:"End time (HH:MM)." default:"${default_event_end}"`
	Static      bool   `help:"Mark the event as fixed-time rather than flexible."`
	Category    string `short:"c" help:"Optional category label."`
}

func (c *EventAddCmd) Validate() error {
	if !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	if !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time format (expected HH:MM): %s", c.End)
	}
	if _, err := ParseWhen(c.Date); err != nil {
		return err
	}
	if c.EndDate != "" {
		if _, err := ParseWhen(c.EndDate); err != nil {
			return err
		}
	}
	return nil
}

func (c *EventAddCmd) Run(ctx *Context) error {
	startDay, err := ParseWhen(c.Date)
	if err != nil {
		return err
	}
	endDay := startDay
	if c.EndDate != "" {
		endDay, err = ParseWhen(c.EndDate)
		if err != nil {
			return err
		}
	}

	start, err := utils.CombineDateAndTime(startDay.Format(constants.DateFormat), c.Start, time.Local)
	if err != nil {
		return err
	}
	end, err := utils.CombineDateAndTime(endDay.Format(constants.DateFormat), c.End, time.Local)
	if err != nil {
		return err
	}

	event, err := ctx.Planner.AddEvent(planner.EventDraft{
		Title:       c.Title,
		Description: c.Description,
		StartDate:   start,
		EndDate:     end,
		IsStatic:    c.Static,
		Category:    c.Category,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added event: %s (ID: %s)\n", event.Title, event.ID)
	return nil
}

type EventListCmd struct{}

func (c *EventListCmd) Run(ctx *Context) error {
	events, err := ctx.Planner.AllEvents()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No events.")
		return nil
	}

	planner.SortEvents(events)
	now := time.Now()
	for _, e := range events {
		line := FormatEvent(e)
		if !e.Completed && e.StartDate.After(now) {
			line += fmt.Sprintf("  [%s]", ctx.Planner.Urgency(e.StartDate))
		}
		fmt.Printf("%s\n    id: %s\n", line, e.ID)
	}
	return nil
}

type EventCompleteCmd struct {
	ID   string `arg:"" help:"Event id."`
	Undo bool   `help:"Mark the event as not completed instead."`
}

func (c *EventCompleteCmd) Run(ctx *Context) error {
	if c.Undo {
		return ctx.Planner.UncompleteEvent(c.ID)
	}
	return ctx.Planner.CompleteEvent(c.ID)
}

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event id."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	return ctx.Planner.DeleteEvent(c.ID)
}
