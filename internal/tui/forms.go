package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"ubizy/internal/models"
	"ubizy/internal/utils"
)

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := utils.ParseDate(s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validateClock(s string) error {
	if s == "" {
		return nil
	}
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("expected HH:MM")
	}
	return nil
}

func NewLoginForm(f *LoginFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name),
			huh.NewInput().
				Title("Email").
				Value(&f.Email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),
		),
	)
}

func NewTaskForm(f *TaskFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD, blank = today)").
				Value(&f.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Due time (HH:MM, blank = 12:00)").
				Value(&f.Time).
				Validate(validateClock),
			huh.NewInput().
				Title("Category").
				Value(&f.Category),
		),
	)
}

func NewEventForm(f *EventFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewInput().
				Title("Date (YYYY-MM-DD, blank = today)").
				Value(&f.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Start (HH:MM, blank = 12:00)").
				Value(&f.Start).
				Validate(validateClock),
			huh.NewInput().
				Title("End (HH:MM, blank = 13:00)").
				Value(&f.End).
				Validate(validateClock),
			huh.NewInput().
				Title("Category").
				Value(&f.Category),
		),
	)
}

func NewHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					huh.NewOption("Monthly", string(models.FrequencyMonthly)),
				).
				Value(&f.Frequency),
			huh.NewInput().
				Title("Category").
				Value(&f.Category),
		),
	)
}
