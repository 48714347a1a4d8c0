package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"ubizy/internal/assistant"
	"ubizy/internal/constants"
	"ubizy/internal/models"
	"ubizy/internal/planner"
	"ubizy/internal/utils"
)

// respondMsg delivers the assistant's reply once the thinking delay has
// elapsed.
type respondMsg struct {
	message assistant.Message
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.todayList.SetSize(msg.Width-4, msg.Height-6)
		m.chat.input.Width = msg.Width - 8
		return m, nil

	case respondMsg:
		m.chat.thinking = false
		m.chat.messages = append(m.chat.messages, msg.message)
		if msg.message.Suggestion != nil {
			m.chat.lastSuggestion = msg.message.Suggestion
		}
		return m, nil
	}

	switch m.state {
	case StateLogin:
		return m.updateLogin(msg)
	case StateToday:
		return m.updateToday(msg)
	case StateCalendar:
		return m.updateCalendar(msg)
	case StateChat:
		return m.updateChat(msg)
	case StateAddTask, StateAddEvent, StateAddHabit:
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		// Any input produces a session; there is no real account system.
		if _, err := m.session.Signup(m.loginForm.Name, m.loginForm.Email, ""); err != nil {
			m.formError = err.Error()
			m.form = NewLoginForm(m.loginForm)
			return m, m.form.Init()
		}
		m.formError = ""
		m.state = StateToday
		m.refreshToday()
		return m, nil
	}
	return m, cmd
}

func (m Model) updateToday(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(k, m.keys.Calendar):
			m.state = StateCalendar
			return m, nil
		case key.Matches(k, m.keys.Chat):
			m.state = StateChat
			m.chat.input.Focus()
			return m, nil
		case key.Matches(k, m.keys.AddTask):
			m.taskForm = &TaskFormModel{}
			m.form = NewTaskForm(m.taskForm)
			m.previousState = m.state
			m.state = StateAddTask
			return m, m.form.Init()
		case key.Matches(k, m.keys.AddEvent):
			m.eventForm = &EventFormModel{}
			m.form = NewEventForm(m.eventForm)
			m.previousState = m.state
			m.state = StateAddEvent
			return m, m.form.Init()
		case key.Matches(k, m.keys.AddHabit):
			m.habitForm = &HabitFormModel{Frequency: string(models.FrequencyDaily)}
			m.form = NewHabitForm(m.habitForm)
			m.previousState = m.state
			m.state = StateAddHabit
			return m, m.form.Init()
		case key.Matches(k, m.keys.Toggle):
			m.toggleSelected()
			return m, nil
		case key.Matches(k, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.todayList, cmd = m.todayList.Update(msg)
	return m, cmd
}

func (m *Model) toggleSelected() {
	item, ok := m.todayList.SelectedItem().(todayItem)
	if !ok {
		return
	}

	var err error
	switch item.kind {
	case kindTask:
		if item.done {
			err = m.planner.UncompleteTask(item.id)
		} else {
			err = m.planner.CompleteTask(item.id)
		}
	case kindEvent:
		if item.done {
			err = m.planner.UncompleteEvent(item.id)
		} else {
			err = m.planner.CompleteEvent(item.id)
		}
	case kindHabit:
		if item.done {
			err = m.planner.UncompleteHabit(item.id)
		} else {
			err = m.planner.CompleteHabit(item.id, time.Now())
		}
	}
	if err != nil {
		m.formError = err.Error()
		return
	}
	m.formError = ""
	m.refreshToday()
}

func (m *Model) deleteSelected() {
	item, ok := m.todayList.SelectedItem().(todayItem)
	if !ok {
		return
	}

	var err error
	switch item.kind {
	case kindTask:
		err = m.planner.DeleteTask(item.id)
	case kindEvent:
		err = m.planner.DeleteEvent(item.id)
	case kindHabit:
		err = m.planner.DeleteHabit(item.id)
	}
	if err != nil {
		m.formError = err.Error()
		return
	}
	m.formError = ""
	m.refreshToday()
}

func (m Model) updateCalendar(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(k, m.keys.Today), key.Matches(k, m.keys.Back):
			m.state = StateToday
			m.refreshToday()
		case key.Matches(k, m.keys.Chat):
			m.state = StateChat
			m.chat.input.Focus()
		case key.Matches(k, m.keys.PrevMon):
			m.month = m.month.AddDate(0, -1, 0)
		case key.Matches(k, m.keys.NextMon):
			m.month = m.month.AddDate(0, 1, 0)
		}
	}
	return m, nil
}

func (m Model) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(k, m.keys.Back):
			m.chat.input.Blur()
			m.state = StateToday
			m.refreshToday()
			return m, nil
		case key.Matches(k, m.keys.Confirm) && m.chat.lastSuggestion != nil:
			confirmation := m.assistant.Confirm(m.chat.lastSuggestion)
			m.chat.messages = append(m.chat.messages, confirmation)
			m.chat.lastSuggestion = nil
			return m, nil
		case k.Type == tea.KeyEnter && !m.chat.thinking:
			text := strings.TrimSpace(m.chat.input.Value())
			if text == "" {
				return m, nil
			}
			m.chat.messages = append(m.chat.messages, m.assistant.UserMessage(text))
			m.chat.input.Reset()
			m.chat.thinking = true
			a := m.assistant
			return m, func() tea.Msg {
				return respondMsg{message: a.Respond(text)}
			}
		}
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.state = m.previousState
		m.formError = ""
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submitForm(); err != nil {
			// Stay in the form so the user can fix and retry.
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.formError = ""
		m.state = m.previousState
		m.refreshToday()
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m *Model) submitForm() error {
	now := time.Now()

	switch m.state {
	case StateAddTask:
		f := m.taskForm
		date := orDefault(f.Date, now.Format(constants.DateFormat))
		clock := orDefault(f.Time, constants.DefaultTaskTime)
		due, err := utils.CombineDateAndTime(date, clock, time.Local)
		if err != nil {
			return err
		}
		_, err = m.planner.AddTask(planner.TaskDraft{
			Title:       f.Title,
			Description: f.Description,
			DueDate:     due,
			Category:    f.Category,
		})
		return err

	case StateAddEvent:
		f := m.eventForm
		date := orDefault(f.Date, now.Format(constants.DateFormat))
		start, err := utils.CombineDateAndTime(date, orDefault(f.Start, constants.DefaultEventStart), time.Local)
		if err != nil {
			return err
		}
		end, err := utils.CombineDateAndTime(date, orDefault(f.End, constants.DefaultEventEnd), time.Local)
		if err != nil {
			return err
		}
		_, err = m.planner.AddEvent(planner.EventDraft{
			Title:       f.Title,
			Description: f.Description,
			StartDate:   start,
			EndDate:     end,
			Category:    f.Category,
		})
		return err

	case StateAddHabit:
		f := m.habitForm
		freq, err := models.ParseFrequency(f.Frequency)
		if err != nil {
			return err
		}
		_, err = m.planner.AddHabit(planner.HabitDraft{
			Title:       f.Title,
			Description: f.Description,
			Frequency:   freq,
			Category:    f.Category,
		})
		return err
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
