package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"ubizy/internal/assistant"
	"ubizy/internal/auth"
	"ubizy/internal/planner"
)

// SessionState represents the current screen of the TUI application
type SessionState int

const (
	StateLogin SessionState = iota
	StateToday
	StateCalendar
	StateChat
	StateAddTask
	StateAddEvent
	StateAddHabit
)

type itemKind int

const (
	kindTask itemKind = iota
	kindEvent
	kindHabit
)

// todayItem adapts a planner item for the bubbles list.
type todayItem struct {
	kind  itemKind
	id    string
	title string
	meta  string
	done  bool
}

func (i todayItem) Title() string {
	if i.done {
		return "✓ " + i.title
	}
	return "○ " + i.title
}

func (i todayItem) Description() string { return i.meta }
func (i todayItem) FilterValue() string { return i.title }

type TaskFormModel struct {
	Title       string
	Description string
	Date        string
	Time        string
	Category    string
}

type EventFormModel struct {
	Title       string
	Description string
	Date        string
	Start       string
	End         string
	Category    string
}

type HabitFormModel struct {
	Title       string
	Description string
	Frequency   string
	Category    string
}

type LoginFormModel struct {
	Name  string
	Email string
}

type chatModel struct {
	input          textinput.Model
	messages       []assistant.Message
	thinking       bool
	lastSuggestion assistant.Suggestion
}

type Model struct {
	planner   *planner.Service
	session   *auth.Session
	assistant *assistant.Assistant

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	todayList list.Model
	month     time.Time
	chat      chatModel

	form      *huh.Form
	taskForm  *TaskFormModel
	eventForm *EventFormModel
	habitForm *HabitFormModel
	loginForm *LoginFormModel

	width     int
	height    int
	quitting  bool
	formError string
}

func NewModel(p *planner.Service, s *auth.Session, a *assistant.Assistant) Model {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.CharLimit = 280

	delegate := list.NewDefaultDelegate()
	todayList := list.New([]list.Item{}, delegate, 0, 0)
	todayList.Title = "Today"
	todayList.SetShowHelp(false)
	todayList.SetFilteringEnabled(false)

	m := Model{
		planner:   p,
		session:   s,
		assistant: a,
		state:     StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		todayList: todayList,
		month:     time.Now(),
		chat: chatModel{
			input: input,
			messages: []assistant.Message{{
				Content:   assistant.WelcomeMessage,
				Sender:    assistant.SenderBot,
				Timestamp: time.Now(),
			}},
		},
	}

	if !s.IsAuthenticated() {
		m.loginForm = &LoginFormModel{}
		m.form = NewLoginForm(m.loginForm)
		m.state = StateLogin
	} else {
		m.refreshToday()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == StateLogin && m.form != nil {
		return m.form.Init()
	}
	return nil
}

// refreshToday reloads the today list from the planner.
func (m *Model) refreshToday() {
	items, err := m.planner.TodayItems()
	if err != nil {
		m.formError = err.Error()
		return
	}

	now := time.Now()
	planner.SortTasks(items.Tasks)
	planner.SortEvents(items.Events)
	planner.SortHabits(items.Habits, now)

	var rows []list.Item
	for _, t := range items.Tasks {
		rows = append(rows, todayItem{
			kind:  kindTask,
			id:    t.ID,
			title: t.Title,
			meta:  fmt.Sprintf("task · due %s", t.DueDate.Format("15:04")),
			done:  t.Completed,
		})
	}
	for _, e := range items.Events {
		rows = append(rows, todayItem{
			kind:  kindEvent,
			id:    e.ID,
			title: e.Title,
			meta:  fmt.Sprintf("event · %s - %s", e.StartDate.Format("15:04"), e.EndDate.Format("15:04")),
			done:  e.Completed,
		})
	}
	for _, h := range items.Habits {
		rows = append(rows, todayItem{
			kind:  kindHabit,
			id:    h.ID,
			title: h.Title,
			meta:  fmt.Sprintf("habit · %s", h.Frequency),
			done:  h.CompletedOn(now),
		})
	}
	m.todayList.SetItems(rows)
}
