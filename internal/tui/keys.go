package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Today    key.Binding
	Calendar key.Binding
	Chat     key.Binding
	AddTask  key.Binding
	AddEvent key.Binding
	AddHabit key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	PrevMon  key.Binding
	NextMon  key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Today:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "today")),
		Calendar: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "calendar")),
		Chat:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "assistant")),
		AddTask:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add task")),
		AddEvent: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "add event")),
		AddHabit: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "add habit")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle done")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		PrevMon:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev month")),
		NextMon:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next month")),
		Confirm:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "confirm suggestion")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateToday:
		return []key.Binding{m.keys.Toggle, m.keys.Delete, m.keys.AddTask, m.keys.AddEvent, m.keys.AddHabit, m.keys.Calendar, m.keys.Chat, m.keys.Quit}
	case StateCalendar:
		return []key.Binding{m.keys.PrevMon, m.keys.NextMon, m.keys.Today, m.keys.Quit}
	case StateChat:
		return []key.Binding{m.keys.Confirm, m.keys.Back, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	}
}

// FullHelp implements help.KeyMap
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Today, m.keys.Calendar, m.keys.Chat},
		{m.keys.AddTask, m.keys.AddEvent, m.keys.AddHabit},
		{m.keys.Toggle, m.keys.Delete, m.keys.Confirm},
		{m.keys.Back, m.keys.Help, m.keys.Quit},
	}
}
