package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ubizy/internal/assistant"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateLogin:
		content = m.viewLogin()
	case StateToday:
		content = m.todayList.View()
	case StateCalendar:
		content = m.viewCalendar()
	case StateChat:
		content = m.viewChat()
	case StateAddTask, StateAddEvent, StateAddHabit:
		content = m.viewForm()
	}

	var b strings.Builder
	if m.state != StateLogin {
		b.WriteString(m.viewTabs())
		b.WriteString("\n\n")
	}
	b.WriteString(content)
	if m.formError != "" {
		b.WriteString("\n" + dangerStyle.Render(m.formError))
	}
	b.WriteString("\n" + m.help.View(m))
	return docStyle.Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := []struct {
		label string
		state SessionState
	}{
		{"Today", StateToday},
		{"Calendar", StateCalendar},
		{"Assistant", StateChat},
	}

	var rendered []string
	for _, t := range tabs {
		if m.state == t.state {
			rendered = append(rendered, activeTabStyle.Render(t.label))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(t.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewLogin() string {
	if m.form == nil {
		return ""
	}
	return "Welcome to ubizy\n\n" + m.form.View()
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	var title string
	switch m.state {
	case StateAddTask:
		title = "New task"
	case StateAddEvent:
		title = "New event"
	case StateAddHabit:
		title = "New habit"
	}
	return title + "\n\n" + m.form.View()
}

func (m Model) viewChat() string {
	var b strings.Builder

	// Keep the transcript short enough to fit the terminal.
	messages := m.chat.messages
	visible := 12
	if m.height > 0 {
		visible = m.height / 2
	}
	if len(messages) > visible {
		messages = messages[len(messages)-visible:]
	}

	for _, msg := range messages {
		if msg.Sender == assistant.SenderUser {
			b.WriteString(userMsgStyle.Render("you: "+msg.Content) + "\n")
		} else {
			b.WriteString(botMsgStyle.Render("ubizy: "+msg.Content) + "\n")
		}
	}

	if m.chat.lastSuggestion != nil {
		b.WriteString(suggestionStyle.Render(
			fmt.Sprintf("Pending %s: press ctrl+y to confirm", m.chat.lastSuggestion.TypeName()),
		) + "\n")
	}

	if m.chat.thinking {
		b.WriteString(botMsgStyle.Render("ubizy is thinking...") + "\n")
	}

	b.WriteString("\n" + m.chat.input.View())
	return b.String()
}
