package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ubizy/internal/tui"
)

// TuiCmd launches the interactive terminal interface.
type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.NewModel(ctx.Planner, ctx.Session, ctx.Assistant)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
