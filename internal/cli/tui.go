package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitkit/habitkit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	model := tui.New(ctx.State, ctx.Gateway)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
