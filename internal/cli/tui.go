package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/honucare/rounds/internal/tui"
)

type TuiCmd struct {
	Date string `short:"d" default:"today" help:"Roster date to open on."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.RequireData(); err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	m := tui.NewModel(ctx.Reg, ctx.Resolver, date)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return ctx.SaveData()
}
