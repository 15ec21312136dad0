package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/honucare/rounds/internal/routing"
	"github.com/honucare/rounds/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			if n := len(m.lists); n > 0 {
				m.listIdx = (m.listIdx + 1) % n
				m.cursor = 0
				m.reloadRows()
			}
		case key.Matches(msg, m.keys.ShiftTab):
			if n := len(m.lists); n > 0 {
				m.listIdx = (m.listIdx - 1 + n) % n
				m.cursor = 0
				m.reloadRows()
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.PrevDay):
			m.shiftDate(-1)
		case key.Matches(msg, m.keys.NextDay):
			m.shiftDate(1)
		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
		case key.Matches(msg, m.keys.Move):
			m.moveSelected()
		}
	}
	return m, nil
}

func (m *Model) shiftDate(days int) {
	d, err := utils.ParseDate(m.date)
	if err != nil {
		return
	}
	m.date = d.AddDate(0, 0, days).Format("2006-01-02")
	m.reloadRows()
}

func (m *Model) toggleSelected() {
	if m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	if err := m.resolver.ToggleCompletion(m.date, row.Visit.ID); err != nil {
		m.status = fmt.Sprintf("could not toggle: %v", err)
		return
	}
	m.reloadRows()
}

// moveSelected cycles the visit to the next active base list for the shown
// date only.
func (m *Model) moveSelected() {
	if m.cursor >= len(m.rows) || len(m.lists) == 0 {
		return
	}
	row := m.rows[m.cursor]
	bases := m.reg.ActiveBaseLists()
	if len(bases) < 2 {
		m.status = "no other list to move to"
		return
	}
	currentBase := routing.BaseListID(m.resolver.EffectiveListID(row.Visit, m.date))
	next := bases[0].ID
	for i, b := range bases {
		if b.ID == currentBase {
			next = bases[(i+1)%len(bases)].ID
			break
		}
	}
	if err := m.resolver.MoveVisit(m.date, row.Visit.ID, next); err != nil {
		m.status = fmt.Sprintf("could not move: %v", err)
		return
	}
	m.status = fmt.Sprintf("moved %s to %s for %s", row.Patient.Name, next, m.date)
	m.reloadRows()
}

func eveningID(baseID string) string {
	return routing.EveningListID(baseID)
}
