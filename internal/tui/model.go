package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/registry"
	"github.com/honucare/rounds/internal/schedule"
)

// Model is the interactive roster screen: one visit list at a time, with
// day and evening sides as separate tabs.
type Model struct {
	reg      *registry.Registry
	resolver *schedule.Resolver

	date     string
	lists    []models.VisitList
	listIdx  int
	rows     []schedule.RosterRow
	cursor   int
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
	status   string
}

func NewModel(reg *registry.Registry, resolver *schedule.Resolver, date string) Model {
	m := Model{
		reg:      reg,
		resolver: resolver,
		date:     date,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.reloadLists()
	m.reloadRows()
	return m
}

// reloadLists rebuilds the tab order: each active base list followed by its
// evening sibling.
func (m *Model) reloadLists() {
	m.lists = nil
	for _, base := range m.reg.ActiveBaseLists() {
		m.lists = append(m.lists, base)
		if evening, ok := m.reg.ListByID(eveningID(base.ID)); ok {
			m.lists = append(m.lists, evening)
		}
	}
	if m.listIdx >= len(m.lists) {
		m.listIdx = 0
	}
}

func (m *Model) reloadRows() {
	if len(m.lists) == 0 {
		m.rows = nil
		m.cursor = 0
		return
	}
	m.rows = m.resolver.RosterFor(m.lists[m.listIdx].ID, m.date)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
