package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/honucare/rounds/internal/models"
	"github.com/honucare/rounds/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.lists) == 0 {
		return titleStyle.Render("No active visit lists") + "\n"
	}

	wd, _ := utils.WeekdayOf(m.date)
	header := titleStyle.Render(fmt.Sprintf("Roster %s (%s)", m.date, wd.Label()))

	sections := []string{header, m.viewTabs(), m.viewRows()}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, l := range m.lists {
		title := l.Name
		if l.IsEvening {
			title += " eve"
		}
		if i == m.listIdx {
			tabs = append(tabs, activeTabStyle(listColor(l.Color, l.IsEvening)).Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewRows() string {
	if len(m.rows) == 0 {
		return "\n  No visits scheduled\n"
	}
	var b strings.Builder
	b.WriteString("\n")
	for i, row := range m.rows {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if row.Completed {
			mark = "[x]"
		}
		timeStr := row.TimeKey
		if timeStr == models.GeneralTimeKey {
			timeStr = "  -  "
		}
		name := row.Patient.Name
		if row.AgeKnown {
			name = fmt.Sprintf("%s (%d)", name, row.Age)
		}
		line := fmt.Sprintf("%s %-5s  %-28s  %s", mark, timeStr, name, row.Visit.Description)
		if row.Completed {
			line = doneStyle.Render(line)
		}
		b.WriteString(pointer + line + "\n")
		for _, t := range row.Tasks {
			taskMark := "[ ]"
			if t.Completed() {
				taskMark = "[x]"
			}
			b.WriteString(taskStyle.Render(fmt.Sprintf("       %s %s", taskMark, t.Title)) + "\n")
		}
	}
	return b.String()
}
