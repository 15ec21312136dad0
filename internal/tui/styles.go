package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)
)

// themePalette maps the dataset's theme color tokens to concrete hex
// values; raw hex colors pass through unchanged.
var themePalette = map[string]string{
	"chart-1": "#7aa2f7",
	"chart-2": "#9ece6a",
	"chart-3": "#e0af68",
	"chart-4": "#bb9af7",
	"chart-5": "#f7768e",
}

// listColor resolves a list's accent color, darkening it for the evening
// side so the two tabs of a pair read as related but distinct.
func listColor(token string, evening bool) lipgloss.Color {
	hex, ok := themePalette[token]
	if !ok {
		hex = token
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex("#7aa2f7")
	}
	if evening {
		h, s, l := c.Hsl()
		c = colorful.Hsl(h, min(s*1.1, 1), l*0.7)
	}
	return lipgloss.Color(c.Hex())
}

func activeTabStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(color).
		Padding(0, 1).
		Bold(true)
}
