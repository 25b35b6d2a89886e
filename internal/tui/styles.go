package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	greetingStyle = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
	quoteStyle    = lipgloss.NewStyle().Italic(true)

	cursorLineStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	completedStyle  = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	counterStyle    = lipgloss.NewStyle().Faint(true)

	panelStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// tintedPanel returns the panel style with its border colored by the first
// stop of the active wallpaper gradient.
func tintedPanel(stops []string) lipgloss.Style {
	if len(stops) == 0 {
		return panelStyle
	}
	return panelStyle.BorderForeground(lipgloss.Color(stops[0]))
}
