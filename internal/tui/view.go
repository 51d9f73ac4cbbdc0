package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8CAAEE"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6D189"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E78284"))
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	status := statusStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title()),
		m.viewport.View(),
		status,
		m.help.View(m.keys),
	)
}
