package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lookout/internal/dashboard"
)

// statusKey maps the monitor state onto theme status colors.
func statusKey(state dashboard.StatusState) string {
	switch state {
	case dashboard.StatusHealthy:
		return "healthy"
	case dashboard.StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// renderHeader renders the status bar: logo, backend health, busy indicator
// and the next automated run.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	status := m.dash.Status
	parts := []string{
		bg.Render(logoText, styles.Logo),
		bg.Render("●", styles.StatusText(statusKey(status.State())).Background(bg.Color())) + bg.Space() +
			bg.Render(truncate(status.Text(), m.width/2), styles.Text),
	}

	if m.dash.Busy() {
		busyStyle := styles.StatusText("busy").Background(bg.Color())
		parts = append(parts, bg.Render(m.spinner.View(), busyStyle)+bg.Space()+bg.Render(m.dash.BusyLabel(), busyStyle))
	}

	left := bg.Join(parts, "  ")

	right := ""
	if m.sched != nil && m.width >= LayoutWideWidth {
		right = bg.Render(m.sched.Describe(m.clock), styles.MutedText)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if right == "" || gap < 1 {
		return styles.Header.Width(m.width).Render(left)
	}
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + right)
}
