package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// formLabelWidth is the width of the label column in the search form.
const formLabelWidth = 10

// recencyLabel describes the fixed days_filter sent with every search.
const recencyLabel = "Last 24 hours"

// renderForm renders the query and location fields, the fixed recency label
// and the action bar.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	field := func(label string, focused bool, view string) string {
		labelStyle := styles.MutedText
		marker := "  "
		if focused {
			labelStyle = styles.AccentText.Bold(true)
			marker = styles.AccentText.Render("▌ ")
		}
		return marker + labelStyle.Width(formLabelWidth).Render(label) + view
	}

	lines := []string{
		field("Query", m.focus == focusQuery, m.queryInput.View()),
		field("Location", m.focus == focusLocation, m.locationInput.View()),
		"  " + styles.MutedText.Width(formLabelWidth).Render("Posted") + styles.Text.Render(recencyLabel),
		m.renderActionBar(),
	}
	return strings.Join(lines, "\n")
}

// renderActionBar lists the action keys, dimmed while an operation is in
// flight.
func (m Model) renderActionBar() string {
	styles := m.theme.Styles()
	actions := []struct {
		key   string
		label string
	}{
		{"ctrl+s", "Search Jobs"},
		{"ctrl+r", "Run Now"},
		{"ctrl+t", "Test Email"},
	}

	busy := m.dash.Busy()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Bold(true)
	labelStyle := styles.Text
	if busy {
		keyStyle = styles.FaintText
		labelStyle = styles.FaintText
	}

	parts := make([]string, 0, len(actions)+1)
	for _, a := range actions {
		parts = append(parts, keyStyle.Render("["+a.key+"]")+" "+labelStyle.Render(a.label))
	}
	bar := "  " + strings.Join(parts, "   ")
	if busy {
		bar += "   " + m.spinner.View() + " " + styles.WarningText.Render(m.dash.BusyLabel())
	}
	return bar
}
