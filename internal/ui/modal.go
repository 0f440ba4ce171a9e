package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lookout/internal/dashboard"
)

// noticeWidth is the outer width of the notice modal.
const noticeWidth = 56

// renderNotice renders a blocking notice centered over the screen.
func (m Model) renderNotice(n dashboard.Notice) string {
	styles := m.theme.Styles()

	accent := m.theme.NoticeColor(n.Level)

	inner := noticeWidth - 6
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true).Render(n.Title))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Width(inner).Render(n.Text))
	if detail := strings.TrimSpace(n.Detail); detail != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.MutedText.Width(inner).Render(truncate(detail, inner*3)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter / esc to dismiss"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 2).
		Width(noticeWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
