package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/lookout/internal/jobsearch"
)

// viewJobLabel is the text of the link cell in the jobs table.
const viewJobLabel = "View Job"

type column struct {
	title string
	width int
}

// renderTables renders the jobs table (hidden when empty), the detail line
// for the selected job and the run history table.
func (m Model) renderTables() []string {
	avail := m.height - headerHeight - formHeight - footerHeight - detailHeight
	if avail < 6 {
		avail = 6
	}

	jobs := m.dash.Search.Jobs()
	var out []string
	historyHeight := avail
	if len(jobs) > 0 {
		jobsHeight := max(avail*55/100, 4)
		historyHeight = max(avail-jobsHeight, 4)
		title := fmt.Sprintf("Jobs (%d)", len(jobs))
		out = append(out, m.renderTitledBox(title, m.renderJobRows(jobs, m.width-2, jobsHeight-2), m.width, jobsHeight, m.focus == focusJobs))
	}
	out = append(out, m.renderDetailLine(jobs))

	results := m.dash.History.Results()
	title := fmt.Sprintf("Automated Runs (%d)", len(results))
	out = append(out, m.renderTitledBox(title, m.renderHistoryRows(results, m.width-2, historyHeight-2), m.width, historyHeight, m.focus == focusHistory))
	return out
}

// jobColumns lays out the jobs table for the given inner width. Keyword and
// skill columns are dropped on narrow terminals.
func jobColumns(width int) []column {
	link := len(viewJobLabel) + 2
	if width < LayoutCompactWidth {
		rest := max(width-link, 20)
		title := rest * 55 / 100
		return []column{
			{"Title", title},
			{"Company", rest - title},
			{"Link", link},
		}
	}
	rest := width - link
	title := rest * 30 / 100
	company := rest * 20 / 100
	keywords := rest * 25 / 100
	return []column{
		{"Title", title},
		{"Company", company},
		{"Link", link},
		{"Keywords", keywords},
		{"Skills", rest - title - company - keywords},
	}
}

func jobCells(job jobsearch.Job) []string {
	return []string{job.JobTitle, job.CompanyName, viewJobLabel, job.KeywordsText(), job.SkillsText()}
}

// renderJobRows renders the header and the visible window of job rows.
func (m Model) renderJobRows(jobs []jobsearch.Job, width, height int) string {
	cols := jobColumns(width)
	lines := []string{m.renderColumnHeader(cols)}

	start, end := visibleWindow(m.jobRow, len(jobs), height-1)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderJobRow(jobs[i], cols, width, i == m.jobRow && m.focus == focusJobs))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderJobRow(job jobsearch.Job, cols []column, width int, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	linkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Underline(true)
	if selected {
		bgColor = m.theme.SelectionBg
		textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		linkStyle = textStyle.Underline(true)
	}
	bg := NewBgStyle(bgColor)

	cells := jobCells(job)
	parts := make([]string, 0, len(cols))
	for i, col := range cols {
		text := padRight(truncate(cells[i], col.width-1), col.width)
		if col.title == "Link" {
			parts = append(parts, m.renderLinkCell(job.JobLink, text, bg, linkStyle))
			continue
		}
		parts = append(parts, bg.Render(text, textStyle))
	}
	return bg.FillLine(strings.Join(parts, ""), width)
}

// renderLinkCell renders "View Job", wrapped in an OSC 8 hyperlink when the
// terminal supports it. Jobs without a link show a dash.
func (m Model) renderLinkCell(link, padded string, bg BgStyle, style lipgloss.Style) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return bg.Render(padRight("-", len(padded)), style.Underline(false))
	}
	label := bg.Render(viewJobLabel, style)
	if m.hyperlinks {
		label = termenv.Hyperlink(link, label)
	}
	return label + bg.Spaces(len(padded)-len(viewJobLabel))
}

// historyColumns lays out the run history table.
func historyColumns(width int) []column {
	date := 12
	count := 12
	return []column{
		{"Query", max(width-date-count, 10)},
		{"Date", date},
		{"Jobs Found", count},
	}
}

func (m Model) renderHistoryRows(results []jobsearch.SearchResultSummary, width, height int) string {
	styles := m.theme.Styles()
	if len(results) == 0 {
		msg := "No automated runs recorded yet"
		if m.dash.History.Refreshing() && !m.dash.History.Loaded() {
			msg = "Loading history..."
		}
		return styles.MutedText.Background(lipgloss.Color(m.theme.SurfaceAlt)).Render(msg)
	}

	cols := historyColumns(width)
	lines := []string{m.renderColumnHeader(cols)}
	start, end := visibleWindow(m.historyRow, len(results), height-1)
	for i := start; i < end; i++ {
		r := results[i]
		cells := []string{r.SearchQuery, r.DisplayDate(), fmt.Sprintf("%d", r.TotalCount)}
		selected := i == m.historyRow && m.focus == focusHistory

		bgColor := m.theme.SurfaceAlt
		textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
		if selected {
			bgColor = m.theme.SelectionBg
			textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		}
		bg := NewBgStyle(bgColor)
		var row strings.Builder
		for j, col := range cols {
			row.WriteString(bg.Render(padRight(truncate(orDash(cells[j]), col.width-1), col.width), textStyle))
		}
		lines = append(lines, bg.FillLine(row.String(), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderColumnHeader(cols []column) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted)).Bold(true)
	var b strings.Builder
	for _, col := range cols {
		b.WriteString(bg.Render(padRight(col.title, col.width), style))
	}
	return b.String()
}

// visibleWindow returns the [start, end) slice of rows that keeps selected
// on screen within height rows.
func visibleWindow(selected, count, height int) (int, int) {
	if height <= 0 || count == 0 {
		return 0, 0
	}
	if count <= height {
		return 0, count
	}
	start := selected - height + 1
	if start < 0 {
		start = 0
	}
	return start, start + height
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// Focused boxes use the focus border and background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	padded := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}
