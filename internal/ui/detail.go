package ui

import (
	"strings"

	"github.com/five82/lookout/internal/jobsearch"
)

// renderDetailLine shows location, posting date and source of the selected
// job, or a hint when there is nothing to show.
func (m Model) renderDetailLine(jobs []jobsearch.Job) string {
	styles := m.theme.Styles()
	if len(jobs) == 0 {
		hint := "Press ctrl+s to search jobs posted in the last 24 hours"
		if m.dash.Search.Searched() {
			hint = "No jobs found for this search"
		}
		return "  " + styles.MutedText.Render(hint)
	}

	job := jobs[clampRow(m.jobRow, len(jobs))]
	fields := []struct {
		label string
		value string
	}{
		{"Location", job.Location},
		{"Posted", job.PostedDate},
		{"Source", job.Source},
	}
	parts := make([]string, 0, len(fields)+1)
	parts = append(parts, styles.Text.Bold(true).Render(truncate(job.JobTitle, 40)))
	for _, f := range fields {
		parts = append(parts, styles.FaintText.Render(f.label+":")+" "+styles.MutedText.Render(orDash(f.value)))
	}
	return "  " + strings.Join(parts, styles.FaintText.Render(" · "))
}
