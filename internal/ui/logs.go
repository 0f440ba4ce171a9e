package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/logtail"
)

// logLinesMsg carries a fresh read of the log file. gen ties it to the
// opening of the log pane that requested it.
type logLinesMsg struct {
	gen   int
	lines []string
	err   error
}

type logRefreshMsg struct {
	gen int
}

// readLogCmd loads the tail of the log file.
func readLogCmd(path string, gen int) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logLinesMsg{gen: gen}
		}
		lines, err := logtail.Read(path, LogTailLines)
		return logLinesMsg{gen: gen, lines: lines, err: err}
	}
}

func logRefreshCmd(gen int) tea.Cmd {
	return tea.Tick(LogRefreshInterval, func(time.Time) tea.Msg {
		return logRefreshMsg{gen: gen}
	})
}

// openLogs shows the log pane and starts a new refresh cycle.
func (m *Model) openLogs() tea.Cmd {
	m.showLogs = true
	m.logGen++
	m.resizeLogViewport()
	return readLogCmd(m.logPath, m.logGen)
}

// handleLogLines applies a log read and schedules the next one while the
// pane stays open. Reads from an earlier opening are dropped.
func (m *Model) handleLogLines(msg logLinesMsg) tea.Cmd {
	if !m.showLogs || msg.gen != m.logGen {
		return nil
	}
	m.logErr = msg.err
	if msg.err == nil {
		atBottom := m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0
		m.logViewport.SetContent(m.colorizeLogLines(logtail.FormatLines(msg.lines), msg.lines))
		if atBottom {
			m.logViewport.GotoBottom()
		}
	}
	if m.logPath == "" {
		return nil
	}
	return logRefreshCmd(msg.gen)
}

// colorizeLogLines tints each formatted line by its level.
func (m Model) colorizeLogLines(formatted, raw []string) string {
	if len(formatted) == 0 {
		return m.theme.Styles().MutedText.Render("Log is empty")
	}
	out := make([]string, len(formatted))
	for i, line := range formatted {
		entry, ok := logtail.Parse(raw[i])
		if !ok {
			out[i] = line
			continue
		}
		out[i] = m.levelStyle(entry.Level).Render(line)
	}
	return strings.Join(out, "\n")
}

func (m Model) levelStyle(level zerolog.Level) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return styles.DangerText
	case zerolog.WarnLevel:
		return styles.WarningText
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return styles.FaintText
	default:
		return styles.Text
	}
}

// handleLogsKey processes keys while the log pane is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logs), msg.String() == "esc":
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

func (m Model) logPaneWidth() int {
	return max(m.width-4, 10)
}

func (m Model) logPaneHeight() int {
	return max(m.height-headerHeight-footerHeight-2, 3)
}

func (m *Model) resizeLogViewport() {
	m.logViewport.Width = m.logPaneWidth()
	m.logViewport.Height = m.logPaneHeight()
}

// renderLogs renders the log pane between the header and footer.
func (m Model) renderLogs() string {
	title := "Log"
	if m.logPath != "" {
		title += " · " + truncateMiddle(m.logPath, max(m.width/2, 20))
	}
	content := m.logViewport.View()
	if m.logErr != nil {
		content = m.theme.Styles().DangerText.Render(m.logErr.Error())
	} else if m.logPath == "" {
		content = m.theme.Styles().MutedText.Render("Logging to a file is disabled")
	}
	box := m.renderTitledBox(title, content, m.width, m.height-headerHeight-footerHeight, true)
	return strings.Join([]string{m.renderHeader(), box, m.renderFooter()}, "\n")
}
