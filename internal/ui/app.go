package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/dashboard"
	"github.com/five82/lookout/internal/jobsearch"
	"github.com/five82/lookout/internal/schedule"
)

// focusArea is the part of the screen receiving keys.
type focusArea int

const (
	focusQuery focusArea = iota
	focusLocation
	focusJobs
	focusHistory
	focusCount
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Dashboard  *dashboard.Dashboard
	Schedule   *schedule.Schedule
	ThemeName  string
	LogPath    string
	Logger     zerolog.Logger
	Hyperlinks bool
	// Opener launches a URL in the system browser. Nil uses openURL.
	Opener func(url string) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	dash       *dashboard.Dashboard
	sched      *schedule.Schedule
	logger     zerolog.Logger
	logPath    string
	opener     func(string) error
	hyperlinks bool
	keys       keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea
	clock  time.Time

	// Form
	queryInput    textinput.Model
	locationInput textinput.Model
	spinner       spinner.Model

	// Tables
	jobRow     int
	historyRow int

	// Overlays
	showHelp    bool
	showLogs    bool
	logGen      int
	logViewport viewport.Model
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	dash := opts.Dashboard
	if dash == nil {
		dash = dashboard.New(dashboard.Options{Context: ctx, Logger: opts.Logger})
	}
	opener := opts.Opener
	if opener == nil {
		opener = openURL
	}

	m := Model{
		ctx:        ctx,
		dash:       dash,
		sched:      opts.Schedule,
		logger:     opts.Logger,
		logPath:    opts.LogPath,
		opener:     opener,
		hyperlinks: opts.Hyperlinks,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(opts.ThemeName),
		clock:      time.Now(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	m.queryInput = textinput.New()
	m.queryInput.Prompt = ""
	m.queryInput.Placeholder = "Job title or keywords"
	m.queryInput.SetValue(dash.Search.Query())

	m.locationInput = textinput.New()
	m.locationInput.Prompt = ""
	m.locationInput.Placeholder = "City, country or remote"
	m.locationInput.SetValue(dash.Search.Location())

	m.applyThemeToInputs()
	m.queryInput.Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dash.Init(),
		textinput.Blink,
		clockCmd(ClockInterval),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.logViewport = viewport.New(m.logPaneWidth(), m.logPaneHeight())
		}
		m.ready = true
		m.resizeInputs()
		m.resizeLogViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.dash.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clockMsg:
		m.clock = time.Time(msg)
		return m, clockCmd(ClockInterval)

	case logLinesMsg:
		return m, m.handleLogLines(msg)

	case logRefreshMsg:
		if !m.showLogs || msg.gen != m.logGen {
			return m, nil
		}
		return m, readLogCmd(m.logPath, msg.gen)

	case openResultMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("url", msg.url).Msg("open job link failed")
		}
		return m, nil
	}

	if m.dash.Owns(msg) {
		cmd := m.dash.Update(msg)
		m.clampSelection()
		m.ensureFocusVisible()
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if n, ok := m.dash.Notice(); ok {
		return m.renderNotice(n)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// A notice blocks everything until dismissed.
	if _, ok := m.dash.Notice(); ok {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dash.DismissNotice()
		}
		return m, nil
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m.startAction(m.dash.Search.Search())
	case key.Matches(msg, m.keys.RunNow):
		return m.startAction(m.dash.Trigger.RunNow())
	case key.Matches(msg, m.keys.TestMail):
		return m.startAction(m.dash.Trigger.SendTestNotification())
	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(-1)
		return m, nil
	}

	if m.inputFocused() {
		if key.Matches(msg, m.keys.Confirm) {
			return m.startAction(m.dash.Search.Search())
		}
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyThemeToInputs()
	case key.Matches(msg, m.keys.Logs):
		return m, m.openLogs()
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.moveSelection(-1 << 20)
	case key.Matches(msg, m.keys.Bottom):
		m.moveSelection(1 << 20)
	case key.Matches(msg, m.keys.OpenLink):
		if job, ok := m.selectedJob(); ok && m.focus == focusJobs {
			return m, openCmd(m.opener, job.JobLink)
		}
	}
	return m, nil
}

// startAction wraps a dashboard command with the busy spinner. A nil command
// means the dashboard refused the action.
func (m Model) startAction(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if cmd == nil {
		return m, nil
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) inputFocused() bool {
	return m.focus == focusQuery || m.focus == focusLocation
}

// updateFocusedInput forwards msg to the focused text field and mirrors its
// value into the search controller.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusQuery:
		m.queryInput, cmd = m.queryInput.Update(msg)
		m.dash.Search.SetQuery(m.queryInput.Value())
	case focusLocation:
		m.locationInput, cmd = m.locationInput.Update(msg)
		m.dash.Search.SetLocation(m.locationInput.Value())
	}
	return m, cmd
}

// cycleFocus moves focus by step, skipping the jobs table while it is hidden.
func (m *Model) cycleFocus(step int) {
	next := m.focus
	for i := 0; i < int(focusCount); i++ {
		next = focusArea((int(next) + step + int(focusCount)) % int(focusCount))
		if next == focusJobs && len(m.dash.Search.Jobs()) == 0 {
			continue
		}
		break
	}
	m.setFocus(next)
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.queryInput.Blur()
	m.locationInput.Blur()
	switch f {
	case focusQuery:
		m.queryInput.Focus()
	case focusLocation:
		m.locationInput.Focus()
	}
}

// ensureFocusVisible moves focus off the jobs table once it disappears.
func (m *Model) ensureFocusVisible() {
	if m.focus == focusJobs && len(m.dash.Search.Jobs()) == 0 {
		m.setFocus(focusHistory)
	}
}

func (m *Model) moveSelection(delta int) {
	switch m.focus {
	case focusJobs:
		m.jobRow = clampRow(m.jobRow+delta, len(m.dash.Search.Jobs()))
	case focusHistory:
		m.historyRow = clampRow(m.historyRow+delta, len(m.dash.History.Results()))
	}
}

func (m *Model) clampSelection() {
	m.jobRow = clampRow(m.jobRow, len(m.dash.Search.Jobs()))
	m.historyRow = clampRow(m.historyRow, len(m.dash.History.Results()))
}

func clampRow(row, count int) int {
	if count <= 0 || row < 0 {
		return 0
	}
	if row >= count {
		return count - 1
	}
	return row
}

func (m Model) selectedJob() (jobsearch.Job, bool) {
	jobs := m.dash.Search.Jobs()
	if len(jobs) == 0 {
		return jobsearch.Job{}, false
	}
	return jobs[clampRow(m.jobRow, len(jobs))], true
}

func (m *Model) applyThemeToInputs() {
	styles := m.theme.Styles()
	for _, in := range []*textinput.Model{&m.queryInput, &m.locationInput} {
		in.TextStyle = styles.Text
		in.PlaceholderStyle = styles.FaintText
		in.Cursor.Style = styles.AccentText
	}
	m.spinner.Style = styles.WarningText
}

func (m *Model) resizeInputs() {
	w := m.width - formLabelWidth - 4
	if w < 10 {
		w = 10
	}
	m.queryInput.Width = w
	m.locationInput.Width = w
}

// renderMain renders the dashboard screen.
func (m Model) renderMain() string {
	sections := []string{
		m.renderHeader(),
		m.renderForm(),
	}
	sections = append(sections, m.renderTables()...)
	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

// Messages

type clockMsg time.Time

type openResultMsg struct {
	url string
	err error
}

// Commands

func clockCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func openCmd(opener func(string) error, url string) tea.Cmd {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		return openResultMsg{url: url, err: opener(url)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
