package ui

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/dashboard"
	"github.com/five82/lookout/internal/jobsearch"
	"github.com/five82/lookout/internal/jobsearch/jobsearchtest"
)

type openRecorder struct {
	mu   sync.Mutex
	urls []string
}

func (o *openRecorder) open(url string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
	return nil
}

func (o *openRecorder) opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.urls...)
}

func newTestModel(t *testing.T, srv *jobsearchtest.Server, logPath string) (Model, *openRecorder) {
	t.Helper()
	client := jobsearch.NewClient(srv.URL)
	dash := dashboard.New(dashboard.Options{
		Context: context.Background(),
		Gateway: client,
		Logger:  zerolog.Nop(),
	})
	rec := &openRecorder{}
	m := New(Options{
		Context:   context.Background(),
		Dashboard: dash,
		ThemeName: "Nightfox",
		LogPath:   logPath,
		Logger:    zerolog.Nop(),
		Opener:    rec.open,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return updated.(Model), rec
}

// drain runs cmd and feeds the resulting dashboard, log and open messages
// back into the model until nothing is left. Timers other than the spinner
// are never started by the flows under test.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		switch msg.(type) {
		case logLinesMsg:
			updated, _ := m.Update(msg)
			m = updated.(Model)
			continue
		case openResultMsg:
		default:
			if !m.dash.Owns(msg) {
				continue
			}
		}
		updated, follow := m.Update(msg)
		m = updated.(Model)
		queue = append(queue, follow)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitShowsStatusAndHistory(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetResults([]jobsearch.SearchResultSummary{
		{SearchQuery: "Vendor Risk Analyst", SearchDate: "2026-10-18T09:00:00", TotalCount: 7},
	})
	m, _ := newTestModel(t, srv, "")

	m = drain(t, m, m.dash.Init())

	view := m.View()
	for _, want := range []string{"TPRM Job Search Automation System", "Vendor Risk Analyst", "Automated Runs (1)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, viewJobLabel) {
		t.Errorf("jobs table rendered before any search")
	}
}

func TestStatusFailureShowsSystemError(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.Fail(jobsearch.PathStatus, http.StatusInternalServerError)
	m, _ := newTestModel(t, srv, "")

	m = drain(t, m, m.dash.Init())

	if !strings.Contains(m.View(), dashboard.StatusErrorText) {
		t.Fatalf("view missing %q", dashboard.StatusErrorText)
	}
	if _, ok := m.dash.Notice(); ok {
		t.Fatalf("status failure raised a notice")
	}
}

func TestSearchKeyFillsJobsTable(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetJobs([]jobsearch.Job{
		{ID: "1", JobTitle: "TPRM Analyst", CompanyName: "Acme", JobLink: "https://jobs.example/1", Keywords: []string{"tprm"}},
	})
	m, _ := newTestModel(t, srv, "")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("search key returned no command")
	}
	if !m.dash.Busy() {
		t.Fatal("dashboard not busy after search key")
	}
	m = drain(t, m, cmd)

	if m.dash.Busy() {
		t.Fatal("dashboard still busy after search completed")
	}
	view := m.View()
	for _, want := range []string{"Jobs (1)", "TPRM Analyst", "Acme", viewJobLabel} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	got := srv.Searches()
	want := jobsearch.SearchRequest{Query: dashboard.DefaultQuery, Location: dashboard.DefaultLocation, DaysFilter: 1}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("searches = %+v, want [%+v]", got, want)
	}
}

func TestEditedQueryIsSearchedOnEnter(t *testing.T) {
	srv := jobsearchtest.New(t)
	m, _ := newTestModel(t, srv, "")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	m, _ = press(t, m, keyRunes("Vendor Risk"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = drain(t, m, cmd)

	got := srv.Searches()
	if len(got) != 1 || got[0].Query != "Vendor Risk" {
		t.Fatalf("searches = %+v, want query %q", got, "Vendor Risk")
	}
	if !strings.Contains(m.View(), "No jobs found for this search") {
		t.Fatalf("empty result hint not shown")
	}
}

func TestBusyRejectsSecondAction(t *testing.T) {
	srv := jobsearchtest.New(t)
	m, _ := newTestModel(t, srv, "")

	m, searchCmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, runCmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if runCmd != nil {
		t.Fatal("run now accepted while a search was in flight")
	}
	if !strings.Contains(m.View(), "Searching jobs...") {
		t.Fatal("busy label not rendered")
	}
	m = drain(t, m, searchCmd)

	if n := srv.Calls(jobsearch.PathTriggerSearch); n != 0 {
		t.Fatalf("trigger calls = %d, want 0", n)
	}
	if m.dash.Busy() {
		t.Fatal("dashboard still busy")
	}
}

func TestNoticeBlocksKeysUntilDismissed(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.Fail(jobsearch.PathSearchJobs, http.StatusBadGateway)
	m, _ := newTestModel(t, srv, "")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = drain(t, m, cmd)

	if !strings.Contains(m.View(), "Search failed") {
		t.Fatal("search failure notice not rendered")
	}
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd != nil {
		t.Fatal("key reached the dashboard behind a notice")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.dash.Notice(); ok {
		t.Fatal("notice not dismissed")
	}
	if strings.Contains(m.View(), "Search failed") {
		t.Fatal("notice still rendered after dismiss")
	}
}

func TestRunNowRefreshesHistory(t *testing.T) {
	srv := jobsearchtest.New(t)
	m, _ := newTestModel(t, srv, "")
	m = drain(t, m, m.dash.Init())

	srv.SetResults([]jobsearch.SearchResultSummary{{SearchQuery: "Manual run", SearchDate: "2026-10-19", TotalCount: 3}})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m = drain(t, m, cmd)

	if n := srv.Calls(jobsearch.PathJobResults); n != 2 {
		t.Fatalf("job-results calls = %d, want 2", n)
	}
	if !strings.Contains(m.View(), "Run complete") {
		t.Fatal("success notice not rendered")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "Manual run") {
		t.Fatal("history not refreshed after run")
	}
}

func TestFocusCycleSkipsHiddenJobs(t *testing.T) {
	srv := jobsearchtest.New(t)
	m, _ := newTestModel(t, srv, "")

	order := []focusArea{focusLocation, focusHistory, focusQuery}
	for _, want := range order {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.focus != want {
			t.Fatalf("focus = %d, want %d", m.focus, want)
		}
	}

	srv.SetJobs([]jobsearch.Job{{ID: "1", JobTitle: "Analyst"}})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = drain(t, m, cmd)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusJobs {
		t.Fatalf("focus = %d, want jobs", m.focus)
	}
}

func TestOpenLinkUsesOpener(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetJobs([]jobsearch.Job{
		{ID: "1", JobTitle: "First", JobLink: "https://jobs.example/1"},
		{ID: "2", JobTitle: "Second", JobLink: "https://jobs.example/2"},
	})
	m, rec := newTestModel(t, srv, "")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = drain(t, m, cmd)

	m.setFocus(focusJobs)
	m, _ = press(t, m, keyRunes("j"))
	m, cmd = press(t, m, keyRunes("o"))
	m = drain(t, m, cmd)

	got := rec.opened()
	if len(got) != 1 || got[0] != "https://jobs.example/2" {
		t.Fatalf("opened = %v, want [https://jobs.example/2]", got)
	}
	if !strings.Contains(m.View(), "Second") {
		t.Fatal("detail line does not follow the selection")
	}
}

func TestLogPaneShowsFormattedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lookout.log")
	line := `{"level":"warn","component":"history","time":"2026-10-19T08:00:00Z","message":"history refresh failed"}`
	if err := os.WriteFile(path, []byte(line+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv := jobsearchtest.New(t)
	m, _ := newTestModel(t, srv, path)

	m.setFocus(focusHistory)
	m, cmd := press(t, m, keyRunes("l"))
	if !m.showLogs {
		t.Fatal("log pane not opened")
	}
	m = drain(t, m, cmd)

	view := m.View()
	if !strings.Contains(view, "history refresh failed") || !strings.Contains(view, "WARN") {
		t.Fatalf("log pane missing formatted line:\n%s", view)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showLogs {
		t.Fatal("esc did not close the log pane")
	}
}

func TestStaleLogReadIsDropped(t *testing.T) {
	srv := jobsearchtest.New(t)
	m, _ := newTestModel(t, srv, "/tmp/lookout-test.log")
	m.showLogs = true
	m.logGen = 2

	if cmd := m.handleLogLines(logLinesMsg{gen: 1, lines: []string{"old"}}); cmd != nil {
		t.Fatal("stale read scheduled a refresh")
	}
	if m.logViewport.TotalLineCount() > 1 {
		t.Fatal("stale read replaced viewport content")
	}
}
