package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/jobsearch"
)

// Options configures a Dashboard.
type Options struct {
	Context  context.Context
	Gateway  jobsearch.Gateway
	Logger   zerolog.Logger
	Query    string
	Location string
}

// Dashboard wires the operator components around one gateway. All methods
// must be called from a single goroutine, normally a Bubble Tea Update loop.
type Dashboard struct {
	Status  *StatusMonitor
	Search  *SearchController
	Trigger *AutomationTrigger
	History *HistoryStore

	busy    *Coordinator
	seq     *Sequencer
	bus     *Bus
	logger  zerolog.Logger
	notices []Notice
}

// New builds a dashboard.
func New(opts Options) *Dashboard {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	gw := opts.Gateway
	d := &Dashboard{
		busy:   NewCoordinator(),
		seq:    &Sequencer{},
		bus:    &Bus{},
		logger: opts.Logger,
	}
	d.Status = newStatusMonitor(ctx, gw, d.seq, d.logger.With().Str("component", "status").Logger())
	d.Search = newSearchController(ctx, gw, d.busy, d.seq, d.pushNotice, d.logger.With().Str("component", "search").Logger())
	d.History = newHistoryStore(ctx, gw, d.seq, d.bus, d.logger.With().Str("component", "history").Logger())
	d.Trigger = newAutomationTrigger(ctx, gw, d.busy, d.bus, d.pushNotice, d.logger.With().Str("component", "trigger").Logger())

	if q := strings.TrimSpace(opts.Query); q != "" {
		d.Search.SetQuery(q)
	}
	if l := strings.TrimSpace(opts.Location); l != "" {
		d.Search.SetLocation(l)
	}
	return d
}

// Init starts the status check and the initial history load concurrently.
func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(d.Status.Fetch(), d.History.Refresh())
}

// Update applies a result message to its owning component. Messages the
// dashboard does not own are ignored and yield a nil command.
func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statusResultMsg:
		d.Status.apply(msg)
	case searchResultMsg:
		d.Search.apply(msg)
	case historyResultMsg:
		d.History.apply(msg)
	case runNowResultMsg:
		return d.Trigger.applyRunNow(msg)
	case testNotificationResultMsg:
		d.Trigger.applyTestNotification(msg)
	}
	return nil
}

// Owns reports whether msg is a dashboard result message.
func (d *Dashboard) Owns(msg tea.Msg) bool {
	switch msg.(type) {
	case statusResultMsg, searchResultMsg, historyResultMsg, runNowResultMsg, testNotificationResultMsg:
		return true
	}
	return false
}

// Busy reports whether a user-initiated operation is outstanding.
func (d *Dashboard) Busy() bool {
	return d.busy.Busy()
}

// BusyLabel describes the outstanding operation, or "" when idle.
func (d *Dashboard) BusyLabel() string {
	return d.busy.Label()
}

// Notice returns the oldest undismissed notice.
func (d *Dashboard) Notice() (Notice, bool) {
	if len(d.notices) == 0 {
		return Notice{}, false
	}
	return d.notices[0], true
}

// DismissNotice removes the oldest notice.
func (d *Dashboard) DismissNotice() {
	if len(d.notices) == 0 {
		return
	}
	d.notices = d.notices[1:]
}

func (d *Dashboard) pushNotice(n Notice) {
	d.notices = append(d.notices, n)
}

// guard runs fn and converts a panic into an error so the caller still
// produces a result message and releases its busy token.
func guard(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", op, r)
		}
	}()
	return fn()
}
