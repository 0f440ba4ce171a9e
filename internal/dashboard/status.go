package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/jobsearch"
)

// StatusState is the health monitor's lifecycle.
type StatusState int

const (
	StatusPending StatusState = iota
	StatusHealthy
	StatusFailed
)

const (
	StatusLoadingText = "Loading..."
	StatusErrorText   = "System Error"
)

type statusResultMsg struct {
	seq  uint64
	resp jobsearch.StatusResponse
	err  error
}

// StatusMonitor fetches the backend health message once per session.
type StatusMonitor struct {
	ctx     context.Context
	gateway jobsearch.Gateway
	seq     *Sequencer
	logger  zerolog.Logger

	started bool
	state   StatusState
	message string
}

func newStatusMonitor(ctx context.Context, gw jobsearch.Gateway, seq *Sequencer, logger zerolog.Logger) *StatusMonitor {
	return &StatusMonitor{ctx: ctx, gateway: gw, seq: seq, logger: logger}
}

// Fetch starts the one-shot status request. Later calls return nil.
func (m *StatusMonitor) Fetch() tea.Cmd {
	if m.started {
		return nil
	}
	m.started = true
	seq := m.seq.Next(KindStatus)
	ctx, gw := m.ctx, m.gateway
	return func() tea.Msg {
		var resp jobsearch.StatusResponse
		err := guard("get status", func() error {
			var err error
			resp, err = gw.GetStatus(ctx)
			return err
		})
		return statusResultMsg{seq: seq, resp: resp, err: err}
	}
}

func (m *StatusMonitor) apply(msg statusResultMsg) {
	if !m.seq.IsLatest(KindStatus, msg.seq) || m.state != StatusPending {
		return
	}
	if msg.err != nil {
		m.state = StatusFailed
		m.logger.Error().Err(msg.err).Msg("status check failed")
		return
	}
	m.state = StatusHealthy
	m.message = msg.resp.Message
	m.logger.Info().Str("message", m.message).Msg("backend healthy")
}

// State returns the current lifecycle state.
func (m *StatusMonitor) State() StatusState {
	return m.state
}

// Text returns the status label shown in the header.
func (m *StatusMonitor) Text() string {
	switch m.state {
	case StatusHealthy:
		return m.message
	case StatusFailed:
		return StatusErrorText
	default:
		return StatusLoadingText
	}
}
