package dashboard

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/jobsearch"
)

type historyResultMsg struct {
	seq     uint64
	results []jobsearch.SearchResultSummary
	err     error
}

// HistoryStore owns the list of past automated runs.
type HistoryStore struct {
	ctx     context.Context
	gateway jobsearch.Gateway
	seq     *Sequencer
	logger  zerolog.Logger

	results  []jobsearch.SearchResultSummary
	loaded   bool
	inFlight int
}

func newHistoryStore(ctx context.Context, gw jobsearch.Gateway, seq *Sequencer, bus *Bus, logger zerolog.Logger) *HistoryStore {
	h := &HistoryStore{ctx: ctx, gateway: gw, seq: seq, logger: logger}
	bus.Subscribe(EventManualRunCompleted, func(Event) tea.Cmd {
		return h.Refresh()
	})
	return h
}

// Refresh reloads the history from the backend.
func (h *HistoryStore) Refresh() tea.Cmd {
	seq := h.seq.Next(KindHistory)
	h.inFlight++
	ctx, gw := h.ctx, h.gateway
	return func() tea.Msg {
		var results []jobsearch.SearchResultSummary
		err := guard("list job results", func() error {
			var err error
			results, err = gw.ListJobResults(ctx)
			return err
		})
		return historyResultMsg{seq: seq, results: results, err: err}
	}
}

func (h *HistoryStore) apply(msg historyResultMsg) {
	if h.inFlight > 0 {
		h.inFlight--
	}
	if !h.seq.IsLatest(KindHistory, msg.seq) {
		h.logger.Debug().Uint64("seq", msg.seq).Msg("stale history response dropped")
		return
	}
	if msg.err != nil {
		event := h.logger.Warn().Err(msg.err)
		var te *jobsearch.TransportError
		if errors.As(msg.err, &te) {
			event = event.Str("op", te.Op).Str("path", te.Path).Int("status", te.Status)
		}
		event.Msg("history refresh failed")
		return
	}
	h.results = cloneResults(msg.results)
	h.loaded = true
	h.logger.Debug().Int("runs", len(h.results)).Msg("history refreshed")
}

// Results returns a copy of the run history in backend order.
func (h *HistoryStore) Results() []jobsearch.SearchResultSummary {
	return cloneResults(h.results)
}

// Loaded reports whether a refresh has succeeded at least once.
func (h *HistoryStore) Loaded() bool {
	return h.loaded
}

// Refreshing reports whether a refresh is outstanding.
func (h *HistoryStore) Refreshing() bool {
	return h.inFlight > 0
}

func cloneResults(results []jobsearch.SearchResultSummary) []jobsearch.SearchResultSummary {
	if len(results) == 0 {
		return nil
	}
	dup := make([]jobsearch.SearchResultSummary, len(results))
	copy(dup, results)
	return dup
}
