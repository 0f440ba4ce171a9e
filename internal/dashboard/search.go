package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/jobsearch"
)

// Sample search values used when no defaults are configured.
const (
	DefaultQuery    = "Third Party Risk Assessment"
	DefaultLocation = "Bangalore India OR remote"
)

type searchResultMsg struct {
	token Token
	seq   uint64
	req   jobsearch.SearchRequest
	jobs  []jobsearch.Job
	err   error
}

// SearchController owns the search form and the live job list.
type SearchController struct {
	ctx     context.Context
	gateway jobsearch.Gateway
	busy    *Coordinator
	seq     *Sequencer
	notify  func(Notice)
	logger  zerolog.Logger

	query    string
	location string
	jobs     []jobsearch.Job
	searched bool
}

func newSearchController(ctx context.Context, gw jobsearch.Gateway, busy *Coordinator, seq *Sequencer, notify func(Notice), logger zerolog.Logger) *SearchController {
	return &SearchController{
		ctx:      ctx,
		gateway:  gw,
		busy:     busy,
		seq:      seq,
		notify:   notify,
		logger:   logger,
		query:    DefaultQuery,
		location: DefaultLocation,
	}
}

// SetQuery updates the query field. Editing is allowed while busy.
func (s *SearchController) SetQuery(v string) { s.query = v }

// SetLocation updates the location field. Editing is allowed while busy.
func (s *SearchController) SetLocation(v string) { s.location = v }

// Query returns the current query field.
func (s *SearchController) Query() string { return s.query }

// Location returns the current location field.
func (s *SearchController) Location() string { return s.location }

// Request builds the wire request from the current fields.
func (s *SearchController) Request() jobsearch.SearchRequest {
	return jobsearch.SearchRequest{
		Query:      s.query,
		Location:   s.location,
		DaysFilter: jobsearch.DefaultDaysFilter,
	}
}

// Search starts a search with the current fields. It returns nil when another
// operation is in flight.
func (s *SearchController) Search() tea.Cmd {
	tok, ok := s.busy.Acquire(KindSearch)
	if !ok {
		s.logger.Debug().Msg("search ignored while busy")
		return nil
	}
	req := s.Request()
	seq := s.seq.Next(KindSearch)
	ctx, gw := s.ctx, s.gateway
	s.logger.Info().Str("query", req.Query).Str("location", req.Location).Msg("search started")
	return func() tea.Msg {
		var jobs []jobsearch.Job
		err := guard("search jobs", func() error {
			resp, err := gw.SearchJobs(ctx, req)
			jobs = resp.Jobs
			return err
		})
		return searchResultMsg{token: tok, seq: seq, req: req, jobs: jobs, err: err}
	}
}

func (s *SearchController) apply(msg searchResultMsg) {
	defer s.busy.Release(msg.token)

	if !s.seq.IsLatest(KindSearch, msg.seq) {
		s.logger.Debug().Uint64("seq", msg.seq).Msg("stale search response dropped")
		return
	}
	if msg.err != nil {
		s.logger.Error().Err(msg.err).Str("query", msg.req.Query).Msg("search failed")
		s.notify(errorNotice("Search failed", searchFailedText, msg.err))
		return
	}
	s.jobs = cloneJobs(msg.jobs)
	s.searched = true
	s.logger.Info().Int("jobs", len(s.jobs)).Msg("search complete")
}

// Jobs returns a copy of the live job list.
func (s *SearchController) Jobs() []jobsearch.Job {
	return cloneJobs(s.jobs)
}

// Searched reports whether any search has completed successfully.
func (s *SearchController) Searched() bool {
	return s.searched
}

func cloneJobs(jobs []jobsearch.Job) []jobsearch.Job {
	if len(jobs) == 0 {
		return nil
	}
	dup := make([]jobsearch.Job, len(jobs))
	copy(dup, jobs)
	return dup
}
