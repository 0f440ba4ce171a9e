package cmd

import (
	"fmt"
	"strings"

	"github.com/five82/lookout/internal/dashboard"
	"github.com/five82/lookout/internal/jobsearch"
)

type SearchCmd struct {
	Query    string `help:"Job title or keywords. Defaults to the configured query." placeholder:"TEXT"`
	Location string `help:"Location filter. Defaults to the configured location." placeholder:"TEXT"`
	Days     int    `help:"Only jobs posted within this many days." default:"1"`
}

func (s *SearchCmd) request(ctx *Context) (jobsearch.SearchRequest, error) {
	if s.Days < 1 {
		return jobsearch.SearchRequest{}, fmt.Errorf("--days must be at least 1, got %d", s.Days)
	}
	return jobsearch.SearchRequest{
		Query:      firstNonEmpty(s.Query, ctx.Config.DefaultQuery, dashboard.DefaultQuery),
		Location:   firstNonEmpty(s.Location, ctx.Config.DefaultLocation, dashboard.DefaultLocation),
		DaysFilter: s.Days,
	}, nil
}

func (s *SearchCmd) Run(ctx *Context) error {
	req, err := s.request(ctx)
	if err != nil {
		return err
	}
	ctx.Logger.Info().Str("query", req.Query).Str("location", req.Location).Int("days_filter", req.DaysFilter).Msg("headless search")

	resp, err := ctx.Client.SearchJobs(ctx.Ctx, req)
	if err != nil {
		return fmt.Errorf("search jobs: %w", err)
	}
	if ctx.JSONOutput {
		return writeJSON(ctx.Out, resp.Jobs)
	}
	if len(resp.Jobs) == 0 {
		ctx.UI.Warnf("No jobs found for %q in %q", req.Query, req.Location)
		return nil
	}
	if err := renderJobs(ctx, resp.Jobs); err != nil {
		return err
	}
	ctx.UI.Successf("Found %d jobs", len(resp.Jobs))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
