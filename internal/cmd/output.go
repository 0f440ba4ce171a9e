package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/five82/lookout/internal/jobsearch"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func renderJobs(ctx *Context, jobs []jobsearch.Job) error {
	table := tablewriter.NewWriter(ctx.Out)
	table.Header("Title", "Company", "Link", "Keywords", "Skills")
	for _, job := range jobs {
		link := job.JobLink
		if link == "" {
			link = "-"
		} else {
			link = ctx.UI.LinkText(link)
		}
		if err := table.Append(orDash(job.JobTitle), orDash(job.CompanyName), link, orDash(job.KeywordsText()), orDash(job.SkillsText())); err != nil {
			return fmt.Errorf("render jobs: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render jobs: %w", err)
	}
	return nil
}

func renderHistory(ctx *Context, results []jobsearch.SearchResultSummary) error {
	table := tablewriter.NewWriter(ctx.Out)
	table.Header("Query", "Date", "Jobs Found")
	for _, r := range results {
		if err := table.Append(orDash(r.SearchQuery), r.DisplayDate(), strconv.Itoa(r.TotalCount)); err != nil {
			return fmt.Errorf("render history: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render history: %w", err)
	}
	return nil
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
