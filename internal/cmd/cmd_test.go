package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/config"
	"github.com/five82/lookout/internal/dashboard"
	"github.com/five82/lookout/internal/jobsearch"
	"github.com/five82/lookout/internal/jobsearch/jobsearchtest"
)

func newTestContext(t *testing.T, srv *jobsearchtest.Server, jsonOut bool) (*Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	return &Context{
		Ctx:        context.Background(),
		Out:        &out,
		Err:        &errOut,
		UI:         NewUI(&out, &errOut, ColorNever, false),
		Config:     config.Default(),
		Logger:     zerolog.Nop(),
		Client:     jobsearch.NewClient(srv.URL),
		JSONOutput: jsonOut,
	}, &out, &errOut
}

func TestStatusCmdPrintsMessage(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetStatus("All systems go")
	ctx, out, _ := newTestContext(t, srv, false)

	if err := (&StatusCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "All systems go" {
		t.Fatalf("output = %q, want %q", got, "All systems go")
	}
}

func TestStatusCmdFailure(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.Fail(jobsearch.PathStatus, http.StatusServiceUnavailable)
	ctx, _, _ := newTestContext(t, srv, false)

	err := (&StatusCmd{}).Run(ctx)
	if err == nil || !jobsearch.IsTransportError(err) {
		t.Fatalf("Run() error = %v, want transport error", err)
	}
}

func TestSearchCmdDefaultsAndTable(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetJobs([]jobsearch.Job{
		{ID: "1", JobTitle: "TPRM Analyst", CompanyName: "Acme", JobLink: "https://jobs.example/1", Keywords: []string{"tprm", "vendor risk"}},
	})
	ctx, out, _ := newTestContext(t, srv, false)

	cmd := &SearchCmd{Days: 1}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := srv.Searches()
	want := jobsearch.SearchRequest{Query: dashboard.DefaultQuery, Location: dashboard.DefaultLocation, DaysFilter: 1}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("searches = %+v, want [%+v]", got, want)
	}
	for _, s := range []string{"TPRM Analyst", "Acme", "https://jobs.example/1", "Found 1 jobs"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("output missing %q:\n%s", s, out.String())
		}
	}
}

func TestSearchCmdUsesConfigAndFlags(t *testing.T) {
	srv := jobsearchtest.New(t)
	ctx, _, errOut := newTestContext(t, srv, false)
	ctx.Config.DefaultQuery = "Vendor Risk"

	if err := (&SearchCmd{Location: "Pune", Days: 7}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := srv.Searches()
	want := jobsearch.SearchRequest{Query: "Vendor Risk", Location: "Pune", DaysFilter: 7}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("searches = %+v, want [%+v]", got, want)
	}
	if !strings.Contains(errOut.String(), "No jobs found") {
		t.Fatalf("stderr = %q, want empty-result warning", errOut.String())
	}
}

func TestSearchCmdRejectsZeroDays(t *testing.T) {
	srv := jobsearchtest.New(t)
	ctx, _, _ := newTestContext(t, srv, false)
	if err := (&SearchCmd{Days: 0}).Run(ctx); err == nil {
		t.Fatal("Run() accepted --days 0")
	}
	if n := len(srv.Searches()); n != 0 {
		t.Fatalf("searches = %d, want 0", n)
	}
}

func TestSearchCmdJSON(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetJobs([]jobsearch.Job{{ID: "1", JobTitle: "Analyst"}})
	ctx, out, _ := newTestContext(t, srv, true)

	if err := (&SearchCmd{Days: 1}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var jobs []jobsearch.Job
	if err := json.Unmarshal(out.Bytes(), &jobs); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(jobs) != 1 || jobs[0].JobTitle != "Analyst" {
		t.Fatalf("jobs = %+v", jobs)
	}
}

func TestHistoryCmd(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetResults([]jobsearch.SearchResultSummary{
		{SearchQuery: "Third Party Risk Assessment", SearchDate: "2026-10-18T09:00:00", TotalCount: 12},
	})
	ctx, out, _ := newTestContext(t, srv, false)

	if err := (&HistoryCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, s := range []string{"Third Party Risk Assessment", "12"} {
		if !strings.Contains(out.String(), s) {
			t.Errorf("output missing %q:\n%s", s, out.String())
		}
	}
}

func TestRunCmdTriggersThenListsHistory(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetResults([]jobsearch.SearchResultSummary{{SearchQuery: "Manual", SearchDate: "2026-10-19", TotalCount: 2}})
	ctx, out, _ := newTestContext(t, srv, false)

	if err := (&RunCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n := srv.Calls(jobsearch.PathTriggerSearch); n != 1 {
		t.Fatalf("trigger calls = %d, want 1", n)
	}
	if n := srv.Calls(jobsearch.PathJobResults); n != 1 {
		t.Fatalf("job-results calls = %d, want 1", n)
	}
	if !strings.Contains(out.String(), "Manual") {
		t.Fatalf("output missing history:\n%s", out.String())
	}
}

func TestRunCmdFailureSkipsHistory(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.Fail(jobsearch.PathTriggerSearch, http.StatusInternalServerError)
	ctx, _, _ := newTestContext(t, srv, false)

	if err := (&RunCmd{}).Run(ctx); err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
	if n := srv.Calls(jobsearch.PathJobResults); n != 0 {
		t.Fatalf("job-results calls = %d, want 0", n)
	}
}

func TestRunCmdHistoryFailureIsWarning(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.Fail(jobsearch.PathJobResults, http.StatusInternalServerError)
	ctx, _, errOut := newTestContext(t, srv, false)

	if err := (&RunCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v, want nil", err)
	}
	if !strings.Contains(errOut.String(), "Could not refresh run history") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestTestEmailCmd(t *testing.T) {
	tests := []struct {
		name    string
		fail    int
		wantErr bool
	}{
		{name: "sent"},
		{name: "rejected", fail: http.StatusBadGateway, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jobsearchtest.New(t)
			srv.Fail(jobsearch.PathTestEmail, tt.fail)
			ctx, out, _ := newTestContext(t, srv, false)

			err := (&TestEmailCmd{}).Run(ctx)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !strings.Contains(out.String(), "Test email sent successfully!") {
				t.Fatalf("output = %q", out.String())
			}
		})
	}
}

func TestNormalizeColorMode(t *testing.T) {
	tests := map[string]ColorMode{
		"":        ColorAuto,
		"ALWAYS":  ColorAlways,
		" never ": ColorNever,
		"bogus":   ColorAuto,
	}
	for in, want := range tests {
		if got := NormalizeColorMode(in); got != want {
			t.Errorf("NormalizeColorMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUIDisablesColor(t *testing.T) {
	var out bytes.Buffer
	u := NewUI(&out, &out, ColorAlways, true)
	if u.ColorEnabled {
		t.Fatal("disableColor ignored")
	}
	u.Successf("done\n")
	if out.String() != "done\n" {
		t.Fatalf("output = %q", out.String())
	}
	if u.LinkText("https://x") != "https://x" {
		t.Fatal("LinkText coloured with colour disabled")
	}
}

func TestCLISetupOptionsFromFlags(t *testing.T) {
	cli := NewCLI()
	parser, err := kong.New(cli, kong.Name("lookout"), kong.Vars{"version": "test"}, kong.Exit(func(int) {}))
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	kctx, err := parser.Parse([]string{"--theme", "Slate", "--api-url", "http://x:9000", "--verbose", "status"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if kctx.Command() != "status" {
		t.Fatalf("command = %q, want status", kctx.Command())
	}
	opts := cli.SetupOptions()
	if opts.Theme != "Slate" || opts.APIURL != "http://x:9000" || !opts.Verbose {
		t.Fatalf("SetupOptions() = %+v", opts)
	}
}
