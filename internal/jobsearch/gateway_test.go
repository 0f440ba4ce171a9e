package jobsearch_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/five82/lookout/internal/jobsearch"
	"github.com/five82/lookout/internal/jobsearch/jobsearchtest"
)

func newClient(t *testing.T, srv *jobsearchtest.Server) *jobsearch.Client {
	t.Helper()
	return jobsearch.NewClient(srv.URL, jobsearch.WithTimeout(2*time.Second))
}

func TestClient_GetStatus(t *testing.T) {
	srv := jobsearchtest.New(t)
	srv.SetStatus("TPRM Job Search Automation System")

	status, err := newClient(t, srv).GetStatus(context.Background())
	if err != nil {
		t.Fatalf("GetStatus returned error: %v", err)
	}
	if status.Message != "TPRM Job Search Automation System" {
		t.Fatalf("Message = %q", status.Message)
	}
}

func TestClient_SearchJobsSendsBodyAndDecodesJobs(t *testing.T) {
	srv := jobsearchtest.New(t)
	want := []jobsearch.Job{{
		ID:              "1",
		JobTitle:        "Risk Analyst",
		CompanyName:     "Acme",
		JobLink:         "https://x/1",
		Keywords:        []string{"tprm"},
		TechnicalSkills: []string{"excel"},
	}}
	srv.SetJobs(want)

	req := jobsearch.SearchRequest{
		Query:      "Third Party Risk Assessment",
		Location:   "Bangalore India OR remote",
		DaysFilter: jobsearch.DefaultDaysFilter,
	}
	resp, err := newClient(t, srv).SearchJobs(context.Background(), req)
	if err != nil {
		t.Fatalf("SearchJobs returned error: %v", err)
	}
	if !reflect.DeepEqual(resp.Jobs, want) {
		t.Fatalf("Jobs = %#v, want %#v", resp.Jobs, want)
	}

	sent := srv.Searches()
	if len(sent) != 1 || sent[0] != req {
		t.Fatalf("search bodies = %#v, want [%#v]", sent, req)
	}
}

func TestClient_SearchJobsEmptyResult(t *testing.T) {
	srv := jobsearchtest.New(t)

	resp, err := newClient(t, srv).SearchJobs(context.Background(), jobsearch.SearchRequest{})
	if err != nil {
		t.Fatalf("SearchJobs returned error: %v", err)
	}
	if resp.Jobs == nil || len(resp.Jobs) != 0 {
		t.Fatalf("Jobs = %#v, want empty non-nil slice", resp.Jobs)
	}
}

func TestClient_ListJobResultsKeepsBackendOrder(t *testing.T) {
	srv := jobsearchtest.New(t)
	want := []jobsearch.SearchResultSummary{
		{SearchQuery: "b", SearchDate: "2024-05-02T09:00:00", TotalCount: 3},
		{SearchQuery: "a", SearchDate: "2024-05-03T09:00:00", TotalCount: 0},
	}
	srv.SetResults(want)

	got, err := newClient(t, srv).ListJobResults(context.Background())
	if err != nil {
		t.Fatalf("ListJobResults returned error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("results = %#v, want %#v", got, want)
	}
}

func TestClient_SideEffectCallsHitRoutes(t *testing.T) {
	srv := jobsearchtest.New(t)
	c := newClient(t, srv)

	if err := c.TriggerManualSearch(context.Background()); err != nil {
		t.Fatalf("TriggerManualSearch returned error: %v", err)
	}
	if err := c.SendTestNotification(context.Background()); err != nil {
		t.Fatalf("SendTestNotification returned error: %v", err)
	}
	if got := srv.Calls(jobsearch.PathTriggerSearch); got != 1 {
		t.Fatalf("trigger calls = %d, want 1", got)
	}
	if got := srv.Calls(jobsearch.PathTestEmail); got != 1 {
		t.Fatalf("test email calls = %d, want 1", got)
	}
}

func TestClient_NonSuccessIsTransportError(t *testing.T) {
	srv := jobsearchtest.New(t)
	c := newClient(t, srv)

	cases := []struct {
		path string
		call func() error
	}{
		{jobsearch.PathStatus, func() error { _, err := c.GetStatus(context.Background()); return err }},
		{jobsearch.PathSearchJobs, func() error {
			_, err := c.SearchJobs(context.Background(), jobsearch.SearchRequest{Query: "q"})
			return err
		}},
		{jobsearch.PathJobResults, func() error { _, err := c.ListJobResults(context.Background()); return err }},
		{jobsearch.PathTriggerSearch, func() error { return c.TriggerManualSearch(context.Background()) }},
		{jobsearch.PathTestEmail, func() error { return c.SendTestNotification(context.Background()) }},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			srv.Fail(tc.path, http.StatusInternalServerError)
			err := tc.call()
			var te *jobsearch.TransportError
			if !errors.As(err, &te) {
				t.Fatalf("error = %v, want *TransportError", err)
			}
			if te.Status != http.StatusInternalServerError || te.Path != tc.path {
				t.Fatalf("TransportError = %+v, want status 500 on %s", te, tc.path)
			}
		})
	}
}

func TestClient_UnreachableBackendIsTransportError(t *testing.T) {
	srv := jobsearchtest.New(t)
	url := srv.URL
	srv.Close()

	_, err := jobsearch.NewClient(url).GetStatus(context.Background())
	if !jobsearch.IsTransportError(err) {
		t.Fatalf("GetStatus error = %v, want transport error", err)
	}
}
