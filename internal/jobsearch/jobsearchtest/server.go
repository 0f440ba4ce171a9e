// Package jobsearchtest provides an in-process fake of the job-search
// automation API for tests.
package jobsearchtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/five82/lookout/internal/jobsearch"
)

// Server is a scripted fake backend. Zero-value responses are served until
// the test sets them; any route can be switched to fail with a status code.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	status   jobsearch.StatusResponse
	jobs     []jobsearch.Job
	results  []jobsearch.SearchResultSummary
	failures map[string]int
	calls    map[string]int
	searches []jobsearch.SearchRequest
}

// New starts a fake server and registers its shutdown with t.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		status:   jobsearch.StatusResponse{Message: "TPRM Job Search Automation System", Status: "running"},
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc(jobsearch.PathStatus, s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc(jobsearch.PathSearchJobs, s.handleSearch).Methods(http.MethodPost)
	api.HandleFunc(jobsearch.PathJobResults, s.handleResults).Methods(http.MethodGet)
	api.HandleFunc(jobsearch.PathTriggerSearch, s.handleTrigger).Methods(http.MethodPost)
	api.HandleFunc(jobsearch.PathTestEmail, s.handleTestEmail).Methods(http.MethodPost)

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Server.Close)
	return s
}

// SetStatus sets the health message.
func (s *Server) SetStatus(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Message = message
}

// SetJobs sets the jobs returned by every search.
func (s *Server) SetJobs(jobs []jobsearch.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = jobs
}

// SetResults sets the run history.
func (s *Server) SetResults(results []jobsearch.SearchResultSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
}

// Fail makes the route answer with the given status code. Zero clears it.
func (s *Server) Fail(path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if code == 0 {
		delete(s.failures, path)
		return
	}
	s.failures[path] = code
}

// Calls returns how many requests reached the route.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// Searches returns the decoded search request bodies in arrival order.
func (s *Server) Searches() []jobsearch.SearchRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]jobsearch.SearchRequest(nil), s.searches...)
}

// record counts the call and reports whether the route is scripted to fail.
func (s *Server) record(w http.ResponseWriter, path string) bool {
	s.mu.Lock()
	s.calls[path]++
	code := s.failures[path]
	s.mu.Unlock()

	if code != 0 {
		http.Error(w, `{"detail":"scripted failure"}`, code)
		return true
	}
	return false
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if s.record(w, jobsearch.PathStatus) {
		return
	}
	s.mu.Lock()
	payload := s.status
	s.mu.Unlock()
	writeJSON(w, payload)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req jobsearch.SearchRequest
	body, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, `{"detail":"invalid body"}`, http.StatusUnprocessableEntity)
		return
	}
	s.mu.Lock()
	s.searches = append(s.searches, req)
	s.mu.Unlock()

	if s.record(w, jobsearch.PathSearchJobs) {
		return
	}
	s.mu.Lock()
	jobs := s.jobs
	s.mu.Unlock()
	if jobs == nil {
		jobs = []jobsearch.Job{}
	}
	writeJSON(w, jobsearch.SearchResponse{
		Jobs:        jobs,
		TotalCount:  len(jobs),
		SearchQuery: req.Query,
	})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if s.record(w, jobsearch.PathJobResults) {
		return
	}
	s.mu.Lock()
	results := s.results
	s.mu.Unlock()
	if results == nil {
		results = []jobsearch.SearchResultSummary{}
	}
	writeJSON(w, results)
}

func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	if s.record(w, jobsearch.PathTriggerSearch) {
		return
	}
	writeJSON(w, map[string]string{"message": "Manual job search completed successfully"})
}

func (s *Server) handleTestEmail(w http.ResponseWriter, r *http.Request) {
	if s.record(w, jobsearch.PathTestEmail) {
		return
	}
	writeJSON(w, map[string]string{"message": "Test email sent successfully"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
