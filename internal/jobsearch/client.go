package jobsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Gateway defines the backend operations the dashboard depends on.
// This interface is implemented by *Client and can be faked in tests.
type Gateway interface {
	GetStatus(ctx context.Context) (StatusResponse, error)
	SearchJobs(ctx context.Context, req SearchRequest) (SearchResponse, error)
	ListJobResults(ctx context.Context) ([]SearchResultSummary, error)
	TriggerManualSearch(ctx context.Context) error
	SendTestNotification(ctx context.Context) error
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// API paths, relative to <base>/api.
const (
	PathStatus        = "/"
	PathSearchJobs    = "/search-jobs"
	PathJobResults    = "/job-results"
	PathTriggerSearch = "/trigger-manual-search"
	PathTestEmail     = "/send-test-email"
)

const (
	DefaultBaseURL        = "http://127.0.0.1:8001"
	DefaultRequestTimeout = 30 * time.Second
	defaultUserAgent      = "lookout/0.1"
	apiPrefix             = "/api"
)

// Client talks to the job-search automation HTTP API.
type Client struct {
	baseURL   *url.URL
	baseErr   error
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout overrides the per-request transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a logger for per-request debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a Client for the given base URL. An unusable base URL does
// not fail construction; every call then fails with a *TransportError so the
// dashboard degrades the same way it does for an unreachable backend.
func NewClient(baseURL string, opts ...Option) *Client {
	base, err := parseBaseURL(baseURL)
	c := &Client{
		baseURL:   base,
		baseErr:   err,
		http:      &http.Client{Timeout: DefaultRequestTimeout},
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalised base URL, or the empty string when invalid.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// GetStatus retrieves the backend health message.
func (c *Client) GetStatus(ctx context.Context) (StatusResponse, error) {
	var payload StatusResponse
	if err := c.do(ctx, "get status", http.MethodGet, PathStatus, nil, &payload); err != nil {
		return StatusResponse{}, err
	}
	return payload, nil
}

// SearchJobs runs an on-demand search. Empty query or location values are
// sent as-is.
func (c *Client) SearchJobs(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	var payload SearchResponse
	if err := c.do(ctx, "search jobs", http.MethodPost, PathSearchJobs, req, &payload); err != nil {
		return SearchResponse{}, err
	}
	return payload, nil
}

// ListJobResults retrieves the history of automated runs, most recent first.
func (c *Client) ListJobResults(ctx context.Context) ([]SearchResultSummary, error) {
	var payload []SearchResultSummary
	if err := c.do(ctx, "list job results", http.MethodGet, PathJobResults, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// TriggerManualSearch forces an out-of-cycle automation run.
func (c *Client) TriggerManualSearch(ctx context.Context) error {
	return c.do(ctx, "trigger manual search", http.MethodPost, PathTriggerSearch, nil, nil)
}

// SendTestNotification asks the backend to send its diagnostic email.
func (c *Client) SendTestNotification(ctx context.Context) error {
	return c.do(ctx, "send test notification", http.MethodPost, PathTestEmail, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, dest any) error {
	if c == nil {
		return &TransportError{Op: op, Path: path, Err: fmt.Errorf("client is nil")}
	}
	if c.baseErr != nil {
		return &TransportError{Op: op, Path: path, Err: c.baseErr}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Path: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	reqURL := c.endpoint(path)
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return &TransportError{Op: op, Path: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Str("op", op).Str("url", reqURL).Err(err).Msg("request failed")
		return &TransportError{Op: op, Path: path, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug().
		Str("op", op).
		Str("method", method).
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &TransportError{Op: op, Path: path, Status: resp.StatusCode}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &TransportError{Op: op, Path: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + apiPrefix + path
	return u.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse api url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	// A trailing /api is tolerated so users can paste the full API root.
	u.Path = strings.TrimSuffix(strings.TrimRight(u.Path, "/"), apiPrefix)
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
