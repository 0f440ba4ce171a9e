package jobsearch

import (
	"strings"
	"time"
)

// DefaultDaysFilter is the recency window sent with every dashboard search.
const DefaultDaysFilter = 1

// StatusResponse mirrors the payload returned by GET /api/.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// SearchRequest is the body of POST /api/search-jobs.
type SearchRequest struct {
	Query      string `json:"query"`
	Location   string `json:"location"`
	DaysFilter int    `json:"days_filter"`
}

// SearchResponse mirrors the search-jobs payload. Only Jobs is required;
// the remaining fields are informational.
type SearchResponse struct {
	Jobs        []Job  `json:"jobs"`
	TotalCount  int    `json:"total_count,omitempty"`
	SearchQuery string `json:"search_query,omitempty"`
	SearchDate  string `json:"search_date,omitempty"`
}

// Job is one row of a search result.
type Job struct {
	ID              string   `json:"id"`
	JobTitle        string   `json:"job_title"`
	CompanyName     string   `json:"company_name"`
	JobLink         string   `json:"job_link"`
	Keywords        []string `json:"keywords"`
	TechnicalSkills []string `json:"technical_skills"`
	Location        string   `json:"location,omitempty"`
	PostedDate      string   `json:"posted_date,omitempty"`
	Source          string   `json:"source,omitempty"`
	ScrapedAt       string   `json:"scraped_at,omitempty"`
}

// KeywordsText renders the keyword list for display.
func (j Job) KeywordsText() string {
	return joinList(j.Keywords)
}

// SkillsText renders the technical skills list for display.
func (j Job) SkillsText() string {
	return joinList(j.TechnicalSkills)
}

// SearchResultSummary is one automated run in the history list.
type SearchResultSummary struct {
	SearchQuery string `json:"search_query"`
	SearchDate  string `json:"search_date"`
	TotalCount  int    `json:"total_count"`
}

// ParsedSearchDate returns the run timestamp as time.Time when possible.
func (s SearchResultSummary) ParsedSearchDate() time.Time {
	return parseTime(s.SearchDate)
}

// DisplayDate renders the run date as a calendar date, falling back to the
// raw value when the backend sent something unparsable.
func (s SearchResultSummary) DisplayDate() string {
	t := s.ParsedSearchDate()
	if t.IsZero() {
		return strings.TrimSpace(s.SearchDate)
	}
	return t.Format("2006-01-02")
}

const listSeparator = ", "

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

// The backend serialises naive UTC datetimes, usually with microseconds and
// without a zone suffix.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t
		}
	}
	return time.Time{}
}
