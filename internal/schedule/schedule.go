// Package schedule describes when the backend's automated run fires next.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Schedule is a parsed cron spec evaluated in a fixed location.
type Schedule struct {
	spec     string
	location *time.Location
	cron     cron.Schedule
}

// Parse accepts a standard five-field cron spec or a descriptor such as
// "@daily". A nil location means UTC.
func Parse(spec string, loc *time.Location) (*Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("parse schedule: spec is empty")
	}
	if loc == nil {
		loc = time.UTC
	}
	parsed, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse schedule %q: %w", spec, err)
	}
	return &Schedule{spec: spec, location: loc, cron: parsed}, nil
}

// Spec returns the cron spec as configured.
func (s *Schedule) Spec() string {
	if s == nil {
		return ""
	}
	return s.spec
}

// Next returns the first activation strictly after now, in the schedule's
// location.
func (s *Schedule) Next(now time.Time) time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.cron.Next(now.In(s.location))
}

// Describe renders the next activation for the header, e.g.
// "next run Tue 09:00 IST (in 5h12m)".
func (s *Schedule) Describe(now time.Time) string {
	next := s.Next(now)
	if next.IsZero() {
		return ""
	}
	return fmt.Sprintf("next run %s (in %s)", next.Format("Mon 15:04 MST"), Until(now, next))
}

// Until formats the gap between now and next at minute resolution.
func Until(now, next time.Time) string {
	d := next.Sub(now)
	if d < time.Minute {
		return "<1m"
	}
	d = d.Truncate(time.Minute)
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	switch {
	case hours >= 24:
		return fmt.Sprintf("%dd%dh", hours/24, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh%02dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
