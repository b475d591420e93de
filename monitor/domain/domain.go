// Package domain holds the monitoring dashboard's core model: execution
// records retrieved from the warehouse job history, the scope/window
// selectors narrowing them, and the aggregates derived from them.
package domain

import (
	"time"
	"unicode/utf8"
)

// Scope selects which projects' execution records a request considers,
// within a single warehouse region. The zero value is not a valid scope;
// use NewAllProjectsScope or NewProjectScope.
type Scope struct {
	region  string
	project string
	all     bool
}

// NewAllProjectsScope returns a scope spanning every monitored project in
// the region.
func NewAllProjectsScope(region string) Scope {
	return Scope{region: region, all: true}
}

// NewProjectScope returns a scope narrowed to a single project.
func NewProjectScope(region, projectID string) Scope {
	return Scope{region: region, project: projectID}
}

func (s Scope) Region() string {
	return s.region
}

func (s Scope) IsAllProjects() bool {
	return s.all
}

// Project returns the single project id the scope is narrowed to,
// and false when the scope spans all projects.
func (s Scope) Project() (string, bool) {
	if s.all {
		return "", false
	}

	return s.project, true
}

func (s Scope) Validate() error {
	if s.region == "" {
		return ErrInvalidScope
	}

	if !s.all && s.project == "" {
		return ErrInvalidScope
	}

	return nil
}

// TimeWindow is the half-open range [Start, End) filtering execution
// records by submission time.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow builds a window, rejecting end <= start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, ErrInvalidScope
	}

	return TimeWindow{Start: start, End: end}, nil
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Previous returns the equally-sized window immediately preceding this one.
func (w TimeWindow) Previous() TimeWindow {
	return TimeWindow{Start: w.Start.Add(-w.Duration()), End: w.Start}
}

// Contains reports whether t falls inside the half-open range.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Granularity is the bucketing resolution for time series charts.
type Granularity string

const (
	GranularityHourly Granularity = "hourly"
	GranularityDaily  Granularity = "daily"
)

// GranularityForWindow picks hourly buckets for short windows and daily
// buckets once a window spans more than two days.
func GranularityForWindow(w TimeWindow) Granularity {
	if w.Duration() > 48*time.Hour {
		return GranularityDaily
	}

	return GranularityHourly
}

// ExecutionRecord is one historical job run as reported by the warehouse's
// job-history metadata. Immutable once retrieved.
type ExecutionRecord struct {
	JobID               string
	ProjectID           string
	UserEmail           string
	CreationTime        time.Time
	Duration            time.Duration
	TotalSlotMs         int64
	TotalBytesProcessed int64
	CacheHit            bool
	Failed              bool
	ErrorCategory       string
	Query               string
}

// RankedQuery is an execution record annotated with its rank within a scope,
// ordered descending by slot-milliseconds.
type RankedQuery struct {
	Rank            int       `json:"rank"`
	JobID           string    `json:"job_id"`
	ProjectID       string    `json:"project_id"`
	UserEmail       string    `json:"user_email"`
	CreationTime    time.Time `json:"creation_time"`
	TotalSlotMs     int64     `json:"total_slot_ms"`
	GBProcessed     float64   `json:"gb_processed"`
	DurationSeconds float64   `json:"duration_seconds"`
	QueryPreview    string    `json:"query_preview"`
	Query           string    `json:"query"`
}

// Preview returns the first maxLen characters of the query text, never
// splitting a multibyte sequence.
func Preview(query string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(query) <= maxLen {
		return query
	}

	runes := 0
	for i := range query {
		if runes == maxLen {
			return query[:i]
		}

		runes++
	}

	return query
}
