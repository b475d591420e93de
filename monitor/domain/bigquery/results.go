package bqmodels

import (
	"time"

	"cloud.google.com/go/bigquery"
)

// JobRow maps one row of JobsInWindow and ExpensiveJobs.
type JobRow struct {
	JobID               string              `bigquery:"job_id"`
	ProjectID           string              `bigquery:"project_id"`
	UserEmail           string              `bigquery:"user_email"`
	CreationTime        time.Time           `bigquery:"creation_time"`
	DurationSeconds     bigquery.NullFloat64 `bigquery:"duration_seconds"`
	TotalSlotMs         int64               `bigquery:"total_slot_ms"`
	TotalBytesProcessed int64               `bigquery:"total_bytes_processed"`
	CacheHit            bool                `bigquery:"cache_hit"`
	Failed              bool                `bigquery:"failed"`
	ErrorReason         string              `bigquery:"error_reason"`
	Query               string              `bigquery:"query"`
}

// ProjectRollupRow maps one row of ProjectRollup.
type ProjectRollupRow struct {
	ProjectID    string               `bigquery:"project_id"`
	TotalQueries int64                `bigquery:"total_queries"`
	SlotHours    bigquery.NullFloat64 `bigquery:"slot_hours"`
	ActiveUsers  int64                `bigquery:"active_users"`
	TBProcessed  bigquery.NullFloat64 `bigquery:"tb_processed"`
	ErrorCount   int64                `bigquery:"error_count"`
}

// ActiveProjectRow maps one row of ActiveProjects.
type ActiveProjectRow struct {
	ProjectID    string    `bigquery:"project_id"`
	LastActivity time.Time `bigquery:"last_activity"`
}

// WeeklyTrendRow maps one row of WeeklyTrend.
type WeeklyTrendRow struct {
	WeekStart            time.Time            `bigquery:"week_start"`
	TotalBytesProcessed  int64                `bigquery:"total_bytes_processed"`
	TotalSlotMs          int64                `bigquery:"total_slot_ms"`
	TotalJobs            int64                `bigquery:"total_jobs"`
	DelayedJobs          int64                `bigquery:"delayed_jobs"`
	CacheHits            int64                `bigquery:"cache_hits"`
	TotalDurationSeconds bigquery.NullFloat64 `bigquery:"total_duration_seconds"`
}

// TotalsRow maps the single row of TotalsInWindow.
type TotalsRow struct {
	TotalJobs            int64                `bigquery:"total_jobs"`
	TotalBytesProcessed  bigquery.NullInt64   `bigquery:"total_bytes_processed"`
	TotalSlotMs          bigquery.NullInt64   `bigquery:"total_slot_ms"`
	DelayedJobs          int64                `bigquery:"delayed_jobs"`
	CacheHits            int64                `bigquery:"cache_hits"`
	TotalDurationSeconds bigquery.NullFloat64 `bigquery:"total_duration_seconds"`
}
