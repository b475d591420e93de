// Package bqmodels holds the INFORMATION_SCHEMA query templates and the row
// types they project into. Placeholders are substituted by the query
// replacer before execution.
package bqmodels

const (
	RegionPlaceholder        = "{regionPlaceholder}"
	ProjectWhereClause       = "{projectWhereClause}"
	StartTimePlaceholder     = "{startTimePlaceholder}"
	EndTimePlaceholder       = "{endTimePlaceholder}"
	MaxResultsPlaceholder    = "{maxResultsPlaceholder}"
	TrendWeeksPlaceholder    = "{trendWeeksPlaceholder}"
)

// JobsInWindow fetches the raw per-job execution records the aggregator
// works from. Only QUERY jobs in a DONE state are considered.
const JobsInWindow = `
SELECT
	job_id,
	project_id,
	user_email,
	creation_time,
	TIMESTAMP_DIFF(end_time, start_time, MILLISECOND) / 1000 AS duration_seconds,
	IFNULL(total_slot_ms, 0) AS total_slot_ms,
	IFNULL(total_bytes_processed, 0) AS total_bytes_processed,
	IFNULL(cache_hit, FALSE) AS cache_hit,
	error_result IS NOT NULL AS failed,
	IFNULL(error_result.reason, '') AS error_reason,
	IFNULL(query, '') AS query
FROM
	` + "`{regionPlaceholder}`" + `.INFORMATION_SCHEMA.JOBS_BY_PROJECT
WHERE
	creation_time >= TIMESTAMP('{startTimePlaceholder}')
	AND creation_time < TIMESTAMP('{endTimePlaceholder}')
	AND job_type = 'QUERY'
	AND state = 'DONE'
	{projectWhereClause}
ORDER BY
	creation_time
LIMIT {maxResultsPlaceholder}
`

// ExpensiveJobs fetches the candidate set for cost ranking, pre-ordered by
// slot consumption so the limit keeps the heaviest jobs.
const ExpensiveJobs = `
SELECT
	job_id,
	project_id,
	user_email,
	creation_time,
	TIMESTAMP_DIFF(end_time, start_time, MILLISECOND) / 1000 AS duration_seconds,
	IFNULL(total_slot_ms, 0) AS total_slot_ms,
	IFNULL(total_bytes_processed, 0) AS total_bytes_processed,
	IFNULL(query, '') AS query
FROM
	` + "`{regionPlaceholder}`" + `.INFORMATION_SCHEMA.JOBS_BY_PROJECT
WHERE
	creation_time >= TIMESTAMP('{startTimePlaceholder}')
	AND creation_time < TIMESTAMP('{endTimePlaceholder}')
	AND job_type = 'QUERY'
	AND state = 'DONE'
	AND error_result IS NULL
	AND total_slot_ms IS NOT NULL
	{projectWhereClause}
ORDER BY
	total_slot_ms DESC,
	creation_time
LIMIT {maxResultsPlaceholder}
`

// ProjectRollup aggregates per-project usage for the organization overview.
const ProjectRollup = `
SELECT
	project_id,
	COUNT(*) AS total_queries,
	SUM(IFNULL(total_slot_ms, 0)) / 1000 / 3600 AS slot_hours,
	COUNT(DISTINCT user_email) AS active_users,
	SUM(IFNULL(total_bytes_processed, 0)) / POW(10, 12) AS tb_processed,
	COUNTIF(error_result IS NOT NULL) AS error_count
FROM
	` + "`{regionPlaceholder}`" + `.INFORMATION_SCHEMA.JOBS_BY_PROJECT
WHERE
	creation_time >= TIMESTAMP('{startTimePlaceholder}')
	AND creation_time < TIMESTAMP('{endTimePlaceholder}')
	AND job_type = 'QUERY'
	{projectWhereClause}
GROUP BY
	project_id
ORDER BY
	slot_hours DESC
`

// ActiveProjects lists projects with recent job activity for the picker.
const ActiveProjects = `
SELECT
	project_id,
	MAX(creation_time) AS last_activity
FROM
	` + "`{regionPlaceholder}`" + `.INFORMATION_SCHEMA.JOBS_BY_PROJECT
WHERE
	creation_time >= TIMESTAMP('{startTimePlaceholder}')
	AND creation_time < TIMESTAMP('{endTimePlaceholder}')
	{projectWhereClause}
GROUP BY
	project_id
ORDER BY
	project_id
`

// WeeklyTrend buckets bytes and slot consumption by ISO week for the pulse
// trend charts.
const WeeklyTrend = `
SELECT
	TIMESTAMP(DATE_TRUNC(DATE(creation_time), WEEK(MONDAY))) AS week_start,
	SUM(IFNULL(total_bytes_processed, 0)) AS total_bytes_processed,
	SUM(IFNULL(total_slot_ms, 0)) AS total_slot_ms,
	COUNT(*) AS total_jobs,
	COUNTIF(TIMESTAMP_DIFF(start_time, creation_time, SECOND) > 1) AS delayed_jobs,
	COUNTIF(IFNULL(cache_hit, FALSE)) AS cache_hits,
	SUM(TIMESTAMP_DIFF(end_time, start_time, MILLISECOND)) / 1000 AS total_duration_seconds
FROM
	` + "`{regionPlaceholder}`" + `.INFORMATION_SCHEMA.JOBS_BY_PROJECT
WHERE
	creation_time >= TIMESTAMP_SUB(TIMESTAMP('{endTimePlaceholder}'), INTERVAL {trendWeeksPlaceholder} * 7 DAY)
	AND creation_time < TIMESTAMP('{endTimePlaceholder}')
	AND job_type = 'QUERY'
	AND state = 'DONE'
	{projectWhereClause}
GROUP BY
	week_start
ORDER BY
	week_start
`

// TotalsInWindow computes one row of window totals, used to compare the
// current and prior weeks.
const TotalsInWindow = `
SELECT
	COUNT(*) AS total_jobs,
	SUM(IFNULL(total_bytes_processed, 0)) AS total_bytes_processed,
	SUM(IFNULL(total_slot_ms, 0)) AS total_slot_ms,
	COUNTIF(TIMESTAMP_DIFF(start_time, creation_time, SECOND) > 1) AS delayed_jobs,
	COUNTIF(IFNULL(cache_hit, FALSE)) AS cache_hits,
	SUM(TIMESTAMP_DIFF(end_time, start_time, MILLISECOND)) / 1000 AS total_duration_seconds
FROM
	` + "`{regionPlaceholder}`" + `.INFORMATION_SCHEMA.JOBS_BY_PROJECT
WHERE
	creation_time >= TIMESTAMP('{startTimePlaceholder}')
	AND creation_time < TIMESTAMP('{endTimePlaceholder}')
	AND job_type = 'QUERY'
	AND state = 'DONE'
	{projectWhereClause}
`
