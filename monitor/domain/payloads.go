package domain

// ProjectRollup is one project's aggregate usage within a window.
type ProjectRollup struct {
	ProjectID    string  `json:"project_id"`
	TotalQueries int64   `json:"total_queries"`
	SlotHours    float64 `json:"slot_hours"`
	ActiveUsers  int64   `json:"active_users"`
	TBProcessed  float64 `json:"tb_processed"`
	ErrorCount   int64   `json:"error_count"`
}

// OrgStats are the organization-level totals over all in-scope projects.
type OrgStats struct {
	TotalProjects    int     `json:"totalProjects"`
	TotalQueries     int64   `json:"totalQueries"`
	TotalSlotHours   float64 `json:"totalSlotHours"`
	TotalUsers       int64   `json:"totalUsers"`
	TotalTBProcessed float64 `json:"totalTBProcessed"`
	TotalErrors      int64   `json:"totalErrors"`
}

// OrganizationOverview is the organization-overview payload. Warnings carry
// the sub-scopes that were excluded from aggregation.
type OrganizationOverview struct {
	Projects []ProjectRollup `json:"projects"`
	OrgStats OrgStats        `json:"orgStats"`
	Warnings []string        `json:"warnings,omitempty"`
}

// OperationalDashboard is the operational-dashboard payload.
type OperationalDashboard struct {
	KPIs                KPISet           `json:"kpis"`
	SlotUsageChart      []TimeBucket     `json:"slotUsageChart"`
	BytesProcessedChart []TimeBucket     `json:"bytesProcessedChart"`
	JobDurationChart    []DurationBucket `json:"jobDurationChart"`
	ErrorBreakdown      []ErrorSlice     `json:"errorBreakdown"`
	TopUsers            []UserUsage      `json:"topUsers"`
	TimeRange           string           `json:"timeRange"`
	Warnings            []string         `json:"warnings,omitempty"`
}

// WeekPoint is one point of a weekly trend chart.
type WeekPoint struct {
	Week  string  `json:"week"`
	Value float64 `json:"value"`
}

// PulseKPIs are the week-to-date figures with week-over-week change.
// Change fields are undefined (JSON null) when the prior week's total was
// zero.
type PulseKPIs struct {
	BytesProcessedWTD    float64     `json:"bytesProcessedWTD"`
	BytesProcessedChange NullPercent `json:"bytesProcessedChange"`
	SlotMsWTD            float64     `json:"slotMsWTD"`
	SlotMsChange         NullPercent `json:"slotMsChange"`
	AvgJobDurationWTD    float64     `json:"avgJobDurationWTD"`
	JobsDelayedWTD       float64     `json:"jobsDelayedWTD"`
	QueryCacheRateWTD    float64     `json:"queryCacheRateWTD"`
}

// Reservations reports the configured slot commitment the pulse view
// renders capacity against.
type Reservations struct {
	TotalSlotCapacity int `json:"totalSlotCapacity"`
	TotalSlots        int `json:"totalSlots"`
	TotalIdleSlots    int `json:"totalIdleSlots"`
}

// Pulse is the pulse-data payload.
type Pulse struct {
	WeeklyBytesProcessed []WeekPoint  `json:"weeklyBytesProcessed"`
	WeeklySlotMs         []WeekPoint  `json:"weeklySlotMs"`
	DailyBytesProcessed  []TimeBucket `json:"bytesProcessedDaily"`
	DailySlotRate        []TimeBucket `json:"slotRateDaily"`
	KPIs                 PulseKPIs    `json:"kpis"`
	Reservations         Reservations `json:"reservations"`
	Warnings             []string     `json:"warnings,omitempty"`
}

// ExpensiveQueries is the expensive-queries payload.
type ExpensiveQueries struct {
	Queries  []RankedQuery `json:"queries"`
	Warnings []string      `json:"warnings,omitempty"`
}

// ProjectEntry is one selectable project in the dashboard's project picker.
type ProjectEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// DatasetSummary is one dataset of a project with its table count. SizeGB
// would need a metadata read per table, so it stays zero for now.
type DatasetSummary struct {
	Name   string  `json:"name"`
	Tables int     `json:"tables"`
	SizeGB float64 `json:"sizeGB"`
}

// UsagePoint is one bar of the project usage-by-hour-of-day chart.
type UsagePoint struct {
	Time      string  `json:"time"`
	Queries   int     `json:"queries"`
	SlotHours float64 `json:"slotHours"`
}

// RecentQuery is one row of a project's recent-queries list.
type RecentQuery struct {
	ID       string `json:"id"`
	Query    string `json:"query"`
	User     string `json:"user"`
	Duration string `json:"duration"`
	SlotMs   int64  `json:"slotMs"`
}

// ProjectDetails is the per-project drill-down payload.
type ProjectDetails struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Datasets      []DatasetSummary `json:"datasets"`
	RecentQueries []RecentQuery    `json:"recentQueries"`
	UsageChart    []UsagePoint     `json:"usageChart"`
	Warnings      []string         `json:"warnings,omitempty"`
}

// HourCount is one bar of the jobs-by-hour-of-day histogram.
type HourCount struct {
	Hour string `json:"hour"`
	Jobs int    `json:"jobs"`
}

// JoinShapeStat is one row of the time-window investigation's join-shape
// breakdown, classified from query text.
type JoinShapeStat struct {
	JobType           string `json:"jobType"`
	Jobs              int    `json:"jobs"`
	AvgRecordsRead    int64  `json:"avgRecordsRead"`
	AvgRecordsWritten int64  `json:"avgRecordsWritten"`
	AvgSlotMs         int64  `json:"avgSlotMs"`
}

// Investigation is the time-window-investigation payload.
type Investigation struct {
	JobsByHour []HourCount     `json:"jobsByHour"`
	JobTypes   []JoinShapeStat `json:"jobTypes"`
	TopQueries []RankedQuery   `json:"topQueries"`
	TimeRange  string          `json:"timeRange"`
	Warnings   []string        `json:"warnings,omitempty"`
}
