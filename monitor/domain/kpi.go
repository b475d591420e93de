package domain

import (
	"encoding/json"
	"time"
)

// KPISet is the derived aggregate over one time window. Recomputed on every
// request; a pure function of the input records.
type KPISet struct {
	TotalJobs           int     `json:"totalJobs"`
	TotalErrors         int     `json:"totalErrors"`
	TotalSlotMs         int64   `json:"totalSlotMs"`
	TotalBytesProcessed int64   `json:"totalBytesProcessed"`
	ActiveUsers         int     `json:"activeUsers"`
	SlotHours           float64 `json:"slotHours"`
	TBProcessed         float64 `json:"tbProcessed"`
	ErrorRate           float64 `json:"errorRate"`
	CacheHitRate        float64 `json:"cacheHitRate"`
	AvgDurationSeconds  float64 `json:"avgDurationSeconds"`
}

// NullPercent is a signed percentage that is undefined when its comparison
// baseline is zero. It marshals to JSON null when undefined, never to an
// infinite numeric value.
type NullPercent struct {
	Value float64
	Valid bool
}

// ChangePercent compares current against prior, reporting an undefined
// percentage when the prior total is zero.
func ChangePercent(current, prior float64) NullPercent {
	if prior == 0 {
		return NullPercent{}
	}

	return NullPercent{
		Value: (current - prior) / prior * 100,
		Valid: true,
	}
}

func (p NullPercent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(p.Value)
}

func (p *NullPercent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = NullPercent{}
		return nil
	}

	p.Valid = true

	return json.Unmarshal(data, &p.Value)
}

// TimeBucket is one point of a chart time series. Buckets with no records
// report zero values, not omission.
type TimeBucket struct {
	Start  time.Time `json:"start"`
	Label  string    `json:"label"`
	Jobs   int       `json:"jobs"`
	Slots  float64   `json:"slots"`
	GBytes float64   `json:"gb"`
}

// UserUsage is a per-user rollup within a window.
type UserUsage struct {
	UserEmail   string  `json:"user_email"`
	QueryCount  int     `json:"query_count"`
	SlotHours   float64 `json:"slot_hours"`
	GBProcessed float64 `json:"gb_processed"`
}

// ErrorSlice is one slice of the error breakdown pie chart.
type ErrorSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DurationBucket is one bar of the job duration histogram.
type DurationBucket struct {
	Bucket string `json:"duration_bucket"`
	Count  int    `json:"count"`
}
