package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/doitintl/bq-monitor/monitor/domain"
)

func record(creation time.Time, mutate func(r *domain.ExecutionRecord)) domain.ExecutionRecord {
	r := domain.ExecutionRecord{
		JobID:        "job",
		ProjectID:    "analytics-prod",
		UserEmail:    "analyst@example.com",
		CreationTime: creation,
	}

	if mutate != nil {
		mutate(&r)
	}

	return r
}

func TestAggregate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		records []domain.ExecutionRecord
		want    domain.KPISet
	}{
		{
			name:    "empty window has zero rates",
			records: nil,
			want:    domain.KPISet{},
		},
		{
			name: "mixed records",
			records: []domain.ExecutionRecord{
				record(now, func(r *domain.ExecutionRecord) {
					r.TotalSlotMs = 3600 * 1000
					r.TotalBytesProcessed = 2e12
					r.Duration = 10 * time.Second
					r.CacheHit = true
				}),
				record(now, func(r *domain.ExecutionRecord) {
					r.UserEmail = "other@example.com"
					r.Duration = 30 * time.Second
					r.Failed = true
					r.ErrorCategory = "accessDenied"
				}),
			},
			want: domain.KPISet{
				TotalJobs:           2,
				TotalErrors:         1,
				TotalSlotMs:         3600 * 1000,
				TotalBytesProcessed: 2e12,
				ActiveUsers:         2,
				SlotHours:           1,
				TBProcessed:         2,
				ErrorRate:           50,
				CacheHitRate:        50,
				AvgDurationSeconds:  20,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.records))
		})
	}
}

func TestBucketizeHourly(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	window := domain.TimeWindow{Start: start, End: start.Add(4 * time.Hour)}

	records := []domain.ExecutionRecord{
		record(start.Add(15*time.Minute), func(r *domain.ExecutionRecord) {
			r.TotalSlotMs = 3600 * 1000
		}),
		record(start.Add(20*time.Minute), nil),
		record(start.Add(3*time.Hour+59*time.Minute), nil),
		// Outside the window, must be ignored.
		record(start.Add(4*time.Hour), nil),
		record(start.Add(-time.Minute), nil),
	}

	buckets := Bucketize(records, window)

	assert.Len(t, buckets, 4)

	assert.Equal(t, "10:00", buckets[0].Label)
	assert.Equal(t, 2, buckets[0].Jobs)
	assert.Equal(t, float64(1), buckets[0].Slots)

	// Interior buckets are present and zero-filled.
	assert.Equal(t, 0, buckets[1].Jobs)
	assert.Equal(t, 0, buckets[2].Jobs)

	assert.Equal(t, "13:00", buckets[3].Label)
	assert.Equal(t, 1, buckets[3].Jobs)
}

func TestBucketizeDaily(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	window := domain.TimeWindow{Start: start, End: start.Add(7 * 24 * time.Hour)}

	records := []domain.ExecutionRecord{
		record(start.Add(2*time.Hour), nil),
		record(start.Add(3*24*time.Hour), nil),
		record(start.Add(3*24*time.Hour+time.Hour), nil),
	}

	buckets := Bucketize(records, window)

	assert.Len(t, buckets, 7)
	assert.Equal(t, "May 01", buckets[0].Label)
	assert.Equal(t, 1, buckets[0].Jobs)
	assert.Equal(t, 2, buckets[3].Jobs)
	assert.Equal(t, 0, buckets[6].Jobs)
}

func TestErrorBreakdown(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	failed := func(category string) domain.ExecutionRecord {
		return record(now, func(r *domain.ExecutionRecord) {
			r.Failed = true
			r.ErrorCategory = category
		})
	}

	records := []domain.ExecutionRecord{
		failed("rateLimitExceeded"),
		failed("rateLimitExceeded"),
		failed("accessDenied"),
		failed(""),
		record(now, nil),
	}

	slices := ErrorBreakdown(records)

	assert.Equal(t, []domain.ErrorSlice{
		{Name: "rateLimitExceeded", Value: 2, Color: "#ea4335"},
		{Name: "accessDenied", Value: 1, Color: "#fbbc04"},
		{Name: "unknown", Value: 1, Color: "#ff6d01"},
	}, slices)
}

func TestTopUsers(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	byUser := func(email string, slotMs int64) domain.ExecutionRecord {
		return record(now, func(r *domain.ExecutionRecord) {
			r.UserEmail = email
			r.TotalSlotMs = slotMs
		})
	}

	records := []domain.ExecutionRecord{
		byUser("small@example.com", 3600*1000),
		byUser("big@example.com", 2*3600*1000),
		byUser("big@example.com", 3600*1000),
		byUser("", 100*3600*1000),
	}

	users := TopUsers(records, 1)

	assert.Equal(t, []domain.UserUsage{
		{UserEmail: "big@example.com", QueryCount: 2, SlotHours: 3},
	}, users)
}

func TestDurationHistogram(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	withDuration := func(d time.Duration) domain.ExecutionRecord {
		return record(now, func(r *domain.ExecutionRecord) { r.Duration = d })
	}

	records := []domain.ExecutionRecord{
		withDuration(5 * time.Second),
		withDuration(2 * time.Minute),
		withDuration(10 * time.Minute),
		withDuration(30 * time.Minute),
		withDuration(2 * time.Hour),
	}

	histogram := DurationHistogram(records)

	assert.Equal(t, []domain.DurationBucket{
		{Bucket: "0-1min", Count: 1},
		{Bucket: "1-5min", Count: 1},
		{Bucket: "5-15min", Count: 1},
		{Bucket: "15-60min", Count: 1},
		{Bucket: "60min+", Count: 1},
	}, histogram)
}
