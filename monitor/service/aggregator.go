package service

import (
	"sort"
	"time"

	"github.com/doitintl/bq-monitor/monitor/domain"
	"github.com/doitintl/bq-monitor/times"
)

const (
	bytesPerGB = 1e9
	bytesPerTB = 1e12
	msPerHour  = 1000 * 3600
)

// errorPalette colors the error breakdown slices in rank order.
var errorPalette = []string{"#ea4335", "#fbbc04", "#ff6d01", "#9aa0a6", "#34a853"}

// Aggregate derives the window's KPI set from its execution records. Rates
// are zero, not NaN, when the window holds no records.
func Aggregate(records []domain.ExecutionRecord) domain.KPISet {
	kpis := domain.KPISet{}

	users := make(map[string]struct{})

	var (
		cacheHits     int
		totalDuration time.Duration
	)

	for _, record := range records {
		kpis.TotalJobs++
		kpis.TotalSlotMs += record.TotalSlotMs
		kpis.TotalBytesProcessed += record.TotalBytesProcessed
		totalDuration += record.Duration

		if record.Failed {
			kpis.TotalErrors++
		}

		if record.CacheHit {
			cacheHits++
		}

		if record.UserEmail != "" {
			users[record.UserEmail] = struct{}{}
		}
	}

	kpis.ActiveUsers = len(users)
	kpis.SlotHours = float64(kpis.TotalSlotMs) / msPerHour
	kpis.TBProcessed = float64(kpis.TotalBytesProcessed) / bytesPerTB

	if kpis.TotalJobs > 0 {
		kpis.ErrorRate = float64(kpis.TotalErrors) / float64(kpis.TotalJobs) * 100
		kpis.CacheHitRate = float64(cacheHits) / float64(kpis.TotalJobs) * 100
		kpis.AvgDurationSeconds = totalDuration.Seconds() / float64(kpis.TotalJobs)
	}

	return kpis
}

// Bucketize folds the records into a contiguous, zero-filled time series
// covering the whole window at the window's natural granularity.
func Bucketize(records []domain.ExecutionRecord, window domain.TimeWindow) []domain.TimeBucket {
	granularity := domain.GranularityForWindow(window)

	step := time.Hour
	truncate := times.TruncateToHour
	layout := times.HourLabelLayout

	if granularity == domain.GranularityDaily {
		step = times.DayDuration
		truncate = times.TruncateToDay
		layout = times.MonthDayLayout
	}

	start := truncate(window.Start)

	var buckets []domain.TimeBucket

	index := make(map[time.Time]int)

	for cursor := start; cursor.Before(window.End); cursor = cursor.Add(step) {
		index[cursor] = len(buckets)
		buckets = append(buckets, domain.TimeBucket{
			Start: cursor,
			Label: cursor.Format(layout),
		})
	}

	for _, record := range records {
		if !window.Contains(record.CreationTime) {
			continue
		}

		i, ok := index[truncate(record.CreationTime)]
		if !ok {
			continue
		}

		buckets[i].Jobs++
		buckets[i].Slots += float64(record.TotalSlotMs) / msPerHour
		buckets[i].GBytes += float64(record.TotalBytesProcessed) / bytesPerGB
	}

	return buckets
}

// ErrorBreakdown groups failed records by error category, largest first.
func ErrorBreakdown(records []domain.ExecutionRecord) []domain.ErrorSlice {
	counts := make(map[string]int)

	for _, record := range records {
		if !record.Failed {
			continue
		}

		category := record.ErrorCategory
		if category == "" {
			category = "unknown"
		}

		counts[category]++
	}

	slices := make([]domain.ErrorSlice, 0, len(counts))
	for name, count := range counts {
		slices = append(slices, domain.ErrorSlice{Name: name, Value: count})
	}

	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Value != slices[j].Value {
			return slices[i].Value > slices[j].Value
		}

		return slices[i].Name < slices[j].Name
	})

	for i := range slices {
		slices[i].Color = errorPalette[i%len(errorPalette)]
	}

	return slices
}

// TopUsers ranks users by slot consumption, largest first.
func TopUsers(records []domain.ExecutionRecord, limit int) []domain.UserUsage {
	byUser := make(map[string]*domain.UserUsage)

	for _, record := range records {
		if record.UserEmail == "" {
			continue
		}

		usage, ok := byUser[record.UserEmail]
		if !ok {
			usage = &domain.UserUsage{UserEmail: record.UserEmail}
			byUser[record.UserEmail] = usage
		}

		usage.QueryCount++
		usage.SlotHours += float64(record.TotalSlotMs) / msPerHour
		usage.GBProcessed += float64(record.TotalBytesProcessed) / bytesPerGB
	}

	users := make([]domain.UserUsage, 0, len(byUser))
	for _, usage := range byUser {
		users = append(users, *usage)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].SlotHours != users[j].SlotHours {
			return users[i].SlotHours > users[j].SlotHours
		}

		return users[i].UserEmail < users[j].UserEmail
	})

	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	return users
}

var durationBuckets = []struct {
	label string
	upTo  time.Duration
}{
	{label: "0-1min", upTo: time.Minute},
	{label: "1-5min", upTo: 5 * time.Minute},
	{label: "5-15min", upTo: 15 * time.Minute},
	{label: "15-60min", upTo: time.Hour},
	{label: "60min+", upTo: 0},
}

// DurationHistogram folds the records into fixed runtime buckets. Every
// bucket is present even when empty.
func DurationHistogram(records []domain.ExecutionRecord) []domain.DurationBucket {
	histogram := make([]domain.DurationBucket, len(durationBuckets))
	for i, bucket := range durationBuckets {
		histogram[i].Bucket = bucket.label
	}

	for _, record := range records {
		placed := false

		for i, bucket := range durationBuckets {
			if bucket.upTo > 0 && record.Duration < bucket.upTo {
				histogram[i].Count++
				placed = true

				break
			}
		}

		if !placed {
			histogram[len(histogram)-1].Count++
		}
	}

	return histogram
}
