package service

import (
	"context"
	"sort"
	"time"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
	"github.com/doitintl/bq-monitor/times"
)

const (
	trendWeeks       = 5
	slotMsPerMillion = 1e6
)

// Slot commitment figures rendered by the pulse capacity widgets. Overridable
// until the reservations API is wired in.
var (
	totalSlotCapacity = common.GetEnvInt("SLOT_CAPACITY", 960)
	totalSlots        = common.GetEnvInt("TOTAL_SLOTS", 1000)
	totalIdleSlots    = common.GetEnvInt("TOTAL_IDLE_SLOTS", 1000)
)

type windowTotals struct {
	current  bqmodels.TotalsRow
	previous bqmodels.TotalsRow
}

// Pulse assembles the weekly trend charts and week-over-week KPIs.
func (s *MonitorService) Pulse(ctx context.Context, scope domain.Scope) (*domain.Pulse, error) {
	now := s.timeNowFunc()

	week := domain.TimeWindow{Start: now.Add(-times.WeekDuration), End: now}

	trendResults, trendWarnings, err := fanOut(ctx, s, scope, func(ctx context.Context, pc projectClient) ([]bqmodels.WeeklyTrendRow, error) {
		query, err := domain.QueryReplacer(bqmodels.WeeklyTrend, domain.Replacements{
			Scope:      domain.NewProjectScope(scope.Region(), pc.projectID),
			Window:     week,
			TrendWeeks: trendWeeks,
		})
		if err != nil {
			return nil, err
		}

		return s.dalBQ.RunWeeklyTrendQuery(ctx, pc.client, query)
	})
	if err != nil {
		return nil, err
	}

	totalsResults, totalsWarnings, err := fanOut(ctx, s, scope, func(ctx context.Context, pc projectClient) (windowTotals, error) {
		return s.windowTotalsPair(ctx, scope, pc, week)
	})
	if err != nil {
		return nil, err
	}

	dailyRecords, dailyWarnings, err := s.fetchWindowRecords(ctx, scope, week)
	if err != nil {
		return nil, err
	}

	weeklyBytes, weeklySlots := mergeWeeklyTrends(trendResults)

	var current, previous bqmodels.TotalsRow
	for _, pair := range totalsResults {
		addTotals(&current, pair.current)
		addTotals(&previous, pair.previous)
	}

	dailyBuckets := Bucketize(dailyRecords, week)

	return &domain.Pulse{
		WeeklyBytesProcessed: weeklyBytes,
		WeeklySlotMs:         weeklySlots,
		DailyBytesProcessed:  dailyBuckets,
		DailySlotRate:        dailyBuckets,
		KPIs:                 pulseKPIs(current, previous),
		Reservations: domain.Reservations{
			TotalSlotCapacity: totalSlotCapacity,
			TotalSlots:        totalSlots,
			TotalIdleSlots:    totalIdleSlots,
		},
		Warnings: mergeWarnings(trendWarnings, totalsWarnings, dailyWarnings),
	}, nil
}

func (s *MonitorService) windowTotalsPair(
	ctx context.Context,
	scope domain.Scope,
	pc projectClient,
	week domain.TimeWindow,
) (windowTotals, error) {
	projectScope := domain.NewProjectScope(scope.Region(), pc.projectID)

	currentQuery, err := domain.QueryReplacer(bqmodels.TotalsInWindow, domain.Replacements{
		Scope:  projectScope,
		Window: week,
	})
	if err != nil {
		return windowTotals{}, err
	}

	current, err := s.dalBQ.RunTotalsInWindowQuery(ctx, pc.client, currentQuery)
	if err != nil {
		return windowTotals{}, err
	}

	previousQuery, err := domain.QueryReplacer(bqmodels.TotalsInWindow, domain.Replacements{
		Scope:  projectScope,
		Window: week.Previous(),
	})
	if err != nil {
		return windowTotals{}, err
	}

	previous, err := s.dalBQ.RunTotalsInWindowQuery(ctx, pc.client, previousQuery)
	if err != nil {
		return windowTotals{}, err
	}

	return windowTotals{current: current, previous: previous}, nil
}

func mergeWeeklyTrends(results [][]bqmodels.WeeklyTrendRow) ([]domain.WeekPoint, []domain.WeekPoint) {
	type trend struct {
		bytes  float64
		slotMs float64
	}

	byWeek := make(map[time.Time]*trend)

	for _, rows := range results {
		for _, row := range rows {
			week := row.WeekStart.UTC()

			t, ok := byWeek[week]
			if !ok {
				t = &trend{}
				byWeek[week] = t
			}

			t.bytes += float64(row.TotalBytesProcessed)
			t.slotMs += float64(row.TotalSlotMs)
		}
	}

	weeks := make([]time.Time, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}

	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	bytesPoints := make([]domain.WeekPoint, 0, len(weeks))
	slotPoints := make([]domain.WeekPoint, 0, len(weeks))

	for _, week := range weeks {
		label := times.WeekLabel(week)
		bytesPoints = append(bytesPoints, domain.WeekPoint{Week: label, Value: byWeek[week].bytes / bytesPerTB})
		slotPoints = append(slotPoints, domain.WeekPoint{Week: label, Value: byWeek[week].slotMs / slotMsPerMillion})
	}

	return bytesPoints, slotPoints
}

func addTotals(dst *bqmodels.TotalsRow, src bqmodels.TotalsRow) {
	dst.TotalJobs += src.TotalJobs
	dst.TotalBytesProcessed.Int64 += src.TotalBytesProcessed.Int64
	dst.TotalBytesProcessed.Valid = dst.TotalBytesProcessed.Valid || src.TotalBytesProcessed.Valid
	dst.TotalSlotMs.Int64 += src.TotalSlotMs.Int64
	dst.TotalSlotMs.Valid = dst.TotalSlotMs.Valid || src.TotalSlotMs.Valid
	dst.DelayedJobs += src.DelayedJobs
	dst.CacheHits += src.CacheHits
	dst.TotalDurationSeconds.Float64 += src.TotalDurationSeconds.Float64
	dst.TotalDurationSeconds.Valid = dst.TotalDurationSeconds.Valid || src.TotalDurationSeconds.Valid
}

func pulseKPIs(current, previous bqmodels.TotalsRow) domain.PulseKPIs {
	currentBytes := float64(current.TotalBytesProcessed.Int64)
	previousBytes := float64(previous.TotalBytesProcessed.Int64)
	currentSlotMs := float64(current.TotalSlotMs.Int64)
	previousSlotMs := float64(previous.TotalSlotMs.Int64)

	kpis := domain.PulseKPIs{
		BytesProcessedWTD:    currentBytes / bytesPerTB,
		BytesProcessedChange: domain.ChangePercent(currentBytes, previousBytes),
		SlotMsWTD:            currentSlotMs / slotMsPerMillion,
		SlotMsChange:         domain.ChangePercent(currentSlotMs, previousSlotMs),
	}

	if current.TotalJobs > 0 {
		kpis.AvgJobDurationWTD = current.TotalDurationSeconds.Float64 / float64(current.TotalJobs)
		kpis.JobsDelayedWTD = float64(current.DelayedJobs) / float64(current.TotalJobs) * 100
		kpis.QueryCacheRateWTD = float64(current.CacheHits) / float64(current.TotalJobs) * 100
	}

	return kpis
}

func mergeWarnings(lists ...[]string) []string {
	seen := make(map[string]struct{})

	var merged []string

	for _, list := range lists {
		for _, warning := range list {
			if _, ok := seen[warning]; ok {
				continue
			}

			seen[warning] = struct{}{}
			merged = append(merged, warning)
		}
	}

	return merged
}
