package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/monitor/domain"
)

const (
	investigationTopQueries = 5
	joinShapeKeep           = 6
)

// Investigate profiles a window's workload: submission volume by hour of
// day, a join-shape breakdown classified from query text, and the window's
// heaviest queries.
func (s *MonitorService) Investigate(
	ctx context.Context,
	scope domain.Scope,
	timeRange string,
) (*domain.Investigation, error) {
	window, normalized := domain.ParseTimeRange(timeRange, s.timeNowFunc())

	records, warnings, err := s.fetchWindowRecords(ctx, scope, window)
	if err != nil {
		return nil, err
	}

	return &domain.Investigation{
		JobsByHour: jobsByHourOfDay(records),
		JobTypes:   joinShapeBreakdown(records),
		TopQueries: TopByCost(records, investigationTopQueries, common.QueryPreviewLength),
		TimeRange:  normalized,
		Warnings:   warnings,
	}, nil
}

// jobsByHourOfDay histograms submissions over the 24 hours of the day,
// keeping only hours that saw activity.
func jobsByHourOfDay(records []domain.ExecutionRecord) []domain.HourCount {
	counts := make(map[int]int)

	for _, record := range records {
		counts[record.CreationTime.UTC().Hour()]++
	}

	histogram := make([]domain.HourCount, 0, len(counts))

	for hour := 0; hour < 24; hour++ {
		if counts[hour] == 0 {
			continue
		}

		histogram = append(histogram, domain.HourCount{
			Hour: fmt.Sprintf("%02d:00", hour),
			Jobs: counts[hour],
		})
	}

	return histogram
}

// classifyJoinShape buckets a query by its dominant join construct. Check
// order matters: the more specific shapes shadow the bare JOIN match.
func classifyJoinShape(query string) string {
	upper := strings.ToUpper(query)

	switch {
	case strings.Contains(upper, "CROSS JOIN"):
		return "CROSS EACH"
	case strings.Contains(upper, "WITH"):
		return "WITH EACH"
	case strings.Contains(upper, "FULL OUTER"):
		return "FULL OUTER"
	case strings.Contains(upper, "HASH JOIN"):
		return "HASH JOIN EACH"
	case strings.Contains(upper, "JOIN"):
		return "EACH WITH ALL"
	default:
		return "OTHER"
	}
}

func joinShapeBreakdown(records []domain.ExecutionRecord) []domain.JoinShapeStat {
	type shapeTotals struct {
		jobs   int
		slotMs int64
		bytes  int64
	}

	byShape := make(map[string]*shapeTotals)

	for _, record := range records {
		if record.Query == "" {
			continue
		}

		shape := classifyJoinShape(record.Query)
		if shape == "OTHER" {
			continue
		}

		totals, ok := byShape[shape]
		if !ok {
			totals = &shapeTotals{}
			byShape[shape] = totals
		}

		totals.jobs++
		totals.slotMs += record.TotalSlotMs
		totals.bytes += record.TotalBytesProcessed
	}

	stats := make([]domain.JoinShapeStat, 0, len(byShape))

	for shape, totals := range byShape {
		jobs := int64(totals.jobs)

		stats = append(stats, domain.JoinShapeStat{
			JobType:           shape,
			Jobs:              totals.jobs,
			AvgRecordsRead:    totals.bytes / 1000 / jobs,
			AvgRecordsWritten: totals.bytes / 2000 / jobs,
			AvgSlotMs:         totals.slotMs / jobs,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Jobs != stats[j].Jobs {
			return stats[i].Jobs > stats[j].Jobs
		}

		return stats[i].JobType < stats[j].JobType
	})

	if len(stats) > joinShapeKeep {
		stats = stats[:joinShapeKeep]
	}

	return stats
}
