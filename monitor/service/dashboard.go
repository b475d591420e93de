package service

import (
	"context"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

const (
	topUsersLimit     = 10
	errorCategoryKeep = 5
)

// fetchWindowRecords retrieves the raw execution records of a window across
// the scope, merged into a single slice.
func (s *MonitorService) fetchWindowRecords(
	ctx context.Context,
	scope domain.Scope,
	window domain.TimeWindow,
) ([]domain.ExecutionRecord, []string, error) {
	results, warnings, err := fanOut(ctx, s, scope, func(ctx context.Context, pc projectClient) ([]bqmodels.JobRow, error) {
		query, err := domain.QueryReplacer(bqmodels.JobsInWindow, domain.Replacements{
			Scope:      domain.NewProjectScope(scope.Region(), pc.projectID),
			Window:     window,
			MaxResults: common.MaxQueryResults,
		})
		if err != nil {
			return nil, err
		}

		return s.dalBQ.RunJobsInWindowQuery(ctx, pc.client, query)
	})
	if err != nil {
		return nil, nil, err
	}

	var records []domain.ExecutionRecord
	for _, rows := range results {
		records = append(records, recordsFromRows(rows)...)
	}

	return records, warnings, nil
}

// OperationalDashboard aggregates the window's records into the KPI set,
// chart series and per-user rollups the operational view renders.
func (s *MonitorService) OperationalDashboard(
	ctx context.Context,
	scope domain.Scope,
	timeRange string,
) (*domain.OperationalDashboard, error) {
	window, normalized := domain.ParseTimeRange(timeRange, s.timeNowFunc())

	records, warnings, err := s.fetchWindowRecords(ctx, scope, window)
	if err != nil {
		return nil, err
	}

	buckets := Bucketize(records, window)

	errorBreakdown := ErrorBreakdown(records)
	if len(errorBreakdown) > errorCategoryKeep {
		errorBreakdown = errorBreakdown[:errorCategoryKeep]
	}

	return &domain.OperationalDashboard{
		KPIs:                Aggregate(records),
		SlotUsageChart:      buckets,
		BytesProcessedChart: buckets,
		JobDurationChart:    DurationHistogram(records),
		ErrorBreakdown:      errorBreakdown,
		TopUsers:            TopUsers(records, topUsersLimit),
		TimeRange:           normalized,
		Warnings:            warnings,
	}, nil
}
