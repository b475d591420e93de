package service

import (
	"context"
	"sort"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

// defaultExpensiveQueriesLimit ranks the top queries when the caller does not
// ask for a specific count.
const defaultExpensiveQueriesLimit = 10

// TopByCost ranks the records by slot consumption, descending, breaking ties
// by earlier submission. Ranks start at 1 and follow the merged, re-sorted
// order even when the records came from several projects.
func TopByCost(records []domain.ExecutionRecord, limit, previewLen int) []domain.RankedQuery {
	sorted := make([]domain.ExecutionRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalSlotMs != sorted[j].TotalSlotMs {
			return sorted[i].TotalSlotMs > sorted[j].TotalSlotMs
		}

		return sorted[i].CreationTime.Before(sorted[j].CreationTime)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	ranked := make([]domain.RankedQuery, len(sorted))
	for i, record := range sorted {
		ranked[i] = domain.RankedQuery{
			Rank:            i + 1,
			JobID:           record.JobID,
			ProjectID:       record.ProjectID,
			UserEmail:       record.UserEmail,
			CreationTime:    record.CreationTime,
			TotalSlotMs:     record.TotalSlotMs,
			GBProcessed:     float64(record.TotalBytesProcessed) / bytesPerGB,
			DurationSeconds: record.Duration.Seconds(),
			QueryPreview:    domain.Preview(record.Query, previewLen),
			Query:           record.Query,
		}
	}

	return ranked
}

// ExpensiveQueries returns the scope's costliest successful queries in the
// window, ranked across all in-scope projects.
func (s *MonitorService) ExpensiveQueries(
	ctx context.Context,
	scope domain.Scope,
	timeRange string,
	limit int,
) (*domain.ExpensiveQueries, error) {
	window, _ := domain.ParseTimeRange(timeRange, s.timeNowFunc())

	if limit <= 0 {
		limit = defaultExpensiveQueriesLimit
	}

	if limit > common.MaxQueryResults {
		limit = common.MaxQueryResults
	}

	results, warnings, err := fanOut(ctx, s, scope, func(ctx context.Context, pc projectClient) ([]bqmodels.JobRow, error) {
		query, err := domain.QueryReplacer(bqmodels.ExpensiveJobs, domain.Replacements{
			Scope:      domain.NewProjectScope(scope.Region(), pc.projectID),
			Window:     window,
			MaxResults: limit,
		})
		if err != nil {
			return nil, err
		}

		return s.dalBQ.RunExpensiveJobsQuery(ctx, pc.client, query)
	})
	if err != nil {
		return nil, err
	}

	var records []domain.ExecutionRecord
	for _, rows := range results {
		records = append(records, recordsFromRows(rows)...)
	}

	return &domain.ExpensiveQueries{
		Queries:  TopByCost(records, limit, common.QueryPreviewLength),
		Warnings: warnings,
	}, nil
}
