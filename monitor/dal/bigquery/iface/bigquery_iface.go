//go:generate mockery --name Bigquery --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-monitor/bqutils"
	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

type Bigquery interface {
	RunQuery(
		ctx context.Context,
		bq *bigquery.Client,
		query string,
	) (bqutils.RowIterator, error)

	RunJobsInWindowQuery(
		ctx context.Context,
		bq *bigquery.Client,
		query string,
	) ([]bqmodels.JobRow, error)

	RunExpensiveJobsQuery(
		ctx context.Context,
		bq *bigquery.Client,
		query string,
	) ([]bqmodels.JobRow, error)

	RunProjectRollupQuery(
		ctx context.Context,
		bq *bigquery.Client,
		query string,
	) ([]bqmodels.ProjectRollupRow, error)

	RunActiveProjectsQuery(
		ctx context.Context,
		bq *bigquery.Client,
		query string,
	) ([]bqmodels.ActiveProjectRow, error)

	RunWeeklyTrendQuery(
		ctx context.Context,
		bq *bigquery.Client,
		query string,
	) ([]bqmodels.WeeklyTrendRow, error)

	RunTotalsInWindowQuery(
		ctx context.Context,
		bq *bigquery.Client,
		query string,
	) (bqmodels.TotalsRow, error)

	ListDatasets(
		ctx context.Context,
		bq *bigquery.Client,
		projectID string,
	) ([]domain.DatasetSummary, error)
}
