// Package bq reads job-history metadata from the warehouse's
// INFORMATION_SCHEMA views.
package bq

import (
	"context"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/doitintl/bq-monitor/bqutils"
	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/logger"
	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

const (
	monitorJobPrefix = "bq_monitor"

	featureLabel = "bq-monitor"
	moduleLabel  = "job-history"
)

type BigqueryDAL struct {
	loggerProvider logger.Provider
	queryHandler   bqutils.QueryHandler
}

func NewBigquery(
	loggerProvider logger.Provider,
	queryHandler bqutils.QueryHandler,
) *BigqueryDAL {
	return &BigqueryDAL{
		loggerProvider: loggerProvider,
		queryHandler:   queryHandler,
	}
}

func (d *BigqueryDAL) RunQuery(
	ctx context.Context,
	bq *bigquery.Client,
	query string,
) (bqutils.RowIterator, error) {
	queryJob := bq.Query(query)
	queryJob.JobIDConfig = bigquery.JobIDConfig{JobID: monitorJobPrefix, AddJobIDSuffix: true}

	queryJob.Labels = map[string]string{
		common.LabelKeyEnv.String():     common.GetEnvironmentLabel(),
		common.LabelKeyFeature.String(): featureLabel,
		common.LabelKeyModule.String():  moduleLabel,
	}

	iter, err := d.queryHandler.Read(ctx, queryJob)
	if err != nil {
		return nil, translateError(err)
	}

	return iter, nil
}

func (d *BigqueryDAL) RunJobsInWindowQuery(
	ctx context.Context,
	bq *bigquery.Client,
	query string,
) ([]bqmodels.JobRow, error) {
	iter, err := d.RunQuery(ctx, bq, query)
	if err != nil {
		return nil, err
	}

	rows, err := bqutils.LoadRows[bqmodels.JobRow](iter)
	if err != nil {
		return nil, translateError(err)
	}

	return rows, nil
}

func (d *BigqueryDAL) RunExpensiveJobsQuery(
	ctx context.Context,
	bq *bigquery.Client,
	query string,
) ([]bqmodels.JobRow, error) {
	return d.RunJobsInWindowQuery(ctx, bq, query)
}

func (d *BigqueryDAL) RunProjectRollupQuery(
	ctx context.Context,
	bq *bigquery.Client,
	query string,
) ([]bqmodels.ProjectRollupRow, error) {
	iter, err := d.RunQuery(ctx, bq, query)
	if err != nil {
		return nil, err
	}

	rows, err := bqutils.LoadRows[bqmodels.ProjectRollupRow](iter)
	if err != nil {
		return nil, translateError(err)
	}

	return rows, nil
}

func (d *BigqueryDAL) RunActiveProjectsQuery(
	ctx context.Context,
	bq *bigquery.Client,
	query string,
) ([]bqmodels.ActiveProjectRow, error) {
	iter, err := d.RunQuery(ctx, bq, query)
	if err != nil {
		return nil, err
	}

	rows, err := bqutils.LoadRows[bqmodels.ActiveProjectRow](iter)
	if err != nil {
		return nil, translateError(err)
	}

	return rows, nil
}

func (d *BigqueryDAL) RunWeeklyTrendQuery(
	ctx context.Context,
	bq *bigquery.Client,
	query string,
) ([]bqmodels.WeeklyTrendRow, error) {
	iter, err := d.RunQuery(ctx, bq, query)
	if err != nil {
		return nil, err
	}

	rows, err := bqutils.LoadRows[bqmodels.WeeklyTrendRow](iter)
	if err != nil {
		return nil, translateError(err)
	}

	return rows, nil
}

// ListDatasets summarizes the project's datasets with their table counts.
// Dataset sizes need a metadata read per table, which the drill-down skips.
func (d *BigqueryDAL) ListDatasets(
	ctx context.Context,
	bq *bigquery.Client,
	projectID string,
) ([]domain.DatasetSummary, error) {
	it := bq.Datasets(ctx)
	it.ProjectID = projectID

	var datasets []domain.DatasetSummary

	for {
		ds, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, translateError(err)
		}

		tables := 0

		tablesIter := ds.Tables(ctx)

		for {
			if _, err := tablesIter.Next(); err != nil {
				if err == iterator.Done {
					break
				}

				return nil, translateError(err)
			}

			tables++
		}

		datasets = append(datasets, domain.DatasetSummary{
			Name:   ds.DatasetID,
			Tables: tables,
		})
	}

	return datasets, nil
}

func (d *BigqueryDAL) RunTotalsInWindowQuery(
	ctx context.Context,
	bq *bigquery.Client,
	query string,
) (bqmodels.TotalsRow, error) {
	iter, err := d.RunQuery(ctx, bq, query)
	if err != nil {
		return bqmodels.TotalsRow{}, err
	}

	rows, err := bqutils.LoadRows[bqmodels.TotalsRow](iter)
	if err != nil {
		return bqmodels.TotalsRow{}, translateError(err)
	}

	if len(rows) == 0 {
		return bqmodels.TotalsRow{}, nil
	}

	return rows[0], nil
}
