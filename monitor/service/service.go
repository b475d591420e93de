// Package service implements the monitoring dashboard's aggregation logic on
// top of the warehouse job-history DAL.
package service

import (
	"time"

	"github.com/doitintl/bq-monitor/bqutils"
	"github.com/doitintl/bq-monitor/framework/connection"
	"github.com/doitintl/bq-monitor/logger"
	bqDal "github.com/doitintl/bq-monitor/monitor/dal/bigquery"
	dalIface "github.com/doitintl/bq-monitor/monitor/dal/bigquery/iface"
	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

type MonitorService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	dalBQ          dalIface.Bigquery
	timeNowFunc    func() time.Time
}

func NewMonitor(
	log logger.Provider,
	conn *connection.Connection,
) *MonitorService {
	dalBQ := bqDal.NewBigquery(log, &bqutils.BigQueryQueryHandler{})

	return &MonitorService{
		loggerProvider: log,
		conn:           conn,
		dalBQ:          dalBQ,
		timeNowFunc:    func() time.Time { return time.Now().UTC() },
	}
}

func recordFromRow(row bqmodels.JobRow) domain.ExecutionRecord {
	var duration time.Duration
	if row.DurationSeconds.Valid {
		duration = time.Duration(row.DurationSeconds.Float64 * float64(time.Second))
	}

	return domain.ExecutionRecord{
		JobID:               row.JobID,
		ProjectID:           row.ProjectID,
		UserEmail:           row.UserEmail,
		CreationTime:        row.CreationTime,
		Duration:            duration,
		TotalSlotMs:         row.TotalSlotMs,
		TotalBytesProcessed: row.TotalBytesProcessed,
		CacheHit:            row.CacheHit,
		Failed:              row.Failed,
		ErrorCategory:       row.ErrorReason,
		Query:               row.Query,
	}
}

func recordsFromRows(rows []bqmodels.JobRow) []domain.ExecutionRecord {
	records := make([]domain.ExecutionRecord, len(rows))
	for i, row := range rows {
		records[i] = recordFromRow(row)
	}

	return records
}
