package dal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/googleapi"

	"github.com/doitintl/bq-monitor/logger"
	"github.com/doitintl/bq-monitor/recommender/domain"
)

// TableRef identifies one table a job referenced.
type TableRef struct {
	ProjectID string
	DatasetID string
	TableID   string
}

func (r TableRef) FQN() string {
	return fmt.Sprintf("%s.%s.%s", r.ProjectID, r.DatasetID, r.TableID)
}

type WarehouseDAL struct {
	loggerProvider logger.Provider
}

func NewWarehouse(loggerProvider logger.Provider) *WarehouseDAL {
	return &WarehouseDAL{
		loggerProvider: loggerProvider,
	}
}

// JobQuery resolves a historical job's query text and the tables it
// referenced.
func (d *WarehouseDAL) JobQuery(
	ctx context.Context,
	bq *bigquery.Client,
	jobID string,
	location string,
) (string, []TableRef, error) {
	job, err := bq.JobFromIDLocation(ctx, jobID, location)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return "", nil, fmt.Errorf("%w: %s in location %s", domain.ErrJobNotFound, jobID, location)
		}

		return "", nil, fmt.Errorf("unable to get job %s: %w", jobID, err)
	}

	config, err := job.Config()
	if err != nil {
		return "", nil, fmt.Errorf("unable to read configuration of job %s: %w", jobID, err)
	}

	queryConfig, ok := config.(*bigquery.QueryConfig)
	if !ok {
		return "", nil, fmt.Errorf("%w: job %s is not a query job", domain.ErrJobNotFound, jobID)
	}

	var refs []TableRef

	status := job.LastStatus()
	if status == nil || status.Statistics == nil {
		return queryConfig.Q, nil, nil
	}

	if stats, ok := status.Statistics.Details.(*bigquery.QueryStatistics); ok {
		for _, table := range stats.ReferencedTables {
			refs = append(refs, TableRef{
				ProjectID: table.ProjectID,
				DatasetID: table.DatasetID,
				TableID:   table.TableID,
			})
		}
	}

	return queryConfig.Q, refs, nil
}

// TableMetadata reads one referenced table's schema.
func (d *WarehouseDAL) TableMetadata(
	ctx context.Context,
	bq *bigquery.Client,
	ref TableRef,
) (*bigquery.TableMetadata, error) {
	return bq.DatasetInProject(ref.ProjectID, ref.DatasetID).Table(ref.TableID).Metadata(ctx)
}
