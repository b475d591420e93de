//go:generate mockery --name Warehouse --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/doitintl/bq-monitor/recommender/dal"
)

type Warehouse interface {
	JobQuery(
		ctx context.Context,
		bq *bigquery.Client,
		jobID string,
		location string,
	) (string, []dal.TableRef, error)

	TableMetadata(
		ctx context.Context,
		bq *bigquery.Client,
		ref dal.TableRef,
	) (*bigquery.TableMetadata, error)
}
