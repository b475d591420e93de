// Package bqutils carries the thin seam between the application and the
// BigQuery client library, so data access layers can be tested against a
// mocked row iterator.
package bqutils

import (
	"context"

	"cloud.google.com/go/bigquery"
)

// RowIterator is the subset of bigquery.RowIterator the application consumes.
type RowIterator interface {
	Next(dst interface{}) error
}

//go:generate mockery --name QueryHandler --output ./mocks --case=underscore
type QueryHandler interface {
	Read(ctx context.Context, query *bigquery.Query) (RowIterator, error)
}

// BigQueryQueryHandler executes queries against the real service.
type BigQueryQueryHandler struct{}

func (h *BigQueryQueryHandler) Read(ctx context.Context, query *bigquery.Query) (RowIterator, error) {
	return query.Read(ctx)
}
