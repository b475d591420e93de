package connection

import (
	"context"
	"errors"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/option"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/logger"
)

var (
	ErrBigqueryInitialization = errors.New("bigquery initialization error")
)

type BigQueryClient struct {
	projectsBQ map[string]*bigquery.Client
	bq         *bigquery.Client
}

func NewBigQuery(ctx context.Context, log *logger.Logging, projects []string) (*BigQueryClient, error) {
	logger := log.Logger(ctx)

	scopes := option.WithScopes(bigquery.Scope)

	bq, err := bigquery.NewClient(ctx, common.ProjectID, scopes)
	if err != nil {
		logger.Errorf("%s: %s", ErrBigqueryInitialization, err)
		return nil, ErrBigqueryInitialization
	}

	// Per-project bq clients.
	projectsBQ := make(map[string]*bigquery.Client)

	for _, project := range projects {
		client, err := bigquery.NewClient(ctx, project, scopes)
		if err != nil {
			logger.Errorf("%s: %s", ErrBigqueryInitialization, err)
			return nil, ErrBigqueryInitialization
		}

		projectsBQ[project] = client
	}

	return &BigQueryClient{
		bq:         bq,
		projectsBQ: projectsBQ,
	}, nil
}

// NewBigQueryWithClients wires pre-built clients, bypassing credential
// resolution. Used by tests.
func NewBigQueryWithClients(bq *bigquery.Client, projectsBQ map[string]*bigquery.Client) *BigQueryClient {
	if projectsBQ == nil {
		projectsBQ = make(map[string]*bigquery.Client)
	}

	return &BigQueryClient{
		bq:         bq,
		projectsBQ: projectsBQ,
	}
}
