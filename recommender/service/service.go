// Package service resolves schema context for historical jobs and requests
// optimization advice for them.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/framework/connection"
	"github.com/doitintl/bq-monitor/logger"
	"github.com/doitintl/bq-monitor/recommender/dal"
	dalIface "github.com/doitintl/bq-monitor/recommender/dal/iface"
	"github.com/doitintl/bq-monitor/recommender/domain"
)

const ddlSeparator = "\n\n---\n\n"

type RecommenderService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	warehouse      dalIface.Warehouse
	gemini         dalIface.Gemini
}

func NewRecommender(
	log logger.Provider,
	conn *connection.Connection,
) *RecommenderService {
	return &RecommenderService{
		loggerProvider: log,
		conn:           conn,
		warehouse:      dal.NewWarehouse(log),
		gemini:         dal.NewGemini(),
	}
}

// QueryDetails resolves a job's query text and the DDL of every table it
// referenced. Tables the credentials cannot read are skipped with a warning.
func (s *RecommenderService) QueryDetails(
	ctx context.Context,
	req domain.QueryDetailsRequest,
) (*domain.QueryDetails, error) {
	l := s.loggerProvider(ctx)

	client := s.conn.Bigquery(ctx)
	if req.Project != "" {
		client, _ = s.conn.BigqueryForProject(req.Project)
	}

	location := req.Location
	if location == "" {
		location = strings.ToUpper(common.BigQueryRegion)
	}

	queryText, refs, err := s.warehouse.JobQuery(ctx, client, req.JobID, location)
	if err != nil {
		return nil, err
	}

	var (
		statements []string
		warnings   []string
	)

	for _, ref := range refs {
		md, err := s.warehouse.TableMetadata(ctx, client, ref)
		if err != nil {
			l.Warningf("skipping schema of %s: %s", ref.FQN(), err)
			warnings = append(warnings, fmt.Sprintf("schema of %s unavailable", ref.FQN()))

			continue
		}

		statements = append(statements, renderDDL(ref, md))
	}

	return &domain.QueryDetails{
		Query:    queryText,
		DDL:      strings.Join(statements, ddlSeparator),
		Warnings: warnings,
	}, nil
}

// Recommend submits the query and its schema context for optimization
// advice.
func (s *RecommenderService) Recommend(
	ctx context.Context,
	req domain.OptimizeRequest,
) (*domain.Recommendation, error) {
	prompt := domain.BuildPrompt(req.Query, req.DDL)

	advice, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &domain.Recommendation{Recommendation: advice}, nil
}
