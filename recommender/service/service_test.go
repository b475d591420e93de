package service

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/doitintl/bq-monitor/framework/connection"
	"github.com/doitintl/bq-monitor/logger"
	loggerMocks "github.com/doitintl/bq-monitor/logger/mocks"
	"github.com/doitintl/bq-monitor/recommender/dal"
	dalMocks "github.com/doitintl/bq-monitor/recommender/dal/mocks"
	"github.com/doitintl/bq-monitor/recommender/domain"
)

func newTestService(t *testing.T) (*RecommenderService, *dalMocks.Warehouse, *dalMocks.Gemini) {
	logMock := loggerMocks.NewILogger(t)
	logMock.On("Warningf", mock.Anything, mock.Anything, mock.Anything).Maybe()

	warehouse := dalMocks.NewWarehouse(t)
	gemini := dalMocks.NewGemini(t)

	s := &RecommenderService{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return logMock
		},
		conn: &connection.Connection{
			BigQueryClient: connection.NewBigQueryWithClients(&bigquery.Client{}, nil),
		},
		warehouse: warehouse,
		gemini:    gemini,
	}

	return s, warehouse, gemini
}

func TestQueryDetails(t *testing.T) {
	ctx := context.Background()

	tableRef := dal.TableRef{ProjectID: "analytics-prod", DatasetID: "sales", TableID: "orders"}
	viewRef := dal.TableRef{ProjectID: "analytics-prod", DatasetID: "sales", TableID: "orders_view"}
	deniedRef := dal.TableRef{ProjectID: "analytics-prod", DatasetID: "hr", TableID: "salaries"}

	tests := []struct {
		name    string
		req     domain.QueryDetailsRequest
		on      func(*dalMocks.Warehouse)
		want    *domain.QueryDetails
		wantErr error
	}{
		{
			name: "renders table and view DDL",
			req:  domain.QueryDetailsRequest{JobID: "job_123", Location: "US"},
			on: func(w *dalMocks.Warehouse) {
				w.On("JobQuery", ctx, mock.Anything, "job_123", "US").
					Return("SELECT * FROM orders", []dal.TableRef{tableRef, viewRef}, nil).Once()
				w.On("TableMetadata", ctx, mock.Anything, tableRef).
					Return(&bigquery.TableMetadata{
						Schema: bigquery.Schema{
							{Name: "id", Type: bigquery.IntegerFieldType},
							{Name: "amount", Type: bigquery.FloatFieldType},
						},
						TimePartitioning: &bigquery.TimePartitioning{
							Type:  bigquery.DayPartitioningType,
							Field: "created_at",
						},
						Clustering: &bigquery.Clustering{Fields: []string{"region"}},
					}, nil).Once()
				w.On("TableMetadata", ctx, mock.Anything, viewRef).
					Return(&bigquery.TableMetadata{ViewQuery: "SELECT id FROM orders"}, nil).Once()
			},
			want: &domain.QueryDetails{
				Query: "SELECT * FROM orders",
				DDL: "CREATE TABLE `analytics-prod.sales.orders` (\n" +
					"  `id` INTEGER,\n  `amount` FLOAT\n)" +
					"\n-- partitioned by created_at (DAY)" +
					"\n-- clustered by region" +
					"\n\n---\n\n" +
					"CREATE OR REPLACE VIEW `analytics-prod.sales.orders_view` AS\nSELECT id FROM orders",
			},
		},
		{
			name: "unreadable table becomes a warning, the rest survives",
			req:  domain.QueryDetailsRequest{JobID: "job_123", Location: "US"},
			on: func(w *dalMocks.Warehouse) {
				w.On("JobQuery", ctx, mock.Anything, "job_123", "US").
					Return("SELECT 1", []dal.TableRef{deniedRef, viewRef}, nil).Once()
				w.On("TableMetadata", ctx, mock.Anything, deniedRef).
					Return(nil, errors.New("accessDenied")).Once()
				w.On("TableMetadata", ctx, mock.Anything, viewRef).
					Return(&bigquery.TableMetadata{ViewQuery: "SELECT id FROM orders"}, nil).Once()
			},
			want: &domain.QueryDetails{
				Query:    "SELECT 1",
				DDL:      "CREATE OR REPLACE VIEW `analytics-prod.sales.orders_view` AS\nSELECT id FROM orders",
				Warnings: []string{"schema of analytics-prod.hr.salaries unavailable"},
			},
		},
		{
			name: "defaults location to the configured region",
			req:  domain.QueryDetailsRequest{JobID: "job_123"},
			on: func(w *dalMocks.Warehouse) {
				w.On("JobQuery", ctx, mock.Anything, "job_123", "US").
					Return("SELECT 1", nil, nil).Once()
			},
			want: &domain.QueryDetails{Query: "SELECT 1"},
		},
		{
			name: "job not found",
			req:  domain.QueryDetailsRequest{JobID: "gone", Location: "US"},
			on: func(w *dalMocks.Warehouse) {
				w.On("JobQuery", ctx, mock.Anything, "gone", "US").
					Return("", nil, domain.ErrJobNotFound).Once()
			},
			wantErr: domain.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, warehouse, _ := newTestService(t)

			if tt.on != nil {
				tt.on(warehouse)
			}

			got, err := s.QueryDetails(ctx, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the composed prompt through", func(t *testing.T) {
		s, _, gemini := newTestService(t)

		gemini.On("GenerateContent", ctx, mock.MatchedBy(func(prompt string) bool {
			return prompt == domain.BuildPrompt("SELECT 1", "CREATE TABLE t (a INT64)")
		})).Return("partition the table", nil).Once()

		got, err := s.Recommend(ctx, domain.OptimizeRequest{
			Query: "SELECT 1",
			DDL:   "CREATE TABLE t (a INT64)",
		})

		assert.NoError(t, err)
		assert.Equal(t, &domain.Recommendation{Recommendation: "partition the table"}, got)
	})

	t.Run("model failure surfaces unchanged", func(t *testing.T) {
		s, _, gemini := newTestService(t)

		gemini.On("GenerateContent", ctx, mock.Anything).
			Return("", domain.ErrRecommendationUnavailable).Once()

		_, err := s.Recommend(ctx, domain.OptimizeRequest{Query: "SELECT 1", DDL: "x"})

		assert.ErrorIs(t, err, domain.ErrRecommendationUnavailable)
	})
}
