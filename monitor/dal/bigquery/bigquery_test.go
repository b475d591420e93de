package bq

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"

	bqutilsMocks "github.com/doitintl/bq-monitor/bqutils/mocks"
	"github.com/doitintl/bq-monitor/logger"
	loggerMocks "github.com/doitintl/bq-monitor/logger/mocks"
	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

type fakeJobIterator struct {
	rows []bqmodels.JobRow
	idx  int
}

func (it *fakeJobIterator) Next(dst interface{}) error {
	if it.idx >= len(it.rows) {
		return iterator.Done
	}

	*dst.(*bqmodels.JobRow) = it.rows[it.idx]
	it.idx++

	return nil
}

func testLoggerProvider(t *testing.T) logger.Provider {
	log := loggerMocks.NewILogger(t)

	return func(_ context.Context) logger.ILogger {
		return log
	}
}

func TestBigqueryDALRunJobsInWindowQuery(t *testing.T) {
	ctx := context.Background()
	queryText := "SELECT job_id FROM jobs"

	row := bqmodels.JobRow{
		JobID:        "job_1",
		ProjectID:    "analytics-prod",
		UserEmail:    "analyst@example.com",
		CreationTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		TotalSlotMs:  12000,
	}

	type fields struct {
		queryHandler *bqutilsMocks.QueryHandler
	}

	tests := []struct {
		name    string
		on      func(f *fields)
		want    []bqmodels.JobRow
		wantErr error
	}{
		{
			name: "returns loaded rows",
			on: func(f *fields) {
				f.queryHandler.On("Read", ctx, mock.MatchedBy(func(q *bigquery.Query) bool {
					return q.Q == queryText &&
						q.JobIDConfig.JobID == monitorJobPrefix &&
						q.JobIDConfig.AddJobIDSuffix &&
						q.Labels["feature"] == featureLabel
				})).
					Return(&fakeJobIterator{rows: []bqmodels.JobRow{row}}, nil)
			},
			want: []bqmodels.JobRow{row},
		},
		{
			name: "access denied maps to scope denial",
			on: func(f *fields) {
				f.queryHandler.On("Read", ctx, mock.AnythingOfType("*bigquery.Query")).
					Return(nil, &googleapi.Error{Code: http.StatusForbidden, Message: "access denied"})
			},
			wantErr: domain.ErrScopeDenied,
		},
		{
			name: "transport failure maps to upstream unavailable",
			on: func(f *fields) {
				f.queryHandler.On("Read", ctx, mock.AnythingOfType("*bigquery.Query")).
					Return(nil, errors.New("connection reset"))
			},
			wantErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{queryHandler: bqutilsMocks.NewQueryHandler(t)}
			tt.on(&f)

			d := NewBigquery(testLoggerProvider(t), f.queryHandler)

			client := &bigquery.Client{}

			got, err := d.RunJobsInWindowQuery(ctx, client, queryText)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "nil passes through", err: nil, wantErr: nil},
		{
			name:    "forbidden",
			err:     &googleapi.Error{Code: http.StatusForbidden},
			wantErr: domain.ErrScopeDenied,
		},
		{
			name:    "unauthorized",
			err:     &googleapi.Error{Code: http.StatusUnauthorized},
			wantErr: domain.ErrScopeDenied,
		},
		{
			name:    "not found",
			err:     &googleapi.Error{Code: http.StatusNotFound},
			wantErr: domain.ErrScopeDenied,
		},
		{
			name:    "server error",
			err:     &googleapi.Error{Code: http.StatusServiceUnavailable},
			wantErr: domain.ErrUpstreamUnavailable,
		},
		{
			name:    "deadline exceeded",
			err:     context.DeadlineExceeded,
			wantErr: domain.ErrUpstreamUnavailable,
		},
		{
			name:    "generic error",
			err:     errors.New("dial tcp: i/o timeout"),
			wantErr: domain.ErrUpstreamUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)
			if tt.wantErr == nil {
				assert.NoError(t, got)
				return
			}

			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}
