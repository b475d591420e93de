package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/doitintl/bq-monitor/framework/web"
	"github.com/doitintl/bq-monitor/logger"
	loggerMocks "github.com/doitintl/bq-monitor/logger/mocks"
	"github.com/doitintl/bq-monitor/monitor/domain"
	"github.com/doitintl/bq-monitor/monitor/service/mocks"
)

func assertStatus(t *testing.T, err error, recorder *httptest.ResponseRecorder, wantedStatus int) {
	t.Helper()

	if err == nil {
		assert.Equal(t, wantedStatus, recorder.Code)
		return
	}

	var reqErr *web.Error

	if errors.As(err, &reqErr) {
		assert.Equal(t, wantedStatus, reqErr.Status)
	} else {
		t.Fatalf("Unexpected error type: %v", err)
	}
}

func TestOperationalDashboard(t *testing.T) {
	type fields struct {
		service     *mocks.Monitor
		loggerMocks *loggerMocks.ILogger
	}

	tests := []struct {
		name         string
		target       string
		on           func(*fields, *gin.Context)
		wantedStatus int
	}{
		{
			name:   "all projects scope",
			target: "/api/operational-dashboard?region=us&timeRange=24h",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("OperationalDashboard", ctx, domain.NewAllProjectsScope("us"), "24h").
					Return(&domain.OperationalDashboard{TimeRange: "24h"}, nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:   "single project scope",
			target: "/api/operational-dashboard?region=us&project=analytics-prod",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("OperationalDashboard", ctx, domain.NewProjectScope("us", "analytics-prod"), "").
					Return(&domain.OperationalDashboard{TimeRange: "24h"}, nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:   "invalid scope",
			target: "/api/operational-dashboard",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("OperationalDashboard", ctx, mock.Anything, "").
					Return(nil, domain.ErrInvalidScope).Once()
			},
			wantedStatus: http.StatusBadRequest,
		},
		{
			name:   "scope denied",
			target: "/api/operational-dashboard?project=locked",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("OperationalDashboard", ctx, mock.Anything, "").
					Return(nil, domain.ErrScopeDenied).Once()
			},
			wantedStatus: http.StatusForbidden,
		},
		{
			name:   "upstream unavailable",
			target: "/api/operational-dashboard",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("OperationalDashboard", ctx, mock.Anything, "").
					Return(nil, domain.ErrUpstreamUnavailable).Once()
			},
			wantedStatus: http.StatusBadGateway,
		},
		{
			name:   "unexpected error",
			target: "/api/operational-dashboard",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("OperationalDashboard", ctx, mock.Anything, "").
					Return(nil, errors.New("boom")).Once()
			},
			wantedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			fields := fields{
				service:     mocks.NewMonitor(t),
				loggerMocks: loggerMocks.NewILogger(t),
			}

			h := &Monitor{
				service: fields.service,
				loggerProvider: func(ctx context.Context) logger.ILogger {
					return fields.loggerMocks
				},
			}

			ctx.Request = httptest.NewRequest(http.MethodGet, tt.target, nil)

			if tt.on != nil {
				tt.on(&fields, ctx)
			}

			err := h.OperationalDashboard(ctx)

			assertStatus(t, err, recorder, tt.wantedStatus)
		})
	}
}

func TestExpensiveQueries(t *testing.T) {
	type fields struct {
		service     *mocks.Monitor
		loggerMocks *loggerMocks.ILogger
	}

	tests := []struct {
		name         string
		target       string
		on           func(*fields, *gin.Context)
		wantedStatus int
	}{
		{
			name:   "explicit limit",
			target: "/api/expensive-queries?region=us&timeRange=7d&limit=20",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("ExpensiveQueries", ctx, domain.NewAllProjectsScope("us"), "7d", 20).
					Return(&domain.ExpensiveQueries{}, nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:   "malformed limit",
			target: "/api/expensive-queries?limit=abc",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
			},
			wantedStatus: http.StatusBadRequest,
		},
		{
			name:   "negative limit",
			target: "/api/expensive-queries?limit=-1",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
			},
			wantedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			fields := fields{
				service:     mocks.NewMonitor(t),
				loggerMocks: loggerMocks.NewILogger(t),
			}

			h := &Monitor{
				service: fields.service,
				loggerProvider: func(ctx context.Context) logger.ILogger {
					return fields.loggerMocks
				},
			}

			ctx.Request = httptest.NewRequest(http.MethodGet, tt.target, nil)

			if tt.on != nil {
				tt.on(&fields, ctx)
			}

			err := h.ExpensiveQueries(ctx)

			assertStatus(t, err, recorder, tt.wantedStatus)
		})
	}
}

func TestProjects(t *testing.T) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	serviceMock := mocks.NewMonitor(t)
	logMock := loggerMocks.NewILogger(t)
	logMock.On("SetLabels", mock.Anything)

	h := &Monitor{
		service: serviceMock,
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return logMock
		},
	}

	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/projects?region=us", nil)

	serviceMock.On("Projects", ctx, domain.NewAllProjectsScope("us")).
		Return([]domain.ProjectEntry{{ID: "any_value"}}, nil).Once()

	err := h.Projects(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPulseData(t *testing.T) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)

	serviceMock := mocks.NewMonitor(t)
	logMock := loggerMocks.NewILogger(t)
	logMock.On("SetLabels", mock.Anything)

	h := &Monitor{
		service: serviceMock,
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return logMock
		},
	}

	ctx.Request = httptest.NewRequest(http.MethodGet, "/api/pulse-data?region=us&project=analytics-prod", nil)

	serviceMock.On("Pulse", ctx, domain.NewProjectScope("us", "analytics-prod")).
		Return(&domain.Pulse{}, nil).Once()

	err := h.PulseData(ctx)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestProjectDetails(t *testing.T) {
	type fields struct {
		service     *mocks.Monitor
		loggerMocks *loggerMocks.ILogger
	}

	tests := []struct {
		name         string
		projectID    string
		target       string
		on           func(*fields, *gin.Context)
		wantedStatus int
	}{
		{
			name:      "project drill-down",
			projectID: "analytics-prod",
			target:    "/api/monitor/project/analytics-prod?region=us&timeRange=24h",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("ProjectDetails", ctx, domain.NewProjectScope("us", "analytics-prod"), "24h").
					Return(&domain.ProjectDetails{ID: "analytics-prod"}, nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:      "scope denied",
			projectID: "locked",
			target:    "/api/monitor/project/locked?region=us",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("ProjectDetails", ctx, domain.NewProjectScope("us", "locked"), "").
					Return(nil, domain.ErrScopeDenied).Once()
			},
			wantedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			fields := fields{
				service:     mocks.NewMonitor(t),
				loggerMocks: loggerMocks.NewILogger(t),
			}

			h := &Monitor{
				service: fields.service,
				loggerProvider: func(ctx context.Context) logger.ILogger {
					return fields.loggerMocks
				},
			}

			ctx.Request = httptest.NewRequest(http.MethodGet, tt.target, nil)
			ctx.Params = gin.Params{{Key: "projectID", Value: tt.projectID}}

			if tt.on != nil {
				tt.on(&fields, ctx)
			}

			err := h.ProjectDetails(ctx)

			assertStatus(t, err, recorder, tt.wantedStatus)
		})
	}
}
