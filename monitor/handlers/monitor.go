package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/framework/connection"
	"github.com/doitintl/bq-monitor/framework/web"
	"github.com/doitintl/bq-monitor/logger"
	"github.com/doitintl/bq-monitor/monitor/domain"
	"github.com/doitintl/bq-monitor/monitor/service"
	"github.com/doitintl/bq-monitor/monitor/service/iface"
)

// anyProjectValue is the project query value selecting the all-projects
// scope, as sent by the dashboard's project picker.
const anyProjectValue = "any_value"

type Monitor struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	service        iface.Monitor
}

func NewMonitor(log logger.Provider, conn *connection.Connection) *Monitor {
	svc := service.NewMonitor(log, conn)

	return &Monitor{
		loggerProvider: log,
		conn:           conn,
		service:        svc,
	}
}

func (h *Monitor) setLabels(ctx *gin.Context, module string) {
	h.loggerProvider(ctx).SetLabels(map[string]string{
		"feature": "bq-monitor",
		"module":  module,
		"service": "monitor",
	})
}

func scopeFromRequest(ctx *gin.Context) domain.Scope {
	region := ctx.DefaultQuery("region", common.BigQueryRegion)

	project := ctx.DefaultQuery("project", anyProjectValue)
	if project == anyProjectValue {
		return domain.NewAllProjectsScope(region)
	}

	return domain.NewProjectScope(region, project)
}

// requestError maps the monitor error taxonomy onto response statuses.
func requestError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidScope):
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrScopeDenied):
		return web.NewRequestError(err, http.StatusForbidden)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return web.NewRequestError(err, http.StatusBadGateway)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}

func (h *Monitor) OrganizationOverview(ctx *gin.Context) error {
	h.setLabels(ctx, "organization-overview")

	overview, err := h.service.OrganizationOverview(ctx, scopeFromRequest(ctx), ctx.Query("timeRange"))
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, overview, http.StatusOK)
}

func (h *Monitor) OperationalDashboard(ctx *gin.Context) error {
	h.setLabels(ctx, "operational-dashboard")

	dashboard, err := h.service.OperationalDashboard(ctx, scopeFromRequest(ctx), ctx.Query("timeRange"))
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, dashboard, http.StatusOK)
}

func (h *Monitor) PulseData(ctx *gin.Context) error {
	h.setLabels(ctx, "pulse")

	pulse, err := h.service.Pulse(ctx, scopeFromRequest(ctx))
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, pulse, http.StatusOK)
}

func (h *Monitor) ExpensiveQueries(ctx *gin.Context) error {
	h.setLabels(ctx, "expensive-queries")

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return web.NewRequestError(errors.New("limit must be a non-negative integer"), http.StatusBadRequest)
		}

		limit = parsed
	}

	queries, err := h.service.ExpensiveQueries(ctx, scopeFromRequest(ctx), ctx.Query("timeRange"), limit)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, queries, http.StatusOK)
}

func (h *Monitor) Projects(ctx *gin.Context) error {
	h.setLabels(ctx, "projects")

	projects, err := h.service.Projects(ctx, scopeFromRequest(ctx))
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, projects, http.StatusOK)
}

func (h *Monitor) ProjectDetails(ctx *gin.Context) error {
	h.setLabels(ctx, "project-details")

	region := ctx.DefaultQuery("region", common.BigQueryRegion)
	scope := domain.NewProjectScope(region, ctx.Param("projectID"))

	details, err := h.service.ProjectDetails(ctx, scope, ctx.Query("timeRange"))
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, details, http.StatusOK)
}

func (h *Monitor) TimeWindowInvestigation(ctx *gin.Context) error {
	h.setLabels(ctx, "time-window-investigation")

	investigation, err := h.service.Investigate(ctx, scopeFromRequest(ctx), ctx.Query("timeRange"))
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, investigation, http.StatusOK)
}
