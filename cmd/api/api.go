package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/doitintl/bq-monitor/framework/connection"
	"github.com/doitintl/bq-monitor/framework/mid"
	"github.com/doitintl/bq-monitor/framework/web"
	"github.com/doitintl/bq-monitor/logger"
	monitorHandlers "github.com/doitintl/bq-monitor/monitor/handlers"
	recommenderHandlers "github.com/doitintl/bq-monitor/recommender/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, map[string]string{"status": "ok"}, http.StatusOK)
	})

	monitor := monitorHandlers.NewMonitor(loggerProvider, a.conn)
	recommender := recommenderHandlers.NewRecommender(loggerProvider, a.conn)

	apiGroup := web.NewGroup(app, "/api")
	{
		monitorGroup := apiGroup.NewSubgroup("/monitor")
		{
			monitorGroup.Get("/organization-overview", monitor.OrganizationOverview)
			monitorGroup.Get("/pulse-data", monitor.PulseData)
			monitorGroup.Get("/operational-dashboard", monitor.OperationalDashboard)
			monitorGroup.Get("/expensive-queries", monitor.ExpensiveQueries)
			monitorGroup.Get("/projects", monitor.Projects)
			monitorGroup.Get("/project/:projectID", monitor.ProjectDetails, mid.ValidatePathParamNotEmpty("projectID"))
			monitorGroup.Get("/time-window-investigation", monitor.TimeWindowInvestigation)
		}

		recommenderGroup := apiGroup.NewSubgroup("/recommender")
		{
			recommenderGroup.Post("/query-details", recommender.QueryDetails)
			recommenderGroup.Post("/optimize", recommender.Optimize)
		}
	}

	return app
}
