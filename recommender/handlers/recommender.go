package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/doitintl/bq-monitor/framework/connection"
	"github.com/doitintl/bq-monitor/framework/web"
	"github.com/doitintl/bq-monitor/logger"
	"github.com/doitintl/bq-monitor/recommender/domain"
	"github.com/doitintl/bq-monitor/recommender/service"
	"github.com/doitintl/bq-monitor/recommender/service/iface"
)

type Recommender struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	service        iface.Recommender
}

func NewRecommender(log logger.Provider, conn *connection.Connection) *Recommender {
	svc := service.NewRecommender(log, conn)

	return &Recommender{
		loggerProvider: log,
		conn:           conn,
		service:        svc,
	}
}

func (h *Recommender) setLabels(ctx *gin.Context, module string) {
	h.loggerProvider(ctx).SetLabels(map[string]string{
		"feature": "bq-monitor",
		"module":  module,
		"service": "recommender",
	})
}

// requestError maps the recommender error taxonomy onto response statuses.
func requestError(err error) error {
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, domain.ErrRecommendationUnavailable):
		return web.NewRequestError(err, http.StatusServiceUnavailable)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}

func (h *Recommender) QueryDetails(ctx *gin.Context) error {
	h.setLabels(ctx, "query-details")

	var input domain.QueryDetailsRequest

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	details, err := h.service.QueryDetails(ctx, input)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, details, http.StatusOK)
}

func (h *Recommender) Optimize(ctx *gin.Context) error {
	h.setLabels(ctx, "optimize")

	var input domain.OptimizeRequest

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	recommendation, err := h.service.Recommend(ctx, input)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, recommendation, http.StatusOK)
}
