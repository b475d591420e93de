//go:generate mockery --name Recommender --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/doitintl/bq-monitor/recommender/domain"
)

type Recommender interface {
	QueryDetails(ctx context.Context, req domain.QueryDetailsRequest) (*domain.QueryDetails, error)

	Recommend(ctx context.Context, req domain.OptimizeRequest) (*domain.Recommendation, error)
}
