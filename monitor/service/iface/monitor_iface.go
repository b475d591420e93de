//go:generate mockery --name Monitor --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/doitintl/bq-monitor/monitor/domain"
)

type Monitor interface {
	OrganizationOverview(ctx context.Context, scope domain.Scope, timeRange string) (*domain.OrganizationOverview, error)

	OperationalDashboard(ctx context.Context, scope domain.Scope, timeRange string) (*domain.OperationalDashboard, error)

	Pulse(ctx context.Context, scope domain.Scope) (*domain.Pulse, error)

	ExpensiveQueries(ctx context.Context, scope domain.Scope, timeRange string, limit int) (*domain.ExpensiveQueries, error)

	Projects(ctx context.Context, scope domain.Scope) ([]domain.ProjectEntry, error)

	ProjectDetails(ctx context.Context, scope domain.Scope, timeRange string) (*domain.ProjectDetails, error)

	Investigate(ctx context.Context, scope domain.Scope, timeRange string) (*domain.Investigation, error)
}
