package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cloud.google.com/go/bigquery"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/doitintl/bq-monitor/common"
	"github.com/doitintl/bq-monitor/monitor/domain"
)

type projectClient struct {
	projectID string
	client    *bigquery.Client
}

// scopeClients resolves the warehouse clients a scope spans. A scope narrowed
// to a project without its own client is served by the default client, with
// the project filter in the query doing the narrowing; an all-projects scope
// with no monitored projects configured falls back to the default client too.
func (s *MonitorService) scopeClients(ctx context.Context, scope domain.Scope) ([]projectClient, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	if project, ok := scope.Project(); ok {
		client, _ := s.conn.BigqueryForProject(project)

		return []projectClient{{projectID: project, client: client}}, nil
	}

	projects := s.conn.MonitoredProjects()
	if len(projects) == 0 {
		return []projectClient{{projectID: common.ProjectID, client: s.conn.Bigquery(ctx)}}, nil
	}

	clients := make([]projectClient, 0, len(projects))

	for _, project := range projects {
		client, _ := s.conn.BigqueryForProject(project)
		clients = append(clients, projectClient{projectID: project, client: client})
	}

	return clients, nil
}

// fanOut runs one query per in-scope project and merges the outcomes.
// Projects the credentials cannot read are excluded from aggregation with a
// warning; other per-project failures become warnings as long as at least one
// project succeeded. The request fails only when every project fails, or when
// the scope names a single project.
func fanOut[T any](
	ctx context.Context,
	s *MonitorService,
	scope domain.Scope,
	run func(ctx context.Context, pc projectClient) (T, error),
) ([]T, []string, error) {
	clients, err := s.scopeClients(ctx, scope)
	if err != nil {
		return nil, nil, err
	}

	log := s.loggerProvider(ctx)

	if len(clients) == 1 && !scope.IsAllProjects() {
		runCtx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
		defer cancel()

		result, err := run(runCtx, clients[0])
		if err != nil {
			return nil, nil, err
		}

		return []T{result}, nil, nil
	}

	var (
		mu       sync.Mutex
		results  []T
		warnings []string
		failures error
	)

	g, gctx := errgroup.WithContext(ctx)

	for _, pc := range clients {
		pc := pc

		g.Go(func() error {
			runCtx, cancel := context.WithTimeout(gctx, common.QueryTimeout)
			defer cancel()

			result, err := run(runCtx, pc)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case errors.Is(err, domain.ErrScopeDenied):
				log.Warningf("project %s excluded from aggregation: %s", pc.projectID, err)
				warnings = append(warnings, fmt.Sprintf("project %s excluded: access denied", pc.projectID))
			case err != nil:
				log.Errorf("project %s query failed: %s", pc.projectID, err)
				failures = multierror.Append(failures, fmt.Errorf("project %s: %w", pc.projectID, err))
				warnings = append(warnings, fmt.Sprintf("project %s unavailable", pc.projectID))
			default:
				results = append(results, result)
			}

			return nil
		})
	}

	_ = g.Wait()

	if len(results) == 0 && failures != nil {
		return nil, warnings, failures
	}

	return results, warnings, nil
}
