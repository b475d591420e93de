package service

import (
	"context"
	"sort"

	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

// OrganizationOverview rolls up per-project usage and the organization
// totals over the requested window.
func (s *MonitorService) OrganizationOverview(
	ctx context.Context,
	scope domain.Scope,
	timeRange string,
) (*domain.OrganizationOverview, error) {
	window, _ := domain.ParseTimeRange(timeRange, s.timeNowFunc())

	results, warnings, err := fanOut(ctx, s, scope, func(ctx context.Context, pc projectClient) ([]bqmodels.ProjectRollupRow, error) {
		query, err := domain.QueryReplacer(bqmodels.ProjectRollup, domain.Replacements{
			Scope:  domain.NewProjectScope(scope.Region(), pc.projectID),
			Window: window,
		})
		if err != nil {
			return nil, err
		}

		return s.dalBQ.RunProjectRollupQuery(ctx, pc.client, query)
	})
	if err != nil {
		return nil, err
	}

	byProject := make(map[string]*domain.ProjectRollup)

	for _, rows := range results {
		for _, row := range rows {
			rollup, ok := byProject[row.ProjectID]
			if !ok {
				rollup = &domain.ProjectRollup{ProjectID: row.ProjectID}
				byProject[row.ProjectID] = rollup
			}

			rollup.TotalQueries += row.TotalQueries
			rollup.SlotHours += row.SlotHours.Float64
			rollup.ActiveUsers += row.ActiveUsers
			rollup.TBProcessed += row.TBProcessed.Float64
			rollup.ErrorCount += row.ErrorCount
		}
	}

	projects := make([]domain.ProjectRollup, 0, len(byProject))

	var stats domain.OrgStats

	for _, rollup := range byProject {
		projects = append(projects, *rollup)

		stats.TotalQueries += rollup.TotalQueries
		stats.TotalSlotHours += rollup.SlotHours
		stats.TotalUsers += rollup.ActiveUsers
		stats.TotalTBProcessed += rollup.TBProcessed
		stats.TotalErrors += rollup.ErrorCount
	}

	stats.TotalProjects = len(projects)

	sort.Slice(projects, func(i, j int) bool {
		if projects[i].SlotHours != projects[j].SlotHours {
			return projects[i].SlotHours > projects[j].SlotHours
		}

		return projects[i].ProjectID < projects[j].ProjectID
	})

	return &domain.OrganizationOverview{
		Projects: projects,
		OrgStats: stats,
		Warnings: warnings,
	}, nil
}
