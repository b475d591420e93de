package service

import (
	"context"
	"sort"

	"github.com/doitintl/bq-monitor/monitor/domain"
	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

const projectActivityDays = 30

// AllProjectsOption is the picker entry selecting the all-projects scope.
var AllProjectsOption = domain.ProjectEntry{
	ID:          "any_value",
	Name:        "is any value",
	DisplayName: "All Projects",
}

// Projects lists the projects with job activity in the last month, prefixed
// with the all-projects option.
func (s *MonitorService) Projects(ctx context.Context, scope domain.Scope) ([]domain.ProjectEntry, error) {
	now := s.timeNowFunc()

	window := domain.TimeWindow{Start: now.AddDate(0, 0, -projectActivityDays), End: now}

	results, _, err := fanOut(ctx, s, scope, func(ctx context.Context, pc projectClient) ([]bqmodels.ActiveProjectRow, error) {
		query, err := domain.QueryReplacer(bqmodels.ActiveProjects, domain.Replacements{
			Scope:  domain.NewProjectScope(scope.Region(), pc.projectID),
			Window: window,
		})
		if err != nil {
			return nil, err
		}

		return s.dalBQ.RunActiveProjectsQuery(ctx, pc.client, query)
	})
	if err != nil {
		return nil, err
	}

	lastActivity := make(map[string]int64)

	for _, rows := range results {
		for _, row := range rows {
			if ts := row.LastActivity.Unix(); ts > lastActivity[row.ProjectID] {
				lastActivity[row.ProjectID] = ts
			}
		}
	}

	projects := make([]string, 0, len(lastActivity))
	for projectID := range lastActivity {
		projects = append(projects, projectID)
	}

	// Most recently active first, as the picker shows them.
	sort.Slice(projects, func(i, j int) bool {
		if lastActivity[projects[i]] != lastActivity[projects[j]] {
			return lastActivity[projects[i]] > lastActivity[projects[j]]
		}

		return projects[i] < projects[j]
	})

	entries := make([]domain.ProjectEntry, 0, len(projects)+1)
	entries = append(entries, AllProjectsOption)

	for _, projectID := range projects {
		entries = append(entries, domain.ProjectEntry{
			ID:          projectID,
			Name:        projectID,
			DisplayName: projectID,
		})
	}

	return entries, nil
}
