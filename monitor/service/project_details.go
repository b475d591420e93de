package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/doitintl/bq-monitor/monitor/domain"
)

const (
	recentQueriesLimit    = 10
	recentQueryPreviewLen = 200
)

// ProjectDetails profiles a single project: its hourly usage chart, most
// recent queries and a dataset summary. An unreachable dataset listing is
// downgraded to a warning so the job-history sections still render.
func (s *MonitorService) ProjectDetails(
	ctx context.Context,
	scope domain.Scope,
	timeRange string,
) (*domain.ProjectDetails, error) {
	project, ok := scope.Project()
	if !ok {
		return nil, fmt.Errorf("%w: project details need a single project", domain.ErrInvalidScope)
	}

	window, _ := domain.ParseTimeRange(timeRange, s.timeNowFunc())

	records, warnings, err := s.fetchWindowRecords(ctx, scope, window)
	if err != nil {
		return nil, err
	}

	client, _ := s.conn.BigqueryForProject(project)

	datasets, err := s.dalBQ.ListDatasets(ctx, client, project)
	if err != nil {
		s.loggerProvider(ctx).Warningf("datasets of %s unavailable: %s", project, err)
		warnings = append(warnings, fmt.Sprintf("datasets of %s unavailable", project))
	}

	return &domain.ProjectDetails{
		ID:            project,
		Name:          projectDisplayName(project),
		Description:   fmt.Sprintf("BigQuery project: %s", project),
		Datasets:      datasets,
		RecentQueries: recentQueries(records, recentQueriesLimit),
		UsageChart:    usageByHourOfDay(records),
		Warnings:      warnings,
	}, nil
}

// usageByHourOfDay rolls submissions up by hour of day, keeping only hours
// that saw activity.
func usageByHourOfDay(records []domain.ExecutionRecord) []domain.UsagePoint {
	queries := make(map[int]int)
	slotMs := make(map[int]int64)

	for _, record := range records {
		hour := record.CreationTime.UTC().Hour()
		queries[hour]++
		slotMs[hour] += record.TotalSlotMs
	}

	points := make([]domain.UsagePoint, 0, len(queries))

	for hour := 0; hour < 24; hour++ {
		if queries[hour] == 0 {
			continue
		}

		slotHours := float64(slotMs[hour]) / msPerHour

		points = append(points, domain.UsagePoint{
			Time:      fmt.Sprintf("%02d:00", hour),
			Queries:   queries[hour],
			SlotHours: math.Round(slotHours*100) / 100,
		})
	}

	return points
}

// recentQueries lists the newest submissions first.
func recentQueries(records []domain.ExecutionRecord, limit int) []domain.RecentQuery {
	sorted := make([]domain.ExecutionRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreationTime.Equal(sorted[j].CreationTime) {
			return sorted[i].CreationTime.After(sorted[j].CreationTime)
		}

		return sorted[i].JobID < sorted[j].JobID
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	recent := make([]domain.RecentQuery, 0, len(sorted))

	for _, record := range sorted {
		preview := domain.Preview(record.Query, recentQueryPreviewLen)
		if preview != record.Query {
			preview += "..."
		}

		duration := "N/A"
		if record.Duration > 0 {
			duration = fmt.Sprintf("%ds", int64(record.Duration.Seconds()))
		}

		recent = append(recent, domain.RecentQuery{
			ID:       record.JobID,
			Query:    preview,
			User:     record.UserEmail,
			Duration: duration,
			SlotMs:   record.TotalSlotMs,
		})
	}

	return recent
}

// projectDisplayName renders a project id as a title, "analytics-prod"
// becoming "Analytics Prod".
func projectDisplayName(projectID string) string {
	words := strings.Split(strings.ReplaceAll(projectID, "-", " "), " ")

	for i, word := range words {
		if word == "" {
			continue
		}

		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
