package domain

import (
	"fmt"
	"strings"
	"time"

	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

// Replacements carries the values substituted into a query template.
type Replacements struct {
	Scope      Scope
	Window     TimeWindow
	MaxResults int
	TrendWeeks int
}

// QueryReplacer is the general substitution function used for all monitor
// queries.
func QueryReplacer(queryValue string, replacements Replacements) (string, error) {
	if err := replacements.Scope.Validate(); err != nil {
		return "", err
	}

	if replacements.Window.End.IsZero() {
		return "", fmt.Errorf("detected empty time window: %+v", replacements)
	}

	maxResults := replacements.MaxResults
	if maxResults <= 0 {
		maxResults = 500
	}

	trendWeeks := replacements.TrendWeeks
	if trendWeeks <= 0 {
		trendWeeks = 6
	}

	replacer := strings.NewReplacer(
		bqmodels.RegionPlaceholder, regionQualifier(replacements.Scope.Region()),
		bqmodels.ProjectWhereClause, projectWhereClause(replacements.Scope),
		bqmodels.StartTimePlaceholder, replacements.Window.Start.UTC().Format(time.RFC3339),
		bqmodels.EndTimePlaceholder, replacements.Window.End.UTC().Format(time.RFC3339),
		bqmodels.MaxResultsPlaceholder, fmt.Sprintf("%d", maxResults),
		bqmodels.TrendWeeksPlaceholder, fmt.Sprintf("%d", trendWeeks),
	)

	return replacer.Replace(queryValue), nil
}

// regionQualifier renders the INFORMATION_SCHEMA region prefix, accepting
// both bare regions ("us") and already-qualified ones ("region-us").
func regionQualifier(region string) string {
	if strings.HasPrefix(region, "region-") {
		return region
	}

	return "region-" + strings.ToLower(region)
}

func projectWhereClause(scope Scope) string {
	project, ok := scope.Project()
	if !ok {
		return ""
	}

	// Single quotes only, the project ID is validated against the
	// monitored set before it reaches the replacer.
	return fmt.Sprintf("AND project_id = '%s'", project)
}
