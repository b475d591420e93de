package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bqmodels "github.com/doitintl/bq-monitor/monitor/domain/bigquery"
)

func TestNewTimeWindow(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:  "valid window",
			start: start,
			end:   start.Add(time.Hour),
		},
		{
			name:    "end equals start",
			start:   start,
			end:     start,
			wantErr: ErrInvalidScope,
		},
		{
			name:    "end before start",
			start:   start,
			end:     start.Add(-time.Minute),
			wantErr: ErrInvalidScope,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTimeWindow(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTimeWindowPrevious(t *testing.T) {
	start := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)
	window, err := NewTimeWindow(start, start.Add(24*time.Hour))
	require.NoError(t, err)

	previous := window.Previous()

	assert.Equal(t, window.Duration(), previous.Duration())
	assert.Equal(t, window.Start, previous.End)
	assert.Equal(t, start.Add(-24*time.Hour), previous.Start)
}

func TestTimeWindowContains(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	window, err := NewTimeWindow(start, start.Add(time.Hour))
	require.NoError(t, err)

	assert.True(t, window.Contains(start))
	assert.True(t, window.Contains(start.Add(59*time.Minute)))
	assert.False(t, window.Contains(start.Add(time.Hour)))
	assert.False(t, window.Contains(start.Add(-time.Second)))
}

func TestGranularityForWindow(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		want     Granularity
	}{
		{name: "one hour", duration: time.Hour, want: GranularityHourly},
		{name: "exactly two days", duration: 48 * time.Hour, want: GranularityHourly},
		{name: "one week", duration: 7 * 24 * time.Hour, want: GranularityDaily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := TimeWindow{Start: start, End: start.Add(tt.duration)}
			assert.Equal(t, tt.want, GranularityForWindow(window))
		})
	}
}

func TestScopeValidate(t *testing.T) {
	tests := []struct {
		name    string
		scope   Scope
		wantErr error
	}{
		{name: "all projects", scope: NewAllProjectsScope("us")},
		{name: "single project", scope: NewProjectScope("us", "analytics-prod")},
		{name: "missing region", scope: NewAllProjectsScope(""), wantErr: ErrInvalidScope},
		{name: "empty project", scope: NewProjectScope("us", ""), wantErr: ErrInvalidScope},
		{name: "zero value", scope: Scope{}, wantErr: ErrInvalidScope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scope.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		maxLen int
		want   string
	}{
		{
			name:   "shorter than limit",
			query:  "SELECT 1",
			maxLen: 150,
			want:   "SELECT 1",
		},
		{
			name:   "exactly at limit",
			query:  strings.Repeat("a", 10),
			maxLen: 10,
			want:   strings.Repeat("a", 10),
		},
		{
			name:   "truncated",
			query:  strings.Repeat("a", 20),
			maxLen: 10,
			want:   strings.Repeat("a", 10),
		},
		{
			name:   "multibyte not split",
			query:  "SELECT 'héllo wörld'",
			maxLen: 9,
			want:   "SELECT 'h",
		},
		{
			name:   "multibyte boundary",
			query:  "ééééé",
			maxLen: 3,
			want:   "ééé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(tt.query, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8ValidString(got))
		})
	}
}

func utf8ValidString(s string) bool {
	return strings.ToValidUTF8(s, "") == s
}

func TestChangePercent(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		prior   float64
		want    NullPercent
	}{
		{name: "growth", current: 150, prior: 100, want: NullPercent{Value: 50, Valid: true}},
		{name: "decline", current: 50, prior: 100, want: NullPercent{Value: -50, Valid: true}},
		{name: "zero baseline", current: 150, prior: 0, want: NullPercent{}},
		{name: "both zero", current: 0, prior: 0, want: NullPercent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChangePercent(tt.current, tt.prior))
		})
	}
}

func TestNullPercentJSON(t *testing.T) {
	undefined, err := json.Marshal(NullPercent{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(undefined))

	defined, err := json.Marshal(NullPercent{Value: 12.5, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(defined))

	var roundTrip NullPercent

	require.NoError(t, json.Unmarshal([]byte("null"), &roundTrip))
	assert.False(t, roundTrip.Valid)

	require.NoError(t, json.Unmarshal([]byte("-3"), &roundTrip))
	assert.Equal(t, NullPercent{Value: -3, Valid: true}, roundTrip)
}

func TestParseTimeRange(t *testing.T) {
	now := time.Date(2024, 5, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeRange string
		wantHours int
		wantLabel string
	}{
		{name: "one hour", timeRange: "1h", wantHours: 1, wantLabel: "1h"},
		{name: "one day", timeRange: "24h", wantHours: 24, wantLabel: "24h"},
		{name: "one week", timeRange: "7d", wantHours: 168, wantLabel: "7d"},
		{name: "one month", timeRange: "30d", wantHours: 720, wantLabel: "30d"},
		{name: "unknown falls back", timeRange: "90d", wantHours: 24, wantLabel: "24h"},
		{name: "empty falls back", timeRange: "", wantHours: 24, wantLabel: "24h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, label := ParseTimeRange(tt.timeRange, now)

			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, now, window.End)
			assert.Equal(t, time.Duration(tt.wantHours)*time.Hour, window.Duration())
		})
	}
}

func TestQueryReplacer(t *testing.T) {
	window := TimeWindow{
		Start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		replacements Replacements
		wantContains []string
		wantAbsent   []string
		wantErr      bool
	}{
		{
			name: "all projects scope",
			replacements: Replacements{
				Scope:      NewAllProjectsScope("us"),
				Window:     window,
				MaxResults: 200,
			},
			wantContains: []string{
				"`region-us`.INFORMATION_SCHEMA.JOBS_BY_PROJECT",
				"TIMESTAMP('2024-05-01T00:00:00Z')",
				"TIMESTAMP('2024-05-02T00:00:00Z')",
				"LIMIT 200",
			},
			wantAbsent: []string{"AND project_id ="},
		},
		{
			name: "single project scope",
			replacements: Replacements{
				Scope:  NewProjectScope("us", "analytics-prod"),
				Window: window,
			},
			wantContains: []string{
				"AND project_id = 'analytics-prod'",
				"LIMIT 500",
			},
		},
		{
			name: "qualified region kept as is",
			replacements: Replacements{
				Scope:  NewAllProjectsScope("region-eu"),
				Window: window,
			},
			wantContains: []string{"`region-eu`.INFORMATION_SCHEMA"},
		},
		{
			name: "invalid scope",
			replacements: Replacements{
				Scope:  Scope{},
				Window: window,
			},
			wantErr: true,
		},
		{
			name: "empty window",
			replacements: Replacements{
				Scope: NewAllProjectsScope("us"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := QueryReplacer(bqmodels.JobsInWindow, tt.replacements)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotContains(t, got, "{")

			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}

			for _, absent := range tt.wantAbsent {
				assert.NotContains(t, got, absent)
			}
		})
	}
}
