package domain

import "time"

// timeRangeHours maps the dashboard's time range selector values to hours.
var timeRangeHours = map[string]int{
	"1h":  1,
	"24h": 24,
	"7d":  168,
	"30d": 720,
}

const defaultTimeRange = "24h"

// ParseTimeRange resolves a dashboard time range selector ("1h", "24h",
// "7d", "30d") into a window ending at now. Unknown values fall back to the
// default 24h range.
func ParseTimeRange(timeRange string, now time.Time) (TimeWindow, string) {
	hours, ok := timeRangeHours[timeRange]
	if !ok {
		timeRange = defaultTimeRange
		hours = timeRangeHours[defaultTimeRange]
	}

	window := TimeWindow{
		Start: now.Add(-time.Duration(hours) * time.Hour),
		End:   now,
	}

	return window, timeRange
}
