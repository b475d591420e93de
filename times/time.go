package times

import "time"

const (
	MonthDayLayout  = "Jan 02"
	HourLabelLayout = "15:04"
)

const (
	DayDuration  = 24 * time.Hour
	WeekDuration = 7 * DayDuration
)

// TruncateToHour truncates the timestamp to the start of its hour, in UTC.
func TruncateToHour(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}

// TruncateToDay truncates the timestamp to the start of its day, in UTC.
func TruncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekLabel returns the short month label of the week containing t,
// with the week starting on Monday.
func WeekLabel(t time.Time) string {
	return WeekStart(t).Format("Jan")
}

// WeekStart returns the Monday of the week containing t, truncated to the day.
func WeekStart(t time.Time) time.Time {
	day := TruncateToDay(t)
	return day.AddDate(0, 0, -DaysSinceLastMonday(day))
}

// DaysSinceLastMonday returns the numbers of days passed from the provided date to the last monday
func DaysSinceLastMonday(today time.Time) int {
	return int(today.Weekday()+6) % 7
}
