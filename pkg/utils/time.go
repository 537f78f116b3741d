package utils

import "time"

const isoMillisLayout = "2006-01-02T15:04:05.000Z"

// ToISOString formats t as a UTC timestamp with millisecond precision,
// e.g. 2024-01-10T00:00:00.000Z.
func ToISOString(t time.Time) string {
	return t.UTC().Format(isoMillisLayout)
}

// ParseCalendarDate parses a YYYY-MM-DD string as local midnight in loc
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}
