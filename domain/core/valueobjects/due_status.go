package valueobjects

import (
	"fmt"
	"strings"
	"time"
)

// Severity ranks how urgent a due date is
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityHigh
)

// String returns the severity name
func (s Severity) String() string {
	if s == SeverityHigh {
		return "high"
	}
	return "normal"
}

const dateOnlyLayout = "2006-01-02"

// localLayouts are ISO-8601 forms without an offset, read as local time
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	dateOnlyLayout,
}

// DueStatus is the urgency label shown next to a todo
type DueStatus struct {
	Label    string
	Severity Severity
	// Days is the calendar-day distance from today; negative when overdue.
	Days int
}

// Overdue reports whether the due day has already passed
func (s DueStatus) Overdue() bool {
	return s.Days < 0
}

// Color returns the hex colour used to render the label
func (s DueStatus) Color() string {
	switch {
	case s.Overdue():
		return "#d32f2f"
	case s.Severity == SeverityHigh:
		return "#f57c00"
	default:
		return "#4caf50"
	}
}

// ClassifyDue maps an optional ISO-8601 due date to an urgency label relative
// to now. Calendar days are compared in now's location. Absent or unparseable
// dates yield nil.
func ClassifyDue(dueDate *string, now time.Time) *DueStatus {
	if dueDate == nil {
		return nil
	}
	due, ok := ParseDueDate(*dueDate, now.Location())
	if !ok {
		return nil
	}

	diff := DaysBetween(now, due)
	switch {
	case diff < 0:
		return &DueStatus{Label: fmt.Sprintf("%d days overdue!", -diff), Severity: SeverityHigh, Days: diff}
	case diff == 0:
		return &DueStatus{Label: "Due today!", Severity: SeverityHigh, Days: diff}
	case diff == 1:
		return &DueStatus{Label: "Due tomorrow", Severity: SeverityHigh, Days: diff}
	case diff <= 3:
		return &DueStatus{Label: fmt.Sprintf("%d days left", diff), Severity: SeverityHigh, Days: diff}
	default:
		return &DueStatus{Label: fmt.Sprintf("%d days left", diff), Severity: SeverityNormal, Days: diff}
	}
}

// ParseDueDate accepts RFC 3339 timestamps (fractional seconds optional),
// offset-less date-times and plain YYYY-MM-DD dates. Values without an offset
// are read in loc.
func ParseDueDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.In(loc), true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts calendar days from a to b, using a's location for both.
// Time of day is ignored, so the result is stable across DST changes.
func DaysBetween(a, b time.Time) int {
	b = b.In(a.Location())
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
