package api

import "time"

// TimeLayout is the timestamp format used on the wire.
const TimeLayout = "2006-01-02T15:04:05Z"

// ParseTime parses a wire timestamp. Malformed input yields the zero time.
func ParseTime(s string) time.Time {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatTime formats t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// DateParts splits t into a 4-digit year, 2-digit month and 2-digit day.
func DateParts(t time.Time) (year, month, day string) {
	return t.Format("2006"), t.Format("01"), t.Format("02")
}
