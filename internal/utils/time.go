package utils

import (
	"strings"
	"time"
)

const (
	layoutDate  = "2006-01-02"
	layoutLabel = "January 2, 2006"
	layoutShort = "02/01/2006"
)

// ParseDate parses YYYY-MM-DD in local timezone. Longer ISO timestamps are cut to their date part.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, DateOnly(s), time.Local)
}

// ParseISODate accepts exactly YYYY-MM-DD, surrounding spaces aside. User input goes through here.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// NormalizeDate reduces a well-formed timestamp to its date. Anything else is only trimmed,
// so a malformed value still fails ParseISODate.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(layoutDate)
		}
	}
	return s
}

// DateOnly returns the YYYY-MM-DD prefix of an ISO date or timestamp.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(layoutDate) && (s[len(layoutDate)] == 'T' || s[len(layoutDate)] == ' ') {
		return s[:len(layoutDate)]
	}
	return s
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// DateLabel renders an ISO date as "March 5, 2025"; unparsable input is returned as-is.
func DateLabel(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.Format(layoutLabel)
}

// ShortDate renders an ISO date as DD/MM/YYYY; unparsable input is returned as-is.
func ShortDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return t.Format(layoutShort)
}
