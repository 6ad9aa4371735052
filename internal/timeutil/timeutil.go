package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the hyphen-free form some providers expect (YYYYMMDD).
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CompactDate converts a YYYY-MM-DD string to YYYYMMDD. Invalid input is
// returned stripped of hyphens; callers are expected to validate dates first.
func CompactDate(date string) string {
	if t, err := ParseDate(date); err == nil {
		return t.Format(CompactDateLayout)
	}
	return strings.ReplaceAll(date, "-", "")
}

// SeasonLabel returns the season a reference date belongs to, formatted like
// "2024-25". October through December belong to the season starting that
// calendar year; January through September to the season that started the
// previous calendar year.
func SeasonLabel(t time.Time) string {
	return fmt.Sprintf("%d-%02d", SeasonStartYear(t), (SeasonStartYear(t)+1)%100)
}

// SeasonStartYear returns the calendar year the current season started in.
func SeasonStartYear(t time.Time) int {
	year := t.Year()
	if t.Month() < time.October {
		year--
	}
	return year
}

// SeasonEndYear returns the calendar year the current season ends in, which
// is how ESPN keys its season-scoped endpoints.
func SeasonEndYear(t time.Time) int {
	return SeasonStartYear(t) + 1
}
