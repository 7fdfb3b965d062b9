package calendar

import "time"

const isoDateLayout = "2006-01-02"

// FormatDate renders a time as a zero-padded YYYY-MM-DD key using its local
// calendar fields. No UTC conversion: all dates are wall-clock local.
func FormatDate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// ParseISODate parses a YYYY-MM-DD key to local midnight.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(isoDateLayout, s, time.Local)
}

// ValidDateFormat reports whether s is a well-formed YYYY-MM-DD key.
func ValidDateFormat(s string) bool {
	_, err := ParseISODate(s)
	return err == nil && len(s) == len(isoDateLayout)
}

// CompareISO compares two ISO date keys, returning -1, 0 or 1. A plain
// string compare is correct because the format is fixed-width zero-padded.
func CompareISO(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsDateInRange reports whether date falls within [start, end], both bounds
// inclusive. An empty end means the range is open-ended.
func IsDateInRange(date, start, end string) bool {
	if CompareISO(date, start) < 0 {
		return false
	}
	if end != "" && CompareISO(date, end) > 0 {
		return false
	}
	return true
}

// mondayOffset is the number of days from the Monday of t's week to t.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// MonthDays returns the 42 days of the Monday-first 6x7 month grid for the
// given month, padded with leading/trailing days from adjacent months.
func MonthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	gridStart := first.AddDate(0, 0, -mondayOffset(first))

	days := make([]time.Time, 0, 42)
	for i := 0; i < 42; i++ {
		days = append(days, gridStart.AddDate(0, 0, i))
	}
	return days
}

// WeekDays returns the 7 days of the week containing anchor, Monday through
// Sunday.
func WeekDays(anchor time.Time) []time.Time {
	monday := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location()).
		AddDate(0, 0, -mondayOffset(anchor))

	days := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, monday.AddDate(0, 0, i))
	}
	return days
}

// DateKeys formats a day sequence into ISO date keys.
func DateKeys(days []time.Time) []string {
	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, FormatDate(d))
	}
	return keys
}

// IsToday reports whether t falls on the same calendar day as the reference
// date. The reference is passed explicitly so view code stays deterministic.
func IsToday(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month() && t.Day() == ref.Day()
}
