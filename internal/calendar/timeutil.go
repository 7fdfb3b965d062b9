package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// The visible day window of the time grid: 06:00 to 22:00.
const (
	DayStartHour = 6
	DayEndHour   = 22

	dayStartMinutes = DayStartHour * 60
	dayEndMinutes   = DayEndHour * 60
	dayWindowHours  = DayEndHour - DayStartHour
)

// ParseTimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Returns -1 for malformed input; callers are expected to pass only
// validated, non-empty time strings.
func ParseTimeToMinutes(t string) int {
	h, m, ok := strings.Cut(t, ":")
	if !ok {
		return -1
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return -1
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return -1
	}
	return hours*60 + minutes
}

// FormatMinutes renders minutes since midnight as zero-padded "HH:MM".
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatHourDisplay formats an hour (0-23) for grid labels, e.g. "6 AM", "2 PM".
func FormatHourDisplay(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// EventDuration returns the duration in minutes between two "HH:MM" times.
// The result is negative when end precedes start; ordering is validated
// separately via IsEndTimeValid.
func EventDuration(startTime, endTime string) int {
	return ParseTimeToMinutes(endTime) - ParseTimeToMinutes(startTime)
}

// NewEndTime computes the "HH:MM" end time for a new start plus a duration.
// No day rollover: callers must check WithinDayBounds first.
func NewEndTime(newStartTime string, durationMinutes int) string {
	return FormatMinutes(ParseTimeToMinutes(newStartTime) + durationMinutes)
}

// WithinDayBounds reports whether an event starting at startTime and lasting
// durationMinutes still ends at or before the 22:00 day ceiling.
func WithinDayBounds(startTime string, durationMinutes int) bool {
	return ParseTimeToMinutes(startTime)+durationMinutes <= dayEndMinutes
}

// IsEndTimeValid reports whether the end time is strictly after the start.
// If either side is unset no validation is attempted and the pair is
// considered valid.
func IsEndTimeValid(startTime, endTime string) bool {
	if startTime == "" || endTime == "" {
		return true
	}
	return ParseTimeToMinutes(endTime) > ParseTimeToMinutes(startTime)
}

// ValidTimeFormat reports whether t is a well-formed "HH:MM" wall-clock time.
// Used at the HTTP boundary; the rest of this package assumes valid input.
func ValidTimeFormat(t string) bool {
	if len(t) != 5 || t[2] != ':' {
		return false
	}
	total := ParseTimeToMinutes(t)
	return total >= 0 && total < 24*60 && t == FormatMinutes(total)
}
