package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RecurrenceKind discriminates the supported recurrence rules.
type RecurrenceKind string

const (
	// KindDayOfMonth fires when the date's day-of-month equals the rule day.
	// Months shorter than the rule day simply never fire: day 31 in a 30-day
	// month is skipped, not clamped.
	KindDayOfMonth RecurrenceKind = "day_of_month"
	// KindDayOfWeek fires when the date's weekday (Sunday = 0) is a member
	// of the rule's day set.
	KindDayOfWeek RecurrenceKind = "day_of_week"
)

// RecurrenceRule describes when a series fires.
type RecurrenceRule struct {
	Kind RecurrenceKind `json:"kind"`
	Day  DaySet         `json:"day"`
}

// DaySet holds the rule's day value(s). On the wire "day" may be a single
// integer or a list of integers; both forms are accepted and re-encoded in
// the shape they arrived in, so stored rules round-trip unchanged.
type DaySet struct {
	days   []int
	scalar bool
}

// NewDaySet builds a DaySet from explicit values. A single value encodes as
// a scalar, matching the most common stored form.
func NewDaySet(days ...int) DaySet {
	return DaySet{days: days, scalar: len(days) == 1}
}

// Days returns the normalized day list.
func (d DaySet) Days() []int {
	return d.days
}

// Contains reports whether n is a member of the set.
func (d DaySet) Contains(n int) bool {
	for _, v := range d.days {
		if v == n {
			return true
		}
	}
	return false
}

func (d *DaySet) UnmarshalJSON(b []byte) error {
	var single int
	if err := json.Unmarshal(b, &single); err == nil {
		d.days = []int{single}
		d.scalar = true
		return nil
	}
	var many []int
	if err := json.Unmarshal(b, &many); err != nil {
		return fmt.Errorf("recurrence day must be an integer or a list of integers: %w", err)
	}
	d.days = many
	d.scalar = false
	return nil
}

func (d DaySet) MarshalJSON() ([]byte, error) {
	if d.scalar && len(d.days) == 1 {
		return json.Marshal(d.days[0])
	}
	return json.Marshal(d.days)
}

// Matches reports whether the rule fires on the given date. Callers must
// first confirm the date is inside the series' [StartDate, EndDate] window;
// the rule itself carries no range information.
func (r RecurrenceRule) Matches(date time.Time) bool {
	switch r.Kind {
	case KindDayOfMonth:
		return r.Day.Contains(date.Day())
	case KindDayOfWeek:
		return r.Day.Contains(int(date.Weekday()))
	default:
		return false
	}
}

// Validate checks the rule at the persistence boundary. Expansion assumes
// rules have passed this check.
func (r RecurrenceRule) Validate() error {
	switch r.Kind {
	case KindDayOfMonth:
		if len(r.Day.Days()) != 1 {
			return errors.New("day_of_month requires a single day value")
		}
		if day := r.Day.Days()[0]; day < 1 || day > 31 {
			return fmt.Errorf("day_of_month day must be 1-31, got %d", day)
		}
	case KindDayOfWeek:
		if len(r.Day.Days()) == 0 {
			return errors.New("day_of_week requires at least one weekday")
		}
		for _, day := range r.Day.Days() {
			if day < 0 || day > 6 {
				return fmt.Errorf("day_of_week weekday must be 0-6 (0 = Sunday), got %d", day)
			}
		}
	default:
		return fmt.Errorf("unknown recurrence kind %q", r.Kind)
	}
	return nil
}
