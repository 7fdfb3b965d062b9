package calendar

import "math"

// TimeFromPosition converts a vertical pointer position inside the week grid
// into an (hour, minute) pair. The grid spans the fixed 16-hour window from
// 06:00, and the result snaps to the nearest 15-minute increment; a rounded
// minute of 60 rolls into the next hour.
func TimeFromPosition(y, containerHeight float64) (hour, minute int) {
	totalMinutes := y / containerHeight * dayWindowHours * 60

	hour = int(totalMinutes)/60 + DayStartHour
	minute = int(totalMinutes) % 60

	rounded := int(math.Round(float64(minute)/15)) * 15
	if rounded == 60 {
		return hour + 1, 0
	}
	return hour, rounded
}

// Draggable reports whether an event may be rescheduled by drag and drop.
// Recurring instances are not draggable: they have no storage of their own,
// so a move would be lost on the next expansion.
func Draggable(event Event) bool {
	return event.SeriesID == ""
}

// ResolveDrop computes the updated fields for a dragged event dropped on
// targetDate at the snapped target time. The original duration is preserved
// and the new end must not pass the 22:00 ceiling. Returns ok == false, with
// no partial result, when the event is not draggable or the move would
// exceed the day bound. Untimed events only change date.
func ResolveDrop(event Event, targetDate string, hour, minute int) (Event, bool) {
	if !Draggable(event) {
		return Event{}, false
	}

	moved := event
	moved.Date = targetDate

	if event.StartTime == "" || event.EndTime == "" {
		return moved, true
	}

	duration := EventDuration(event.StartTime, event.EndTime)
	newStart := FormatMinutes(hour*60 + minute)
	if !WithinDayBounds(newStart, duration) {
		return Event{}, false
	}

	moved.StartTime = newStart
	moved.EndTime = NewEndTime(newStart, duration)
	return moved, true
}
