package calendar

import "sort"

// MaxColumns caps how many side-by-side columns the time grid will use.
// Beyond that, extra concurrent events share the rightmost column instead
// of shrinking further.
const MaxColumns = 3

// minHeightFraction keeps very short events visible in the grid.
const minHeightFraction = 0.02

// Layout is the horizontal placement of a timed event, as fractions of the
// day column width.
type Layout struct {
	Width float64 `json:"width"`
	Left  float64 `json:"left"`
}

// Position is the vertical placement of a timed event, as fractions of the
// 06:00-22:00 grid height.
type Position struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// EventsOverlap reports whether two events intersect in time. Intervals are
// half-open: events that merely touch at an endpoint do not overlap. Events
// missing either time never overlap anything.
func EventsOverlap(a, b Event) bool {
	if a.StartTime == "" || a.EndTime == "" || b.StartTime == "" || b.EndTime == "" {
		return false
	}
	start1 := ParseTimeToMinutes(a.StartTime)
	end1 := ParseTimeToMinutes(a.EndTime)
	start2 := ParseTimeToMinutes(b.StartTime)
	end2 := ParseTimeToMinutes(b.EndTime)

	return start1 < end2 && start2 < end1
}

// EventLayout computes the column placement of event among the day's timed
// events. It collects the set of events overlapping the target, sorts that
// set by (start time, id) and uses the target's index as its column, capped
// at MaxColumns.
func EventLayout(event Event, allDayEvents []Event) Layout {
	overlapping := []Event{event}
	for _, other := range allDayEvents {
		if other.ID == event.ID {
			continue
		}
		if EventsOverlap(event, other) {
			overlapping = append(overlapping, other)
		}
	}

	if len(overlapping) == 1 {
		return Layout{Width: 1, Left: 0}
	}

	sort.Slice(overlapping, func(i, j int) bool {
		a, b := overlapping[i], overlapping[j]
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID < b.ID
	})

	columnIndex := 0
	for i, e := range overlapping {
		if e.ID == event.ID {
			columnIndex = i
			break
		}
	}

	totalColumns := len(overlapping)
	if totalColumns > MaxColumns {
		totalColumns = MaxColumns
	}
	if columnIndex > totalColumns-1 {
		columnIndex = totalColumns - 1
	}

	width := 1.0 / float64(totalColumns)
	return Layout{Width: width, Left: width * float64(columnIndex)}
}

// EventPosition maps an event's times onto the vertical grid. Top is clamped
// at 0 for events starting before 06:00; Height has a 2% floor so short
// events stay clickable.
func EventPosition(startTime, endTime string) Position {
	startMinutes := ParseTimeToMinutes(startTime)
	endMinutes := ParseTimeToMinutes(endTime)
	total := float64(dayEndMinutes - dayStartMinutes)

	top := float64(startMinutes-dayStartMinutes) / total
	if top < 0 {
		top = 0
	}

	height := float64(endMinutes-startMinutes) / total
	if height < minHeightFraction {
		height = minHeightFraction
	}

	return Position{Top: top, Height: height}
}
