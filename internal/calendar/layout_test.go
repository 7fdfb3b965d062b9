package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedEvent(id, start, end string) Event {
	return Event{ID: id, Name: id, StartTime: start, EndTime: end}
}

func TestEventsOverlap(t *testing.T) {
	a := timedEvent("a", "09:00", "10:00")

	assert.True(t, EventsOverlap(a, timedEvent("b", "09:30", "10:30")))
	assert.True(t, EventsOverlap(a, timedEvent("b", "08:00", "12:00")), "containment overlaps")
	// Half-open intervals: touching endpoints do not overlap.
	assert.False(t, EventsOverlap(a, timedEvent("b", "10:00", "11:00")))
	assert.False(t, EventsOverlap(a, timedEvent("b", "07:00", "09:00")))
	// Untimed events never overlap anything.
	assert.False(t, EventsOverlap(a, Event{ID: "b", StartTime: "09:30"}))
	assert.False(t, EventsOverlap(Event{ID: "b"}, a))
}

func TestEventLayoutNoOverlap(t *testing.T) {
	day := []Event{
		timedEvent("a", "09:00", "10:00"),
		timedEvent("b", "10:00", "11:00"),
	}

	layout := EventLayout(day[0], day)
	assert.Equal(t, 1.0, layout.Width)
	assert.Equal(t, 0.0, layout.Left)
}

func TestEventLayoutTwoColumns(t *testing.T) {
	day := []Event{
		timedEvent("a", "09:00", "10:00"),
		timedEvent("b", "09:30", "10:30"),
	}

	la := EventLayout(day[0], day)
	lb := EventLayout(day[1], day)

	assert.Equal(t, 0.5, la.Width)
	assert.Equal(t, 0.0, la.Left)
	assert.Equal(t, 0.5, lb.Width)
	assert.Equal(t, 0.5, lb.Left)
}

func TestEventLayoutColumnCap(t *testing.T) {
	// Five mutually overlapping events: widths stay at 1/3 and the overflow
	// shares the rightmost column.
	var day []Event
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		day = append(day, timedEvent(id, "09:00", "10:00"))
	}

	lefts := map[float64]int{}
	for _, ev := range day {
		layout := EventLayout(ev, day)
		assert.InDelta(t, 1.0/3.0, layout.Width, 1e-9)
		lefts[layout.Left]++
	}

	require.Len(t, lefts, 3, "never more than 3 distinct columns")
	assert.Equal(t, 3, lefts[2.0/3.0], "three events share the last column")
}

func TestEventLayoutPartialChain(t *testing.T) {
	// a-b overlap and b-c overlap, but a-c do not. Each event's columns come
	// from its own overlap set.
	a := timedEvent("a", "09:00", "10:00")
	b := timedEvent("b", "09:30", "10:30")
	c := timedEvent("c", "10:00", "11:00")
	day := []Event{a, b, c}

	la := EventLayout(a, day)
	lb := EventLayout(b, day)
	lc := EventLayout(c, day)

	assert.Equal(t, 0.5, la.Width)
	assert.Equal(t, 0.0, la.Left)
	assert.InDelta(t, 1.0/3.0, lb.Width, 1e-9, "b overlaps both neighbours")
	assert.InDelta(t, 1.0/3.0, lb.Left, 1e-9)
	assert.Equal(t, 0.5, lc.Width)
	assert.Equal(t, 0.5, lc.Left)
}

func TestEventPositionFullWindow(t *testing.T) {
	pos := EventPosition("06:00", "22:00")
	assert.Equal(t, 0.0, pos.Top)
	assert.Equal(t, 1.0, pos.Height)
}

func TestEventPositionMidday(t *testing.T) {
	// 10:00 starts 4h into the 16h window; a 2h event covers 1/8 of it.
	pos := EventPosition("10:00", "12:00")
	assert.InDelta(t, 0.25, pos.Top, 1e-9)
	assert.InDelta(t, 0.125, pos.Height, 1e-9)
}

func TestEventPositionClampsEarlyStart(t *testing.T) {
	pos := EventPosition("05:00", "07:00")
	assert.Equal(t, 0.0, pos.Top, "events before 06:00 clamp to the top")
}

func TestEventPositionMinimumHeight(t *testing.T) {
	pos := EventPosition("09:00", "09:10")
	assert.Equal(t, 0.02, pos.Height, "2% floor keeps short events visible")
	assert.Greater(t, pos.Top, 0.0)
}
