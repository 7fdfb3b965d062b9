package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeFromPosition(t *testing.T) {
	// With a 960px container, 1px = 1 minute of the 16h window.
	cases := []struct {
		name       string
		y          float64
		wantHour   int
		wantMinute int
	}{
		{"top of grid", 0, 6, 0},
		{"exact quarter", 195, 9, 15},
		{"rounds down to the hour", 187, 9, 0},
		{"rounds up to the quarter", 188, 9, 15},
		{"minute 60 rolls into next hour", 593, 16, 0},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute := TimeFromPosition(tt.y, 960)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestTimeFromPositionHalfHeight(t *testing.T) {
	// Halfway down the grid is 8 hours in: 14:00.
	hour, minute := TimeFromPosition(240, 480)
	assert.Equal(t, 14, hour)
	assert.Equal(t, 0, minute)
}

func TestDraggable(t *testing.T) {
	assert.True(t, Draggable(Event{ID: "e1"}))
	assert.False(t, Draggable(Event{ID: "s1__2026-03-09", SeriesID: "s1"}),
		"recurring instances cannot be dragged")
}

func TestResolveDropPreservesDuration(t *testing.T) {
	event := Event{ID: "e1", Name: "Revisión", Date: "2026-03-09", StartTime: "09:00", EndTime: "10:30"}

	moved, ok := ResolveDrop(event, "2026-03-11", 13, 0)

	require.True(t, ok)
	assert.Equal(t, "2026-03-11", moved.Date)
	assert.Equal(t, "13:00", moved.StartTime)
	assert.Equal(t, "14:30", moved.EndTime, "90 minute duration preserved")
}

func TestResolveDropRejectsPastDayEnd(t *testing.T) {
	// 90 minutes from 21:15 would end 22:45, past the 22:00 ceiling.
	event := Event{ID: "e1", Date: "2026-03-09", StartTime: "09:00", EndTime: "10:30"}

	moved, ok := ResolveDrop(event, "2026-03-09", 21, 15)

	assert.False(t, ok)
	assert.Zero(t, moved, "no partial result on rejection")
}

func TestResolveDropAllowsEndingExactlyAtDayEnd(t *testing.T) {
	event := Event{ID: "e1", Date: "2026-03-09", StartTime: "09:00", EndTime: "10:30"}

	moved, ok := ResolveDrop(event, "2026-03-09", 20, 30)

	require.True(t, ok)
	assert.Equal(t, "22:00", moved.EndTime)
}

func TestResolveDropRejectsRecurringInstance(t *testing.T) {
	instance := Event{
		ID: "s1__2026-03-09", SeriesID: "s1",
		Date: "2026-03-09", StartTime: "09:00", EndTime: "10:00",
	}

	_, ok := ResolveDrop(instance, "2026-03-10", 9, 0)
	assert.False(t, ok, "recurring instances are rejected regardless of target")

	_, ok = ResolveDrop(instance, "2026-03-10", 6, 0)
	assert.False(t, ok)
}

func TestResolveDropUntimedEventOnlyChangesDate(t *testing.T) {
	event := Event{ID: "e1", Name: "Trámite", Date: "2026-03-09"}

	moved, ok := ResolveDrop(event, "2026-03-12", 13, 0)

	require.True(t, ok)
	assert.Equal(t, "2026-03-12", moved.Date)
	assert.Empty(t, moved.StartTime)
	assert.Empty(t, moved.EndTime)
}
