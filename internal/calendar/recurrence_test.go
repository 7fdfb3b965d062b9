package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMatchesDayOfMonth(t *testing.T) {
	rule := RecurrenceRule{Kind: KindDayOfMonth, Day: NewDaySet(15)}

	assert.True(t, rule.Matches(localDate(2026, time.March, 15)))
	assert.False(t, rule.Matches(localDate(2026, time.March, 14)))
	assert.False(t, rule.Matches(localDate(2026, time.April, 16)))
}

func TestMatchesDayOfMonthNoRollover(t *testing.T) {
	// Day 31 never fires in a short month; it is skipped, not clamped.
	rule := RecurrenceRule{Kind: KindDayOfMonth, Day: NewDaySet(31)}

	for d := 1; d <= 28; d++ {
		assert.False(t, rule.Matches(localDate(2026, time.February, d)), "February %d", d)
	}
	assert.True(t, rule.Matches(localDate(2026, time.March, 31)))
	assert.False(t, rule.Matches(localDate(2026, time.April, 30)))
}

func TestMatchesDayOfWeek(t *testing.T) {
	// Monday and Wednesday (Sunday = 0)
	rule := RecurrenceRule{Kind: KindDayOfWeek, Day: NewDaySet(1, 3)}

	assert.True(t, rule.Matches(localDate(2026, time.March, 9)), "Monday")
	assert.True(t, rule.Matches(localDate(2026, time.March, 11)), "Wednesday")
	assert.False(t, rule.Matches(localDate(2026, time.March, 10)), "Tuesday")
	assert.False(t, rule.Matches(localDate(2026, time.March, 15)), "Sunday")
}

func TestMatchesUnknownKind(t *testing.T) {
	rule := RecurrenceRule{Kind: "every_full_moon", Day: NewDaySet(1)}
	assert.False(t, rule.Matches(localDate(2026, time.March, 1)))
}

func TestDaySetJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"scalar day", `{"kind":"day_of_month","day":15}`},
		{"single-element list", `{"kind":"day_of_week","day":[2]}`},
		{"multi list", `{"kind":"day_of_week","day":[1,3,5]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rule RecurrenceRule
			require.NoError(t, json.Unmarshal([]byte(tt.in), &rule))

			out, err := json.Marshal(rule)
			require.NoError(t, err)
			// The wire shape (scalar vs list) is preserved exactly.
			assert.JSONEq(t, tt.in, string(out))
		})
	}
}

func TestDaySetUnmarshalRejectsOtherShapes(t *testing.T) {
	var rule RecurrenceRule
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"day_of_week","day":"monday"}`), &rule))
}

func TestRecurrenceRuleValidate(t *testing.T) {
	tests := []struct {
		name    string
		rule    RecurrenceRule
		wantErr bool
	}{
		{"valid day_of_month", RecurrenceRule{Kind: KindDayOfMonth, Day: NewDaySet(31)}, false},
		{"day_of_month zero", RecurrenceRule{Kind: KindDayOfMonth, Day: NewDaySet(0)}, true},
		{"day_of_month 32", RecurrenceRule{Kind: KindDayOfMonth, Day: NewDaySet(32)}, true},
		{"day_of_month multiple days", RecurrenceRule{Kind: KindDayOfMonth, Day: NewDaySet(1, 15)}, true},
		{"valid day_of_week single", RecurrenceRule{Kind: KindDayOfWeek, Day: NewDaySet(0)}, false},
		{"valid day_of_week set", RecurrenceRule{Kind: KindDayOfWeek, Day: NewDaySet(1, 3, 5)}, false},
		{"day_of_week empty", RecurrenceRule{Kind: KindDayOfWeek, Day: NewDaySet()}, true},
		{"day_of_week out of range", RecurrenceRule{Kind: KindDayOfWeek, Day: NewDaySet(7)}, true},
		{"unknown kind", RecurrenceRule{Kind: "yearly", Day: NewDaySet(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
