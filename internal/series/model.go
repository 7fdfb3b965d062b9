package series

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/planora/calendar-backend/internal/calendar"
)

// ============================
// 🔷 GORM Recurring Series Model. The recurrence rule is stored as JSONB in
// the exact shape it arrived in ("day" as a single integer or a list), so
// rules round-trip through persistence unchanged.
type RecurringEvent struct {
	ID         string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Category   string         `gorm:"type:varchar(50);not null" json:"category"`
	StartTime  string         `gorm:"type:varchar(5)" json:"start_time,omitempty"`
	EndTime    string         `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	StartDate  string         `gorm:"type:varchar(10);not null" json:"start_date"` // inclusive
	EndDate    string         `gorm:"type:varchar(10)" json:"end_date,omitempty"`  // inclusive, "" = open-ended
	Recurrence datatypes.JSON `gorm:"type:jsonb;not null" json:"recurrence"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// Rule decodes the stored recurrence column.
func (e *RecurringEvent) Rule() (calendar.RecurrenceRule, error) {
	var rule calendar.RecurrenceRule
	err := json.Unmarshal(e.Recurrence, &rule)
	return rule, err
}

// View converts the row to the calendar core representation.
func (e *RecurringEvent) View() (calendar.Series, error) {
	rule, err := e.Rule()
	if err != nil {
		return calendar.Series{}, err
	}
	return calendar.Series{
		ID:         e.ID,
		Name:       e.Name,
		Category:   e.Category,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Recurrence: rule,
	}, nil
}

// ============================
// 🟡 Create Series Request
type CreateSeriesRequest struct {
	Name       string                  `json:"name" binding:"required"`
	Category   string                  `json:"category" binding:"required"`
	StartTime  string                  `json:"start_time,omitempty"`
	EndTime    string                  `json:"end_time,omitempty"`
	StartDate  string                  `json:"start_date" binding:"required"`
	EndDate    string                  `json:"end_date,omitempty"`
	Recurrence calendar.RecurrenceRule `json:"recurrence"`
}

// ============================
// 🟠 Update Series Request (partial: nil fields stay untouched)
type UpdateSeriesRequest struct {
	Name       *string                  `json:"name,omitempty"`
	Category   *string                  `json:"category,omitempty"`
	StartTime  *string                  `json:"start_time,omitempty"`
	EndTime    *string                  `json:"end_time,omitempty"`
	StartDate  *string                  `json:"start_date,omitempty"`
	EndDate    *string                  `json:"end_date,omitempty"`
	Recurrence *calendar.RecurrenceRule `json:"recurrence,omitempty"`
}
