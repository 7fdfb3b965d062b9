package event

import (
	"time"

	"github.com/planora/calendar-backend/internal/calendar"
)

// ============================
// 🔷 GORM Event Model (one-off events only; recurring instances are derived,
// never persisted)
type Event struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Category  string    `gorm:"type:varchar(50);not null" json:"category"`
	Date      string    `gorm:"type:varchar(10);not null;index" json:"date"` // "2006-01-02"
	StartTime string    `gorm:"type:varchar(5)" json:"start_time,omitempty"` // "15:04"
	EndTime   string    `gorm:"type:varchar(5)" json:"end_time,omitempty"`
	Completed bool      `gorm:"default:false" json:"completed"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// View converts the row to the calendar core representation.
func (e *Event) View() calendar.Event {
	return calendar.Event{
		ID:        e.ID,
		Name:      e.Name,
		Category:  e.Category,
		Date:      e.Date,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Completed: e.Completed,
	}
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category" binding:"required"`
	Date      string `json:"date" binding:"required"` // "2006-01-02"
	StartTime string `json:"start_time,omitempty"`    // "15:04"
	EndTime   string `json:"end_time,omitempty"`
}

// ============================
// 🟠 Update Event Request (partial: nil fields stay untouched)
type UpdateEventRequest struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// ============================
// 🔀 Move Event Request (drag/drop). Hour/Minute come from the week grid's
// pointer position; both absent means a month-grid drop that keeps the
// event's times and only changes the date.
type MoveEventRequest struct {
	Date   string `json:"date" binding:"required"`
	Hour   *int   `json:"hour,omitempty"`
	Minute *int   `json:"minute,omitempty"`
}
