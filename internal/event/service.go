package event

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/planora/calendar-backend/internal/calendar"
)

var (
	ErrNotFound     = errors.New("event not found")
	ErrMoveRejected = errors.New("move rejected: event would end past 22:00")
)

// Service wraps business logic for one-off calendar events
type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// ===========================
// 🎯 Create Event
func (s *Service) Create(req *CreateEventRequest) (*Event, error) {
	if err := validateEventFields(req.Category, req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	event := &Event{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.Repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ===========================
// 🔍 Get Event
func (s *Service) GetByID(id string) (*Event, error) {
	event, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// ===========================
// 📄 List Events by Date Range (grouped per date, canonical order; date keys
// without events are absent from the map)
func (s *Service) ListRange(from, to string) (map[string][]calendar.Event, error) {
	rows, err := s.Repo.ListRange(from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]calendar.Event)
	for i := range rows {
		byDate[rows[i].Date] = append(byDate[rows[i].Date], rows[i].View())
	}
	for date, events := range byDate {
		byDate[date] = calendar.SortEventsByTime(events)
	}
	return byDate, nil
}

// ===========================
// ✏️ Update Event (partial)
func (s *Service) Update(id string, req *UpdateEventRequest) (*Event, error) {
	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Completed != nil {
		event.Completed = *req.Completed
	}

	if err := validateEventFields(event.Category, event.Date, event.StartTime, event.EndTime); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// ===========================
// 🗑 Delete Event
func (s *Service) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// ===========================
// 🔀 Move Event (drag/drop). Preserves the event's duration; rejects moves
// whose new end would pass the 22:00 day ceiling before touching the row.
func (s *Service) Move(id string, req *MoveEventRequest) (*Event, error) {
	if !calendar.ValidDateFormat(req.Date) {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	view := event.View()

	// Month-grid drops carry no target time: keep the current start.
	hour, minute := 0, 0
	switch {
	case req.Hour != nil && req.Minute != nil:
		hour, minute = *req.Hour, *req.Minute
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return nil, fmt.Errorf("invalid target time %02d:%02d", hour, minute)
		}
	case view.StartTime != "":
		total := calendar.ParseTimeToMinutes(view.StartTime)
		hour, minute = total/60, total%60
	}

	moved, ok := calendar.ResolveDrop(view, req.Date, hour, minute)
	if !ok {
		return nil, ErrMoveRejected
	}

	event.Date = moved.Date
	event.StartTime = moved.StartTime
	event.EndTime = moved.EndTime
	if err := s.Repo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// validateEventFields applies the shared field checks for create/update.
func validateEventFields(category, date, startTime, endTime string) error {
	if !calendar.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	if !calendar.ValidDateFormat(date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	if startTime != "" && !calendar.ValidTimeFormat(startTime) {
		return fmt.Errorf("invalid start_time %q, expected HH:MM", startTime)
	}
	if endTime != "" && !calendar.ValidTimeFormat(endTime) {
		return fmt.Errorf("invalid end_time %q, expected HH:MM", endTime)
	}
	if !calendar.IsEndTimeValid(startTime, endTime) {
		return errors.New("end_time must be after start_time")
	}
	return nil
}
