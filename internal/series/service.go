package series

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/planora/calendar-backend/internal/calendar"
)

var ErrNotFound = errors.New("series not found")

// Service wraps business logic for recurring event series
type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// ===========================
// 🎯 Create Series
func (s *Service) Create(req *CreateSeriesRequest) (*RecurringEvent, error) {
	if err := validateSeriesFields(req.Category, req.StartDate, req.EndDate, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if err := req.Recurrence.Validate(); err != nil {
		return nil, err
	}

	rule, err := json.Marshal(req.Recurrence)
	if err != nil {
		return nil, err
	}

	series := &RecurringEvent{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Category:   req.Category,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Recurrence: datatypes.JSON(rule),
	}

	if err := s.Repo.Create(series); err != nil {
		return nil, err
	}
	return series, nil
}

// ===========================
// 🔍 Get Series
func (s *Service) GetByID(id string) (*RecurringEvent, error) {
	series, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return series, nil
}

// ===========================
// 📄 List Series (raw rows, for the API)
func (s *Service) List() ([]RecurringEvent, error) {
	return s.Repo.List()
}

// ===========================
// 📄 ListAll (core representation, for view expansion). Rows whose stored
// rule no longer decodes are skipped rather than failing the whole view.
func (s *Service) ListAll() ([]calendar.Series, error) {
	rows, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	out := make([]calendar.Series, 0, len(rows))
	for i := range rows {
		view, err := rows[i].View()
		if err != nil {
			log.Printf("⚠️ Skipping series %s: corrupt recurrence rule: %v", rows[i].ID, err)
			continue
		}
		out = append(out, view)
	}
	return out, nil
}

// ===========================
// ✏️ Update Series (partial, including recurrence and end_date)
func (s *Service) Update(id string, req *UpdateSeriesRequest) (*RecurringEvent, error) {
	series, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		series.Name = *req.Name
	}
	if req.Category != nil {
		series.Category = *req.Category
	}
	if req.StartTime != nil {
		series.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		series.EndTime = *req.EndTime
	}
	if req.StartDate != nil {
		series.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		series.EndDate = *req.EndDate
	}
	if req.Recurrence != nil {
		if err := req.Recurrence.Validate(); err != nil {
			return nil, err
		}
		rule, err := json.Marshal(req.Recurrence)
		if err != nil {
			return nil, err
		}
		series.Recurrence = datatypes.JSON(rule)
	}

	if err := validateSeriesFields(series.Category, series.StartDate, series.EndDate, series.StartTime, series.EndTime); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(series); err != nil {
		return nil, err
	}
	return series, nil
}

// ===========================
// 🗑 Delete Series
func (s *Service) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func validateSeriesFields(category, startDate, endDate, startTime, endTime string) error {
	if !calendar.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	if !calendar.ValidDateFormat(startDate) {
		return fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", startDate)
	}
	if endDate != "" {
		if !calendar.ValidDateFormat(endDate) {
			return fmt.Errorf("invalid end_date %q, expected YYYY-MM-DD", endDate)
		}
		if calendar.CompareISO(endDate, startDate) < 0 {
			return errors.New("end_date must not be before start_date")
		}
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
