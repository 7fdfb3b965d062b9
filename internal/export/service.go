package export

import (
	"fmt"
	"time"

	"github.com/planora/calendar-backend/internal/calendar"
)

// Service renders month agendas from the merged calendar view.
type Service struct {
	Calendar *calendar.Service
	Exporter AgendaExporter
}

func NewService(cal *calendar.Service) *Service {
	return &Service{Calendar: cal, Exporter: NewAgendaExporter()}
}

// MonthAgenda exports every event of the given month (no grid padding days)
// in the requested format.
func (s *Service) MonthAgenda(year int, month time.Month, format string) ([]byte, string, string, error) {
	days := monthDates(year, month)

	merged, err := s.Calendar.MergedRange(days, nil)
	if err != nil {
		return nil, "", "", err
	}

	var rows []AgendaRow
	for _, day := range days {
		key := calendar.FormatDate(day)
		for _, ev := range merged[key] {
			rows = append(rows, AgendaRow{
				Date:      key,
				Holiday:   calendar.HolidayName(key),
				StartTime: ev.StartTime,
				EndTime:   ev.EndTime,
				Name:      ev.Name,
				Category:  ev.Category,
				Recurring: ev.SeriesID != "",
			})
		}
	}

	title := fmt.Sprintf("%04d-%02d", year, month)
	return s.Exporter.Export(format, title, rows)
}

// monthDates lists the actual days of the month, first through last.
func monthDates(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1).Day()

	days := make([]time.Time, 0, last)
	for d := 0; d < last; d++ {
		days = append(days, first.AddDate(0, 0, d))
	}
	return days
}
