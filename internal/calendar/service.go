package calendar

import "time"

// EventSource supplies persisted one-off events grouped by date. Implemented
// by the event repository.
type EventSource interface {
	ListRange(from, to string) (map[string][]Event, error)
}

// SeriesSource supplies every recurring series. Implemented by the series
// repository. Expansion filters by date window itself, so no range param.
type SeriesSource interface {
	ListAll() ([]Series, error)
}

// Service assembles calendar views: it loads one-off events and recurring
// series, expands the series over the visible dates, merges and sorts, and
// (for the week time grid) attaches layout fractions. Views are recomputed
// on every call; nothing is cached.
type Service struct {
	Events EventSource
	Series SeriesSource
}

func NewService(events EventSource, series SeriesSource) *Service {
	return &Service{Events: events, Series: series}
}

// EventView is an event plus its optional time-grid placement.
type EventView struct {
	Event
	Layout   *Layout   `json:"layout,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// DayView is one rendered day cell.
type DayView struct {
	Date    string      `json:"date"`
	InMonth bool        `json:"in_month"`
	Holiday string      `json:"holiday,omitempty"`
	Events  []EventView `json:"events"`
}

// MonthViewResponse is the 42-cell Monday-first month grid.
type MonthViewResponse struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayView `json:"days"`
}

// WeekViewResponse is the Monday-to-Sunday time grid for one week.
type WeekViewResponse struct {
	Days []DayView `json:"days"`
}

// MonthView builds the month grid for the given year/month, optionally
// filtered to a category subset (empty means all).
func (s *Service) MonthView(year int, month time.Month, categories []string) (*MonthViewResponse, error) {
	days := MonthDays(year, month)

	views, err := s.buildDays(days, categories, false)
	if err != nil {
		return nil, err
	}
	for i, d := range days {
		views[i].InMonth = d.Month() == month
	}

	return &MonthViewResponse{Year: year, Month: int(month), Days: views}, nil
}

// WeekView builds the time-grid week containing anchor. Timed events carry
// layout and position fractions for non-overlapping rendering.
func (s *Service) WeekView(anchor time.Time, categories []string) (*WeekViewResponse, error) {
	views, err := s.buildDays(WeekDays(anchor), categories, true)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].InMonth = true
	}
	return &WeekViewResponse{Days: views}, nil
}

// MergedRange returns the merged, sorted per-date event lists for an
// arbitrary day sequence. Used by the agenda exporter.
func (s *Service) MergedRange(days []time.Time, categories []string) (map[string][]Event, error) {
	keys := DateKeys(days)

	merged, err := s.mergedForKeys(keys)
	if err != nil {
		return nil, err
	}
	for key, events := range merged {
		merged[key] = filterCategories(events, categories)
	}
	return merged, nil
}

func (s *Service) mergedForKeys(keys []string) (map[string][]Event, error) {
	oneOff, err := s.Events.ListRange(keys[0], keys[len(keys)-1])
	if err != nil {
		return nil, err
	}
	series, err := s.Series.ListAll()
	if err != nil {
		return nil, err
	}
	return MergeEvents(oneOff, ExpandSeries(series, keys)), nil
}

func (s *Service) buildDays(days []time.Time, categories []string, withLayout bool) ([]DayView, error) {
	keys := DateKeys(days)

	merged, err := s.mergedForKeys(keys)
	if err != nil {
		return nil, err
	}

	views := make([]DayView, 0, len(keys))
	for _, key := range keys {
		events := filterCategories(merged[key], categories)

		view := DayView{
			Date:    key,
			Holiday: HolidayName(key),
			Events:  make([]EventView, 0, len(events)),
		}
		for _, ev := range events {
			ev := EventView{Event: ev}
			if withLayout && ev.StartTime != "" && ev.EndTime != "" {
				layout := EventLayout(ev.Event, events)
				position := EventPosition(ev.StartTime, ev.EndTime)
				ev.Layout = &layout
				ev.Position = &position
			}
			view.Events = append(view.Events, ev)
		}
		views = append(views, view)
	}
	return views, nil
}

// filterCategories keeps only events whose category is in the subset.
// An empty subset disables filtering.
func filterCategories(events []Event, categories []string) []Event {
	if len(categories) == 0 {
		return events
	}
	keep := make([]Event, 0, len(events))
	for _, ev := range events {
		for _, c := range categories {
			if ev.Category == c {
				keep = append(keep, ev)
				break
			}
		}
	}
	return keep
}
