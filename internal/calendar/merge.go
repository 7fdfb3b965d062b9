package calendar

import "sort"

// SortEventsByTime returns a new slice ordered by start time ascending, with
// untimed events after all timed ones, and ties broken by name. This is the
// single ordering used everywhere events are listed per date.
func SortEventsByTime(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.StartTime == b.StartTime {
			return a.Name < b.Name
		}
		// empty time goes last
		if a.StartTime == "" {
			return false
		}
		if b.StartTime == "" {
			return true
		}
		return a.StartTime < b.StartTime
	})
	return sorted
}

// MergeEvents combines one-off events with expanded recurring instances into
// a fresh per-date mapping. Every date list is re-sorted, so the final order
// never depends on which side was concatenated first. Neither input map is
// mutated.
func MergeEvents(oneOff, expanded map[string][]Event) map[string][]Event {
	merged := make(map[string][]Event, len(oneOff)+len(expanded))

	for dateKey, events := range oneOff {
		merged[dateKey] = SortEventsByTime(events)
	}
	for dateKey, events := range expanded {
		combined := make([]Event, 0, len(merged[dateKey])+len(events))
		combined = append(combined, merged[dateKey]...)
		combined = append(combined, events...)
		merged[dateKey] = SortEventsByTime(combined)
	}
	return merged
}
