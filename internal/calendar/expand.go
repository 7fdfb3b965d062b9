package calendar

// InstanceID builds the deterministic id of a series instance on a date.
// Stable across re-expansion so clients can key lists reliably.
func InstanceID(seriesID, dateKey string) string {
	return seriesID + "__" + dateKey
}

// ExpandSeries materializes recurring series into concrete per-date
// instances for the given visible date keys. The result maps each date key
// that has at least one instance to its instances, sorted by the canonical
// event order (start time, untimed last, then name).
//
// Pure and idempotent: identical inputs always reproduce identical output,
// including instance ids and ordering. Cost is O(dates x series), which is
// fine for bounded calendar views over personal event counts.
func ExpandSeries(series []Series, dateKeys []string) map[string][]Event {
	out := make(map[string][]Event)

	for _, dateKey := range dateKeys {
		date, err := ParseISODate(dateKey)
		if err != nil {
			continue
		}

		for _, s := range series {
			if !IsDateInRange(dateKey, s.StartDate, s.EndDate) {
				continue
			}
			if !s.Recurrence.Matches(date) {
				continue
			}

			out[dateKey] = append(out[dateKey], Event{
				ID:        InstanceID(s.ID, dateKey),
				SeriesID:  s.ID,
				Name:      s.Name,
				Category:  s.Category,
				Date:      dateKey,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
			})
		}
	}

	for dateKey, events := range out {
		out[dateKey] = SortEventsByTime(events)
	}
	return out
}
