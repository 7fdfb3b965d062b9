package calendar

// Event is the view representation of a calendar entry: either a persisted
// one-off event or an instance materialized from a recurring series.
// Instances carry a non-empty SeriesID and are never stored; they are
// recomputed on every view request.
type Event struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	SeriesID  string `json:"series_id,omitempty"`
}

// Series is a recurring event definition: a recurrence rule plus the
// inclusive [StartDate, EndDate] validity window. EndDate == "" means
// open-ended.
type Series struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	StartTime  string         `json:"start_time,omitempty"`
	EndTime    string         `json:"end_time,omitempty"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date,omitempty"`
	Recurrence RecurrenceRule `json:"recurrence"`
}

// Event categories
const (
	CategoryWork     = "work"
	CategoryProjects = "projects"
	CategoryPersonal = "personal"
	CategoryHome     = "home"
	CategoryBenja    = "benja"
	CategorySophi    = "sophi"
	CategoryOther    = "other"
)

// AllCategories lists every valid category, in display order.
var AllCategories = []string{
	CategoryWork,
	CategoryProjects,
	CategoryPersonal,
	CategoryHome,
	CategoryBenja,
	CategorySophi,
	CategoryOther,
}

// ValidCategory reports whether c is a known event category.
func ValidCategory(c string) bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}
