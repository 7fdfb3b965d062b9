package calendar

// Peruvian public holidays for 2026, keyed by ISO date.
var holidays = map[string]string{
	"2026-01-01": "Año Nuevo",
	"2026-04-02": "Semana Santa",
	"2026-04-03": "Semana Santa",
	"2026-05-01": "Día del Trabajo",
	"2026-06-07": "Batalla de Arica y Día de la Bandera",
	"2026-06-29": "Día de San Pedro y San Pablo",
	"2026-07-23": "Día de la Fuerza Aérea del Perú",
	"2026-07-28": "Fiestas Patrias",
	"2026-07-29": "Fiestas Patrias",
	"2026-08-06": "Batalla de Junín",
	"2026-08-30": "Santa Rosa de Lima",
	"2026-10-08": "Combate de Angamos",
	"2026-11-01": "Día de Todos los Santos",
	"2026-12-08": "Inmaculada Concepción",
	"2026-12-09": "Batalla de Ayacucho",
	"2026-12-25": "Navidad",
}

// IsHoliday reports whether the date key is a public holiday.
func IsHoliday(dateKey string) bool {
	_, ok := holidays[dateKey]
	return ok
}

// HolidayName returns the holiday name for a date key, or "" when the date
// is not a holiday.
func HolidayName(dateKey string) string {
	return holidays[dateKey]
}
