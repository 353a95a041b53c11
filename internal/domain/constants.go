package domain

// Default configuration values
const (
	// DefaultServiceDurationMinutes длительность услуги, если она не указана
	// Исторические записи в citas могут не иметь duracion - для них тоже используется этот fallback
	DefaultServiceDurationMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxGuestNameLength        = 120
	MaxGuestPhoneLength       = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// dayKeys локализованные ключи дней недели в legacy-расписаниях (Shape A)
// Индекс соответствует time.Weekday: 0=domingo (воскресенье) .. 6=sábado (суббота)
var dayKeys = [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// DayKey возвращает локализованный ключ дня недели для legacy-расписаний
func DayKey(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return dayKeys[weekday]
}
