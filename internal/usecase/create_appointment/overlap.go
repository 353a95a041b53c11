package create_appointment

import (
	"github.com/barberlink/BL-BookingService/internal/domain"
)

// conflictsWithBarber проверяет, пересекается ли запрошенное время с активной
// записью указанного барбера (полуоткрытые интервалы, границы совместимы)
//
// Сопоставление записи с барбером - по имени или ID (MatchesBarber):
// исторические записи помечены только именем
func conflictsWithBarber(
	startMin int,
	durationMinutes int,
	appointments []*domain.Appointment,
	barberID string,
	barberName string,
	fallbackDuration int,
) bool {
	endMin := startMin + durationMinutes

	for _, app := range appointments {
		if !app.IsActive() {
			continue
		}
		if !app.MatchesBarber(barberID, barberName) {
			continue
		}

		appStartMin, err := app.Hora.ToMinutes()
		if err != nil {
			continue
		}
		appEndMin := appStartMin + app.DurationOrDefault(fallbackDuration)

		if startMin < appEndMin && endMin > appStartMin {
			return true
		}
	}

	return false
}
