package get_available_slots

import (
	"sort"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/types"
)

// resolveDayIntervals нормализует недельное расписание любой формы в список
// открытых интервалов на день weekday (0=воскресенье .. 6=суббота)
//
// Пустой результат означает "закрыто". Некорректные смены (нечитаемое время
// или start >= end) пропускаются с предупреждением - одна битая смена не
// должна ронять весь расчет
func resolveDayIntervals(schedule domain.WeeklySchedule, weekday int, log Logger) []domain.Interval {
	var intervals []domain.Interval

	switch schedule.Kind {
	case domain.ScheduleKindStaffArray:
		day := findDaySchedule(schedule.StaffDays, weekday)
		if day == nil || !day.Activo || len(day.Turnos) == 0 {
			return nil
		}
		for _, turno := range day.Turnos {
			if iv, ok := intervalFromBounds(turno.Inicio, turno.Fin, log); ok {
				intervals = append(intervals, iv)
			}
		}

	case domain.ScheduleKindLegacyMap:
		ranges := schedule.LegacyDays[domain.DayKey(weekday)]
		if len(ranges) == 0 {
			return nil
		}
		for _, r := range ranges {
			if iv, ok := intervalFromBounds(r.Desde, r.Hasta, log); ok {
				intervals = append(intervals, iv)
			}
		}

	case domain.ScheduleKindProfileSingle:
		intervals = resolveProfileIntervals(schedule.Profile, log)

	default:
		return nil
	}

	// Смены хранятся в произвольном порядке - возвращаем хронологически
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].StartMin < intervals[j].StartMin
	})

	return intervals
}

// resolveProfileIntervals разворачивает расписание формы профиля:
// одна смена [apertura, cierre] с опциональным перерывом, который вырезается целиком
// Слот может начинаться ровно в минуту окончания перерыва, но не внутри [inicio, fin)
func resolveProfileIntervals(hours *domain.ProfileHours, log Logger) []domain.Interval {
	if hours == nil || !hours.EstaAbierto {
		return nil
	}

	day, ok := intervalFromBounds(hours.HoraApertura, hours.HoraCierre, log)
	if !ok {
		return nil
	}

	if hours.HoraInicioPausa == nil || hours.HoraFinPausa == nil {
		return []domain.Interval{day}
	}

	pause, ok := intervalFromBounds(*hours.HoraInicioPausa, *hours.HoraFinPausa, log)
	if !ok {
		// Битый перерыв не закрывает день - работаем без перерыва
		return []domain.Interval{day}
	}

	var intervals []domain.Interval
	if pause.StartMin > day.StartMin {
		intervals = append(intervals, domain.Interval{StartMin: day.StartMin, EndMin: min(pause.StartMin, day.EndMin)})
	}
	if pause.EndMin < day.EndMin {
		intervals = append(intervals, domain.Interval{StartMin: max(pause.EndMin, day.StartMin), EndMin: day.EndMin})
	}
	return intervals
}

// intervalFromBounds парсит границы смены и отбрасывает некорректные
func intervalFromBounds(start, end types.TimeString, log Logger) (domain.Interval, bool) {
	startMin, err := start.ToMinutes()
	if err != nil {
		log.Warn("resolveDayIntervals: skipping shift with invalid start %q: %v", start, err)
		return domain.Interval{}, false
	}

	endMin, err := end.ToMinutes()
	if err != nil {
		log.Warn("resolveDayIntervals: skipping shift with invalid end %q: %v", end, err)
		return domain.Interval{}, false
	}

	if startMin >= endMin {
		log.Warn("resolveDayIntervals: skipping shift with start >= end (%s >= %s)", start, end)
		return domain.Interval{}, false
	}

	return domain.Interval{StartMin: startMin, EndMin: endMin}, true
}

func findDaySchedule(days []domain.DaySchedule, weekday int) *domain.DaySchedule {
	for i := range days {
		if days[i].Dia == weekday {
			return &days[i]
		}
	}
	return nil
}
