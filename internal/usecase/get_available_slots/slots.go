package get_available_slots

import (
	"time"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/types"
)

// generateSlotStarts генерирует времена начала слотов внутри открытого интервала
//
// Шаг генерации равен длительности услуги (плитка, НЕ скользящее окно):
// услуга 45 минут на смене 09:00-20:00 дает 09:00, 09:45, 10:30, ...
// Кандидат включается, только если услуга целиком помещается до конца интервала.
// Шаг по фиксированной сетке (15/30 минут) изменил бы времена начала записей -
// это поведенческая регрессия, а не рефакторинг
func generateSlotStarts(interval domain.Interval, durationMinutes int) []int {
	if durationMinutes <= 0 {
		return nil
	}

	var starts []int
	for current := interval.StartMin; current < interval.EndMin; current += durationMinutes {
		if current+durationMinutes > interval.EndMin {
			break
		}
		starts = append(starts, current)
	}
	return starts
}

// hasOverlap проверяет, пересекается ли слот [slotStartMin, slotStartMin+duration)
// с какой-либо активной записью этого барбера
//
// Пересечение полуоткрытых интервалов: aStart < bEnd && aEnd > bStart.
// Граничащие интервалы совместимы: слот до 10:00 и запись с 10:00 не конфликтуют.
// Запись без длительности получает fallbackDuration
func hasOverlap(
	slotStartMin int,
	durationMinutes int,
	appointments []*domain.Appointment,
	barberID string,
	barberName string,
	fallbackDuration int,
) bool {
	slotEndMin := slotStartMin + durationMinutes

	for _, app := range appointments {
		if !app.IsActive() {
			continue
		}
		if !app.MatchesBarber(barberID, barberName) {
			continue
		}

		appStartMin, err := app.Hora.ToMinutes()
		if err != nil {
			// Нечитаемое время записи - запись не может блокировать слот
			continue
		}
		appEndMin := appStartMin + app.DurationOrDefault(fallbackDuration)

		if slotStartMin < appEndMin && slotEndMin > appStartMin {
			return true
		}
	}

	return false
}

// slotAvailability отображение "время слота -> барберы, свободные в это время"
// Слот попадает в итоговый ответ, если свободен хотя бы ОДИН барбер (объединение,
// не пересечение) - барбершоп обслужит клиента любым свободным барбером
type slotAvailability map[int]map[string]struct{}

func (sa slotAvailability) add(slotStartMin int, barberID string) {
	if sa[slotStartMin] == nil {
		sa[slotStartMin] = make(map[string]struct{})
	}
	sa[slotStartMin][barberID] = struct{}{}
}

// availableStarts возвращает времена слотов, у которых есть хотя бы один свободный барбер
func (sa slotAvailability) availableStarts() []int {
	starts := make([]int, 0, len(sa))
	for start, barbers := range sa {
		if len(barbers) > 0 {
			starts = append(starts, start)
		}
	}
	return starts
}

// filterPastSlots отбрасывает слоты, начинающиеся не позже текущей минуты дня
// Применяется только когда запрошенная дата - сегодня
func filterPastSlots(starts []int, now time.Time) []int {
	currentMinutes := now.Hour()*60 + now.Minute()

	filtered := make([]int, 0, len(starts))
	for _, s := range starts {
		if s > currentMinutes {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// toTimeStrings конвертирует отсортированные минуты в "HH:MM"
func toTimeStrings(starts []int) []types.TimeString {
	result := make([]types.TimeString, len(starts))
	for i, s := range starts {
		result[i] = types.NewTimeStringFromMinutes(s)
	}
	return result
}
