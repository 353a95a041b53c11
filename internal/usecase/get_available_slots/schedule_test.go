package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func tsPtr(s string) *types.TimeString {
	v := types.TimeString(s)
	return &v
}

func TestResolveDayIntervalsStaffArray(t *testing.T) {
	schedule := domain.WeeklySchedule{
		Kind: domain.ScheduleKindStaffArray,
		StaffDays: []domain.DaySchedule{
			{Dia: 1, Activo: true, Turnos: []domain.Turno{
				{Inicio: ts("16:00"), Fin: ts("20:00")},
				{Inicio: ts("09:00"), Fin: ts("14:00")},
			}},
			{Dia: 2, Activo: false, Turnos: []domain.Turno{
				{Inicio: ts("09:00"), Fin: ts("14:00")},
			}},
		},
	}

	// Смены возвращаются хронологически, независимо от порядка хранения
	intervals := resolveDayIntervals(schedule, 1, nopLogger{})
	require.Len(t, intervals, 2)
	assert.Equal(t, domain.Interval{StartMin: 540, EndMin: 840}, intervals[0])
	assert.Equal(t, domain.Interval{StartMin: 960, EndMin: 1200}, intervals[1])

	// activo=false означает выходной
	assert.Empty(t, resolveDayIntervals(schedule, 2, nopLogger{}))

	// День без записи в массиве - выходной
	assert.Empty(t, resolveDayIntervals(schedule, 5, nopLogger{}))
}

func TestResolveDayIntervalsLegacyMap(t *testing.T) {
	schedule := domain.WeeklySchedule{
		Kind: domain.ScheduleKindLegacyMap,
		LegacyDays: map[string][]domain.TimeRange{
			"lunes":  {{Desde: ts("10:00"), Hasta: ts("18:00")}},
			"sábado": {{Desde: ts("10:00"), Hasta: ts("14:00")}},
		},
	}

	// weekday=1 -> lunes
	intervals := resolveDayIntervals(schedule, 1, nopLogger{})
	require.Len(t, intervals, 1)
	assert.Equal(t, domain.Interval{StartMin: 600, EndMin: 1080}, intervals[0])

	// weekday=6 -> sábado (ключ с диакритикой)
	intervals = resolveDayIntervals(schedule, 6, nopLogger{})
	require.Len(t, intervals, 1)
	assert.Equal(t, domain.Interval{StartMin: 600, EndMin: 840}, intervals[0])

	// weekday=0 -> domingo, ключа нет - закрыто
	assert.Empty(t, resolveDayIntervals(schedule, 0, nopLogger{}))
}

func TestResolveDayIntervalsProfileWithPause(t *testing.T) {
	schedule := domain.WeeklySchedule{
		Kind: domain.ScheduleKindProfileSingle,
		Profile: &domain.ProfileHours{
			EstaAbierto:     true,
			HoraApertura:    ts("09:00"),
			HoraCierre:      ts("19:00"),
			HoraInicioPausa: tsPtr("14:00"),
			HoraFinPausa:    tsPtr("16:00"),
		},
	}

	// Перерыв вырезается целиком: [09:00,14:00) и [16:00,19:00)
	intervals := resolveDayIntervals(schedule, 3, nopLogger{})
	require.Len(t, intervals, 2)
	assert.Equal(t, domain.Interval{StartMin: 540, EndMin: 840}, intervals[0])
	assert.Equal(t, domain.Interval{StartMin: 960, EndMin: 1140}, intervals[1])
}

func TestResolveDayIntervalsProfileClosed(t *testing.T) {
	schedule := domain.WeeklySchedule{
		Kind: domain.ScheduleKindProfileSingle,
		Profile: &domain.ProfileHours{
			EstaAbierto:  false,
			HoraApertura: ts("09:00"),
			HoraCierre:   ts("19:00"),
		},
	}

	assert.Empty(t, resolveDayIntervals(schedule, 1, nopLogger{}))
}

func TestResolveDayIntervalsProfileWithoutPause(t *testing.T) {
	schedule := domain.WeeklySchedule{
		Kind: domain.ScheduleKindProfileSingle,
		Profile: &domain.ProfileHours{
			EstaAbierto:  true,
			HoraApertura: ts("10:00"),
			HoraCierre:   ts("20:00"),
		},
	}

	intervals := resolveDayIntervals(schedule, 1, nopLogger{})
	require.Len(t, intervals, 1)
	assert.Equal(t, domain.Interval{StartMin: 600, EndMin: 1200}, intervals[0])
}

func TestResolveDayIntervalsSkipsInvalidShifts(t *testing.T) {
	schedule := domain.WeeklySchedule{
		Kind: domain.ScheduleKindStaffArray,
		StaffDays: []domain.DaySchedule{
			{Dia: 1, Activo: true, Turnos: []domain.Turno{
				{Inicio: ts("garbage"), Fin: ts("14:00")},
				{Inicio: ts("18:00"), Fin: ts("09:00")}, // start >= end
				{Inicio: ts("09:00"), Fin: ts("13:00")},
			}},
		},
	}

	// Битые смены пропускаются, валидная остается
	intervals := resolveDayIntervals(schedule, 1, nopLogger{})
	require.Len(t, intervals, 1)
	assert.Equal(t, domain.Interval{StartMin: 540, EndMin: 780}, intervals[0])
}

func TestResolveDayIntervalsNone(t *testing.T) {
	assert.Empty(t, resolveDayIntervals(domain.WeeklySchedule{Kind: domain.ScheduleKindNone}, 1, nopLogger{}))
}

func TestResolveProfileIntervalsBrokenPauseIgnored(t *testing.T) {
	hours := &domain.ProfileHours{
		EstaAbierto:     true,
		HoraApertura:    ts("09:00"),
		HoraCierre:      ts("19:00"),
		HoraInicioPausa: tsPtr("bad"),
		HoraFinPausa:    tsPtr("16:00"),
	}

	// Нечитаемый перерыв не закрывает день
	intervals := resolveProfileIntervals(hours, nopLogger{})
	require.Len(t, intervals, 1)
	assert.Equal(t, domain.Interval{StartMin: 540, EndMin: 1140}, intervals[0])
}
