package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/ptr"
	"github.com/barberlink/BL-BookingService/pkg/types"
)

func TestGenerateSlotStarts(t *testing.T) {
	tests := []struct {
		name     string
		interval domain.Interval
		duration int
		expected []int
	}{
		{
			// Шаг равен длительности услуги, НЕ фиксированной сетке
			name:     "60 min service 09:00-19:00",
			interval: domain.Interval{StartMin: 540, EndMin: 1140},
			duration: 60,
			expected: []int{540, 600, 660, 720, 780, 840, 900, 960, 1020, 1080},
		},
		{
			// 45-минутная услуга: 09:00, 09:45, 10:30, ... - последний 10:30 (11:15 не влезает в 11:30)
			name:     "45 min service 09:00-11:30",
			interval: domain.Interval{StartMin: 540, EndMin: 690},
			duration: 45,
			expected: []int{540, 585, 630},
		},
		{
			// Услуга ровно в длину интервала - один слот
			name:     "exact fit",
			interval: domain.Interval{StartMin: 600, EndMin: 660},
			duration: 60,
			expected: []int{600},
		},
		{
			// Услуга длиннее интервала - ни одного слота
			name:     "does not fit",
			interval: domain.Interval{StartMin: 600, EndMin: 645},
			duration: 60,
			expected: nil,
		},
		{
			name:     "zero duration",
			interval: domain.Interval{StartMin: 540, EndMin: 1140},
			duration: 0,
			expected: nil,
		},
		{
			name:     "negative duration",
			interval: domain.Interval{StartMin: 540, EndMin: 1140},
			duration: -30,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generateSlotStarts(tt.interval, tt.duration))
		})
	}
}

func TestHasOverlap(t *testing.T) {
	barberID := "7f9c24e5-2c31-4a8e-9d3b-111122223333"
	barberName := "Carlos"

	appointments := []*domain.Appointment{
		{Barbero: "Carlos", Hora: "11:00", DuracionMinutos: ptr.Ptr(60)},
	}

	// Полуоткрытые интервалы: границы совместимы
	assert.False(t, hasOverlap(600, 60, appointments, barberID, barberName, 30), "слот 10:00-11:00 граничит с записью")
	assert.False(t, hasOverlap(720, 60, appointments, barberID, barberName, 30), "слот 12:00-13:00 граничит с записью")

	// Любое пересечение блокирует
	assert.True(t, hasOverlap(660, 60, appointments, barberID, barberName, 30), "слот 11:00-12:00 совпадает")
	assert.True(t, hasOverlap(630, 60, appointments, barberID, barberName, 30), "слот 10:30-11:30 пересекается")
	assert.True(t, hasOverlap(690, 60, appointments, barberID, barberName, 30), "слот 11:30-12:30 пересекается")
}

func TestHasOverlapIgnoresCancelledAndForeign(t *testing.T) {
	barberID := "7f9c24e5-2c31-4a8e-9d3b-111122223333"

	appointments := []*domain.Appointment{
		// Отмененная запись прозрачна
		{Barbero: "Carlos", Hora: "11:00", DuracionMinutos: ptr.Ptr(60), Cancelada: ptr.Ptr(true)},
		// Запись другого барбера не блокирует
		{Barbero: "Miguel", Hora: "11:00", DuracionMinutos: ptr.Ptr(60)},
		// Запись с нечитаемым временем не блокирует
		{Barbero: "Carlos", Hora: "когда-нибудь", DuracionMinutos: ptr.Ptr(60)},
	}

	assert.False(t, hasOverlap(660, 60, appointments, barberID, "Carlos", 30))
}

func TestHasOverlapMatchesByID(t *testing.T) {
	barberID := "7f9c24e5-2c31-4a8e-9d3b-111122223333"

	// Новые записи помечены ID барбера вместо имени
	appointments := []*domain.Appointment{
		{Barbero: barberID, Hora: "11:00", DuracionMinutos: ptr.Ptr(60)},
	}

	assert.True(t, hasOverlap(660, 60, appointments, barberID, "Carlos", 30))
}

func TestHasOverlapFallbackDuration(t *testing.T) {
	// Историческая запись без длительности получает fallback
	appointments := []*domain.Appointment{
		{Barbero: "Carlos", Hora: "11:00"},
	}

	// fallback 60: запись 11:00-12:00, слот 11:30 конфликтует
	assert.True(t, hasOverlap(690, 30, appointments, "id", "Carlos", 60))
	// fallback 30: запись 11:00-11:30, слот 11:30 граничит
	assert.False(t, hasOverlap(690, 30, appointments, "id", "Carlos", 30))
}

func TestSlotAvailabilityUnion(t *testing.T) {
	availability := make(slotAvailability)

	// Слот доступен, если свободен хотя бы один барбер
	availability.add(600, "barber-a")
	availability.add(600, "barber-b")
	availability.add(660, "barber-b")

	starts := availability.availableStarts()
	assert.ElementsMatch(t, []int{600, 660}, starts)
}

func TestFilterPastSlots(t *testing.T) {
	now := time.Date(2026, 9, 7, 14, 30, 0, 0, time.UTC)

	// Строгое сравнение: слот ровно в текущую минуту отбрасывается
	filtered := filterPastSlots([]int{540, 870, 871, 1080}, now)
	assert.Equal(t, []int{871, 1080}, filtered)
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, isSameDay(
		time.Date(2026, 9, 7, 23, 59, 0, 0, time.UTC),
		time.Date(2026, 9, 7, 0, 1, 0, 0, time.UTC),
	))
	assert.False(t, isSameDay(
		time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	))
}

func TestToTimeStrings(t *testing.T) {
	assert.Equal(t,
		[]types.TimeString{"09:00", "09:45", "18:05"},
		toTimeStrings([]int{540, 585, 1085}),
	)
}
