package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/barberlink/BL-BookingService/pkg/ptr"
)

func TestAppointmentIsActive(t *testing.T) {
	tests := []struct {
		name      string
		cancelada *bool
		expected  bool
	}{
		// NULL в колонке cancelada - исторические записи, считаются активными
		{name: "null cancelada is active", cancelada: nil, expected: true},
		{name: "explicit false is active", cancelada: ptr.Ptr(false), expected: true},
		{name: "cancelled is not active", cancelada: ptr.Ptr(true), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &Appointment{Cancelada: tt.cancelada}
			assert.Equal(t, tt.expected, app.IsActive())
		})
	}
}

func TestAppointmentDurationOrDefault(t *testing.T) {
	withDuration := &Appointment{DuracionMinutos: ptr.Ptr(45)}
	assert.Equal(t, 45, withDuration.DurationOrDefault(30))

	withoutDuration := &Appointment{}
	assert.Equal(t, 30, withoutDuration.DurationOrDefault(30))

	zeroDuration := &Appointment{DuracionMinutos: ptr.Ptr(0)}
	assert.Equal(t, 60, zeroDuration.DurationOrDefault(60))
}

func TestAppointmentMatchesBarber(t *testing.T) {
	barberID := uuid.MustParse("7f9c24e5-2c31-4a8e-9d3b-111122223333")

	tests := []struct {
		name     string
		barbero  string
		expected bool
	}{
		{name: "matches by name", barbero: "Carlos", expected: true},
		{name: "matches by name case insensitive", barbero: "cArLoS", expected: true},
		{name: "matches by name with spaces", barbero: "  Carlos  ", expected: true},
		{name: "matches by id", barbero: barberID.String(), expected: true},
		{name: "matches by id uppercase", barbero: "7F9C24E5-2C31-4A8E-9D3B-111122223333", expected: true},
		{name: "different barber", barbero: "Miguel", expected: false},
		// Запись без тега барбера никому не принадлежит
		{name: "empty tag never matches", barbero: "", expected: false},
		{name: "whitespace tag never matches", barbero: "   ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &Appointment{Barbero: tt.barbero}
			assert.Equal(t, tt.expected, app.MatchesBarber(barberID.String(), "Carlos"))
		})
	}
}

func TestAppointmentIsOnDate(t *testing.T) {
	// Dia исторически мог хранить timestamp - сравнивается только дата
	app := &Appointment{Dia: time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC)}

	assert.True(t, app.IsOnDate(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))
	assert.False(t, app.IsOnDate(time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)))
}

func TestShopProfileIsClosedOn(t *testing.T) {
	profile := &ShopProfile{ClosingDates: []string{"2026-12-25", "2027-01-01"}}

	assert.True(t, profile.IsClosedOn(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, profile.IsClosedOn(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)))

	empty := &ShopProfile{}
	assert.False(t, empty.IsClosedOn(time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC)))
}

func TestServiceDuration(t *testing.T) {
	assert.Equal(t, 45, (&Service{DuracionMinutos: 45}).Duration())
	assert.Equal(t, DefaultServiceDurationMinutes, (&Service{}).Duration())
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "domingo", DayKey(0))
	assert.Equal(t, "lunes", DayKey(1))
	assert.Equal(t, "miércoles", DayKey(3))
	assert.Equal(t, "sábado", DayKey(6))
	assert.Equal(t, "", DayKey(7))
	assert.Equal(t, "", DayKey(-1))
}
