package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/pkg/types"
)

// Appointment represents a guest appointment in the system
type Appointment struct {
	ID        int64
	ShopID    uuid.UUID
	ServiceID *uuid.UUID

	Dia  time.Time        // Дата записи (только дата, время в Hora)
	Hora types.TimeString // Время начала "HH:MM"

	// DuracionMinutos может отсутствовать у исторических записей -
	// тогда используется длительность запрошенной услуги (DurationOrDefault)
	DuracionMinutos *int

	// Barbero legacy-колонка: исторически хранит ИМЯ барбера, в новых записях - ID
	// Сопоставление с барбером делается только через MatchesBarber
	Barbero string

	// Cancelada трёхзначная семантика: NULL трактуется как "активна"
	// (исходная система фильтрует только cancelada = true)
	Cancelada *bool

	GuestName  string
	GuestPhone string
	Precio     float64

	// Automatica помечает записи, созданные через публичную страницу
	Automatica bool

	CreatedAt time.Time
}

// IsActive returns true if the appointment blocks availability
// NULL cancelada считается активной записью
func (a *Appointment) IsActive() bool {
	return a.Cancelada == nil || !*a.Cancelada
}

// DurationOrDefault возвращает длительность записи или fallback, если она не задана
func (a *Appointment) DurationOrDefault(fallback int) int {
	if a.DuracionMinutos != nil && *a.DuracionMinutos > 0 {
		return *a.DuracionMinutos
	}
	return fallback
}

// MatchesBarber сопоставляет запись с барбером по имени ИЛИ идентификатору
// (без учета регистра, с обрезкой пробелов)
// Это единственная точка политики сопоставления: legacy-записи помечены
// только именем, новые - идентификатором
func (a *Appointment) MatchesBarber(barberID, barberName string) bool {
	tag := strings.ToLower(strings.TrimSpace(a.Barbero))
	if tag == "" {
		return false
	}
	return tag == strings.ToLower(strings.TrimSpace(barberName)) ||
		tag == strings.ToLower(strings.TrimSpace(barberID))
}

// IsOnDate сравнивает дату записи с target только по календарной дате
// Колонка Dia исторически могла содержать timestamp - время игнорируется
func (a *Appointment) IsOnDate(target time.Time) bool {
	y1, m1, d1 := a.Dia.Date()
	y2, m2, d2 := target.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
