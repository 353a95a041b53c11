package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShopProfile профиль барбершопа
type ShopProfile struct {
	ID     uuid.UUID
	Slug   string
	Nombre string

	// ClosingDates даты полного закрытия (YYYY-MM-DD), приоритетнее недельного расписания
	ClosingDates []string

	// Hours расписание из профиля (одна смена + опциональный перерыв)
	// Используется как fallback, когда у барбера нет собственного расписания
	Hours *ProfileHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosedOn возвращает true, если дата входит в список дат закрытия
func (p *ShopProfile) IsClosedOn(date time.Time) bool {
	dateStr := date.Format(DateFormat)
	for _, d := range p.ClosingDates {
		if d == dateStr {
			return true
		}
	}
	return false
}

// Barber барбер, привязанный к барбершопу
type Barber struct {
	ID     uuid.UUID
	ShopID uuid.UUID
	Nombre string

	// Schedule недельное расписание в любой из поддерживаемых форм
	// Kind == ScheduleKindNone означает, что расписание не задано
	Schedule WeeklySchedule

	CreatedAt time.Time
}

// Service услуга барбершопа
type Service struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	Nombre          string
	Precio          float64
	DuracionMinutos int
	CreatedAt       time.Time
}

// Duration возвращает длительность услуги с fallback на дефолтную
func (s *Service) Duration() int {
	if s.DuracionMinutos > 0 {
		return s.DuracionMinutos
	}
	return DefaultServiceDurationMinutes
}
