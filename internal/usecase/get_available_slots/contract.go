package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей барбершопов
type ProfileRepository interface {
	// GetBySlug получает профиль барбершопа по slug публичной страницы
	GetBySlug(ctx context.Context, slug string) (*domain.ShopProfile, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	// ListByShop получает барберов барбершопа
	// Если barberID задан - только одного барбера (режим "конкретный барбер")
	ListByShop(ctx context.Context, shopID uuid.UUID, barberID *uuid.UUID) ([]*domain.Barber, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetByID получает услугу барбершопа
	GetByID(ctx context.Context, shopID, serviceID uuid.UUID) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByShopAndDate получает все записи барбершопа на дату (включая отмененные -
	// фильтрация по cancelada делается в usecase, т.к. NULL означает "активна")
	ListByShopAndDate(ctx context.Context, shopID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
