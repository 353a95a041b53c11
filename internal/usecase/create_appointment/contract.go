package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей барбершопов
type ProfileRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.ShopProfile, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	ListByShop(ctx context.Context, shopID uuid.UUID, barberID *uuid.UUID) ([]*domain.Barber, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, shopID, serviceID uuid.UUID) (*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByShopAndDate внутри транзакции добавляет FOR UPDATE -
	// повторная проверка занятости слота блокирует конкурирующие записи
	ListByShopAndDate(ctx context.Context, shopID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
