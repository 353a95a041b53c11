package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей барбершопов
type ProfileRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.ShopProfile, error)
	UpdateClosingDates(ctx context.Context, slug string, dates []string) error
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	ListByShop(ctx context.Context, shopID uuid.UUID, barberID *uuid.UUID) ([]*domain.Barber, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
