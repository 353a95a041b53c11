package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByShopAndDate(ctx context.Context, shopID uuid.UUID, date time.Time) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) error
}

// ProfileRepository интерфейс репозитория профилей барбершопов
type ProfileRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.ShopProfile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
