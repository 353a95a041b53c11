package get_shop_profile

import (
	"context"

	"github.com/barberlink/BL-BookingService/internal/service/profile/models"
)

type ProfileService interface {
	GetBySlug(ctx context.Context, slug string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
