package update_closing_dates

import (
	"context"

	"github.com/barberlink/BL-BookingService/internal/service/profile/models"
)

type ProfileService interface {
	UpdateClosingDates(ctx context.Context, req *models.UpdateClosingDatesRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
