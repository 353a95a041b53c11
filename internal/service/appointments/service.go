package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/barberlink/BL-BookingService/internal/domain"
	appointmentRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/appointment"
	profileRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/profile"
	"github.com/barberlink/BL-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями (дашборд владельца)
type Service struct {
	appointmentRepo AppointmentRepository
	profileRepo     ProfileRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	profileRepo ProfileRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		logger:          logger,
	}
}

// GetShopAppointments получает записи барбершопа на дату
// По умолчанию отмененные записи скрываются (NULL cancelada считается активной)
func (s *Service) GetShopAppointments(ctx context.Context, req *models.GetShopAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetShopAppointments: slug=%s, date=%s, includeCancelled=%v",
		req.Slug, req.Date.Format(domain.DateFormat), req.IncludeCancelled)

	if req.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	profile, err := s.profileRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetShopAppointments: shop slug=%s not found", req.Slug)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetShopAppointments: failed to get profile slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: GetShopAppointments - repository error: %v", ErrInternal, err)
	}

	appointments, err := s.appointmentRepo.ListByShopAndDate(ctx, profile.ID, req.Date)
	if err != nil {
		s.logger.Error("GetShopAppointments: repository error for slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: GetShopAppointments - repository error: %v", ErrInternal, err)
	}

	if !req.IncludeCancelled {
		active := make([]*domain.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if a.IsActive() {
				active = append(active, a)
			}
		}
		appointments = active
	}

	s.logger.Info("GetShopAppointments: %d appointment(s) for slug=%s", len(appointments), req.Slug)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Отмененная запись перестает блокировать доступность слотов
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appointment.IsActive() {
		s.logger.Warn("Cancel: appointment id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if err := s.appointmentRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}
