package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/barberlink/BL-BookingService/internal/domain"
	barberRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/barber"
	profileRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/profile"
	serviceRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/service"
	"github.com/barberlink/BL-BookingService/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
//
// Чистое вычисление по загруженным данным: расписания барберов нормализуются
// в интервалы, интервалы тайлятся слотами размером с услугу, слоты фильтруются
// по существующим записям и объединяются по всем барберам
type UseCase struct {
	profileRepo     ProfileRepository
	barberRepo      BarberRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profileRepo ProfileRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		profileRepo:     profileRepo,
		barberRepo:      barberRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: slug=%s, service=%s, date=%s, barber=%v",
		req.Slug, req.ServiceID, req.Date.Format(domain.DateFormat), req.BarberID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем профиль барбершопа
	profile, err := uc.profileRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop slug=%s not found", req.Slug)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get profile slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	// 3. Получаем услугу (длительность услуги = длительность слота)
	service, err := uc.serviceRepo.GetByID(ctx, profile.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := service.Duration()

	// 4. Дата закрытия перекрывает любое недельное расписание - сразу пустой ответ
	if profile.IsClosedOn(req.Date) {
		uc.logger.Info("GetAvailableSlots: shop slug=%s is closed on %s",
			req.Slug, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, duration), nil
	}

	// 5. Получаем барберов (всех или одного выбранного)
	barbers, err := uc.barberRepo.ListByShop(ctx, profile.ID, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%v not found in shop slug=%s", req.BarberID, req.Slug)
			return uc.emptyResponse(req, duration), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: failed to list barbers: %v", ErrInternal, err)
	}
	if len(barbers) == 0 {
		// Нет барберов - нормальное состояние, а не ошибка
		uc.logger.Info("GetAvailableSlots: no barbers for shop slug=%s", req.Slug)
		return uc.emptyResponse(req, duration), nil
	}

	// 6. Получаем записи на дату
	// Отмененные и записи с чужой датой отсекаем здесь: cancelada может быть NULL,
	// а Dia исторически мог хранить timestamp - сравниваем только дату
	rawAppointments, err := uc.appointmentRepo.ListByShopAndDate(ctx, profile.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	appointments := make([]*domain.Appointment, 0, len(rawAppointments))
	for _, app := range rawAppointments {
		if app.IsActive() && app.IsOnDate(req.Date) {
			appointments = append(appointments, app)
		}
	}
	uc.logger.Info("GetAvailableSlots: %d active appointment(s) on %s",
		len(appointments), req.Date.Format(domain.DateFormat))

	// 7. Для каждого барбера: расписание -> интервалы -> слоты -> фильтр коллизий
	weekday := int(req.Date.Weekday())
	availability := make(slotAvailability)

	for _, barber := range barbers {
		schedule := barber.Schedule
		if schedule.Kind == domain.ScheduleKindNone && profile.Hours != nil {
			// У барбера нет собственного расписания - работаем по часам барбершопа
			schedule = domain.WeeklySchedule{
				Kind:    domain.ScheduleKindProfileSingle,
				Profile: profile.Hours,
			}
		}

		intervals := resolveDayIntervals(schedule, weekday, uc.logger)
		if len(intervals) == 0 {
			uc.logger.Info("GetAvailableSlots: barber %s has no open hours on weekday=%d", barber.Nombre, weekday)
			continue
		}

		for _, interval := range intervals {
			for _, start := range generateSlotStarts(interval, duration) {
				if !hasOverlap(start, duration, appointments, barber.ID.String(), barber.Nombre, duration) {
					availability.add(start, barber.ID.String())
				}
			}
		}
	}

	// 8. Объединение по барберам + отсечение прошедших слотов на сегодня
	starts := availability.availableStarts()
	if isSameDay(req.Date, now) {
		starts = filterPastSlots(starts, now)
	}
	sort.Ints(starts)

	uc.logger.Info("GetAvailableSlots: %d slot(s) for slug=%s, date=%s",
		len(starts), req.Slug, req.Date.Format(domain.DateFormat))

	return &Response{
		Slug:            req.Slug,
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Slots:           toTimeStrings(starts),
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, duration int) *Response {
	return &Response{
		Slug:            req.Slug,
		Date:            req.Date,
		ServiceID:       req.ServiceID,
		DurationMinutes: duration,
		Slots:           []types.TimeString{},
	}
}
