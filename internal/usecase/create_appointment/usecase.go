package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
	barberRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/barber"
	profileRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/profile"
	serviceRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/service"
)

// UseCase use case для создания гостевой записи
//
// Расчет слотов и создание записи не связаны транзакционно, поэтому два
// конкурирующих запроса могут увидеть один и тот же слот свободным.
// Занятость слота перепроверяется внутри SERIALIZABLE транзакции
// (записи дня блокируются FOR UPDATE) - конкурирующая запись получает
// ErrSlotNoLongerAvailable вместо тихого двойного бронирования
type UseCase struct {
	profileRepo     ProfileRepository
	barberRepo      BarberRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profileRepo ProfileRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		profileRepo:     profileRepo,
		barberRepo:      barberRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: slug=%s, service=%s, date=%s, time=%s, barber=%v",
		req.Slug, req.ServiceID, req.Date.Format(domain.DateFormat), req.Hora, req.BarberID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем профиль барбершопа
	profile, err := uc.profileRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("CreateAppointment: shop slug=%s not found", req.Slug)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get profile slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	// 3. Дата закрытия перекрывает любое расписание
	if profile.IsClosedOn(req.Date) {
		uc.logger.Warn("CreateAppointment: shop slug=%s is closed on %s",
			req.Slug, req.Date.Format(domain.DateFormat))
		return nil, ErrShopClosed
	}

	// 4. Получаем услугу (цена и длительность денормализуются в запись)
	service, err := uc.serviceRepo.GetByID(ctx, profile.ID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := service.Duration()

	startMin, err := req.Hora.ToMinutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q", ErrInvalidInput, req.Hora)
	}

	// 5. Если барбер выбран явно - получаем его (нужно имя для legacy-тега)
	var selected *domain.Barber
	if req.BarberID != nil {
		barbers, err := uc.barberRepo.ListByShop(ctx, profile.ID, req.BarberID)
		if err != nil && !errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Error("CreateAppointment: failed to get barber id=%s: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
		}
		if len(barbers) == 0 {
			uc.logger.Warn("CreateAppointment: barber id=%s not found in shop slug=%s", req.BarberID, req.Slug)
			return nil, ErrBarberNotFound
		}
		selected = barbers[0]
	}

	var result *domain.Appointment

	// 6. Перепроверка занятости и вставка в одной SERIALIZABLE транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Даты закрытия перечитываются внутри транзакции: владелец мог
		// закрыть день между расчетом слотов и подтверждением записи
		current, err := uc.profileRepo.GetBySlug(txCtx, req.Slug)
		if err != nil {
			if errors.Is(err, profileRepo.ErrProfileNotFound) {
				return ErrShopNotFound
			}
			uc.logger.Error("CreateAppointment: failed to reread profile slug=%s: %v", req.Slug, err)
			return fmt.Errorf("%w: failed to reread profile: %v", ErrInternal, err)
		}
		if current.IsClosedOn(req.Date) {
			uc.logger.Warn("CreateAppointment: shop slug=%s closed on %s during booking",
				req.Slug, req.Date.Format(domain.DateFormat))
			return ErrShopClosed
		}

		// 6.2. Записи дня с блокировкой FOR UPDATE
		dayAppointments, err := uc.appointmentRepo.ListByShopAndDate(txCtx, profile.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		// 6.3. Определяем барбера: выбранного валидируем, иначе ищем свободного
		assigned := selected
		if assigned != nil {
			if conflictsWithBarber(startMin, duration, dayAppointments, assigned.ID.String(), assigned.Nombre, duration) {
				uc.logger.Warn("CreateAppointment: slot %s no longer available for barber %s", req.Hora, assigned.Nombre)
				return ErrSlotNoLongerAvailable
			}
		} else {
			assigned, err = uc.pickFreeBarber(txCtx, profile.ID, startMin, duration, dayAppointments)
			if err != nil {
				return err
			}
		}

		// 6.4. Создаем запись с денормализацией цены/длительности
		// Legacy-тег барбера: имя (исторический формат колонки barbero)
		appointment := &domain.Appointment{
			ShopID:     profile.ID,
			ServiceID:  &service.ID,
			Dia:        req.Date,
			Hora:       req.Hora,
			GuestName:  req.GuestName,
			GuestPhone: req.GuestPhone,
			Precio:     service.Precio,
			Automatica: true,
		}
		appointment.DuracionMinutos = &duration
		if assigned != nil {
			appointment.Barbero = assigned.Nombre
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d (barbero=%q)",
		result.ID, result.Barbero)

	return &Response{
		ID:              result.ID,
		Slug:            req.Slug,
		ServiceID:       service.ID,
		ServiceName:     service.Nombre,
		Date:            result.Dia,
		Hora:            result.Hora,
		DurationMinutes: duration,
		Barbero:         result.Barbero,
		GuestName:       result.GuestName,
		GuestPhone:      result.GuestPhone,
		Precio:          result.Precio,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// pickFreeBarber ищет первого барбера без пересечений в запрошенное время
// (режим "любой барбер"). Если в барбершопе нет барберов - запись остается
// неназначенной, как в исторических данных
func (uc *UseCase) pickFreeBarber(
	ctx context.Context,
	shopID uuid.UUID,
	startMin int,
	duration int,
	dayAppointments []*domain.Appointment,
) (*domain.Barber, error) {
	barbers, err := uc.barberRepo.ListByShop(ctx, shopID, nil)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: failed to list barbers: %v", ErrInternal, err)
	}

	if len(barbers) == 0 {
		return nil, nil
	}

	for _, barber := range barbers {
		if !conflictsWithBarber(startMin, duration, dayAppointments, barber.ID.String(), barber.Nombre, duration) {
			return barber, nil
		}
	}

	uc.logger.Warn("CreateAppointment: no free barber at requested time")
	return nil, ErrSlotNoLongerAvailable
}
