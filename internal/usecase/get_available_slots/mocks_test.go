package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fixedTimeProvider возвращает заранее заданное время
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type mockProfileRepo struct {
	profile *domain.ShopProfile
	err     error
}

func (m *mockProfileRepo) GetBySlug(_ context.Context, _ string) (*domain.ShopProfile, error) {
	return m.profile, m.err
}

type mockBarberRepo struct {
	barbers []*domain.Barber
	err     error
}

func (m *mockBarberRepo) ListByShop(_ context.Context, _ uuid.UUID, barberID *uuid.UUID) ([]*domain.Barber, error) {
	if m.err != nil {
		return nil, m.err
	}
	if barberID == nil {
		return m.barbers, nil
	}
	for _, b := range m.barbers {
		if b.ID == *barberID {
			return []*domain.Barber{b}, nil
		}
	}
	return nil, nil
}

type mockServiceRepo struct {
	service *domain.Service
	err     error
}

func (m *mockServiceRepo) GetByID(_ context.Context, _, _ uuid.UUID) (*domain.Service, error) {
	return m.service, m.err
}

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (m *mockAppointmentRepo) ListByShopAndDate(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	return m.appointments, m.err
}
