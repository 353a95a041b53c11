package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlink/BL-BookingService/internal/domain"
	appointmentRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/appointment"
	profileRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/profile"
	"github.com/barberlink/BL-BookingService/internal/service/appointments/models"
	"github.com/barberlink/BL-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockAppointmentRepo struct {
	appointments []*domain.Appointment
	byID         *domain.Appointment
	getErr       error
	cancelErr    error
	cancelledID  int64
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return m.byID, m.getErr
}

func (m *mockAppointmentRepo) ListByShopAndDate(_ context.Context, _ uuid.UUID, _ time.Time) ([]*domain.Appointment, error) {
	return m.appointments, nil
}

func (m *mockAppointmentRepo) Cancel(_ context.Context, id int64) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelledID = id
	return nil
}

type mockProfileRepo struct {
	profile *domain.ShopProfile
	err     error
}

func (m *mockProfileRepo) GetBySlug(_ context.Context, _ string) (*domain.ShopProfile, error) {
	return m.profile, m.err
}

var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func testProfile() *domain.ShopProfile {
	return &domain.ShopProfile{ID: uuid.New(), Slug: "la-barberia"}
}

func TestGetShopAppointmentsHidesCancelled(t *testing.T) {
	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, Dia: testDate, Hora: "10:00", GuestName: "Juan"},
		{ID: 2, Dia: testDate, Hora: "11:00", GuestName: "Pedro", Cancelada: ptr.Ptr(true)},
		// NULL cancelada - активная запись
		{ID: 3, Dia: testDate, Hora: "12:00", GuestName: "Luis", Cancelada: nil},
	}}

	svc := NewService(repo, &mockProfileRepo{profile: testProfile()}, nopLogger{})

	resp, err := svc.GetShopAppointments(context.Background(), &models.GetShopAppointmentsRequest{
		Slug: "la-barberia",
		Date: testDate,
	})
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
	assert.Equal(t, int64(3), resp.Appointments[1].ID)
}

func TestGetShopAppointmentsIncludeCancelled(t *testing.T) {
	repo := &mockAppointmentRepo{appointments: []*domain.Appointment{
		{ID: 1, Dia: testDate, Hora: "10:00"},
		{ID: 2, Dia: testDate, Hora: "11:00", Cancelada: ptr.Ptr(true)},
	}}

	svc := NewService(repo, &mockProfileRepo{profile: testProfile()}, nopLogger{})

	resp, err := svc.GetShopAppointments(context.Background(), &models.GetShopAppointmentsRequest{
		Slug:             "la-barberia",
		Date:             testDate,
		IncludeCancelled: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.True(t, resp.Appointments[1].Cancelada)
}

func TestGetShopAppointmentsShopNotFound(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, &mockProfileRepo{err: profileRepo.ErrProfileNotFound}, nopLogger{})

	_, err := svc.GetShopAppointments(context.Background(), &models.GetShopAppointmentsRequest{
		Slug: "no-such-shop",
		Date: testDate,
	})
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestCancel(t *testing.T) {
	repo := &mockAppointmentRepo{byID: &domain.Appointment{ID: 7}}
	svc := NewService(repo, &mockProfileRepo{}, nopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 7))
	assert.Equal(t, int64(7), repo.cancelledID)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	repo := &mockAppointmentRepo{byID: &domain.Appointment{ID: 7, Cancelada: ptr.Ptr(true)}}
	svc := NewService(repo, &mockProfileRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Zero(t, repo.cancelledID)
}

func TestCancelNotFound(t *testing.T) {
	repo := &mockAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	svc := NewService(repo, &mockProfileRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
