package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberlink/BL-BookingService/internal/domain"
	profileRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/profile"
	"github.com/barberlink/BL-BookingService/internal/service/profile/models"
	"github.com/barberlink/BL-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockProfileRepo struct {
	profile      *domain.ShopProfile
	err          error
	updatedSlug  string
	updatedDates []string
}

func (m *mockProfileRepo) GetBySlug(_ context.Context, _ string) (*domain.ShopProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileRepo) UpdateClosingDates(_ context.Context, slug string, dates []string) error {
	if m.err != nil {
		return m.err
	}
	m.updatedSlug = slug
	m.updatedDates = dates
	return nil
}

type mockBarberRepo struct {
	barbers []*domain.Barber
}

func (m *mockBarberRepo) ListByShop(_ context.Context, _ uuid.UUID, _ *uuid.UUID) ([]*domain.Barber, error) {
	return m.barbers, nil
}

type mockServiceRepo struct {
	services []*domain.Service
}

func (m *mockServiceRepo) ListByShop(_ context.Context, _ uuid.UUID) ([]*domain.Service, error) {
	return m.services, nil
}

func TestGetBySlug(t *testing.T) {
	shopID := uuid.New()
	pause := types.TimeString("14:00")
	pauseEnd := types.TimeString("16:00")

	repo := &mockProfileRepo{profile: &domain.ShopProfile{
		ID:           shopID,
		Slug:         "la-barberia",
		Nombre:       "La Barbería",
		ClosingDates: []string{"2026-12-25"},
		Hours: &domain.ProfileHours{
			EstaAbierto:     true,
			HoraApertura:    "09:00",
			HoraCierre:      "19:00",
			HoraInicioPausa: &pause,
			HoraFinPausa:    &pauseEnd,
		},
	}}
	barbers := &mockBarberRepo{barbers: []*domain.Barber{
		{ID: uuid.New(), ShopID: shopID, Nombre: "Carlos"},
	}}
	services := &mockServiceRepo{services: []*domain.Service{
		{ID: uuid.New(), ShopID: shopID, Nombre: "Corte clásico", Precio: 15, DuracionMinutos: 60},
	}}

	svc := NewService(repo, barbers, services, nopLogger{})

	resp, err := svc.GetBySlug(context.Background(), "la-barberia")
	require.NoError(t, err)

	assert.Equal(t, "la-barberia", resp.Slug)
	assert.Equal(t, []string{"2026-12-25"}, resp.ClosingDates)
	require.NotNil(t, resp.Hours)
	assert.Equal(t, "09:00", resp.Hours.HoraApertura)
	assert.Equal(t, "14:00", resp.Hours.HoraInicioPausa)
	require.Len(t, resp.Barbers, 1)
	assert.Equal(t, "Carlos", resp.Barbers[0].Nombre)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "Corte clásico", resp.Services[0].Nombre)
	assert.Equal(t, 60, resp.Services[0].DuracionMinutos)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := NewService(&mockProfileRepo{err: profileRepo.ErrProfileNotFound}, &mockBarberRepo{}, &mockServiceRepo{}, nopLogger{})

	_, err := svc.GetBySlug(context.Background(), "no-such-shop")
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestUpdateClosingDates(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewService(repo, &mockBarberRepo{}, &mockServiceRepo{}, nopLogger{})

	err := svc.UpdateClosingDates(context.Background(), &models.UpdateClosingDatesRequest{
		Slug:         "la-barberia",
		ClosingDates: []string{"2026-12-31", "2026-12-25", "2026-12-25"},
	})
	require.NoError(t, err)

	// Дубликаты схлопнуты, список отсортирован
	assert.Equal(t, "la-barberia", repo.updatedSlug)
	assert.Equal(t, []string{"2026-12-25", "2026-12-31"}, repo.updatedDates)
}

func TestUpdateClosingDatesInvalidFormat(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewService(repo, &mockBarberRepo{}, &mockServiceRepo{}, nopLogger{})

	err := svc.UpdateClosingDates(context.Background(), &models.UpdateClosingDatesRequest{
		Slug:         "la-barberia",
		ClosingDates: []string{"25/12/2026"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.updatedSlug, "репозиторий не должен вызываться")
}

func TestUpdateClosingDatesEmptyListAllowed(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewService(repo, &mockBarberRepo{}, &mockServiceRepo{}, nopLogger{})

	err := svc.UpdateClosingDates(context.Background(), &models.UpdateClosingDatesRequest{
		Slug:         "la-barberia",
		ClosingDates: nil,
	})
	require.NoError(t, err)
	assert.NotNil(t, repo.updatedDates)
	assert.Empty(t, repo.updatedDates)
}
