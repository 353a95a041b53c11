package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/barberlink/BL-BookingService/internal/domain"
	profileRepo "github.com/barberlink/BL-BookingService/internal/infra/storage/profile"
	"github.com/barberlink/BL-BookingService/internal/service/profile/models"
)

// Service сервис публичного профиля барбершопа
type Service struct {
	profileRepo ProfileRepository
	barberRepo  BarberRepository
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(
	profileRepo ProfileRepository,
	barberRepo BarberRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		profileRepo: profileRepo,
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// GetBySlug получает публичный профиль барбершопа со списками барберов и услуг
// (все данные, нужные публичной странице записи)
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ProfileResponse, error) {
	s.logger.Info("GetBySlug: fetching profile slug=%s", slug)

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	profile, err := s.profileRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetBySlug: shop slug=%s not found", slug)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetBySlug: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	barbers, err := s.barberRepo.ListByShop(ctx, profile.ID, nil)
	if err != nil {
		s.logger.Error("GetBySlug: failed to list barbers for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	services, err := s.serviceRepo.ListByShop(ctx, profile.ID)
	if err != nil {
		s.logger.Error("GetBySlug: failed to list services for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile, barbers, services), nil
}

// UpdateClosingDates заменяет список дат закрытия барбершопа
// Даты валидируются по формату YYYY-MM-DD, дубликаты схлопываются, список сортируется
func (s *Service) UpdateClosingDates(ctx context.Context, req *models.UpdateClosingDatesRequest) error {
	s.logger.Info("UpdateClosingDates: slug=%s, %d date(s)", req.Slug, len(req.ClosingDates))

	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	dates, err := normalizeClosingDates(req.ClosingDates)
	if err != nil {
		s.logger.Warn("UpdateClosingDates: invalid dates for slug=%s: %v", req.Slug, err)
		return err
	}

	if err := s.profileRepo.UpdateClosingDates(ctx, req.Slug, dates); err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("UpdateClosingDates: shop slug=%s not found", req.Slug)
			return ErrShopNotFound
		}
		s.logger.Error("UpdateClosingDates: repository error for slug=%s: %v", req.Slug, err)
		return fmt.Errorf("%w: UpdateClosingDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateClosingDates: slug=%s updated, %d date(s) stored", req.Slug, len(dates))
	return nil
}

// normalizeClosingDates валидирует формат дат, убирает дубликаты и сортирует
func normalizeClosingDates(raw []string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	dates := make([]string, 0, len(raw))

	for _, d := range raw {
		if _, err := time.Parse(domain.DateFormat, d); err != nil {
			return nil, fmt.Errorf("%w: invalid closing date %q, expected YYYY-MM-DD", ErrInvalidInput, d)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	sort.Strings(dates)
	return dates, nil
}
