package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/dbmetrics"
	"github.com/barberlink/BL-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профилями барбершопов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlug получает профиль барбершопа по slug публичной страницы
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.ShopProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"nombre",
		"fechas_cierre",
		"horario",
		"created_at",
		"updated_at",
	).
		From("perfiles").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var (
		profile      domain.ShopProfile
		closingDates pq.StringArray
		hoursRaw     []byte
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Slug,
		&profile.Nombre,
		&closingDates,
		&hoursRaw,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - scan profile: %v", ErrScanRow, err)
	}

	profile.ClosingDates = []string(closingDates)
	profile.CreatedAt = createdAt.Time
	profile.UpdatedAt = updatedAt.Time

	// Расписание профиля хранится в JSONB и может отсутствовать
	if len(hoursRaw) > 0 {
		var hours domain.ProfileHours
		if err := json.Unmarshal(hoursRaw, &hours); err != nil {
			return nil, fmt.Errorf("%w: GetBySlug - decode horario: %v", ErrScanRow, err)
		}
		profile.Hours = &hours
	}

	return &profile, nil
}

// UpdateClosingDates перезаписывает список дат закрытия барбершопа
func (r *Repository) UpdateClosingDates(ctx context.Context, slug string, dates []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("perfiles").
		Set("fechas_cierre", pq.Array(dates)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateClosingDates - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateClosingDates - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateClosingDates - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
