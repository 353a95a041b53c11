package barber

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/dbmetrics"
	"github.com/barberlink/BL-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с барберами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByShop получает барберов барбершопа
// Если barberID задан, возвращает только его; отсутствие такого барбера - ErrBarberNotFound
func (r *Repository) ListByShop(ctx context.Context, shopID uuid.UUID, barberID *uuid.UUID) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"barberia_id",
		"nombre",
		"horario_semanal",
		"created_at",
	).
		From("barberos").
		Where(squirrel.Eq{"barberia_id": shopID}).
		OrderBy("created_at ASC")

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"id": *barberID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers, err := r.scanBarbers(rows)
	if err != nil {
		return nil, err
	}

	if barberID != nil && len(barbers) == 0 {
		return nil, ErrBarberNotFound
	}

	return barbers, nil
}

// scanBarbers сканирует результаты запроса в слайс барберов
func (r *Repository) scanBarbers(rows *sql.Rows) ([]*domain.Barber, error) {
	barbers := make([]*domain.Barber, 0)

	for rows.Next() {
		var (
			barber      domain.Barber
			scheduleRaw []byte
			createdAt   sql.NullTime
		)

		err := rows.Scan(
			&barber.ID,
			&barber.ShopID,
			&barber.Nombre,
			&scheduleRaw,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBarbers - scan row: %v", ErrScanRow, err)
		}

		barber.CreatedAt = createdAt.Time

		// horario_semanal JSONB: любая из трех исторических форм или NULL
		if len(scheduleRaw) > 0 {
			if err := json.Unmarshal(scheduleRaw, &barber.Schedule); err != nil {
				return nil, fmt.Errorf("%w: scanBarbers - decode horario_semanal: %v", ErrScanRow, err)
			}
		}

		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBarbers - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}
