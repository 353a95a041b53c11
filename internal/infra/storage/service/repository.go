package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/dbmetrics"
	"github.com/barberlink/BL-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с услугами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает услугу барбершопа
func (r *Repository) GetByID(ctx context.Context, shopID, serviceID uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barberia_id",
		"nombre",
		"precio",
		"duracion",
		"created_at",
	).
		From("servicios").
		Where(squirrel.Eq{"id": serviceID, "barberia_id": shopID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		svc       domain.Service
		duracion  sql.NullInt64
		createdAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.ShopID,
		&svc.Nombre,
		&svc.Precio,
		&duracion,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	if duracion.Valid {
		svc.DuracionMinutos = int(duracion.Int64)
	}
	svc.CreatedAt = createdAt.Time

	return &svc, nil
}

// ListByShop получает все услуги барбершопа
func (r *Repository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barberia_id",
		"nombre",
		"precio",
		"duracion",
		"created_at",
	).
		From("servicios").
		Where(squirrel.Eq{"barberia_id": shopID}).
		OrderBy("nombre ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var (
			svc       domain.Service
			duracion  sql.NullInt64
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&svc.ID,
			&svc.ShopID,
			&svc.Nombre,
			&svc.Precio,
			&duracion,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByShop - scan row: %v", ErrScanRow, err)
		}

		if duracion.Valid {
			svc.DuracionMinutos = int(duracion.Int64)
		}
		svc.CreatedAt = createdAt.Time

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByShop - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
