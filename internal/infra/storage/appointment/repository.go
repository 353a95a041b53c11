package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
	"github.com/barberlink/BL-BookingService/pkg/dbmetrics"
	"github.com/barberlink/BL-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями (таблица citas)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её - создание записи
// с перепроверкой занятости слота должно выполняться в одной транзакции
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var barbero interface{}
	if appointment.Barbero != "" {
		barbero = appointment.Barbero
	}

	query, args, err := psqlbuilder.Insert("citas").
		Columns(
			"barberia_id",
			"servicio_id",
			"dia",
			"hora",
			"duracion",
			"barbero",
			"nombre",
			"telefono",
			"precio",
			"automatica",
		).
		Values(
			appointment.ShopID,
			appointment.ServiceID,
			appointment.Dia,
			appointment.Hora,
			appointment.DuracionMinutos,
			barbero,
			appointment.GuestName,
			appointment.GuestPhone,
			appointment.Precio,
			appointment.Automatica,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appointment, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// ListByShopAndDate получает все записи барбершопа на дату (включая отмененные -
// семантика NULL cancelada решается на уровне домена)
//
// Внутри транзакции добавляет FOR UPDATE: usecase создания записи блокирует
// записи дня, чтобы конкурирующая запись не прошла между проверкой и вставкой
func (r *Repository) ListByShopAndDate(ctx context.Context, shopID uuid.UUID, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectColumns().
		Where(squirrel.Eq{"barberia_id": shopID}).
		Where(squirrel.Eq{"dia": date.Format(domain.DateFormat)}).
		OrderBy("hora ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShopAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByShopAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Cancel помечает запись отмененной
// Физическое удаление не используется - история записей сохраняется
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("citas").
		Set("cancelada", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"barberia_id",
		"servicio_id",
		"dia",
		"hora",
		"duracion",
		"barbero",
		"cancelada",
		"nombre",
		"telefono",
		"precio",
		"automatica",
		"created_at",
	).From("citas")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment domain.Appointment
		duracion    sql.NullInt64
		barbero     sql.NullString
		cancelada   sql.NullBool
		createdAt   sql.NullTime
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.ShopID,
		&appointment.ServiceID,
		&appointment.Dia,
		&appointment.Hora,
		&duracion,
		&barbero,
		&cancelada,
		&appointment.GuestName,
		&appointment.GuestPhone,
		&appointment.Precio,
		&appointment.Automatica,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if duracion.Valid {
		d := int(duracion.Int64)
		appointment.DuracionMinutos = &d
	}
	appointment.Barbero = barbero.String
	// NULL cancelada остается nil - домен трактует её как активную запись
	if cancelada.Valid {
		appointment.Cancelada = &cancelada.Bool
	}
	appointment.CreatedAt = createdAt.Time

	return &appointment, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
