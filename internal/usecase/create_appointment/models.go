package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/pkg/types"
)

// Request модель запроса на создание гостевой записи
type Request struct {
	Slug       string           // Slug публичной страницы барбершопа
	ServiceID  uuid.UUID        // ID услуги
	Date       time.Time        // Дата записи
	Hora       types.TimeString // Время начала "HH:MM"
	GuestName  string           // Имя гостя
	GuestPhone string           // Телефон гостя
	BarberID   *uuid.UUID       // Опционально: выбранный барбер; nil = назначить свободного
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	Slug            string
	ServiceID       uuid.UUID
	ServiceName     string
	Date            time.Time
	Hora            types.TimeString
	DurationMinutes int
	Barbero         string // Имя назначенного барбера (legacy-тег); пусто, если не назначен
	GuestName       string
	GuestPhone      string
	Precio          float64
	CreatedAt       time.Time
}
