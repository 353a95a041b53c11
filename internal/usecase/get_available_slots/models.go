package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Slug      string     // Slug публичной страницы барбершопа
	ServiceID uuid.UUID  // ID услуги (определяет длительность слота)
	Date      time.Time  // Дата для получения слотов (без времени)
	BarberID  *uuid.UUID // Опциональный фильтр по барберу; nil = "любой барбер"
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slug            string             // Slug барбершопа
	Date            time.Time          // Дата, на которую запрашивались слоты
	ServiceID       uuid.UUID          // ID услуги
	DurationMinutes int                // Длительность слота (= длительность услуги)
	Slots           []types.TimeString // Отсортированный список времен начала "HH:MM"
}
