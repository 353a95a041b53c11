package get_shop_appointments

import (
	"time"

	"github.com/barberlink/BL-BookingService/internal/service/appointments/models"
)

// AppointmentResponse запись в HTTP ответе
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ServiceID       string  `json:"serviceId,omitempty"`
	Date            string  `json:"date"`
	Hora            string  `json:"hora"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Barbero         string  `json:"barbero,omitempty"`
	Cancelada       bool    `json:"cancelada"`
	GuestName       string  `json:"nombre"`
	GuestPhone      string  `json:"telefono"`
	Precio          float64 `json:"precio"`
	Automatica      bool    `json:"automatica"`
	CreatedAt       string  `json:"createdAt"`
}

// AppointmentListResponse HTTP ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, len(resp.Appointments))
	for i, a := range resp.Appointments {
		appointments[i] = AppointmentResponse{
			ID:              a.ID,
			ServiceID:       a.ServiceID,
			Date:            a.Date,
			Hora:            a.Hora,
			DurationMinutes: a.DurationMinutes,
			Barbero:         a.Barbero,
			Cancelada:       a.Cancelada,
			GuestName:       a.GuestName,
			GuestPhone:      a.GuestPhone,
			Precio:          a.Precio,
			Automatica:      a.Automatica,
			CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		}
	}

	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        resp.Total,
	}
}
