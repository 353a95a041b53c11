package models

import (
	"time"

	"github.com/barberlink/BL-BookingService/internal/domain"
)

// GetShopAppointmentsRequest запрос списка записей барбершопа на дату
type GetShopAppointmentsRequest struct {
	Slug             string
	Date             time.Time
	IncludeCancelled bool
}

// AppointmentResponse запись в ответе сервиса
type AppointmentResponse struct {
	ID              int64
	ServiceID       string
	Date            string
	Hora            string
	DurationMinutes *int
	Barbero         string
	Cancelada       bool
	GuestName       string
	GuestPhone      string
	Precio          float64
	Automatica      bool
	CreatedAt       time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
	Total        int
}

// FromDomainAppointment конвертирует доменную запись в ответ сервиса
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              a.ID,
		Date:            a.Dia.Format(domain.DateFormat),
		Hora:            a.Hora.String(),
		DurationMinutes: a.DuracionMinutos,
		Barbero:         a.Barbero,
		Cancelada:       !a.IsActive(),
		GuestName:       a.GuestName,
		GuestPhone:      a.GuestPhone,
		Precio:          a.Precio,
		Automatica:      a.Automatica,
		CreatedAt:       a.CreatedAt,
	}
	if a.ServiceID != nil {
		resp.ServiceID = a.ServiceID.String()
	}
	return resp
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		items[i] = *FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}
}
