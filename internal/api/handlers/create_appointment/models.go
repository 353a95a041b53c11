package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
	createAppointment "github.com/barberlink/BL-BookingService/internal/usecase/create_appointment"
	"github.com/barberlink/BL-BookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request body
type CreateAppointmentRequest struct {
	ServiceID  string `json:"serviceId"`
	Date       string `json:"date"`
	Hora       string `json:"hora"`
	GuestName  string `json:"nombre"`
	GuestPhone string `json:"telefono"`
	BarberID   string `json:"barberId,omitempty"`
}

// AppointmentResponse HTTP response с созданной записью
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`
	Hora            string  `json:"hora"`
	DurationMinutes int     `json:"durationMinutes"`
	Barbero         string  `json:"barbero,omitempty"`
	GuestName       string  `json:"nombre"`
	GuestPhone      string  `json:"telefono"`
	Precio          float64 `json:"precio"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(slug string) (*createAppointment.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		Slug:       slug,
		ServiceID:  serviceID,
		Date:       date,
		Hora:       types.TimeString(r.Hora),
		GuestName:  r.GuestName,
		GuestPhone: r.GuestPhone,
	}

	if r.BarberID != "" {
		barberID, err := uuid.Parse(r.BarberID)
		if err != nil {
			return nil, err
		}
		req.BarberID = &barberID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Slug:            resp.Slug,
		ServiceID:       resp.ServiceID.String(),
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		Hora:            resp.Hora.String(),
		DurationMinutes: resp.DurationMinutes,
		Barbero:         resp.Barbero,
		GuestName:       resp.GuestName,
		GuestPhone:      resp.GuestPhone,
		Precio:          resp.Precio,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
