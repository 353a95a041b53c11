package get_shop_profile

import (
	"github.com/barberlink/BL-BookingService/internal/service/profile/models"
)

// ProfileResponse HTTP ответ с публичным профилем барбершопа
type ProfileResponse struct {
	ID           string            `json:"id"`
	Slug         string            `json:"slug"`
	Nombre       string            `json:"nombre"`
	ClosingDates []string          `json:"fechasCierre"`
	Hours        *HoursResponse    `json:"horario,omitempty"`
	Barbers      []BarberResponse  `json:"barberos"`
	Services     []ServiceResponse `json:"servicios"`
}

// HoursResponse расписание барбершопа
type HoursResponse struct {
	EstaAbierto     bool   `json:"estaAbierto"`
	HoraApertura    string `json:"horaApertura"`
	HoraCierre      string `json:"horaCierre"`
	HoraInicioPausa string `json:"horaInicioPausa,omitempty"`
	HoraFinPausa    string `json:"horaFinPausa,omitempty"`
}

// BarberResponse барбер в составе профиля
type BarberResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ServiceResponse услуга в составе профиля
type ServiceResponse struct {
	ID              string  `json:"id"`
	Nombre          string  `json:"nombre"`
	Precio          float64 `json:"precio"`
	DuracionMinutos int     `json:"duracionMinutos"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ProfileResponse) *ProfileResponse {
	out := &ProfileResponse{
		ID:           resp.ID,
		Slug:         resp.Slug,
		Nombre:       resp.Nombre,
		ClosingDates: resp.ClosingDates,
		Barbers:      make([]BarberResponse, len(resp.Barbers)),
		Services:     make([]ServiceResponse, len(resp.Services)),
	}

	if resp.Hours != nil {
		out.Hours = &HoursResponse{
			EstaAbierto:     resp.Hours.EstaAbierto,
			HoraApertura:    resp.Hours.HoraApertura,
			HoraCierre:      resp.Hours.HoraCierre,
			HoraInicioPausa: resp.Hours.HoraInicioPausa,
			HoraFinPausa:    resp.Hours.HoraFinPausa,
		}
	}

	for i, b := range resp.Barbers {
		out.Barbers[i] = BarberResponse{ID: b.ID, Nombre: b.Nombre}
	}

	for i, s := range resp.Services {
		out.Services[i] = ServiceResponse{
			ID:              s.ID,
			Nombre:          s.Nombre,
			Precio:          s.Precio,
			DuracionMinutos: s.DuracionMinutos,
		}
	}

	return out
}
