package models

import (
	"github.com/barberlink/BL-BookingService/internal/domain"
)

// ProfileResponse публичный профиль барбершопа
type ProfileResponse struct {
	ID           string
	Slug         string
	Nombre       string
	ClosingDates []string
	Hours        *HoursResponse
	Barbers      []BarberResponse
	Services     []ServiceResponse
}

// HoursResponse расписание барбершопа из профиля
type HoursResponse struct {
	EstaAbierto     bool
	HoraApertura    string
	HoraCierre      string
	HoraInicioPausa string
	HoraFinPausa    string
}

// BarberResponse барбер в составе профиля
type BarberResponse struct {
	ID     string
	Nombre string
}

// ServiceResponse услуга в составе профиля
type ServiceResponse struct {
	ID              string
	Nombre          string
	Precio          float64
	DuracionMinutos int
}

// UpdateClosingDatesRequest запрос на обновление дат закрытия
type UpdateClosingDatesRequest struct {
	Slug         string
	ClosingDates []string
}

// FromDomainProfile конвертирует доменный профиль в ответ сервиса
func FromDomainProfile(p *domain.ShopProfile, barbers []*domain.Barber, services []*domain.Service) *ProfileResponse {
	resp := &ProfileResponse{
		ID:           p.ID.String(),
		Slug:         p.Slug,
		Nombre:       p.Nombre,
		ClosingDates: p.ClosingDates,
		Barbers:      make([]BarberResponse, 0, len(barbers)),
		Services:     make([]ServiceResponse, 0, len(services)),
	}
	if resp.ClosingDates == nil {
		resp.ClosingDates = []string{}
	}

	if p.Hours != nil {
		hours := &HoursResponse{
			EstaAbierto:  p.Hours.EstaAbierto,
			HoraApertura: p.Hours.HoraApertura.String(),
			HoraCierre:   p.Hours.HoraCierre.String(),
		}
		if p.Hours.HoraInicioPausa != nil {
			hours.HoraInicioPausa = p.Hours.HoraInicioPausa.String()
		}
		if p.Hours.HoraFinPausa != nil {
			hours.HoraFinPausa = p.Hours.HoraFinPausa.String()
		}
		resp.Hours = hours
	}

	for _, b := range barbers {
		resp.Barbers = append(resp.Barbers, BarberResponse{
			ID:     b.ID.String(),
			Nombre: b.Nombre,
		})
	}

	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID.String(),
			Nombre:          s.Nombre,
			Precio:          s.Precio,
			DuracionMinutos: s.Duration(),
		})
	}

	return resp
}
