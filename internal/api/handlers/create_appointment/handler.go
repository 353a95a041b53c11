package create_appointment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barberlink/BL-BookingService/internal/api/handlers"
	createAppointment "github.com/barberlink/BL-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidBody        = "cuerpo de la petición inválido"
	msgInvalidParams      = "parámetros inválidos: se espera serviceId (UUID), date (YYYY-MM-DD), hora (HH:MM), nombre y teléfono"
	msgShopNotFound       = "barbería no encontrada"
	msgServiceNotFound    = "servicio no encontrado"
	msgBarberNotFound     = "barbero no encontrado"
	msgShopClosed         = "la barbería está cerrada en la fecha seleccionada"
	msgSlotNotAvailable   = "el horario seleccionado ya no está disponible, elige otro"
	msgInvalidAppointment = "datos de la cita inválidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/barbershops/{slug}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /barbershops/{slug}/appointments - Invalid body: slug=%s, error=%v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(slug)
	if err != nil {
		h.logger.Warn("POST /barbershops/{slug}/appointments - Invalid params: slug=%s, error=%v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrShopNotFound):
			h.logger.Warn("POST /barbershops/{slug}/appointments - Shop not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /barbershops/{slug}/appointments - Service not found: slug=%s, service_id=%s",
				slug, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /barbershops/{slug}/appointments - Barber not found: slug=%s, barber_id=%s",
				slug, req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrShopClosed):
			h.logger.Warn("POST /barbershops/{slug}/appointments - Shop closed: slug=%s, date=%s", slug, req.Date)
			handlers.RespondConflict(w, msgShopClosed)

		case errors.Is(err, createAppointment.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /barbershops/{slug}/appointments - Slot no longer available: slug=%s, date=%s, hora=%s",
				slug, req.Date, req.Hora)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /barbershops/{slug}/appointments - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidAppointment)

		default:
			h.logger.Error("POST /barbershops/{slug}/appointments - Failed to create appointment: slug=%s, error=%v",
				slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /barbershops/{slug}/appointments - Appointment created: slug=%s, id=%d, date=%s, hora=%s, barbero=%s",
		slug, result.ID, req.Date, req.Hora, result.Barbero)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
