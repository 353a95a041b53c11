package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberlink/BL-BookingService/internal/api/handlers"
	appointmentsService "github.com/barberlink/BL-BookingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "ID de cita inválido"
	msgAppointmentNotFound  = "cita no encontrada"
	msgAlreadyCancelled     = "la cita ya está cancelada"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	appointmentIDStr := vars["appointmentId"]
	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Cancel(r.Context(), appointmentID); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: id=%d", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Already cancelled: id=%d", appointmentID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{ID: appointmentID, Cancelada: true})
}
