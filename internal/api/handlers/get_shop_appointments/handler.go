package get_shop_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/barberlink/BL-BookingService/internal/api/handlers"
	"github.com/barberlink/BL-BookingService/internal/domain"
	appointmentsService "github.com/barberlink/BL-BookingService/internal/service/appointments"
	"github.com/barberlink/BL-BookingService/internal/service/appointments/models"
)

const (
	msgMissingDate  = "la fecha es obligatoria"
	msgInvalidDate  = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgShopNotFound = "barbería no encontrada"
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

// Handle GET /api/v1/barbershops/{slug}/appointments
// Query params: date (required, YYYY-MM-DD), includeCancelled (optional, "true")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbershops/{slug}/appointments - Missing date: slug=%s", slug)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbershops/{slug}/appointments - Invalid date: slug=%s, date=%s", slug, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	result, err := h.service.GetShopAppointments(r.Context(), &models.GetShopAppointmentsRequest{
		Slug:             slug,
		Date:             date,
		IncludeCancelled: includeCancelled,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrShopNotFound):
			h.logger.Warn("GET /barbershops/{slug}/appointments - Shop not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{slug}/appointments - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /barbershops/{slug}/appointments - Failed to get appointments: slug=%s, error=%v",
				slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /barbershops/{slug}/appointments - Appointments retrieved: slug=%s, date=%s, count=%d",
		slug, dateStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
