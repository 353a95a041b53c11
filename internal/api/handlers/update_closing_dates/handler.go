package update_closing_dates

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barberlink/BL-BookingService/internal/api/handlers"
	profileService "github.com/barberlink/BL-BookingService/internal/service/profile"
	"github.com/barberlink/BL-BookingService/internal/service/profile/models"
)

const (
	msgInvalidBody  = "cuerpo de la petición inválido"
	msgInvalidDates = "fechas inválidas, se espera una lista de fechas YYYY-MM-DD"
	msgShopNotFound = "barbería no encontrada"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbershops/{slug}/closing-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	var req UpdateClosingDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /barbershops/{slug}/closing-dates - Invalid body: slug=%s, error=%v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err := h.service.UpdateClosingDates(r.Context(), &models.UpdateClosingDatesRequest{
		Slug:         slug,
		ClosingDates: req.ClosingDates,
	})
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrShopNotFound):
			h.logger.Warn("PUT /barbershops/{slug}/closing-dates - Shop not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, profileService.ErrInvalidInput):
			h.logger.Warn("PUT /barbershops/{slug}/closing-dates - Invalid dates: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("PUT /barbershops/{slug}/closing-dates - Failed to update: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbershops/{slug}/closing-dates - Closing dates updated: slug=%s, count=%d",
		slug, len(req.ClosingDates))
	handlers.RespondJSON(w, http.StatusOK, UpdateClosingDatesResponse{
		Slug:         slug,
		ClosingDates: req.ClosingDates,
	})
}
