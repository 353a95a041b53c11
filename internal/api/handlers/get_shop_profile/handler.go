package get_shop_profile

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barberlink/BL-BookingService/internal/api/handlers"
	profileService "github.com/barberlink/BL-BookingService/internal/service/profile"
)

const (
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

// Handle GET /api/v1/barbershops/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	result, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, profileService.ErrShopNotFound):
			h.logger.Warn("GET /barbershops/{slug} - Shop not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, profileService.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{slug} - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgShopNotFound)

		default:
			h.logger.Error("GET /barbershops/{slug} - Failed to get profile: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /barbershops/{slug} - Profile retrieved: slug=%s, barbers=%d", slug, len(result.Barbers))
	handlers.RespondJSON(w, http.StatusOK, response)
}
