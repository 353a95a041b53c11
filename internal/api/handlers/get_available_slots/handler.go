package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barberlink/BL-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/barberlink/BL-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingServiceID = "el ID del servicio es obligatorio"
	msgMissingDate      = "la fecha es obligatoria"
	msgInvalidParams    = "parámetros inválidos: se espera serviceId (UUID), date (YYYY-MM-DD) y barberId (UUID) opcional"
	msgShopNotFound     = "barbería no encontrada"
	msgServiceNotFound  = "servicio no encontrado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{slug}/available-slots
// Query params: serviceId (required, UUID), date (required, YYYY-MM-DD), barberId (optional, UUID)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /barbershops/{slug}/available-slots - Missing service ID: slug=%s", slug)
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbershops/{slug}/available-slots - Missing date: slug=%s", slug)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	barberIDStr := r.URL.Query().Get("barberId")

	useCaseReq, err := ToUseCaseRequest(slug, serviceIDStr, dateStr, barberIDStr)
	if err != nil {
		h.logger.Warn("GET /barbershops/{slug}/available-slots - Invalid params: slug=%s, error=%v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrShopNotFound):
			h.logger.Warn("GET /barbershops/{slug}/available-slots - Shop not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /barbershops/{slug}/available-slots - Service not found: slug=%s, service_id=%s",
				slug, serviceIDStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /barbershops/{slug}/available-slots - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /barbershops/{slug}/available-slots - Failed to get slots: slug=%s, service_id=%s, error=%v",
				slug, serviceIDStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /barbershops/{slug}/available-slots - Slots retrieved: slug=%s, service_id=%s, date=%s, slots_count=%d",
		slug, serviceIDStr, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
