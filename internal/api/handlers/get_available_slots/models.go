package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
	getAvailableSlots "github.com/barberlink/BL-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Slug            string   `json:"slug"`
	Date            string   `json:"date"`
	ServiceID       string   `json:"serviceId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Slug:            resp.Slug,
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.ServiceID.String(),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(slug, serviceIDStr, dateStr, barberIDStr string) (*getAvailableSlots.Request, error) {
	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		Slug:      slug,
		ServiceID: serviceID,
		Date:      date,
	}

	if barberIDStr != "" {
		barberID, err := uuid.Parse(barberIDStr)
		if err != nil {
			return nil, err
		}
		req.BarberID = &barberID
	}

	return req, nil
}
