package create_appointment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/barberlink/BL-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := req.Hora.ToMinutes(); err != nil {
		return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, req.Hora)
	}

	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}

	phone := strings.TrimSpace(req.GuestPhone)
	if phone == "" {
		return fmt.Errorf("%w: guest phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxGuestPhoneLength {
		return fmt.Errorf("%w: guest phone is too long", ErrInvalidInput)
	}

	if req.BarberID != nil && *req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberId must be a valid uuid", ErrInvalidInput)
	}

	return nil
}
