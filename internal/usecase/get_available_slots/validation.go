package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"
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

	if req.BarberID != nil && *req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberId must be a valid uuid", ErrInvalidInput)
	}

	return nil
}
