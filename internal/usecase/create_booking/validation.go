package create_booking

import (
	"errors"
	"fmt"

	"github.com/dmtrv/BRS-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if err := req.Window.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Бронирование окна нулевой длины не занимает ни одного момента времени
	if req.Window.IsEmpty() {
		return fmt.Errorf("%w: booking window must not be empty", ErrInvalidInput)
	}

	if req.Spaces < domain.MinSpacesPerBooking {
		return fmt.Errorf("%w: spaces must be at least %d", ErrInvalidInput, domain.MinSpacesPerBooking)
	}

	if req.Spaces > domain.MaxSpacesPerBooking {
		return fmt.Errorf("%w: spaces must not exceed %d", ErrInvalidInput, domain.MaxSpacesPerBooking)
	}

	return nil
}
