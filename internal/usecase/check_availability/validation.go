package check_availability

import (
	"fmt"
	"time"

	"github.com/mistvalley/booking-engine/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.RequestedRooms < 0 {
		return fmt.Errorf("%w: requestedRooms cannot be negative", ErrInvalidInput)
	}

	return nil
}

// validateDates проверяет диапазон дат относительно текущего момента
func validateDates(checkIn, checkOut, now time.Time) error {
	if err := domain.ValidateDateRange(checkIn, checkOut, now); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	return nil
}
