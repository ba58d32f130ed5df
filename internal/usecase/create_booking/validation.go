package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mistvalley/booking-engine/internal/domain"
)

var (
	// guestNameRe буквы, пробелы, дефисы и апострофы
	guestNameRe = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	// phoneRe индийский мобильный: ровно 10 цифр, первая 6-9
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// validateRequest валидирует входные данные запроса.
// Ошибки емкости и счётчиков — локальные, до какого-либо обращения к сети.
func validateRequest(req *Request, profile domain.CapacityProfile) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: at least %d guest required", ErrInvalidInput, domain.MinGuests)
	}
	if req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: at most %d guests allowed", ErrInvalidInput, domain.MaxGuests)
	}
	if req.Guests > profile.MaxGuestsTotal {
		return fmt.Errorf("%w: %s takes at most %d guests", ErrCapacityExceeded, req.RoomTypeName, profile.MaxGuestsTotal)
	}

	if req.Children < 0 {
		return fmt.Errorf("%w: children cannot be negative", ErrInvalidInput)
	}
	if req.Children >= req.Guests {
		return fmt.Errorf("%w: children=%d, guests=%d", ErrNoAdults, req.Children, req.Guests)
	}

	if req.NumberOfRooms < domain.MinRoomCount {
		return fmt.Errorf("%w: at least %d room required", ErrInvalidInput, domain.MinRoomCount)
	}
	if minRooms := domain.MinimumRooms(req.Guests, profile); req.NumberOfRooms < minRooms {
		return fmt.Errorf("%w: minimum %d room(s) required for %d guests",
			ErrRoomCountBelowMinimum, minRooms, req.Guests)
	}
	if req.NumberOfRooms > profile.MaxRoomsOfType {
		return fmt.Errorf("%w: only %d room(s) of this type exist",
			ErrRoomCountExceedsMax, profile.MaxRoomsOfType)
	}

	if err := validateGuestName(req.GuestName); err != nil {
		return err
	}
	if err := validatePhone(req.Phone); err != nil {
		return err
	}
	if err := validateSpecialRequests(req.SpecialRequests); err != nil {
		return err
	}

	return nil
}

func validateGuestName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < domain.MinGuestNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidGuestName, domain.MinGuestNameLength)
	}
	if len(trimmed) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidGuestName)
	}
	if !guestNameRe.MatchString(trimmed) {
		return fmt.Errorf("%w: name can only contain letters, spaces, hyphens and apostrophes", ErrInvalidGuestName)
	}
	return nil
}

func validatePhone(phone string) error {
	digits := domain.CleanPhone(phone)
	if !phoneRe.MatchString(digits) {
		return fmt.Errorf("%w: phone must be exactly %d digits starting with 6-9", ErrInvalidPhone, domain.PhoneDigits)
	}
	return nil
}

func validateSpecialRequests(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > domain.MaxSpecialRequestChars {
		return fmt.Errorf("%w: at most %d characters", ErrSpecialRequestsTooLong, domain.MaxSpecialRequestChars)
	}
	if words := domain.CountWords(trimmed); words > domain.MaxSpecialRequestWords {
		return fmt.Errorf("%w: %d words, limit is %d", ErrSpecialRequestsTooLong, words, domain.MaxSpecialRequestWords)
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
