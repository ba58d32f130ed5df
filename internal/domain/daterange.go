package domain

import (
	"errors"
	"time"
)

var (
	// ErrDatesRequired возвращается, когда не заполнены обе даты
	ErrDatesRequired = errors.New("both check-in and check-out dates are required")

	// ErrCheckInInPast возвращается, когда дата заезда раньше сегодняшнего дня
	ErrCheckInInPast = errors.New("check-in date cannot be in the past")

	// ErrCheckOutNotAfterCheckIn возвращается, когда выезд не позже заезда
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")

	// ErrStayTooShort возвращается, когда бронирование короче одной ночи
	ErrStayTooShort = errors.New("booking must be for at least 1 night")
)

// DateRange is a check-in/check-out pair at day resolution.
// Invariant once validated: CheckOut > CheckIn.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Nights returns the length of the stay in nights.
func (r DateRange) Nights() int {
	return Nights(r.CheckIn, r.CheckOut)
}

// IsZero reports whether either date is unset.
func (r DateRange) IsZero() bool {
	return r.CheckIn.IsZero() || r.CheckOut.IsZero()
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}

// FormatDate renders a date in the YYYY-MM-DD wire format.
func FormatDate(date time.Time) string {
	return date.Format(DateFormat)
}

// ValidateDateRange checks a proposed check-in/check-out pair against "now".
// Rules apply in order and the first failing rule wins:
//  1. both dates present
//  2. check-in not before today (midnight-normalized)
//  3. check-out strictly after check-in
//  4. at least one night
//
// Pure function; now is injected so tests control the clock.
func ValidateDateRange(checkIn, checkOut, now time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return ErrDatesRequired
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if truncateToDay(checkIn).Before(today) {
		return ErrCheckInInPast
	}

	if !checkOut.After(checkIn) {
		return ErrCheckOutNotAfterCheckIn
	}

	if Nights(checkIn, checkOut) < 1 {
		return ErrStayTooShort
	}

	return nil
}

// truncateToDay обнуляет время, чтобы сравнивать только даты
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
