package domain

import "strings"

// RoomCountSource records who last set the room count on a draft.
type RoomCountSource string

const (
	// RoomCountAuto means the engine recommendation owns the field.
	RoomCountAuto RoomCountSource = "auto"
	// RoomCountManual means the guest typed a value; the recommendation must
	// not silently overwrite it while guests and room type stay unchanged.
	RoomCountManual RoomCountSource = "manual"
)

// BookingDraft is the in-progress state of one booking attempt. It is owned
// exclusively by a single booking flow for the lifetime of the attempt and
// reset on successful submission or teardown.
type BookingDraft struct {
	RoomID          string
	RoomTypeName    string
	PricePerNight   int64
	Dates           DateRange
	Guests          int
	Children        int
	RoomCount       int
	RoomCountSource RoomCountSource
	GuestName       string
	Phone           string
	SpecialRequests string
}

// NewBookingDraft returns a draft with the form's initial values.
func NewBookingDraft() BookingDraft {
	return BookingDraft{
		Guests:          DefaultGuests,
		Children:        DefaultChildren,
		RoomCount:       DefaultRoomCount,
		RoomCountSource: RoomCountAuto,
	}
}

// Adults returns the adult headcount implied by the draft.
func (d *BookingDraft) Adults() int {
	return d.Guests - d.Children
}

// ClampChildren enforces the at-least-one-adult rule after an edit: whenever
// children would reach or exceed guests, children is pulled down to guests-1.
// With guests == 0 both fields are left as they are until guests is filled in.
func (d *BookingDraft) ClampChildren() {
	if d.Guests <= 0 {
		return
	}
	if d.Children >= d.Guests {
		d.Children = d.Guests - 1
	}
	if d.Children < 0 {
		d.Children = 0
	}
}

// CleanPhone strips everything but digits from a phone number.
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SynthesizeGuestEmail derives the placeholder contact email the backend
// requires from the guest's phone number; the form collects no email field.
func SynthesizeGuestEmail(phone string) string {
	return CleanPhone(phone) + "@guest.com"
}

// CountWords counts whitespace-separated words in free text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
