package get_recent_bookings

import (
	"time"

	"github.com/mistvalley/booking-engine/internal/domain"
	"github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
)

// JournalEntryResponse HTTP response model одной попытки бронирования
type JournalEntryResponse struct {
	ID               int64   `json:"id"`
	BookingReference *string `json:"bookingReference,omitempty"`
	RoomID           string  `json:"roomId"`
	RoomTypeName     string  `json:"roomTypeName"`
	CheckIn          string  `json:"checkIn"`
	CheckOut         string  `json:"checkOut"`
	Nights           int     `json:"nights"`
	Guests           int     `json:"guests"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	NumberOfRooms    int     `json:"numberOfRooms"`
	GuestName        string  `json:"guestName"`
	GuestPhone       string  `json:"guestPhone"`
	BasePrice        int64   `json:"basePrice"`
	GSTAmount        int64   `json:"gstAmount"`
	TotalPrice       int64   `json:"totalPrice"`
	Outcome          string  `json:"outcome"`
	FailureReason    *string `json:"failureReason,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// JournalResponse HTTP response model со списком попыток
type JournalResponse struct {
	Bookings []JournalEntryResponse `json:"bookings"`
}

// FromServiceResponse конвертирует записи журнала в HTTP response
func FromServiceResponse(entries []*bookinglog.Entry) *JournalResponse {
	out := make([]JournalEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, JournalEntryResponse{
			ID:               entry.ID,
			BookingReference: entry.BookingReference,
			RoomID:           entry.RoomID,
			RoomTypeName:     entry.RoomTypeName,
			CheckIn:          domain.FormatDate(entry.CheckIn),
			CheckOut:         domain.FormatDate(entry.CheckOut),
			Nights:           entry.Nights,
			Guests:           entry.Guests,
			Adults:           entry.Adults,
			Children:         entry.Children,
			NumberOfRooms:    entry.NumberOfRooms,
			GuestName:        entry.GuestName,
			GuestPhone:       entry.GuestPhone,
			BasePrice:        entry.BasePrice,
			GSTAmount:        entry.GSTAmount,
			TotalPrice:       entry.TotalPrice,
			Outcome:          entry.Outcome,
			FailureReason:    entry.FailureReason,
			CreatedAt:        entry.CreatedAt.Format(time.RFC3339),
		})
	}
	return &JournalResponse{Bookings: out}
}
