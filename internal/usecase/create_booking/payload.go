package create_booking

import (
	"strings"

	"github.com/mistvalley/booking-engine/internal/domain"
	"github.com/mistvalley/booking-engine/internal/integrations/stayapi"
)

// buildPayload собирает неизменяемое тело POST /bookings из черновика.
// Один payload на одну попытку отправки; итоговая цена обязана совпадать с
// тем, что гость видел в разбивке (никакого дрейфа между экраном и телом).
func buildPayload(req *Request, nights int, pricing domain.PricingBreakdown) *stayapi.BookingPayload {
	cleanPhone := domain.CleanPhone(req.Phone)

	return &stayapi.BookingPayload{
		Room:          req.RoomID,
		CheckIn:       domain.FormatDate(req.CheckIn),
		CheckOut:      domain.FormatDate(req.CheckOut),
		Guests:        req.Guests,
		Children:      req.Children,
		NumberOfRooms: req.NumberOfRooms,
		Adults:        req.Guests - req.Children,
		GuestName:     strings.TrimSpace(req.GuestName),
		// Форма не собирает email, бэкенд его требует: синтезируем из телефона
		GuestEmail:      domain.SynthesizeGuestEmail(cleanPhone),
		GuestPhone:      cleanPhone,
		Nights:          nights,
		PricePerNight:   req.PricePerNight,
		TotalPrice:      pricing.TotalPrice,
		TaxAmount:       pricing.GSTAmount,
		DiscountAmount:  0,
		PaymentStatus:   domain.PaymentStatusPending,
		Status:          domain.BookingStatusConfirmed,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	}
}
