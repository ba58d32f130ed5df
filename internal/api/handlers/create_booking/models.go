package create_booking

import (
	"github.com/mistvalley/booking-engine/internal/domain"
	createBooking "github.com/mistvalley/booking-engine/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID          string `json:"roomId"`
	RoomTypeName    string `json:"roomTypeName,omitempty"`
	PricePerNight   int64  `json:"pricePerNight,omitempty"`
	CheckIn         string `json:"checkIn"`  // "2026-09-01"
	CheckOut        string `json:"checkOut"` // "2026-09-04"
	Guests          int    `json:"guests"`
	Children        int    `json:"children"`
	NumberOfRooms   int    `json:"numberOfRooms"`
	GuestName       string `json:"guestName"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// PricingResponse HTTP response model с разбивкой стоимости
type PricingResponse struct {
	BasePrice  int64  `json:"basePrice"`
	GSTAmount  int64  `json:"gstAmount"`
	GSTRate    string `json:"gstRate"`
	TotalPrice int64  `json:"totalPrice"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingReference string          `json:"bookingReference"`
	Status           string          `json:"status"`
	RoomID           string          `json:"roomId"`
	CheckIn          string          `json:"checkIn"`
	CheckOut         string          `json:"checkOut"`
	Nights           int             `json:"nights"`
	Guests           int             `json:"guests"`
	Adults           int             `json:"adults"`
	Children         int             `json:"children"`
	NumberOfRooms    int             `json:"numberOfRooms"`
	Pricing          PricingResponse `json:"pricing"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := domain.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := domain.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:          r.RoomID,
		RoomTypeName:    r.RoomTypeName,
		PricePerNight:   r.PricePerNight,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		Children:        r.Children,
		NumberOfRooms:   r.NumberOfRooms,
		GuestName:       r.GuestName,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingReference: resp.BookingReference,
		Status:           resp.Status,
		RoomID:           resp.RoomID,
		CheckIn:          domain.FormatDate(resp.CheckIn),
		CheckOut:         domain.FormatDate(resp.CheckOut),
		Nights:           resp.Nights,
		Guests:           resp.Guests,
		Adults:           resp.Adults,
		Children:         resp.Children,
		NumberOfRooms:    resp.NumberOfRooms,
		Pricing: PricingResponse{
			BasePrice:  resp.Pricing.BasePrice,
			GSTAmount:  resp.Pricing.GSTAmount,
			GSTRate:    domain.GSTRateLabel,
			TotalPrice: resp.Pricing.TotalPrice,
		},
	}
}
