package get_quote

import (
	"github.com/mistvalley/booking-engine/internal/domain"
	catalogModels "github.com/mistvalley/booking-engine/internal/service/catalog/models"
)

// QuoteResponse HTTP response model с разбивкой стоимости проживания
type QuoteResponse struct {
	RoomID        string `json:"roomId"`
	RoomName      string `json:"roomName"`
	PricePerNight int64  `json:"pricePerNight"`
	Nights        int    `json:"nights"`
	NumberOfRooms int    `json:"numberOfRooms"`
	BasePrice     int64  `json:"basePrice"`
	GSTAmount     int64  `json:"gstAmount"`
	GSTRate       string `json:"gstRate"`
	TotalPrice    int64  `json:"totalPrice"`
}

// ToServiceRequest конвертирует параметры запроса в модель сервиса
func ToServiceRequest(roomID, checkIn, checkOut string, roomCount int) (*catalogModels.QuoteRequest, error) {
	in, err := domain.ParseDate(checkIn)
	if err != nil {
		return nil, err
	}

	out, err := domain.ParseDate(checkOut)
	if err != nil {
		return nil, err
	}

	return &catalogModels.QuoteRequest{
		RoomID:    roomID,
		CheckIn:   in,
		CheckOut:  out,
		RoomCount: roomCount,
	}, nil
}

// FromServiceResponse конвертирует расчёт сервиса в HTTP response
func FromServiceResponse(quote *catalogModels.Quote) *QuoteResponse {
	return &QuoteResponse{
		RoomID:        quote.RoomID,
		RoomName:      quote.RoomName,
		PricePerNight: quote.PricePerNight,
		Nights:        quote.Nights,
		NumberOfRooms: quote.RoomCount,
		BasePrice:     quote.Breakdown.BasePrice,
		GSTAmount:     quote.Breakdown.GSTAmount,
		GSTRate:       domain.GSTRateLabel,
		TotalPrice:    quote.Breakdown.TotalPrice,
	}
}
