package create_booking

import (
	"time"

	"github.com/mistvalley/booking-engine/internal/domain"
)

// Request модель запроса на создание бронирования. Поля повторяют черновик
// формы плюс данные выбранного типа комнаты из каталога.
type Request struct {
	RoomID          string
	RoomTypeName    string
	PricePerNight   int64
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	Children        int
	NumberOfRooms   int
	GuestName       string
	Phone           string
	SpecialRequests string
}

// Response модель ответа с принятым бронированием
type Response struct {
	BookingReference string
	Status           string
	RoomID           string
	CheckIn          time.Time
	CheckOut         time.Time
	Nights           int
	Guests           int
	Adults           int
	Children         int
	NumberOfRooms    int
	Pricing          domain.PricingBreakdown
}
