package stayapi

import "encoding/json"

// Room модель комнаты из каталога бэкенда усадьбы
type Room struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Price       int64    `json:"price"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
	IsAvailable *bool    `json:"isAvailable,omitempty"`
}

// roomsEnvelope ответ GET /rooms. Бэкенд отдаёт комнаты в одном из трёх мест:
// rooms на верхнем уровне, data.rooms или data как массив.
type roomsEnvelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count,omitempty"`
	Rooms   []Room          `json:"rooms,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// roomsData вложенная форма data.rooms
type roomsData struct {
	Rooms []Room `json:"rooms,omitempty"`
}

// availabilityRecord логическая форма ответа проверки дат. Указатели, а не
// значения: нормализация должна отличать "поле отсутствует" от нуля/false.
type availabilityRecord struct {
	Available      *bool           `json:"available,omitempty"`
	AvailableRooms *int            `json:"availableRooms,omitempty"`
	TotalRooms     *int            `json:"totalRooms,omitempty"`
	BookedRooms    *int            `json:"bookedRooms,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
}

// availabilityEnvelope ответ GET /rooms/{id}/check-dates. Поля доступности
// могут лежать прямо на верхнем уровне (плоская форма), в data или в data.data.
type availabilityEnvelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`

	Available      *bool `json:"available,omitempty"`
	AvailableRooms *int  `json:"availableRooms,omitempty"`
	TotalRooms     *int  `json:"totalRooms,omitempty"`
	BookedRooms    *int  `json:"bookedRooms,omitempty"`
}

// BookingPayload тело POST /bookings. Собирается один раз на попытку
// отправки и после сборки не изменяется.
type BookingPayload struct {
	Room            string `json:"room"`
	CheckIn         string `json:"checkIn"`  // YYYY-MM-DD
	CheckOut        string `json:"checkOut"` // YYYY-MM-DD
	Guests          int    `json:"guests"`
	Children        int    `json:"children"`
	NumberOfRooms   int    `json:"numberOfRooms"`
	Adults          int    `json:"adults"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	Nights          int    `json:"nights"`
	PricePerNight   int64  `json:"pricePerNight"`
	TotalPrice      int64  `json:"totalPrice"`
	TaxAmount       int64  `json:"taxAmount"`
	DiscountAmount  int64  `json:"discountAmount"`
	PaymentStatus   string `json:"paymentStatus"`
	Status          string `json:"status"`
	SpecialRequests string `json:"specialRequests"`
}

// BookingConfirmation подтверждение созданного бронирования
type BookingConfirmation struct {
	ID               string `json:"_id"`
	BookingReference string `json:"bookingReference"`
	Room             string `json:"room"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	Guests           int    `json:"guests"`
	Children         int    `json:"children"`
	NumberOfRooms    int    `json:"numberOfRooms"`
	TotalPrice       int64  `json:"totalPrice"`
	Status           string `json:"status"`
	GuestName        string `json:"guestName"`
	GuestPhone       string `json:"guestPhone"`
}

// bookingEnvelope ответ POST /bookings
type bookingEnvelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Error   string               `json:"error,omitempty"`
	Booking *BookingConfirmation `json:"booking,omitempty"`
}
