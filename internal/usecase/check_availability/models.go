package check_availability

import "time"

// Verdict итог проверки доступности с учётом запрошенного числа комнат.
type Verdict string

const (
	// VerdictAvailable свободных комнат хватает на запрошенное количество
	VerdictAvailable Verdict = "available"
	// VerdictInsufficient комнаты есть, но меньше запрошенного количества
	VerdictInsufficient Verdict = "insufficient"
	// VerdictSoldOut свободных комнат нет
	VerdictSoldOut Verdict = "sold_out"
)

// Request модель запроса на проверку доступности
type Request struct {
	RoomID         string    // ID комнаты
	CheckIn        time.Time // Дата заезда
	CheckOut       time.Time // Дата выезда
	RequestedRooms int       // Сколько комнат хочет гость (0 = только справка)
}

// Response модель ответа с нормализованной доступностью
type Response struct {
	RoomID         string
	CheckIn        time.Time
	CheckOut       time.Time
	Available      bool
	AvailableRooms int
	TotalRooms     int
	BookedRooms    int
	OccupancyRate  float64 // доля занятых комнат в процентах (0-100)
	Verdict        Verdict
}
