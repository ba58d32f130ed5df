package models

import (
	"time"

	"github.com/mistvalley/booking-engine/internal/domain"
)

// RoomSummary комната каталога вместе с лимитами её типа.
type RoomSummary struct {
	ID            string
	Name          string
	PricePerNight int64
	Capacity      int
	Description   string
	Amenities     []string
	Images        []string

	MaxGuestsTotal int
	MaxRoomsOfType int
	GuestsPerRoom  int
}

// FromDomainRoom собирает сводку комнаты с лимитами её типа.
func FromDomainRoom(room domain.RoomType) RoomSummary {
	profile := domain.CapacityProfileFor(room.Name)
	return RoomSummary{
		ID:             room.ID,
		Name:           room.Name,
		PricePerNight:  room.EffectivePrice(),
		Capacity:       room.Capacity,
		Description:    room.Description,
		Amenities:      room.Amenities,
		Images:         room.Images,
		MaxGuestsTotal: profile.MaxGuestsTotal,
		MaxRoomsOfType: profile.MaxRoomsOfType,
		GuestsPerRoom:  profile.GuestsPerRoom,
	}
}

// QuoteRequest запрос расчёта стоимости проживания.
type QuoteRequest struct {
	RoomID    string
	CheckIn   time.Time
	CheckOut  time.Time
	RoomCount int
}

// Quote рассчитанная стоимость проживания для отображения.
type Quote struct {
	RoomID        string
	RoomName      string
	PricePerNight int64
	Nights        int
	RoomCount     int
	Breakdown     domain.PricingBreakdown
}
