package get_rooms

import (
	catalogModels "github.com/mistvalley/booking-engine/internal/service/catalog/models"
)

// RoomResponse HTTP response model
type RoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PricePerNight int64    `json:"pricePerNight"`
	Capacity      int      `json:"capacity,omitempty"`
	Description   string   `json:"description,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Images        []string `json:"images,omitempty"`

	MaxGuestsTotal int `json:"maxGuestsTotal"`
	MaxRoomsOfType int `json:"maxRoomsOfType"`
	GuestsPerRoom  int `json:"guestsPerRoom"`
}

// RoomsListResponse HTTP response model со списком комнат
type RoomsListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromServiceResponse конвертирует сводки каталога в HTTP response
func FromServiceResponse(rooms []catalogModels.RoomSummary) *RoomsListResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, RoomResponse{
			ID:             room.ID,
			Name:           room.Name,
			PricePerNight:  room.PricePerNight,
			Capacity:       room.Capacity,
			Description:    room.Description,
			Amenities:      room.Amenities,
			Images:         room.Images,
			MaxGuestsTotal: room.MaxGuestsTotal,
			MaxRoomsOfType: room.MaxRoomsOfType,
			GuestsPerRoom:  room.GuestsPerRoom,
		})
	}
	return &RoomsListResponse{Rooms: out}
}
