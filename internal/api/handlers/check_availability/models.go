package check_availability

import (
	"github.com/mistvalley/booking-engine/internal/domain"
	checkAvailability "github.com/mistvalley/booking-engine/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID         string  `json:"roomId"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	Available      bool    `json:"available"`
	AvailableRooms int     `json:"availableRooms"`
	TotalRooms     int     `json:"totalRooms"`
	BookedRooms    int     `json:"bookedRooms"`
	OccupancyRate  float64 `json:"occupancyRate"`
	Verdict        string  `json:"verdict"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(roomID, checkIn, checkOut string, requestedRooms int) (*checkAvailability.Request, error) {
	in, err := domain.ParseDate(checkIn)
	if err != nil {
		return nil, err
	}

	out, err := domain.ParseDate(checkOut)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		RoomID:         roomID,
		CheckIn:        in,
		CheckOut:       out,
		RequestedRooms: requestedRooms,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:         resp.RoomID,
		CheckIn:        domain.FormatDate(resp.CheckIn),
		CheckOut:       domain.FormatDate(resp.CheckOut),
		Available:      resp.Available,
		AvailableRooms: resp.AvailableRooms,
		TotalRooms:     resp.TotalRooms,
		BookedRooms:    resp.BookedRooms,
		OccupancyRate:  resp.OccupancyRate,
		Verdict:        string(resp.Verdict),
	}
}
