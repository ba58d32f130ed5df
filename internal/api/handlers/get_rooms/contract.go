package get_rooms

import (
	"context"

	catalogModels "github.com/mistvalley/booking-engine/internal/service/catalog/models"
)

type CatalogService interface {
	ListRooms(ctx context.Context) ([]catalogModels.RoomSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
