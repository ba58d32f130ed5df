package get_rooms

import (
	"errors"
	"net/http"

	"github.com/mistvalley/booking-engine/internal/api/handlers"
	"github.com/mistvalley/booking-engine/internal/service/catalog"
)

const (
	msgCatalogUnavailable = "каталог комнат временно недоступен"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRooms(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			h.logger.Warn("GET /rooms - Catalog unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, response)
}
