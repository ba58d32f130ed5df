package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mistvalley/booking-engine/internal/api/handlers"
	"github.com/mistvalley/booking-engine/internal/service/catalog"
)

const (
	msgMissingRoomID      = "параметр roomId обязателен"
	msgMissingDates       = "параметры checkIn и checkOut обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRooms       = "некорректное число комнат"
	msgInvalidInput       = "некорректные параметры расчёта"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgRoomNotFound       = "комната не найдена"
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

// Handle GET /api/v1/quote
// Query params: roomId (required), checkIn (required), checkOut (required),
// rooms (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID := query.Get("roomId")
	if roomID == "" {
		h.logger.Warn("GET /quote - Missing room ID")
		handlers.RespondBadRequest(w, msgMissingRoomID)
		return
	}

	checkIn := query.Get("checkIn")
	checkOut := query.Get("checkOut")
	if checkIn == "" || checkOut == "" {
		h.logger.Warn("GET /quote - Missing dates: room_id=%s", roomID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	roomCount := 1
	if roomsStr := query.Get("rooms"); roomsStr != "" {
		parsed, err := strconv.Atoi(roomsStr)
		if err != nil {
			h.logger.Warn("GET /quote - Invalid rooms param: room_id=%s, rooms=%s", roomID, roomsStr)
			handlers.RespondBadRequest(w, msgInvalidRooms)
			return
		}
		roomCount = parsed
	}

	serviceReq, err := ToServiceRequest(roomID, checkIn, checkOut, roomCount)
	if err != nil {
		h.logger.Warn("GET /quote - Invalid date format: room_id=%s, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Quote(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /quote - Invalid input: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, catalog.ErrInvalidDateRange):
			h.logger.Warn("GET /quote - Invalid date range: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("GET /quote - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, catalog.ErrCatalogUnavailable):
			h.logger.Error("GET /quote - Catalog unavailable: room_id=%s, error=%v", roomID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /quote - Failed to compute quote: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /quote - Quote computed: room_id=%s, nights=%d, rooms=%d, total=%d",
		roomID, result.Nights, result.RoomCount, result.Breakdown.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, response)
}
