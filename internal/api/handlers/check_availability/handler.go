package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mistvalley/booking-engine/internal/api/handlers"
	checkAvailability "github.com/mistvalley/booking-engine/internal/usecase/check_availability"
)

const (
	msgMissingDates        = "параметры checkIn и checkOut обязательны"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRooms        = "некорректное число комнат"
	msgInvalidDateRange    = "некорректный диапазон дат"
	msgRoomNotFound        = "комната не найдена"
	msgAvailabilityUnknown = "доступность временно нельзя определить, попробуйте позже"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
// Query params: checkIn (required, YYYY-MM-DD), checkOut (required, YYYY-MM-DD),
// rooms (optional, сколько комнат хочет гость)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID := vars["roomId"]

	checkIn := r.URL.Query().Get("checkIn")
	checkOut := r.URL.Query().Get("checkOut")
	if checkIn == "" || checkOut == "" {
		h.logger.Warn("GET /rooms/{id}/availability - Missing dates: room_id=%s", roomID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	requestedRooms := 0
	if roomsStr := r.URL.Query().Get("rooms"); roomsStr != "" {
		parsed, err := strconv.Atoi(roomsStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /rooms/{id}/availability - Invalid rooms param: room_id=%s, rooms=%s", roomID, roomsStr)
			handlers.RespondBadRequest(w, msgInvalidRooms)
			return
		}
		requestedRooms = parsed
	}

	useCaseReq, err := ToUseCaseRequest(roomID, checkIn, checkOut, requestedRooms)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid date format: room_id=%s, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidRooms)

		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid date range: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkAvailability.ErrAvailabilityUnknown):
			h.logger.Error("GET /rooms/{id}/availability - Availability unknown: room_id=%s, error=%v", roomID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgAvailabilityUnknown)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /rooms/{id}/availability - Availability checked: room_id=%s, verdict=%s, rooms=%d/%d",
		roomID, result.Verdict, result.AvailableRooms, result.TotalRooms)
	handlers.RespondJSON(w, http.StatusOK, response)
}
