package create_booking

import (
	"errors"
	"net/http"

	"github.com/mistvalley/booking-engine/internal/api/handlers"
	createBooking "github.com/mistvalley/booking-engine/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput           = "некорректные данные бронирования"
	msgInvalidDateRange       = "некорректный диапазон дат"
	msgCapacityExceeded       = "число гостей превышает вместимость типа комнаты"
	msgRoomCountBelowMinimum  = "комнат меньше, чем нужно для выбранного числа гостей"
	msgRoomCountExceedsMax    = "комнат больше, чем есть у этого типа"
	msgNoAdults               = "нужен хотя бы один взрослый"
	msgInvalidGuestName       = "некорректное имя гостя"
	msgInvalidPhone           = "некорректный номер телефона"
	msgSpecialRequestsTooLong = "пожелания слишком длинные"
	msgRoomNotFound           = "комната не найдена"
	msgSoldOut                = "на выбранные даты свободных комнат нет"
	msgInsufficientRooms      = "свободных комнат меньше запрошенного количества"
	msgAvailabilityUnknown    = "доступность нельзя подтвердить, попробуйте позже"
	msgBookingRejected        = "бронирование отклонено"
	msgSubmissionFailed       = "не удалось отправить бронирование, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: room_id=%s, error=%v", req.RoomID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room_id=%s, guests=%d", req.RoomID, req.Guests)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrRoomCountBelowMinimum):
			h.logger.Warn("POST /bookings - Room count below minimum: room_id=%s, guests=%d, rooms=%d",
				req.RoomID, req.Guests, req.NumberOfRooms)
			handlers.RespondBadRequest(w, msgRoomCountBelowMinimum)

		case errors.Is(err, createBooking.ErrRoomCountExceedsMax):
			h.logger.Warn("POST /bookings - Room count exceeds max: room_id=%s, rooms=%d", req.RoomID, req.NumberOfRooms)
			handlers.RespondBadRequest(w, msgRoomCountExceedsMax)

		case errors.Is(err, createBooking.ErrNoAdults):
			h.logger.Warn("POST /bookings - No adults: room_id=%s, guests=%d, children=%d",
				req.RoomID, req.Guests, req.Children)
			handlers.RespondBadRequest(w, msgNoAdults)

		case errors.Is(err, createBooking.ErrInvalidGuestName):
			h.logger.Warn("POST /bookings - Invalid guest name: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidGuestName)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrSpecialRequestsTooLong):
			h.logger.Warn("POST /bookings - Special requests too long: room_id=%s", req.RoomID)
			handlers.RespondBadRequest(w, msgSpecialRequestsTooLong)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrSoldOut):
			h.logger.Warn("POST /bookings - Sold out: room_id=%s, %s..%s", req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondError(w, http.StatusConflict, msgSoldOut)

		case errors.Is(err, createBooking.ErrInsufficientRooms):
			h.logger.Warn("POST /bookings - Insufficient rooms: room_id=%s, requested=%d", req.RoomID, req.NumberOfRooms)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientRooms)

		case errors.Is(err, createBooking.ErrAvailabilityUnknown):
			h.logger.Error("POST /bookings - Availability unknown: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgAvailabilityUnknown)

		case errors.Is(err, createBooking.ErrBookingRejected):
			h.logger.Warn("POST /bookings - Rejected by backend: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBookingRejected)

		case errors.Is(err, createBooking.ErrSubmissionFailed):
			h.logger.Error("POST /bookings - Submission failed: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: reference=%s, room_id=%s, total=%d",
		result.BookingReference, req.RoomID, result.Pricing.TotalPrice)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
