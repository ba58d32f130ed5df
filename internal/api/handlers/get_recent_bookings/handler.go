package get_recent_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mistvalley/booking-engine/internal/api/handlers"
	"github.com/mistvalley/booking-engine/internal/service/journal"
	"github.com/mistvalley/booking-engine/pkg/ptr"
)

const (
	msgInvalidLimit   = "некорректный limit"
	msgInvalidOutcome = "некорректный outcome, ожидается accepted|rejected|failed"

	defaultLimit = 50
)

type Handler struct {
	service JournalService
	logger  Logger
}

func NewHandler(service JournalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/recent
// Query params: limit (optional, default 50), outcome (optional, accepted|rejected|failed)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := defaultLimit
	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /bookings/recent - Invalid limit: %s", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	var outcome *string
	if outcomeStr := query.Get("outcome"); outcomeStr != "" {
		outcome = ptr.Ptr(outcomeStr)
	}

	result, err := h.service.Recent(r.Context(), limit, outcome)
	if err != nil {
		switch {
		case errors.Is(err, journal.ErrInvalidInput):
			h.logger.Warn("GET /bookings/recent - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		default:
			h.logger.Error("GET /bookings/recent - Failed to read journal: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromServiceResponse(result)

	h.logger.Info("GET /bookings/recent - Journal retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, response)
}
