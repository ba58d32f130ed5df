package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/mistvalley/booking-engine/internal/domain"
	stayClient "github.com/mistvalley/booking-engine/internal/integrations/stayapi"
)

// UseCase use case для проверки доступности комнаты на диапазон дат
type UseCase struct {
	stayClient   StayClient
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client StayClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		stayClient:   client,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%s, %s..%s, requested=%d",
		req.RoomID, domain.FormatDate(req.CheckIn), domain.FormatDate(req.CheckOut), req.RequestedRooms)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация диапазона дат
	now := uc.timeProvider.Now()
	if err := validateDates(req.CheckIn, req.CheckOut, now); err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 3. Запрашиваем и нормализуем доступность
	result, err := uc.stayClient.CheckDateAvailability(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, stayClient.ErrRoomNotFound):
			uc.logger.Warn("CheckAvailability: room=%s not found", req.RoomID)
			uc.countResult("unknown")
			return nil, ErrRoomNotFound

		case errors.Is(err, stayClient.ErrServiceUnavailable), errors.Is(err, stayClient.ErrInvalidResponse):
			// Нечитаемый ответ блокирует отправку так же, как недоступный бэкенд
			uc.logger.Error("CheckAvailability: room=%s: %v", req.RoomID, err)
			uc.countResult("unknown")
			return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)

		default:
			uc.logger.Error("CheckAvailability: room=%s: %v", req.RoomID, err)
			uc.countResult("unknown")
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Выносим вердикт с учётом запрошенного числа комнат
	verdict := verdictFor(result, req.RequestedRooms)
	uc.countResult(string(verdict))

	uc.logger.Info("CheckAvailability: room=%s verdict=%s rooms %d/%d",
		req.RoomID, verdict, result.AvailableRooms, result.TotalRooms)

	return &Response{
		RoomID:         req.RoomID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Available:      result.Available,
		AvailableRooms: result.AvailableRooms,
		TotalRooms:     result.TotalRooms,
		BookedRooms:    result.BookedRooms,
		OccupancyRate:  result.OccupancyRate(),
		Verdict:        verdict,
	}, nil
}

// verdictFor сводит счётчики к вердикту для запрошенного числа комнат.
// requestedRooms = 0 означает справочный запрос: достаточно одной комнаты.
func verdictFor(result *domain.AvailabilityResult, requestedRooms int) Verdict {
	if result.IsSoldOut() || !result.Available {
		return VerdictSoldOut
	}

	if requestedRooms == 0 {
		requestedRooms = 1
	}
	if !result.CanAccommodate(requestedRooms) {
		return VerdictInsufficient
	}

	return VerdictAvailable
}

func (uc *UseCase) countResult(result string) {
	if uc.metrics != nil {
		uc.metrics.CountAvailabilityCheck(result)
	}
}
