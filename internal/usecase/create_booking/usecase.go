package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mistvalley/booking-engine/internal/domain"
	"github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
	stayClient "github.com/mistvalley/booking-engine/internal/integrations/stayapi"
	"github.com/mistvalley/booking-engine/pkg/ptr"
)

// UseCase use case для отправки бронирования на бэкенд усадьбы
type UseCase struct {
	stayClient   StayClient
	journal      BookingJournal
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. journal и metrics могут быть nil.
func NewUseCase(client StayClient, journal BookingJournal, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		stayClient:   client,
		journal:      journal,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Доступность перепроверяется синхронно непосредственно перед сборкой
// payload: между последней проверкой формы и нажатием кнопки она могла
// измениться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, %s..%s, guests=%d, rooms=%d",
		req.RoomID, domain.FormatDate(req.CheckIn), domain.FormatDate(req.CheckOut),
		req.Guests, req.NumberOfRooms)

	// 1. Валидация входных данных против лимитов типа комнаты
	profile := domain.CapacityProfileFor(req.RoomTypeName)
	if err := validateRequest(req, profile); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация диапазона дат
	now := uc.timeProvider.Now()
	if err := validateDates(req.CheckIn, req.CheckOut, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Синхронная перепроверка доступности
	availability, err := uc.stayClient.CheckDateAvailability(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, stayClient.ErrRoomNotFound):
			uc.logger.Warn("CreateBooking: room=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		case errors.Is(err, stayClient.ErrServiceUnavailable), errors.Is(err, stayClient.ErrInvalidResponse):
			uc.logger.Error("CreateBooking: availability recheck failed for room=%s: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnknown, err)
		default:
			uc.logger.Error("CreateBooking: availability recheck failed for room=%s: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if !availability.Available || availability.IsSoldOut() {
		uc.logger.Warn("CreateBooking: room=%s sold out for %s..%s",
			req.RoomID, domain.FormatDate(req.CheckIn), domain.FormatDate(req.CheckOut))
		return nil, ErrSoldOut
	}

	if !availability.CanAccommodate(req.NumberOfRooms) {
		uc.logger.Warn("CreateBooking: room=%s only %d available, requested %d",
			req.RoomID, availability.AvailableRooms, req.NumberOfRooms)
		return nil, fmt.Errorf("%w: only %d room(s) available, requested %d",
			ErrInsufficientRooms, availability.AvailableRooms, req.NumberOfRooms)
	}

	// 4. Считаем цену и собираем payload
	pricePerNight := req.PricePerNight
	if pricePerNight <= 0 {
		pricePerNight = domain.DefaultPricePerNight
	}
	req.PricePerNight = pricePerNight

	nights := domain.Nights(req.CheckIn, req.CheckOut)
	pricing := domain.ComputePricingBreakdown(pricePerNight, nights, req.NumberOfRooms)
	payload := buildPayload(req, nights, pricing)

	// 5. Отправляем бронирование
	confirmation, err := uc.stayClient.CreateBooking(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, stayClient.ErrBookingRejected):
			uc.logger.Warn("CreateBooking: rejected by backend: %v", err)
			uc.countSubmission("rejected")
			uc.recordAttempt(ctx, req, nights, pricing, "rejected", nil, ptr.Ptr(err.Error()))
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		default:
			uc.logger.Error("CreateBooking: submission failed: %v", err)
			uc.countSubmission("failed")
			uc.recordAttempt(ctx, req, nights, pricing, "failed", nil, ptr.Ptr(err.Error()))
			return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
		}
	}

	uc.logger.Info("CreateBooking: accepted, reference=%s", confirmation.BookingReference)
	uc.countSubmission("accepted")
	uc.recordAttempt(ctx, req, nights, pricing, "accepted", &confirmation.BookingReference, nil)

	return &Response{
		BookingReference: confirmation.BookingReference,
		Status:           confirmation.Status,
		RoomID:           req.RoomID,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		Nights:           nights,
		Guests:           req.Guests,
		Adults:           req.Guests - req.Children,
		Children:         req.Children,
		NumberOfRooms:    req.NumberOfRooms,
		Pricing:          pricing,
	}, nil
}

// recordAttempt пишет попытку в журнал. Журнал не должен ронять бронирование:
// ошибки записи только логируются.
func (uc *UseCase) recordAttempt(
	ctx context.Context,
	req *Request,
	nights int,
	pricing domain.PricingBreakdown,
	outcome string,
	reference *string,
	failureReason *string,
) {
	if uc.journal == nil {
		return
	}

	entry := &bookinglog.Entry{
		BookingReference: reference,
		RoomID:           req.RoomID,
		RoomTypeName:     req.RoomTypeName,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		Nights:           nights,
		Guests:           req.Guests,
		Adults:           req.Guests - req.Children,
		Children:         req.Children,
		NumberOfRooms:    req.NumberOfRooms,
		GuestName:        req.GuestName,
		GuestPhone:       domain.CleanPhone(req.Phone),
		BasePrice:        pricing.BasePrice,
		GSTAmount:        pricing.GSTAmount,
		TotalPrice:       pricing.TotalPrice,
		Outcome:          outcome,
		FailureReason:    failureReason,
	}

	if err := uc.journal.Record(ctx, entry); err != nil {
		uc.logger.Warn("CreateBooking: failed to record journal entry: %v", err)
	}
}

func (uc *UseCase) countSubmission(outcome string) {
	if uc.metrics != nil {
		uc.metrics.CountBookingSubmission(outcome)
	}
}
