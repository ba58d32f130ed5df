package bookingflow

import (
	"context"
	"time"

	checkAvailability "github.com/mistvalley/booking-engine/internal/usecase/check_availability"
	createBooking "github.com/mistvalley/booking-engine/internal/usecase/create_booking"
)

// AvailabilityChecker интерфейс usecase проверки доступности
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

// BookingSubmitter интерфейс usecase создания бронирования
type BookingSubmitter interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
