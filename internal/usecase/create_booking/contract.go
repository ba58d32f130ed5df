package create_booking

import (
	"context"
	"time"

	"github.com/mistvalley/booking-engine/internal/domain"
	"github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
	"github.com/mistvalley/booking-engine/internal/integrations/stayapi"
)

// StayClient интерфейс клиента бэкенда усадьбы
type StayClient interface {
	CheckDateAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.AvailabilityResult, error)
	CreateBooking(ctx context.Context, payload *stayapi.BookingPayload) (*stayapi.BookingConfirmation, error)
}

// BookingJournal интерфейс журнала отправленных бронирований.
// Может быть nil: журнал — опциональная подсистема.
type BookingJournal interface {
	Record(ctx context.Context, entry *bookinglog.Entry) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics учитывает исходы отправки бронирований. Может быть nil.
type Metrics interface {
	CountBookingSubmission(outcome string)
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
