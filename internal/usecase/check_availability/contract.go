package check_availability

import (
	"context"
	"time"

	"github.com/mistvalley/booking-engine/internal/domain"
)

// StayClient интерфейс клиента бэкенда усадьбы
type StayClient interface {
	CheckDateAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.AvailabilityResult, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics учитывает результаты проверок доступности. Может быть nil.
type Metrics interface {
	CountAvailabilityCheck(result string)
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
