package journal

import (
	"context"

	"github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
)

// LogRepository интерфейс репозитория журнала бронирований
type LogRepository interface {
	ListRecent(ctx context.Context, limit int) ([]*bookinglog.Entry, error)
	ListByOutcome(ctx context.Context, outcome string, limit int) ([]*bookinglog.Entry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
