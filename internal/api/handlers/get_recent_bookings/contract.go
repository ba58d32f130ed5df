package get_recent_bookings

import (
	"context"

	"github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
)

type JournalService interface {
	Recent(ctx context.Context, limit int, outcome *string) ([]*bookinglog.Entry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
