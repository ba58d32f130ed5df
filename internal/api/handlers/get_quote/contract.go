package get_quote

import (
	"context"

	catalogModels "github.com/mistvalley/booking-engine/internal/service/catalog/models"
)

type CatalogService interface {
	Quote(ctx context.Context, req *catalogModels.QuoteRequest) (*catalogModels.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
