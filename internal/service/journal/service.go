package journal

import (
	"context"
	"fmt"

	"github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
)

// validOutcomes исходы, по которым можно фильтровать ленту журнала
var validOutcomes = map[string]struct{}{
	"accepted": {},
	"rejected": {},
	"failed":   {},
}

// Service сервис чтения журнала бронирований (админская лента).
type Service struct {
	repo   LogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(repo LogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Recent возвращает последние попытки отправки, опционально по исходу.
func (s *Service) Recent(ctx context.Context, limit int, outcome *string) ([]*bookinglog.Entry, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative", ErrInvalidInput)
	}

	if outcome != nil {
		if _, ok := validOutcomes[*outcome]; !ok {
			return nil, fmt.Errorf("%w: unknown outcome %q", ErrInvalidInput, *outcome)
		}

		entries, err := s.repo.ListByOutcome(ctx, *outcome, limit)
		if err != nil {
			s.logger.Error("Recent: repository error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return entries, nil
	}

	entries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Recent: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return entries, nil
}
