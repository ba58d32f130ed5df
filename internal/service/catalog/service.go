package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mistvalley/booking-engine/internal/domain"
	stayClient "github.com/mistvalley/booking-engine/internal/integrations/stayapi"
	"github.com/mistvalley/booking-engine/internal/service/catalog/models"
)

// Service сервис каталога комнат: проксирует каталог бэкенда и считает
// предварительную стоимость проживания для отображения.
type Service struct {
	stayClient   StayClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client StayClient, logger Logger) *Service {
	return &Service{
		stayClient:   client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListRooms возвращает каталог комнат с лимитами каждого типа.
func (s *Service) ListRooms(ctx context.Context) ([]models.RoomSummary, error) {
	rooms, err := s.stayClient.GetRooms(ctx)
	if err != nil {
		if errors.Is(err, stayClient.ErrServiceUnavailable) || errors.Is(err, stayClient.ErrInvalidResponse) {
			s.logger.Error("ListRooms: catalog unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		s.logger.Error("ListRooms: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	result := make([]models.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, models.FromDomainRoom(room))
	}

	s.logger.Info("ListRooms: %d rooms", len(result))
	return result, nil
}

// Quote считает разбивку стоимости проживания для выбранной комнаты.
// Чистый расчёт поверх каталога: ничего не бронирует и не резервирует.
func (s *Service) Quote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.RoomCount < domain.MinRoomCount {
		return nil, fmt.Errorf("%w: at least %d room required", ErrInvalidInput, domain.MinRoomCount)
	}
	if req.RoomCount > domain.MaxRoomCount {
		return nil, fmt.Errorf("%w: at most %d rooms allowed", ErrInvalidInput, domain.MaxRoomCount)
	}

	if err := domain.ValidateDateRange(req.CheckIn, req.CheckOut, s.timeProvider.Now()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	rooms, err := s.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	var room *models.RoomSummary
	for i := range rooms {
		if rooms[i].ID == req.RoomID {
			room = &rooms[i]
			break
		}
	}
	if room == nil {
		s.logger.Warn("Quote: room=%s not in catalog", req.RoomID)
		return nil, ErrRoomNotFound
	}

	nights := domain.Nights(req.CheckIn, req.CheckOut)
	breakdown := domain.ComputePricingBreakdown(room.PricePerNight, nights, req.RoomCount)

	s.logger.Info("Quote: room=%s nights=%d rooms=%d total=%d",
		req.RoomID, nights, req.RoomCount, breakdown.TotalPrice)

	return &models.Quote{
		RoomID:        room.ID,
		RoomName:      room.Name,
		PricePerNight: room.PricePerNight,
		Nights:        nights,
		RoomCount:     req.RoomCount,
		Breakdown:     breakdown,
	}, nil
}
