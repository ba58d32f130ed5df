package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistvalley/booking-engine/internal/domain"
	stayClient "github.com/mistvalley/booking-engine/internal/integrations/stayapi"
	"github.com/mistvalley/booking-engine/internal/service/catalog/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeStayClient struct {
	rooms []domain.RoomType
	err   error
}

func (f *fakeStayClient) GetRooms(ctx context.Context) ([]domain.RoomType, error) {
	return f.rooms, f.err
}

func catalogRooms() []domain.RoomType {
	return []domain.RoomType{
		{ID: "r1", Name: "Family Suite", PricePerNight: 4500, Capacity: 3},
		{ID: "r3", Name: "Cozy Mountain Cabin", PricePerNight: 0},
	}
}

func newTestService(client *fakeStayClient) *Service {
	s := NewService(client, nopLogger{})
	s.timeProvider = fixedTime{now: time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)}
	return s
}

func TestListRooms(t *testing.T) {
	t.Run("attaches capacity limits", func(t *testing.T) {
		s := newTestService(&fakeStayClient{rooms: catalogRooms()})

		rooms, err := s.ListRooms(context.Background())
		require.NoError(t, err)
		require.Len(t, rooms, 2)

		assert.Equal(t, 9, rooms[0].MaxGuestsTotal)
		assert.Equal(t, 3, rooms[0].MaxRoomsOfType)
		assert.Equal(t, 1, rooms[1].MaxRoomsOfType)

		// Нулевая цена каталога заменяется фолбэком
		assert.Equal(t, domain.DefaultPricePerNight, rooms[1].PricePerNight)
	})

	t.Run("backend down", func(t *testing.T) {
		s := newTestService(&fakeStayClient{err: stayClient.ErrServiceUnavailable})

		_, err := s.ListRooms(context.Background())
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
	})
}

func TestQuote(t *testing.T) {
	quoteRequest := func() *models.QuoteRequest {
		return &models.QuoteRequest{
			RoomID:    "r1",
			CheckIn:   time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:  time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
			RoomCount: 2,
		}
	}

	t.Run("computes the breakdown", func(t *testing.T) {
		s := newTestService(&fakeStayClient{rooms: catalogRooms()})

		quote, err := s.Quote(context.Background(), quoteRequest())
		require.NoError(t, err)

		assert.Equal(t, "Family Suite", quote.RoomName)
		assert.Equal(t, 3, quote.Nights)
		assert.Equal(t, int64(27000), quote.Breakdown.BasePrice)
		assert.Equal(t, int64(4860), quote.Breakdown.GSTAmount)
		assert.Equal(t, int64(31860), quote.Breakdown.TotalPrice)
	})

	t.Run("unknown room", func(t *testing.T) {
		s := newTestService(&fakeStayClient{rooms: catalogRooms()})

		req := quoteRequest()
		req.RoomID = "ghost"
		_, err := s.Quote(context.Background(), req)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("invalid room count", func(t *testing.T) {
		s := newTestService(&fakeStayClient{rooms: catalogRooms()})

		req := quoteRequest()
		req.RoomCount = 0
		_, err := s.Quote(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req.RoomCount = domain.MaxRoomCount + 1
		_, err = s.Quote(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid date range", func(t *testing.T) {
		s := newTestService(&fakeStayClient{rooms: catalogRooms()})

		req := quoteRequest()
		req.CheckOut = req.CheckIn
		_, err := s.Quote(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}
