package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistvalley/booking-engine/internal/domain"
	stayClient "github.com/mistvalley/booking-engine/internal/integrations/stayapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeStayClient struct {
	result *domain.AvailabilityResult
	err    error
	calls  int
}

func (f *fakeStayClient) CheckDateAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.AvailabilityResult, error) {
	f.calls++
	return f.result, f.err
}

func newTestUseCase(client *fakeStayClient) *UseCase {
	uc := NewUseCase(client, nil, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest(requestedRooms int) *Request {
	return &Request{
		RoomID:         "r1",
		CheckIn:        time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
		RequestedRooms: requestedRooms,
	}
}

func TestExecuteVerdicts(t *testing.T) {
	tests := []struct {
		name           string
		result         domain.AvailabilityResult
		requestedRooms int
		wantVerdict    Verdict
	}{
		{
			name:           "enough rooms",
			result:         domain.AvailabilityResult{Available: true, AvailableRooms: 2, TotalRooms: 3, BookedRooms: 1},
			requestedRooms: 2,
			wantVerdict:    VerdictAvailable,
		},
		{
			name:           "fewer rooms than requested",
			result:         domain.AvailabilityResult{Available: true, AvailableRooms: 1, TotalRooms: 3, BookedRooms: 2},
			requestedRooms: 2,
			wantVerdict:    VerdictInsufficient,
		},
		{
			name:           "sold out",
			result:         domain.AvailabilityResult{Available: false, AvailableRooms: 0, TotalRooms: 3, BookedRooms: 3},
			requestedRooms: 1,
			wantVerdict:    VerdictSoldOut,
		},
		{
			name:           "backend says available with zero free rooms",
			result:         domain.AvailabilityResult{Available: true, AvailableRooms: 0, TotalRooms: 1, BookedRooms: 1},
			requestedRooms: 1,
			wantVerdict:    VerdictSoldOut,
		},
		{
			name:           "zero requested means informational single room",
			result:         domain.AvailabilityResult{Available: true, AvailableRooms: 1, TotalRooms: 1, BookedRooms: 0},
			requestedRooms: 0,
			wantVerdict:    VerdictAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.result
			uc := newTestUseCase(&fakeStayClient{result: &result})

			resp, err := uc.Execute(context.Background(), validRequest(tt.requestedRooms))
			require.NoError(t, err)

			assert.Equal(t, tt.wantVerdict, resp.Verdict)
			assert.Equal(t, result.AvailableRooms, resp.AvailableRooms)
			assert.Equal(t, result.TotalRooms, resp.TotalRooms)
			assert.InDelta(t, result.OccupancyRate(), resp.OccupancyRate, 1e-9)
		})
	}
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeStayClient{})

	t.Run("missing room id", func(t *testing.T) {
		req := validRequest(1)
		req.RoomID = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative requested rooms", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validRequest(-1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("past check-in", func(t *testing.T) {
		req := validRequest(1)
		req.CheckIn = time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
		req.CheckOut = time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("validation happens before any network call", func(t *testing.T) {
		client := &fakeStayClient{}
		uc := newTestUseCase(client)

		req := validRequest(1)
		req.RoomID = ""
		_, _ = uc.Execute(context.Background(), req)
		assert.Zero(t, client.calls)
	})
}

func TestExecuteClientErrors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantErr   error
	}{
		{"room not found", stayClient.ErrRoomNotFound, ErrRoomNotFound},
		{"backend down", stayClient.ErrServiceUnavailable, ErrAvailabilityUnknown},
		{"unreadable response", stayClient.ErrInvalidResponse, ErrAvailabilityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeStayClient{err: tt.clientErr})

			_, err := uc.Execute(context.Background(), validRequest(1))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
