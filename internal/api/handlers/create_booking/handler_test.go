package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistvalley/booking-engine/internal/domain"
	createBooking "github.com/mistvalley/booking-engine/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

func doRequest(t *testing.T, useCase CreateBookingUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)
	return recorder
}

func validBody() string {
	return `{
		"roomId": "r1",
		"roomTypeName": "Family Suite",
		"pricePerNight": 4500,
		"checkIn": "2026-09-01",
		"checkOut": "2026-09-04",
		"guests": 5,
		"children": 1,
		"numberOfRooms": 2,
		"guestName": "Asha Verma",
		"phone": "9876543210"
	}`
}

func TestHandle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		useCase := &fakeUseCase{resp: &createBooking.Response{
			BookingReference: "BK-1001",
			Status:           domain.BookingStatusConfirmed,
			RoomID:           "r1",
			CheckIn:          time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:         time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
			Nights:           3,
			Guests:           5,
			Adults:           4,
			Children:         1,
			NumberOfRooms:    2,
			Pricing: domain.PricingBreakdown{
				BasePrice:  27000,
				GSTAmount:  4860,
				GSTRate:    domain.GSTRateLabel,
				TotalPrice: 31860,
			},
		}}

		recorder := doRequest(t, useCase, validBody())
		require.Equal(t, http.StatusCreated, recorder.Code)

		var body BookingResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "BK-1001", body.BookingReference)
		assert.Equal(t, "2026-09-01", body.CheckIn)
		assert.Equal(t, int64(31860), body.Pricing.TotalPrice)
		assert.Equal(t, "18%", body.Pricing.GSTRate)

		require.NotNil(t, useCase.lastReq)
		assert.Equal(t, 5, useCase.lastReq.Guests)
		assert.Equal(t, int64(4500), useCase.lastReq.PricePerNight)
	})

	t.Run("malformed body", func(t *testing.T) {
		recorder := doRequest(t, &fakeUseCase{}, `{"roomId":`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		body := strings.Replace(validBody(), "2026-09-01", "01.09.2026", 1)
		recorder := doRequest(t, &fakeUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			useCaseErr error
			wantStatus int
		}{
			{"capacity exceeded", createBooking.ErrCapacityExceeded, http.StatusBadRequest},
			{"rooms below minimum", createBooking.ErrRoomCountBelowMinimum, http.StatusBadRequest},
			{"no adults", createBooking.ErrNoAdults, http.StatusBadRequest},
			{"invalid phone", createBooking.ErrInvalidPhone, http.StatusBadRequest},
			{"room not found", createBooking.ErrRoomNotFound, http.StatusNotFound},
			{"sold out", createBooking.ErrSoldOut, http.StatusConflict},
			{"insufficient rooms", createBooking.ErrInsufficientRooms, http.StatusConflict},
			{"availability unknown", createBooking.ErrAvailabilityUnknown, http.StatusBadGateway},
			{"rejected by backend", createBooking.ErrBookingRejected, http.StatusUnprocessableEntity},
			{"submission failed", createBooking.ErrSubmissionFailed, http.StatusBadGateway},
			{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				recorder := doRequest(t, &fakeUseCase{err: tt.useCaseErr}, validBody())
				assert.Equal(t, tt.wantStatus, recorder.Code)

				var body map[string]string
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.NotEmpty(t, body["error"])
			})
		}
	})
}
