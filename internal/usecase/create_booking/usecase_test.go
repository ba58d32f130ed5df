package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistvalley/booking-engine/internal/domain"
	"github.com/mistvalley/booking-engine/internal/infra/storage/bookinglog"
	stayClient "github.com/mistvalley/booking-engine/internal/integrations/stayapi"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeStayClient struct {
	availability    *domain.AvailabilityResult
	availabilityErr error

	confirmation *stayClient.BookingConfirmation
	createErr    error
	lastPayload  *stayClient.BookingPayload
	createCalls  int
}

func (f *fakeStayClient) CheckDateAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.AvailabilityResult, error) {
	return f.availability, f.availabilityErr
}

func (f *fakeStayClient) CreateBooking(ctx context.Context, payload *stayClient.BookingPayload) (*stayClient.BookingConfirmation, error) {
	f.createCalls++
	f.lastPayload = payload
	return f.confirmation, f.createErr
}

type fakeJournal struct {
	entries []*bookinglog.Entry
	err     error
}

func (f *fakeJournal) Record(ctx context.Context, entry *bookinglog.Entry) error {
	f.entries = append(f.entries, entry)
	return f.err
}

func plentyAvailable() *domain.AvailabilityResult {
	return &domain.AvailabilityResult{Available: true, AvailableRooms: 3, TotalRooms: 3}
}

func acceptedConfirmation() *stayClient.BookingConfirmation {
	return &stayClient.BookingConfirmation{
		BookingReference: "BK-1001",
		Status:           domain.BookingStatusConfirmed,
	}
}

func newTestUseCase(client *fakeStayClient, journal BookingJournal) *UseCase {
	uc := NewUseCase(client, journal, nil, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		RoomID:        "r1",
		RoomTypeName:  "Deluxe Mountain View",
		PricePerNight: 4500,
		CheckIn:       time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
		Guests:        4,
		Children:      1,
		NumberOfRooms: 2,
		GuestName:     "Asha Verma",
		Phone:         "98765 43210",
	}
}

func TestExecuteSuccess(t *testing.T) {
	client := &fakeStayClient{availability: plentyAvailable(), confirmation: acceptedConfirmation()}
	journal := &fakeJournal{}
	uc := newTestUseCase(client, journal)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "BK-1001", resp.BookingReference)
	assert.Equal(t, domain.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 3, resp.Adults)

	// 4500 * 3 ночи * 2 комнаты = 27000, GST 18% = 4860
	assert.Equal(t, int64(27000), resp.Pricing.BasePrice)
	assert.Equal(t, int64(4860), resp.Pricing.GSTAmount)
	assert.Equal(t, int64(31860), resp.Pricing.TotalPrice)

	// Payload несёт ту же сумму, что видел гость
	payload := client.lastPayload
	require.NotNil(t, payload)
	assert.Equal(t, resp.Pricing.TotalPrice, payload.TotalPrice)
	assert.Equal(t, resp.Pricing.GSTAmount, payload.TaxAmount)
	assert.Equal(t, int64(0), payload.DiscountAmount)
	assert.Equal(t, domain.PaymentStatusPending, payload.PaymentStatus)
	assert.Equal(t, domain.BookingStatusConfirmed, payload.Status)
	assert.Equal(t, "9876543210", payload.GuestPhone)
	assert.Equal(t, "9876543210@guest.com", payload.GuestEmail)
	assert.Equal(t, "2026-09-01", payload.CheckIn)
	assert.Equal(t, "2026-09-04", payload.CheckOut)

	// Попытка записана в журнал как принятая
	require.Len(t, journal.entries, 1)
	entry := journal.entries[0]
	assert.Equal(t, "accepted", entry.Outcome)
	require.NotNil(t, entry.BookingReference)
	assert.Equal(t, "BK-1001", *entry.BookingReference)
	assert.Equal(t, int64(31860), entry.TotalPrice)
}

func TestExecuteFallbackPrice(t *testing.T) {
	client := &fakeStayClient{availability: plentyAvailable(), confirmation: acceptedConfirmation()}
	uc := newTestUseCase(client, nil)

	req := validRequest()
	req.PricePerNight = 0

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 3500 * 3 ночи * 2 комнаты
	assert.Equal(t, int64(21000), resp.Pricing.BasePrice)
	assert.Equal(t, domain.DefaultPricePerNight, client.lastPayload.PricePerNight)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"missing room id", func(r *Request) { r.RoomID = "" }, ErrInvalidInput},
		{"zero guests", func(r *Request) { r.Guests = 0; r.Children = 0 }, ErrInvalidInput},
		{"guests over room type capacity", func(r *Request) { r.Guests = 7 }, ErrCapacityExceeded},
		{"children equal guests", func(r *Request) { r.Children = 4 }, ErrNoAdults},
		{"rooms below minimum for guests", func(r *Request) { r.NumberOfRooms = 1 }, ErrRoomCountBelowMinimum},
		{"rooms above physical count", func(r *Request) { r.NumberOfRooms = 3 }, ErrRoomCountExceedsMax},
		{"one letter name", func(r *Request) { r.GuestName = "A" }, ErrInvalidGuestName},
		{"name with digits", func(r *Request) { r.GuestName = "Asha 42" }, ErrInvalidGuestName},
		{"phone too short", func(r *Request) { r.Phone = "98765" }, ErrInvalidPhone},
		{"phone starts below six", func(r *Request) { r.Phone = "1876543210" }, ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeStayClient{availability: plentyAvailable(), confirmation: acceptedConfirmation()}
			uc := newTestUseCase(client, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, client.createCalls, "validation failure must not reach the backend")
		})
	}

	t.Run("special requests over word limit", func(t *testing.T) {
		uc := newTestUseCase(&fakeStayClient{availability: plentyAvailable()}, nil)

		req := validRequest()
		for i := 0; i < domain.MaxSpecialRequestWords+1; i++ {
			req.SpecialRequests += "word "
		}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSpecialRequestsTooLong)
	})
}

func TestExecuteAvailabilityRecheck(t *testing.T) {
	t.Run("sold out blocks submission", func(t *testing.T) {
		client := &fakeStayClient{
			availability: &domain.AvailabilityResult{Available: false, AvailableRooms: 0, TotalRooms: 3, BookedRooms: 3},
		}
		uc := newTestUseCase(client, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSoldOut)
		assert.Zero(t, client.createCalls)
	})

	t.Run("insufficient rooms blocks submission", func(t *testing.T) {
		client := &fakeStayClient{
			availability: &domain.AvailabilityResult{Available: true, AvailableRooms: 1, TotalRooms: 3, BookedRooms: 2},
		}
		uc := newTestUseCase(client, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrInsufficientRooms)
		assert.Contains(t, err.Error(), "only 1 room(s) available, requested 2")
		assert.Zero(t, client.createCalls)
	})

	t.Run("unknown availability blocks submission", func(t *testing.T) {
		client := &fakeStayClient{availabilityErr: stayClient.ErrServiceUnavailable}
		uc := newTestUseCase(client, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrAvailabilityUnknown)
		assert.Zero(t, client.createCalls)
	})

	t.Run("unknown room", func(t *testing.T) {
		client := &fakeStayClient{availabilityErr: stayClient.ErrRoomNotFound}
		uc := newTestUseCase(client, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestExecuteSubmissionOutcomes(t *testing.T) {
	t.Run("backend rejection", func(t *testing.T) {
		client := &fakeStayClient{availability: plentyAvailable(), createErr: stayClient.ErrBookingRejected}
		journal := &fakeJournal{}
		uc := newTestUseCase(client, journal)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBookingRejected)

		require.Len(t, journal.entries, 1)
		assert.Equal(t, "rejected", journal.entries[0].Outcome)
		assert.NotNil(t, journal.entries[0].FailureReason)
	})

	t.Run("network failure", func(t *testing.T) {
		client := &fakeStayClient{availability: plentyAvailable(), createErr: stayClient.ErrServiceUnavailable}
		journal := &fakeJournal{}
		uc := newTestUseCase(client, journal)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSubmissionFailed)

		require.Len(t, journal.entries, 1)
		assert.Equal(t, "failed", journal.entries[0].Outcome)
	})

	t.Run("journal write failure does not fail the booking", func(t *testing.T) {
		client := &fakeStayClient{availability: plentyAvailable(), confirmation: acceptedConfirmation()}
		journal := &fakeJournal{err: assert.AnError}
		uc := newTestUseCase(client, journal)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "BK-1001", resp.BookingReference)
	})

	t.Run("nil journal is fine", func(t *testing.T) {
		client := &fakeStayClient{availability: plentyAvailable(), confirmation: acceptedConfirmation()}
		uc := newTestUseCase(client, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})
}
