package stayapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/mistvalley/booking-engine/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer учитывает исходы запросов к бэкенду (метрики).
// Может быть nil, тогда запросы не учитываются.
type Observer interface {
	ObserveUpstreamRequest(operation, outcome string, duration time.Duration)
}

// Client клиент для работы с REST-бэкендом усадьбы.
// Единственный сетевой слой движка: каталог комнат, проверка дат, создание
// бронирования. Таймаут ограничивает каждый запрос целиком.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	observer   Observer
}

// NewClient создает новый экземпляр клиента бэкенда усадьбы
func NewClient(baseURL string, timeout time.Duration, log Logger, observer Observer) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:      log,
		observer: observer,
	}
}

// GetRooms получает каталог комнат усадьбы.
func (c *Client) GetRooms(ctx context.Context) ([]domain.RoomType, error) {
	endpoint := fmt.Sprintf("%s/rooms", c.baseURL)

	body, err := c.get(ctx, "get_rooms", endpoint)
	if err != nil {
		return nil, err
	}

	var envelope roomsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode rooms response: %v", ErrInvalidResponse, err)
	}

	if !envelope.Success {
		return nil, fmt.Errorf("%w: rooms request unsuccessful: %s", ErrInvalidResponse, envelope.Error)
	}

	rooms, err := normalizeRooms(&envelope)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RoomType, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, domain.RoomType{
			ID:            room.ID,
			Name:          room.Name,
			PricePerNight: room.Price,
			Capacity:      room.Capacity,
			Description:   room.Description,
			Amenities:     room.Amenities,
			Images:        room.Images,
		})
	}

	c.log.Info("GetRooms: fetched %d rooms", len(result))
	return result, nil
}

// CheckDateAvailability проверяет доступность комнаты на диапазон дат.
// Любая ошибка здесь означает "доступность неизвестна", а не "занято".
func (c *Client) CheckDateAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (*domain.AvailabilityResult, error) {
	endpoint := fmt.Sprintf("%s/rooms/%s/check-dates?checkInDate=%s&checkOutDate=%s",
		c.baseURL,
		url.PathEscape(roomID),
		url.QueryEscape(domain.FormatDate(checkIn)),
		url.QueryEscape(domain.FormatDate(checkOut)),
	)

	body, err := c.get(ctx, "check_dates", endpoint)
	if err != nil {
		return nil, err
	}

	result, err := normalizeAvailability(body)
	if err != nil {
		c.log.Warn("CheckDateAvailability: room=%s: %v", roomID, err)
		return nil, err
	}

	c.log.Info("CheckDateAvailability: room=%s %s..%s available=%t rooms %d/%d",
		roomID, domain.FormatDate(checkIn), domain.FormatDate(checkOut),
		result.Available, result.AvailableRooms, result.TotalRooms)
	return result, nil
}

// CreateBooking отправляет собранное бронирование на бэкенд.
func (c *Client) CreateBooking(ctx context.Context, payload *BookingPayload) (*BookingConfirmation, error) {
	endpoint := fmt.Sprintf("%s/bookings", c.baseURL)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode booking payload: %v", ErrInternal, err)
	}

	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("create_booking", "network_error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe("create_booking", "read_error", started)
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrServiceUnavailable, err)
	}

	var envelope bookingEnvelope
	if decodeErr := json.Unmarshal(body, &envelope); decodeErr != nil && resp.StatusCode < http.StatusInternalServerError {
		c.observe("create_booking", "invalid_response", started)
		return nil, fmt.Errorf("%w: failed to decode booking response: %v", ErrInvalidResponse, decodeErr)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		c.observe("create_booking", "upstream_error", started)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrServiceUnavailable, resp.StatusCode)

	case resp.StatusCode >= http.StatusBadRequest:
		c.observe("create_booking", "rejected", started)
		return nil, fmt.Errorf("%w: %s", ErrBookingRejected, rejectionMessage(&envelope, resp.StatusCode))

	case !envelope.Success:
		c.observe("create_booking", "rejected", started)
		return nil, fmt.Errorf("%w: %s", ErrBookingRejected, rejectionMessage(&envelope, resp.StatusCode))
	}

	c.observe("create_booking", "ok", started)
	if envelope.Booking != nil {
		c.log.Info("CreateBooking: accepted, reference=%s", envelope.Booking.BookingReference)
		return envelope.Booking, nil
	}

	// Бэкенд подтвердил бронирование, но не вернул его тело
	c.log.Warn("CreateBooking: accepted without booking body")
	return &BookingConfirmation{}, nil
}

// get выполняет GET-запрос и возвращает тело успешного ответа.
func (c *Client) get(ctx context.Context, operation, endpoint string) ([]byte, error) {
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "network_error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		c.observe(operation, "not_found", started)
		return nil, ErrRoomNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		c.observe(operation, "upstream_error", started)
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.observe(operation, "invalid_response", started)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(operation, "read_error", started)
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrServiceUnavailable, err)
	}

	c.observe(operation, "ok", started)
	return body, nil
}

func (c *Client) observe(operation, outcome string, started time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstreamRequest(operation, outcome, time.Since(started))
	}
}

func rejectionMessage(envelope *bookingEnvelope, statusCode int) string {
	if envelope.Error != "" {
		return envelope.Error
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return fmt.Sprintf("status code %d", statusCode)
}
