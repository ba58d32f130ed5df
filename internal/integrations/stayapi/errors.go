package stayapi

import "errors"

var (
	// ErrRoomNotFound возвращается, когда бэкенд не знает такую комнату
	ErrRoomNotFound = errors.New("stayapi client: room not found")

	// ErrInvalidResponse возвращается при ответе, из которого нельзя надёжно
	// прочитать доступность. Такой ответ никогда не трактуется как "свободно".
	ErrInvalidResponse = errors.New("stayapi client: invalid response")

	// ErrServiceUnavailable возвращается при сетевой ошибке, таймауте или
	// 5xx-ответе бэкенда. Отличается от "0 свободных комнат": вызывающий
	// должен показать retry-able баннер, а не "sold out".
	ErrServiceUnavailable = errors.New("stayapi client: service unavailable")

	// ErrBookingRejected возвращается, когда бэкенд отказал в создании
	// бронирования (success=false или 4xx)
	ErrBookingRejected = errors.New("stayapi client: booking rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stayapi client: internal error")
)
