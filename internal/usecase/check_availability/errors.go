package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidDateRange возвращается, когда диапазон дат не проходит валидацию
	ErrInvalidDateRange = errors.New("check_availability: invalid date range")

	// ErrRoomNotFound возвращается, когда бэкенд не знает такую комнату
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrAvailabilityUnknown возвращается, когда доступность нельзя определить
	// (сеть, таймаут, нечитаемый ответ). Не путать с "занято": вызывающий
	// блокирует отправку в обоих случаях, но сообщает о них по-разному.
	ErrAvailabilityUnknown = errors.New("check_availability: availability unknown")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
