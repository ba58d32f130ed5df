package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда диапазон дат не проходит валидацию
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrCapacityExceeded возвращается, когда гостей больше, чем вмещает тип комнаты
	ErrCapacityExceeded = errors.New("create_booking: guest count exceeds room type capacity")

	// ErrRoomCountBelowMinimum возвращается, когда комнат меньше, чем нужно гостям
	ErrRoomCountBelowMinimum = errors.New("create_booking: room count below minimum for guests")

	// ErrRoomCountExceedsMax возвращается, когда комнат больше, чем физически есть
	ErrRoomCountExceedsMax = errors.New("create_booking: room count exceeds rooms of this type")

	// ErrNoAdults возвращается, когда среди гостей нет ни одного взрослого
	ErrNoAdults = errors.New("create_booking: at least one adult is required")

	// ErrInvalidGuestName возвращается при некорректном имени гостя
	ErrInvalidGuestName = errors.New("create_booking: invalid guest name")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrSpecialRequestsTooLong возвращается при превышении лимита пожеланий
	ErrSpecialRequestsTooLong = errors.New("create_booking: special requests too long")

	// ErrRoomNotFound возвращается, когда бэкенд не знает такую комнату
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrSoldOut возвращается, когда на диапазон дат нет свободных комнат
	ErrSoldOut = errors.New("create_booking: no rooms available for selected dates")

	// ErrInsufficientRooms возвращается, когда свободных комнат меньше запрошенного
	ErrInsufficientRooms = errors.New("create_booking: not enough rooms available")

	// ErrAvailabilityUnknown возвращается, когда доступность нельзя подтвердить.
	// Отправка блокируется: неизвестно — не значит свободно.
	ErrAvailabilityUnknown = errors.New("create_booking: availability unknown")

	// ErrBookingRejected возвращается, когда бэкенд отказал в бронировании
	ErrBookingRejected = errors.New("create_booking: booking rejected by backend")

	// ErrSubmissionFailed возвращается при сетевой ошибке отправки.
	// Черновик сохраняется, гость может повторить без перепечатывания.
	ErrSubmissionFailed = errors.New("create_booking: submission failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
