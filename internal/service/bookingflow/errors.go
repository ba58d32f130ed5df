package bookingflow

import "errors"

var (
	// ErrNoRoomSelected возвращается при действии, требующем выбранной комнаты
	ErrNoRoomSelected = errors.New("bookingflow: no room selected")

	// ErrNotReadyToSubmit возвращается при попытке отправить бронирование
	// без подтверждённой достаточной доступности
	ErrNotReadyToSubmit = errors.New("bookingflow: booking is not ready to submit")

	// ErrAlreadySubmitting возвращается при повторном Submit во время отправки
	ErrAlreadySubmitting = errors.New("bookingflow: submission already in progress")

	// ErrDraftInvalid возвращается, когда черновик содержит ошибки полей
	ErrDraftInvalid = errors.New("bookingflow: draft has field errors")
)
