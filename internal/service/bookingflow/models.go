package bookingflow

import (
	"github.com/mistvalley/booking-engine/internal/domain"
)

// State состояние потока бронирования.
type State string

const (
	// StateIdle комната не выбрана
	StateIdle State = "idle"
	// StateRoomSelected выбрана комната, даты ещё нет
	StateRoomSelected State = "room_selected"
	// StateDatesSelected даты выбраны, проверка доступности в полёте
	StateDatesSelected State = "dates_selected"
	// StateAvailabilityChecked ответ проверки получен (см. AvailabilityStatus)
	StateAvailabilityChecked State = "availability_checked"
	// StateSubmitting бронирование отправляется на бэкенд
	StateSubmitting State = "submitting"
)

// AvailabilityStatus итог последней проверки доступности в рамках потока.
type AvailabilityStatus string

const (
	// AvailabilityUnknown проверка не выполнялась или её результат сброшен
	AvailabilityUnknown AvailabilityStatus = "unknown"
	// AvailabilityChecking проверка в полёте
	AvailabilityChecking AvailabilityStatus = "checking"
	// AvailabilityOK свободных комнат хватает на запрошенное количество
	AvailabilityOK AvailabilityStatus = "available"
	// AvailabilityInsufficient комнаты есть, но меньше запрошенного
	AvailabilityInsufficient AvailabilityStatus = "insufficient"
	// AvailabilitySoldOut свободных комнат нет
	AvailabilitySoldOut AvailabilityStatus = "sold_out"
	// AvailabilityError проверка не удалась (сеть/бэкенд); не "занято"
	AvailabilityError AvailabilityStatus = "error"
)

// Snapshot видимое наблюдателям состояние потока. Значение-копия:
// наблюдатели только читают, единственный писатель — сам поток.
type Snapshot struct {
	FlowID string
	State  State

	Room  *domain.RoomType
	Draft domain.BookingDraft

	AvailabilityStatus AvailabilityStatus
	Availability       *domain.AvailabilityResult

	Pricing *domain.PricingBreakdown

	// FieldErrors локальные ошибки полей черновика (inline-сообщения)
	FieldErrors map[string]string

	// LastError последняя ошибка отправки или проверки, для баннера
	LastError string

	// BookingReference заполняется после принятого бронирования
	BookingReference string
}

// CanSubmit сообщает, допустима ли отправка из этого состояния.
func (s *Snapshot) CanSubmit() bool {
	return s.State == StateAvailabilityChecked &&
		s.AvailabilityStatus == AvailabilityOK &&
		len(s.FieldErrors) == 0
}

// checkKey идентифицирует проверку доступности в полёте. Ответ применяется
// только если ключ всё ещё совпадает с текущим выбором.
type checkKey struct {
	roomID   string
	checkIn  string
	checkOut string
}
