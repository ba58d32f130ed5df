package stayapi

import (
	"encoding/json"
	"fmt"

	"github.com/mistvalley/booking-engine/internal/domain"
)

// normalizeAvailability переводит ответ проверки дат в каноническую форму.
// Бэкенд наблюдался с тремя вложенностями одного и того же ответа:
//
//	{available: ...}                          плоская
//	{success, data: {available: ...}}         data
//	{success, data: {data: {available: ...}}} data.data
//
// Ответ без булевого available ни на одном уровне — ошибка нормализации,
// никогда не "свободно".
func normalizeAvailability(body []byte) (*domain.AvailabilityResult, error) {
	var envelope availabilityEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability response: %v", ErrInvalidResponse, err)
	}

	record, err := resolveAvailabilityRecord(&envelope)
	if err != nil {
		return nil, err
	}

	return recordToResult(record), nil
}

// resolveAvailabilityRecord находит уровень вложенности, на котором лежат
// поля доступности.
func resolveAvailabilityRecord(envelope *availabilityEnvelope) (*availabilityRecord, error) {
	// Плоская форма
	if envelope.Available != nil {
		return &availabilityRecord{
			Available:      envelope.Available,
			AvailableRooms: envelope.AvailableRooms,
			TotalRooms:     envelope.TotalRooms,
			BookedRooms:    envelope.BookedRooms,
		}, nil
	}

	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("%w: availability response has no data", ErrInvalidResponse)
	}

	var record availabilityRecord
	if err := json.Unmarshal(envelope.Data, &record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability data: %v", ErrInvalidResponse, err)
	}

	// Форма data.available
	if record.Available != nil {
		return &record, nil
	}

	// Форма data.data.available
	if len(record.Data) > 0 {
		var nested availabilityRecord
		if err := json.Unmarshal(record.Data, &nested); err != nil {
			return nil, fmt.Errorf("%w: failed to decode nested availability data: %v", ErrInvalidResponse, err)
		}
		if nested.Available != nil {
			return &nested, nil
		}
	}

	return nil, fmt.Errorf("%w: availability response has no boolean available field", ErrInvalidResponse)
}

// recordToResult заполняет отсутствующие счётчики так, чтобы сохранялся
// инвариант availableRooms + bookedRooms == totalRooms.
func recordToResult(record *availabilityRecord) *domain.AvailabilityResult {
	available := *record.Available

	totalRooms := 1
	if record.TotalRooms != nil && *record.TotalRooms >= 1 {
		totalRooms = *record.TotalRooms
	}

	var availableRooms int
	switch {
	case record.AvailableRooms != nil:
		availableRooms = *record.AvailableRooms
	case record.BookedRooms != nil:
		availableRooms = totalRooms - *record.BookedRooms
	case available:
		availableRooms = totalRooms
	default:
		availableRooms = 0
	}
	if availableRooms < 0 {
		availableRooms = 0
	}
	if availableRooms > totalRooms {
		totalRooms = availableRooms
	}

	return &domain.AvailabilityResult{
		Available:      available,
		AvailableRooms: availableRooms,
		TotalRooms:     totalRooms,
		BookedRooms:    totalRooms - availableRooms,
	}
}

// normalizeRooms достаёт список комнат из одного из трёх мест ответа:
// rooms на верхнем уровне, data.rooms или data как массив.
func normalizeRooms(envelope *roomsEnvelope) ([]Room, error) {
	if len(envelope.Rooms) > 0 {
		return envelope.Rooms, nil
	}

	if len(envelope.Data) > 0 {
		var nested roomsData
		if err := json.Unmarshal(envelope.Data, &nested); err == nil && len(nested.Rooms) > 0 {
			return nested.Rooms, nil
		}

		var rooms []Room
		if err := json.Unmarshal(envelope.Data, &rooms); err == nil {
			return rooms, nil
		}
	}

	if envelope.Rooms != nil {
		// Верхнеуровневый rooms присутствует, но пуст
		return []Room{}, nil
	}

	return nil, fmt.Errorf("%w: rooms response has no recognizable rooms list", ErrInvalidResponse)
}
