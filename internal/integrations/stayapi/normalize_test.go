package stayapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAvailability(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		wantAvailable      bool
		wantAvailableRooms int
		wantTotalRooms     int
		wantBookedRooms    int
	}{
		{
			name:               "flat shape",
			body:               `{"available": true, "availableRooms": 2, "totalRooms": 3, "bookedRooms": 1}`,
			wantAvailable:      true,
			wantAvailableRooms: 2,
			wantTotalRooms:     3,
			wantBookedRooms:    1,
		},
		{
			name:               "data shape",
			body:               `{"success": true, "data": {"available": true, "availableRooms": 1, "totalRooms": 2}}`,
			wantAvailable:      true,
			wantAvailableRooms: 1,
			wantTotalRooms:     2,
			wantBookedRooms:    1,
		},
		{
			name:               "data.data shape",
			body:               `{"success": true, "data": {"data": {"available": false, "availableRooms": 0, "totalRooms": 3}}}`,
			wantAvailable:      false,
			wantAvailableRooms: 0,
			wantTotalRooms:     3,
			wantBookedRooms:    3,
		},
		{
			name:               "bare available true defaults counters",
			body:               `{"available": true}`,
			wantAvailable:      true,
			wantAvailableRooms: 1,
			wantTotalRooms:     1,
			wantBookedRooms:    0,
		},
		{
			name:               "bare available false defaults counters",
			body:               `{"available": false}`,
			wantAvailable:      false,
			wantAvailableRooms: 0,
			wantTotalRooms:     1,
			wantBookedRooms:    1,
		},
		{
			name:               "availableRooms derived from bookedRooms",
			body:               `{"available": true, "totalRooms": 3, "bookedRooms": 2}`,
			wantAvailable:      true,
			wantAvailableRooms: 1,
			wantTotalRooms:     3,
			wantBookedRooms:    2,
		},
		{
			name:               "availableRooms above total grows total",
			body:               `{"available": true, "availableRooms": 4, "totalRooms": 2}`,
			wantAvailable:      true,
			wantAvailableRooms: 4,
			wantTotalRooms:     4,
			wantBookedRooms:    0,
		},
		{
			name:               "negative availableRooms clamps to zero",
			body:               `{"available": false, "availableRooms": -2, "totalRooms": 3}`,
			wantAvailable:      false,
			wantAvailableRooms: 0,
			wantTotalRooms:     3,
			wantBookedRooms:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalizeAvailability([]byte(tt.body))
			require.NoError(t, err)

			assert.Equal(t, tt.wantAvailable, result.Available)
			assert.Equal(t, tt.wantAvailableRooms, result.AvailableRooms)
			assert.Equal(t, tt.wantTotalRooms, result.TotalRooms)
			assert.Equal(t, tt.wantBookedRooms, result.BookedRooms)

			// Инвариант нормализации
			assert.Equal(t, result.TotalRooms, result.AvailableRooms+result.BookedRooms)
		})
	}
}

func TestNormalizeAvailabilityInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no available at any level", `{"success": true, "data": {"rooms": 3}}`},
		{"empty object", `{}`},
		{"success without data", `{"success": true}`},
		{"only counters no boolean", `{"availableRooms": 2, "totalRooms": 3}`},
		{"malformed json", `{"available": tr`},
		{"data.data without available", `{"data": {"data": {"totalRooms": 3}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := normalizeAvailability([]byte(tt.body))
			assert.Nil(t, result)
			// Никогда не "свободно": нечитаемый ответ — всегда ошибка
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestNormalizeRooms(t *testing.T) {
	roomsJSON := `[{"_id": "r1", "name": "Family Suite", "price": 4500}]`

	tests := []struct {
		name string
		body string
		want int
	}{
		{"top-level rooms", `{"success": true, "rooms": ` + roomsJSON + `}`, 1},
		{"data.rooms", `{"success": true, "data": {"rooms": ` + roomsJSON + `}}`, 1},
		{"data as array", `{"success": true, "data": ` + roomsJSON + `}`, 1},
		{"empty top-level rooms", `{"success": true, "rooms": []}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var envelope roomsEnvelope
			require.NoError(t, json.Unmarshal([]byte(tt.body), &envelope))

			rooms, err := normalizeRooms(&envelope)
			require.NoError(t, err)
			assert.Len(t, rooms, tt.want)

			if tt.want > 0 {
				assert.Equal(t, "r1", rooms[0].ID)
				assert.Equal(t, "Family Suite", rooms[0].Name)
				assert.Equal(t, int64(4500), rooms[0].Price)
			}
		})
	}

	t.Run("no recognizable list", func(t *testing.T) {
		var envelope roomsEnvelope
		require.NoError(t, json.Unmarshal([]byte(`{"success": true}`), &envelope))

		_, err := normalizeRooms(&envelope)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
