package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityResultOccupancyRate(t *testing.T) {
	tests := []struct {
		name   string
		result AvailabilityResult
		want   float64
	}{
		{"empty homestay", AvailabilityResult{AvailableRooms: 3, TotalRooms: 3, BookedRooms: 0}, 0},
		{"one of three booked", AvailabilityResult{AvailableRooms: 2, TotalRooms: 3, BookedRooms: 1}, 100.0 / 3},
		{"fully booked", AvailabilityResult{AvailableRooms: 0, TotalRooms: 2, BookedRooms: 2}, 100},
		{"zero total rooms", AvailabilityResult{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.result.OccupancyRate(), 1e-9)
		})
	}
}

func TestAvailabilityResultCanAccommodate(t *testing.T) {
	result := AvailabilityResult{Available: true, AvailableRooms: 2, TotalRooms: 3, BookedRooms: 1}

	assert.True(t, result.CanAccommodate(1))
	assert.True(t, result.CanAccommodate(2))
	assert.False(t, result.CanAccommodate(3))
	assert.False(t, result.CanAccommodate(0))
	assert.False(t, result.IsSoldOut())

	soldOut := AvailabilityResult{TotalRooms: 3, BookedRooms: 3}
	assert.True(t, soldOut.IsSoldOut())
	assert.False(t, soldOut.CanAccommodate(1))
}
