package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingDraft(t *testing.T) {
	draft := NewBookingDraft()

	assert.Equal(t, DefaultGuests, draft.Guests)
	assert.Equal(t, DefaultChildren, draft.Children)
	assert.Equal(t, DefaultRoomCount, draft.RoomCount)
	assert.Equal(t, RoomCountAuto, draft.RoomCountSource)
}

func TestClampChildren(t *testing.T) {
	tests := []struct {
		name         string
		guests       int
		children     int
		wantChildren int
	}{
		{"children below guests untouched", 4, 2, 2},
		{"children equal guests pulled down", 3, 3, 2},
		{"children above guests pulled down", 3, 5, 2},
		{"single guest means no children", 1, 1, 0},
		{"zero guests leaves children alone", 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := BookingDraft{Guests: tt.guests, Children: tt.children}
			draft.ClampChildren()
			assert.Equal(t, tt.wantChildren, draft.Children)
			if tt.guests > 0 {
				assert.GreaterOrEqual(t, draft.Adults(), 1)
			}
		})
	}
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "9876543210", CleanPhone("98765 43210"))
	assert.Equal(t, "9876543210", CleanPhone("+91 98765-43210")[2:])
	assert.Equal(t, "", CleanPhone("no digits"))
}

func TestSynthesizeGuestEmail(t *testing.T) {
	assert.Equal(t, "9876543210@guest.com", SynthesizeGuestEmail("98765 43210"))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords("   "))
	assert.Equal(t, 3, CountWords("late  check-in please"))
}
