package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityProfileFor(t *testing.T) {
	t.Run("known room types", func(t *testing.T) {
		assert.Equal(t, CapacityProfile{MaxGuestsTotal: 9, MaxRoomsOfType: 3, GuestsPerRoom: 3},
			CapacityProfileFor("Family Suite"))
		assert.Equal(t, CapacityProfile{MaxGuestsTotal: 6, MaxRoomsOfType: 2, GuestsPerRoom: 3},
			CapacityProfileFor("Deluxe Mountain View"))
		assert.Equal(t, CapacityProfile{MaxGuestsTotal: 3, MaxRoomsOfType: 1, GuestsPerRoom: 3},
			CapacityProfileFor("Cozy Mountain Cabin"))
	})

	t.Run("unknown room type falls back to default", func(t *testing.T) {
		profile := CapacityProfileFor("Treehouse")
		assert.Equal(t, defaultCapacityProfile, profile)
	})

	t.Run("profiles keep total = rooms * per-room", func(t *testing.T) {
		for name, profile := range capacityProfiles {
			assert.Equal(t, profile.MaxRoomsOfType*profile.GuestsPerRoom, profile.MaxGuestsTotal, name)
		}
	})
}

func TestRecommendedRooms(t *testing.T) {
	familySuite := CapacityProfileFor("Family Suite")
	deluxe := CapacityProfileFor("Deluxe Mountain View")
	cabin := CapacityProfileFor("Cozy Mountain Cabin")

	tests := []struct {
		name    string
		guests  int
		profile CapacityProfile
		want    int
	}{
		{"one guest one room", 1, familySuite, 1},
		{"exactly one full room", 3, familySuite, 1},
		{"one over a full room", 4, familySuite, 2},
		{"five guests need two rooms", 5, deluxe, 2},
		{"full house", 9, familySuite, 3},
		{"over capacity capped at physical rooms", 12, familySuite, 3},
		{"cabin always recommends its single room", 3, cabin, 1},
		{"zero guests default to one room", 0, familySuite, 1},
		{"negative guests default to one room", -2, familySuite, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecommendedRooms(tt.guests, tt.profile))
		})
	}
}

func TestRecommendedRoomsMonotone(t *testing.T) {
	profile := CapacityProfileFor("Family Suite")

	prev := 0
	for guests := 1; guests <= profile.MaxGuestsTotal; guests++ {
		got := RecommendedRooms(guests, profile)
		assert.GreaterOrEqual(t, got, prev, "guests=%d", guests)
		prev = got
	}
}

func TestMinimumRooms(t *testing.T) {
	familySuite := CapacityProfileFor("Family Suite")

	// Unlike the recommendation, the minimum ignores the physical cap:
	// it exists to reject under-booked drafts, not to stay bookable.
	assert.Equal(t, 1, MinimumRooms(3, familySuite))
	assert.Equal(t, 2, MinimumRooms(4, familySuite))
	assert.Equal(t, 4, MinimumRooms(10, familySuite))
	assert.Equal(t, 1, MinimumRooms(0, familySuite))
}
