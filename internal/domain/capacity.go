package domain

// CapacityProfile describes the occupancy limits of one room type.
// Invariant: MaxGuestsTotal == MaxRoomsOfType * GuestsPerRoom.
type CapacityProfile struct {
	MaxGuestsTotal int // hard cap on guests across all rooms of this type
	MaxRoomsOfType int // physical rooms of this type in the property
	GuestsPerRoom  int // beds per room
}

// capacityProfiles maps room type names to their occupancy limits.
// Every room type sleeps three guests; the types differ only in how many
// physical rooms the property has.
var capacityProfiles = map[string]CapacityProfile{
	"Family Suite":         {MaxGuestsTotal: 9, MaxRoomsOfType: 3, GuestsPerRoom: 3},
	"Deluxe Mountain View": {MaxGuestsTotal: 6, MaxRoomsOfType: 2, GuestsPerRoom: 3},
	"Cozy Mountain Cabin":  {MaxGuestsTotal: 3, MaxRoomsOfType: 1, GuestsPerRoom: 3},
}

// defaultCapacityProfile is used for room types not in the table. Lookup must
// never fail: the booking flow always needs some recommendation to offer.
var defaultCapacityProfile = CapacityProfile{
	MaxGuestsTotal: 9,
	MaxRoomsOfType: 6,
	GuestsPerRoom:  3,
}

// CapacityProfileFor returns the occupancy limits for a room type name.
// Unknown names fall back to the default profile.
func CapacityProfileFor(roomTypeName string) CapacityProfile {
	if profile, ok := capacityProfiles[roomTypeName]; ok {
		return profile
	}
	return defaultCapacityProfile
}

// RecommendedRooms returns the minimum number of rooms that fits the given
// guest count, capped at the number of physical rooms of the type.
// Monotone non-decreasing in guests for a fixed profile.
func RecommendedRooms(guests int, profile CapacityProfile) int {
	if guests <= 0 {
		return MinRoomCount
	}

	perRoom := profile.GuestsPerRoom
	if perRoom <= 0 {
		perRoom = defaultCapacityProfile.GuestsPerRoom
	}

	recommended := (guests + perRoom - 1) / perRoom
	if recommended > profile.MaxRoomsOfType {
		return profile.MaxRoomsOfType
	}
	return recommended
}

// MinimumRooms returns the smallest room count allowed for the guest count,
// ignoring the physical cap. Used to reject drafts that under-book rooms.
func MinimumRooms(guests int, profile CapacityProfile) int {
	if guests <= 0 {
		return MinRoomCount
	}

	perRoom := profile.GuestsPerRoom
	if perRoom <= 0 {
		perRoom = defaultCapacityProfile.GuestsPerRoom
	}

	return (guests + perRoom - 1) / perRoom
}
