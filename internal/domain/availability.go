package domain

// AvailabilityResult is the normalized answer to "how many rooms of this type
// are free for the requested date range".
// Invariant: AvailableRooms + BookedRooms == TotalRooms.
type AvailabilityResult struct {
	Available      bool
	AvailableRooms int
	TotalRooms     int
	BookedRooms    int
}

// IsSoldOut reports whether no room of the type is free for the range.
func (a *AvailabilityResult) IsSoldOut() bool {
	return a.AvailableRooms <= 0
}

// CanAccommodate reports whether the requested room count fits into the free
// rooms for the range.
func (a *AvailabilityResult) CanAccommodate(roomCount int) bool {
	return roomCount > 0 && roomCount <= a.AvailableRooms
}

// OccupancyRate returns the share of booked rooms as a percentage (0-100).
func (a *AvailabilityResult) OccupancyRate() float64 {
	if a.TotalRooms == 0 {
		return 0
	}
	return float64(a.BookedRooms) / float64(a.TotalRooms) * 100
}
