package domain

// RoomType represents a bookable category of accommodation, as served by the
// homestay backend's room catalog. The engine never mutates it.
type RoomType struct {
	ID            string
	Name          string
	PricePerNight int64 // rupees per room per night
	Capacity      int
	Description   string
	Amenities     []string
	Images        []string
}

// EffectivePrice returns the nightly rate for pricing, falling back to the
// default rate when the catalog entry carries no usable price.
func (r *RoomType) EffectivePrice() int64 {
	if r.PricePerNight <= 0 {
		return DefaultPricePerNight
	}
	return r.PricePerNight
}
