package domain

// Default values applied when the guest has not filled a field yet
const (
	DefaultGuests    = 1
	DefaultChildren  = 0
	DefaultRoomCount = 1

	// DefaultPricePerNight is used when the room catalog carries no price.
	// Matches the rate of the cheapest room on the card.
	DefaultPricePerNight int64 = 3500
)

// Business validation constants
const (
	MinGuests = 1
	MaxGuests = 20

	MinRoomCount = 1
	MaxRoomCount = 6

	MinGuestNameLength = 2
	MaxGuestNameLength = 100

	MaxSpecialRequestWords = 30
	MaxSpecialRequestChars = 1000

	PhoneDigits = 10
)

// GSTRatePercent is the tax rate applied to the base booking price.
const GSTRatePercent = 18

// GSTRateLabel is the display form of the GST rate shown next to amounts.
const GSTRateLabel = "18%"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Statuses the homestay backend expects on a freshly submitted booking.
const (
	BookingStatusConfirmed = "confirmed"
	PaymentStatusPending   = "pending"
)
