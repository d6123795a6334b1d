package models

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	RoomStandard = "standard"
	RoomDeluxe   = "deluxe"
	RoomSuite    = "suite"
)

// TaxRate is applied to the pre-tax total for display only; stored booking
// prices exclude it.
const TaxRate = 0.10

const (
	// DefaultDriftInterval is how often simulated availability drift fires.
	DefaultDriftInterval = 5 // seconds

	// DefaultDriftChance is the per-hotel probability of a drift step per tick.
	DefaultDriftChance = 0.3

	// RateLimitRPS is the default per-client request rate for the HTTP API.
	RateLimitRPS = 50

	// RateLimitBurst is the default per-client burst for the HTTP API.
	RateLimitBurst = 100
)

// TierMultiplier returns the price multiplier for a room type.
func TierMultiplier(roomType string) (float64, bool) {
	switch roomType {
	case RoomStandard:
		return 1.0, true
	case RoomDeluxe:
		return 1.5, true
	case RoomSuite:
		return 2.0, true
	default:
		return 0, false
	}
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusCompleted || s == StatusCancelled
}
