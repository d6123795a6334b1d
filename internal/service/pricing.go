package service

import (
	"math"
	"time"

	"hotelhub/internal/models"
	"hotelhub/internal/store"
)

// Quote is the price breakdown for a prospective stay. TotalPrice is the
// amount recorded on a booking; DisplayTotal adds the tax shown to the guest.
type Quote struct {
	Nights       int
	BasePrice    float64
	Multiplier   float64
	TotalPrice   float64
	DisplayTotal float64
}

// Nights returns the stay length in whole nights, rounding partial days up.
// Never negative.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	nights := int(math.Ceil(hours / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// PriceQuote computes the stay total for a nightly rate and room type.
func PriceQuote(pricePerNight float64, nights int, roomType string) (Quote, error) {
	multiplier, ok := models.TierMultiplier(roomType)
	if !ok {
		return Quote{}, store.ErrInvalidRoomType
	}

	total := pricePerNight * float64(nights) * multiplier
	return Quote{
		Nights:       nights,
		BasePrice:    pricePerNight,
		Multiplier:   multiplier,
		TotalPrice:   total,
		DisplayTotal: total * (1 + models.TaxRate),
	}, nil
}
