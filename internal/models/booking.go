package models

import "time"

type Booking struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotel_id"`
	HotelName string    `json:"hotel_name"`
	UserID    string    `json:"user_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	RoomType  string    `json:"room_type"` // standard, deluxe, suite
	Guests    int       `json:"guests"`
	// TotalPrice is the pre-tax amount (nightly rate x nights x tier
	// multiplier). Tax is computed at display time and never persisted.
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"` // active, completed, cancelled
	CreatedAt  time.Time `json:"created_at"`
}

// Terminal reports whether the booking status allows no further transitions.
func (b Booking) Terminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}
