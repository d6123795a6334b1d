package models

type Hotel struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Location       string   `json:"location" yaml:"location"`
	Rating         float64  `json:"rating" yaml:"rating"`
	Image          string   `json:"image" yaml:"image"`
	PricePerNight  float64  `json:"price_per_night" yaml:"price_per_night"`
	AvailableRooms int64    `json:"available_rooms" yaml:"available_rooms"`
	TotalRooms     int64    `json:"total_rooms" yaml:"total_rooms"`
	Amenities      []string `json:"amenities" yaml:"amenities"`
}

// HotelUpdate carries a partial update for a hotel record. Nil fields are
// left untouched on merge.
type HotelUpdate struct {
	Name           *string   `json:"name"`
	Location       *string   `json:"location"`
	Rating         *float64  `json:"rating"`
	Image          *string   `json:"image"`
	PricePerNight  *float64  `json:"price_per_night"`
	AvailableRooms *int64    `json:"available_rooms"`
	TotalRooms     *int64    `json:"total_rooms"`
	Amenities      *[]string `json:"amenities"`
}

// Apply merges the non-nil fields of the update over the hotel.
func (u HotelUpdate) Apply(h Hotel) Hotel {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Location != nil {
		h.Location = *u.Location
	}
	if u.Rating != nil {
		h.Rating = *u.Rating
	}
	if u.Image != nil {
		h.Image = *u.Image
	}
	if u.PricePerNight != nil {
		h.PricePerNight = *u.PricePerNight
	}
	if u.AvailableRooms != nil {
		h.AvailableRooms = *u.AvailableRooms
	}
	if u.TotalRooms != nil {
		h.TotalRooms = *u.TotalRooms
	}
	if u.Amenities != nil {
		h.Amenities = append([]string(nil), (*u.Amenities)...)
	}
	return h
}
