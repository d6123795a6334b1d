package models

// DefaultHotels returns the catalog seeded on first run when the config does
// not supply its own list.
func DefaultHotels() []Hotel {
	return []Hotel{
		{
			ID:             "1",
			Name:           "Grand Luxury Hotel",
			Location:       "New York, USA",
			Rating:         4.8,
			Image:          "https://images.unsplash.com/photo-1561501900-3701fa6a0864?w=1080",
			PricePerNight:  250,
			AvailableRooms: 8,
			TotalRooms:     50,
			Amenities:      []string{"WiFi", "Pool", "Gym", "Restaurant"},
		},
		{
			ID:             "2",
			Name:           "Modern Comfort Suites",
			Location:       "Los Angeles, USA",
			Rating:         4.6,
			Image:          "https://images.unsplash.com/photo-1572177215152-32f247303126?w=1080",
			PricePerNight:  180,
			AvailableRooms: 12,
			TotalRooms:     40,
			Amenities:      []string{"WiFi", "Breakfast", "Parking"},
		},
		{
			ID:             "3",
			Name:           "Beachside Paradise Resort",
			Location:       "Miami, USA",
			Rating:         4.9,
			Image:          "https://images.unsplash.com/photo-1729717949780-46e511489c3f?w=1080",
			PricePerNight:  320,
			AvailableRooms: 5,
			TotalRooms:     30,
			Amenities:      []string{"WiFi", "Beach Access", "Spa", "Pool"},
		},
		{
			ID:             "4",
			Name:           "Downtown Business Hotel",
			Location:       "Chicago, USA",
			Rating:         4.5,
			Image:          "https://images.unsplash.com/photo-1694595437436-2ccf5a95591f?w=1080",
			PricePerNight:  200,
			AvailableRooms: 15,
			TotalRooms:     60,
			Amenities:      []string{"WiFi", "Conference Rooms", "Gym"},
		},
		{
			ID:             "5",
			Name:           "Boutique City Inn",
			Location:       "San Francisco, USA",
			Rating:         4.7,
			Image:          "https://images.unsplash.com/photo-1649731000184-7ced04998f44?w=1080",
			PricePerNight:  220,
			AvailableRooms: 6,
			TotalRooms:     25,
			Amenities:      []string{"WiFi", "Rooftop Bar", "Restaurant"},
		},
		{
			ID:             "6",
			Name:           "Mountain View Lodge",
			Location:       "Denver, USA",
			Rating:         4.8,
			Image:          "https://images.unsplash.com/photo-1445019980597-93fa8acb246c?w=1080",
			PricePerNight:  190,
			AvailableRooms: 10,
			TotalRooms:     35,
			Amenities:      []string{"WiFi", "Hiking Trails", "Fireplace"},
		},
	}
}
