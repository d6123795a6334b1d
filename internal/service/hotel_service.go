package service

import (
	"context"
	"strings"

	"hotelhub/internal/events"
	"hotelhub/internal/models"
	"hotelhub/internal/store"

	"github.com/rs/zerolog"
)

// HotelFilter narrows the catalog. Zero values mean "no constraint"; the
// location "all" matches everything.
type HotelFilter struct {
	Query     string
	Location  string
	MaxPrice  float64
	MinRating float64
}

type HotelService struct {
	catalog *store.Catalog
	ledger  *store.Ledger
	bus     *events.EventBus
	logger  *zerolog.Logger
}

func NewHotelService(catalog *store.Catalog, ledger *store.Ledger, bus *events.EventBus, logger *zerolog.Logger) *HotelService {
	return &HotelService{catalog: catalog, ledger: ledger, bus: bus, logger: logger}
}

func (s *HotelService) List() []models.Hotel {
	return s.catalog.List()
}

func (s *HotelService) Get(id string) (models.Hotel, bool) {
	return s.catalog.Get(id)
}

func (s *HotelService) Search(query string) []models.Hotel {
	return s.catalog.Search(query)
}

// Filter applies the filter to the current catalog. See FilterHotels.
func (s *HotelService) Filter(f HotelFilter) []models.Hotel {
	return FilterHotels(s.catalog.List(), f)
}

// Locations returns the distinct hotel locations in catalog order.
func (s *HotelService) Locations() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, h := range s.catalog.List() {
		if !seen[h.Location] {
			seen[h.Location] = true
			out = append(out, h.Location)
		}
	}
	return out
}

func (s *HotelService) Add(ctx context.Context, h models.Hotel) (models.Hotel, error) {
	added, err := s.catalog.Add(ctx, h)
	if err != nil {
		return models.Hotel{}, err
	}

	s.logger.Info().Str("hotel_id", added.ID).Str("name", added.Name).Msg("hotel added")
	_ = s.bus.PublishJSON(events.EventHotelAdded, events.HotelEventPayload{
		HotelID: added.ID, Name: added.Name, Location: added.Location,
	})
	return added, nil
}

func (s *HotelService) Update(ctx context.Context, id string, upd models.HotelUpdate) error {
	if err := s.catalog.Update(ctx, id, upd); err != nil {
		return err
	}

	if h, ok := s.catalog.Get(id); ok {
		_ = s.bus.PublishJSON(events.EventHotelUpdated, events.HotelEventPayload{
			HotelID: h.ID, Name: h.Name, Location: h.Location,
		})
	}
	return nil
}

func (s *HotelService) Remove(ctx context.Context, id string) error {
	h, ok := s.catalog.Get(id)
	if err := s.catalog.Remove(ctx, id); err != nil {
		return err
	}

	if ok {
		s.logger.Info().Str("hotel_id", id).Msg("hotel removed")
		_ = s.bus.PublishJSON(events.EventHotelDeleted, events.HotelEventPayload{
			HotelID: h.ID, Name: h.Name, Location: h.Location,
		})
	}
	return nil
}

func (s *HotelService) Adjust(ctx context.Context, id string, roomsDelta int64, priceDelta float64) error {
	return s.catalog.Adjust(ctx, id, roomsDelta, priceDelta)
}

// Stats is the admin dashboard summary. OccupancyRate is the share of rooms
// currently taken across the catalog.
type Stats struct {
	TotalHotels    int     `json:"total_hotels"`
	TotalBookings  int     `json:"total_bookings"`
	ActiveBookings int     `json:"active_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// Stats aggregates over the catalog and the full ledger. Revenue counts every
// booking that was not cancelled.
func (s *HotelService) Stats() Stats {
	hotels := s.catalog.List()
	bookings := s.ledger.All()

	st := Stats{TotalHotels: len(hotels), TotalBookings: len(bookings)}
	for _, b := range bookings {
		if b.Status == models.StatusActive {
			st.ActiveBookings++
		}
		if b.Status != models.StatusCancelled {
			st.TotalRevenue += b.TotalPrice
		}
	}

	var available, total int64
	for _, h := range hotels {
		available += h.AvailableRooms
		total += h.TotalRooms
	}
	if total > 0 {
		st.OccupancyRate = float64(total-available) / float64(total)
	}
	return st
}

// FilterHotels applies the filter stages in order: text query, location,
// price ceiling, rating floor. Pure and order-preserving; applying the same
// filter twice yields the same result.
func FilterHotels(hotels []models.Hotel, f HotelFilter) []models.Hotel {
	out := append([]models.Hotel(nil), hotels...)

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		out = keep(out, func(h models.Hotel) bool {
			return strings.Contains(strings.ToLower(h.Name), q) ||
				strings.Contains(strings.ToLower(h.Location), q)
		})
	}

	if loc := strings.ToLower(strings.TrimSpace(f.Location)); loc != "" && loc != "all" {
		out = keep(out, func(h models.Hotel) bool {
			return strings.Contains(strings.ToLower(h.Location), loc)
		})
	}

	if f.MaxPrice > 0 {
		out = keep(out, func(h models.Hotel) bool { return h.PricePerNight <= f.MaxPrice })
	}

	if f.MinRating > 0 {
		out = keep(out, func(h models.Hotel) bool { return h.Rating >= f.MinRating })
	}

	return out
}

func keep(hotels []models.Hotel, pred func(models.Hotel) bool) []models.Hotel {
	out := hotels[:0:0]
	for _, h := range hotels {
		if pred(h) {
			out = append(out, h)
		}
	}
	return out
}
