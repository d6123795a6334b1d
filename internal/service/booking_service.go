package service

import (
	"context"
	"strings"
	"time"

	"hotelhub/internal/events"
	"hotelhub/internal/metrics"
	"hotelhub/internal/models"
	"hotelhub/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BookingRequest carries everything needed to create a booking.
type BookingRequest struct {
	HotelID  string
	UserID   string
	CheckIn  time.Time
	CheckOut time.Time
	RoomType string
	Guests   int
}

// BookingFilter narrows a booking listing. Status "all" or "" matches every
// status; Query matches hotel name or booking id, case-insensitively.
type BookingFilter struct {
	Status string
	Query  string
}

type BookingService struct {
	ledger  *store.Ledger
	catalog *store.Catalog
	bus     *events.EventBus
	logger  *zerolog.Logger
}

func NewBookingService(ledger *store.Ledger, catalog *store.Catalog, bus *events.EventBus, logger *zerolog.Logger) *BookingService {
	return &BookingService{ledger: ledger, catalog: catalog, bus: bus, logger: logger}
}

// Create validates the request, prices the stay and appends the booking. The
// recorded total excludes tax. A validation failure or failed persist leaves
// the ledger untouched.
func (s *BookingService) Create(ctx context.Context, req BookingRequest) (models.Booking, error) {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return models.Booking{}, store.ErrMissingDates
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	if nights < 1 {
		return models.Booking{}, store.ErrInvalidDateRange
	}

	if req.Guests < 1 {
		return models.Booking{}, store.ErrNoGuests
	}

	hotel, ok := s.catalog.Get(req.HotelID)
	if !ok {
		return models.Booking{}, store.ErrHotelNotFound
	}

	quote, err := PriceQuote(hotel.PricePerNight, nights, req.RoomType)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		ID:         uuid.NewString(),
		HotelID:    hotel.ID,
		HotelName:  hotel.Name,
		UserID:     req.UserID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		RoomType:   req.RoomType,
		Guests:     req.Guests,
		TotalPrice: quote.TotalPrice,
		Status:     models.StatusActive,
		CreatedAt:  time.Now(),
	}

	if err := s.ledger.Append(ctx, booking); err != nil {
		return models.Booking{}, err
	}

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("hotel_id", booking.HotelID).
		Str("user_id", booking.UserID).
		Int("nights", nights).
		Float64("total", booking.TotalPrice).
		Msg("booking created")

	metrics.IncBookingCreated()
	_ = s.bus.PublishJSON(events.EventBookingCreated, bookingPayload(booking))

	return booking, nil
}

// Get returns a single booking by id.
func (s *BookingService) Get(id string) (models.Booking, bool) {
	return s.ledger.Get(id)
}

// ListForUser returns the user's bookings in creation order.
func (s *BookingService) ListForUser(userID string) []models.Booking {
	return s.ledger.ListForUser(userID)
}

// ListAll returns every booking in creation order.
func (s *BookingService) ListAll() []models.Booking {
	return s.ledger.All()
}

// SetStatus applies a one-way transition out of the active state and reports
// whether anything changed. No-op transitions publish nothing.
func (s *BookingService) SetStatus(ctx context.Context, id, status string) (models.Booking, bool, error) {
	booking, changed, err := s.ledger.SetStatus(ctx, id, status)
	if err != nil || !changed {
		return booking, changed, err
	}

	s.logger.Info().Str("booking_id", id).Str("status", status).Msg("booking status changed")
	metrics.IncBookingStatus(status)

	eventType := events.EventBookingCompleted
	if status == models.StatusCancelled {
		eventType = events.EventBookingCancelled
	}
	_ = s.bus.PublishJSON(eventType, bookingPayload(booking))

	return booking, true, nil
}

// FilterBookings applies the status and text stages in order. Pure and
// order-preserving.
func FilterBookings(bookings []models.Booking, f BookingFilter) []models.Booking {
	out := append([]models.Booking(nil), bookings...)

	if f.Status != "" && f.Status != "all" {
		kept := out[:0:0]
		for _, b := range out {
			if b.Status == f.Status {
				kept = append(kept, b)
			}
		}
		out = kept
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		kept := out[:0:0]
		for _, b := range out {
			if strings.Contains(strings.ToLower(b.HotelName), q) ||
				strings.Contains(strings.ToLower(b.ID), q) {
				kept = append(kept, b)
			}
		}
		out = kept
	}

	return out
}

func bookingPayload(b models.Booking) events.BookingEventPayload {
	return events.BookingEventPayload{
		BookingID:  b.ID,
		HotelID:    b.HotelID,
		HotelName:  b.HotelName,
		UserID:     b.UserID,
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
	}
}
