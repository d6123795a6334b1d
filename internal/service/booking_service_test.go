package service

import (
	"context"
	"testing"
	"time"

	"hotelhub/internal/events"
	"hotelhub/internal/models"
	"hotelhub/internal/storage"
	"hotelhub/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T) (*BookingService, *events.EventBus) {
	t.Helper()
	ctx := context.Background()

	catalog, err := store.NewCatalog(ctx, storage.NewMemory(), []models.Hotel{
		{ID: "1", Name: "Grand Luxury Hotel", Location: "New York, USA", Rating: 4.8, PricePerNight: 250, AvailableRooms: 8, TotalRooms: 50},
	}, &discard)
	require.NoError(t, err)

	ledger, err := store.NewLedger(ctx, storage.NewMemory(), &discard)
	require.NoError(t, err)

	bus := events.NewEventBus()
	return NewBookingService(ledger, catalog, bus, &discard), bus
}

func validRequest() BookingRequest {
	return BookingRequest{
		HotelID:  "1",
		UserID:   "user-1",
		CheckIn:  date(2026, 10, 1),
		CheckOut: date(2026, 10, 3),
		RoomType: models.RoomDeluxe,
		Guests:   2,
	}
}

func TestBookingServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, bus := newBookingService(t)

		var published []string
		bus.Subscribe(events.EventBookingCreated, func(e *events.Event) error {
			published = append(published, e.Type)
			return nil
		})

		b, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, "Grand Luxury Hotel", b.HotelName)
		assert.Equal(t, models.StatusActive, b.Status)
		// 250 * 2 nights * 1.5 deluxe
		assert.Equal(t, 750.0, b.TotalPrice)
		assert.Equal(t, []string{events.EventBookingCreated}, published)
		assert.Len(t, svc.ListForUser("user-1"), 1)
	})

	t.Run("MissingDates", func(t *testing.T) {
		svc, _ := newBookingService(t)
		req := validRequest()
		req.CheckIn = time.Time{}
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, store.ErrMissingDates)
		assert.Empty(t, svc.ListAll())
	})

	t.Run("CheckOutBeforeCheckIn", func(t *testing.T) {
		svc, _ := newBookingService(t)
		req := validRequest()
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, store.ErrInvalidDateRange)
	})

	t.Run("SameDayStay", func(t *testing.T) {
		svc, _ := newBookingService(t)
		req := validRequest()
		req.CheckOut = req.CheckIn
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, store.ErrInvalidDateRange)
	})

	t.Run("ZeroGuests", func(t *testing.T) {
		svc, _ := newBookingService(t)
		req := validRequest()
		req.Guests = 0
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, store.ErrNoGuests)
	})

	t.Run("UnknownHotel", func(t *testing.T) {
		svc, _ := newBookingService(t)
		req := validRequest()
		req.HotelID = "nope"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, store.ErrHotelNotFound)
	})

	t.Run("UnknownRoomType", func(t *testing.T) {
		svc, _ := newBookingService(t)
		req := validRequest()
		req.RoomType = "penthouse"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, store.ErrInvalidRoomType)
		assert.Empty(t, svc.ListAll())
	})
}

func TestBookingServiceSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("PublishesOnTransition", func(t *testing.T) {
		svc, bus := newBookingService(t)

		var published []string
		for _, e := range []string{events.EventBookingCompleted, events.EventBookingCancelled} {
			bus.Subscribe(e, func(ev *events.Event) error {
				published = append(published, ev.Type)
				return nil
			})
		}

		b, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, changed, err := svc.SetStatus(ctx, b.ID, models.StatusCompleted)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, []string{events.EventBookingCompleted}, published)

		// Terminal no-op publishes nothing.
		_, changed, err = svc.SetStatus(ctx, b.ID, models.StatusCancelled)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Len(t, published, 1)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		svc, _ := newBookingService(t)
		b, err := svc.Create(ctx, validRequest())
		require.NoError(t, err)

		_, _, err = svc.SetStatus(ctx, b.ID, "archived")
		assert.ErrorIs(t, err, store.ErrInvalidStatus)
	})
}

func TestHotelServiceStats(t *testing.T) {
	ctx := context.Background()

	catalog, err := store.NewCatalog(ctx, storage.NewMemory(), []models.Hotel{
		{ID: "1", Name: "Grand Luxury Hotel", Location: "New York, USA", PricePerNight: 100, AvailableRooms: 4, TotalRooms: 10},
	}, &discard)
	require.NoError(t, err)
	ledger, err := store.NewLedger(ctx, storage.NewMemory(), &discard)
	require.NoError(t, err)

	bus := events.NewEventBus()
	hotels := NewHotelService(catalog, ledger, bus, &discard)
	bookings := NewBookingService(ledger, catalog, bus, &discard)

	mk := func(roomType string) models.Booking {
		req := validRequest()
		req.RoomType = roomType
		b, err := bookings.Create(ctx, req)
		require.NoError(t, err)
		return b
	}

	b1 := mk(models.RoomStandard) // 100 * 2 = 200
	mk(models.RoomDeluxe)         // 100 * 2 * 1.5 = 300
	b3 := mk(models.RoomSuite)    // 100 * 2 * 2 = 400

	_, _, err = bookings.SetStatus(ctx, b1.ID, models.StatusCompleted)
	require.NoError(t, err)
	_, _, err = bookings.SetStatus(ctx, b3.ID, models.StatusCancelled)
	require.NoError(t, err)

	st := hotels.Stats()
	assert.Equal(t, 1, st.TotalHotels)
	assert.Equal(t, 3, st.TotalBookings)
	assert.Equal(t, 1, st.ActiveBookings)
	// Cancelled bookings do not count toward revenue.
	assert.Equal(t, 500.0, st.TotalRevenue)
	// 6 of 10 rooms taken.
	assert.InDelta(t, 0.6, st.OccupancyRate, 0.001)
}
