package service

import (
	"testing"
	"time"

	"hotelhub/internal/models"
	"hotelhub/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"TwoNights", date(2026, 10, 1), date(2026, 10, 3), 2},
		{"OneNight", date(2026, 10, 1), date(2026, 10, 2), 1},
		{"SameDay", date(2026, 10, 1), date(2026, 10, 1), 0},
		{"Reversed", date(2026, 10, 3), date(2026, 10, 1), 0},
		{"PartialDayRoundsUp", date(2026, 10, 1), date(2026, 10, 2).Add(6 * time.Hour), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestPriceQuote(t *testing.T) {
	t.Run("Standard", func(t *testing.T) {
		q, err := PriceQuote(100, 2, models.RoomStandard)
		require.NoError(t, err)
		assert.Equal(t, 200.0, q.TotalPrice)
		assert.InDelta(t, 220.0, q.DisplayTotal, 0.001)
	})

	t.Run("Deluxe", func(t *testing.T) {
		q, err := PriceQuote(100, 2, models.RoomDeluxe)
		require.NoError(t, err)
		assert.Equal(t, 300.0, q.TotalPrice)
		assert.InDelta(t, 330.0, q.DisplayTotal, 0.001)
	})

	t.Run("Suite", func(t *testing.T) {
		q, err := PriceQuote(250, 3, models.RoomSuite)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, q.TotalPrice)
		assert.InDelta(t, 1650.0, q.DisplayTotal, 0.001)
	})

	t.Run("UnknownRoomType", func(t *testing.T) {
		_, err := PriceQuote(100, 2, "penthouse")
		assert.ErrorIs(t, err, store.ErrInvalidRoomType)
	})
}
