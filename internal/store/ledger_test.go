package store

import (
	"context"
	"testing"
	"time"

	"hotelhub/internal/models"
	"hotelhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*Ledger, storage.SnapshotStore) {
	t.Helper()
	snaps := storage.NewMemory()
	l, err := NewLedger(context.Background(), snaps, &discard)
	require.NoError(t, err)
	return l, snaps
}

func testBooking(id, userID string) models.Booking {
	return models.Booking{
		ID:         id,
		HotelID:    "1",
		HotelName:  "Grand Luxury Hotel",
		UserID:     userID,
		CheckIn:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		RoomType:   models.RoomStandard,
		Guests:     2,
		TotalPrice: 500,
		Status:     models.StatusActive,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestLedgerStartsEmpty(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.Empty(t, l.All())
}

func TestLedgerAppendPreservesOrder(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	for _, id := range []string{"b1", "b2", "b3"} {
		require.NoError(t, l.Append(ctx, testBooking(id, "user-1")))
	}

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, "b1", all[0].ID)
	assert.Equal(t, "b2", all[1].ID)
	assert.Equal(t, "b3", all[2].ID)
}

func TestLedgerListForUser(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, l.Append(ctx, testBooking("b1", "user-1")))
	require.NoError(t, l.Append(ctx, testBooking("b2", "admin-1")))
	require.NoError(t, l.Append(ctx, testBooking("b3", "user-1")))

	mine := l.ListForUser("user-1")
	require.Len(t, mine, 2)
	assert.Equal(t, "b1", mine[0].ID)
	assert.Equal(t, "b3", mine[1].ID)

	// An unknown user gets an empty, non-nil list.
	other := l.ListForUser("ghost")
	assert.NotNil(t, other)
	assert.Empty(t, other)
}

func TestLedgerSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("ActiveToCompleted", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Append(ctx, testBooking("b1", "user-1")))

		b, changed, err := l.SetStatus(ctx, "b1", models.StatusCompleted)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, models.StatusCompleted, b.Status)
	})

	t.Run("ActiveToCancelled", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Append(ctx, testBooking("b1", "user-1")))

		b, changed, err := l.SetStatus(ctx, "b1", models.StatusCancelled)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, models.StatusCancelled, b.Status)
	})

	t.Run("TerminalIsNoOp", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Append(ctx, testBooking("b1", "user-1")))

		_, _, err := l.SetStatus(ctx, "b1", models.StatusCancelled)
		require.NoError(t, err)

		b, changed, err := l.SetStatus(ctx, "b1", models.StatusCompleted)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, models.StatusCancelled, b.Status)
	})

	t.Run("BackToActiveIsNoOp", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Append(ctx, testBooking("b1", "user-1")))

		b, changed, err := l.SetStatus(ctx, "b1", models.StatusActive)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, models.StatusActive, b.Status)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		l, _ := newTestLedger(t)
		require.NoError(t, l.Append(ctx, testBooking("b1", "user-1")))

		_, _, err := l.SetStatus(ctx, "b1", "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)

		b, _ := l.Get("b1")
		assert.Equal(t, models.StatusActive, b.Status)
	})

	t.Run("MissingIDIsNoOp", func(t *testing.T) {
		l, _ := newTestLedger(t)
		_, changed, err := l.SetStatus(ctx, "nope", models.StatusCompleted)
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestLedgerReload(t *testing.T) {
	ctx := context.Background()
	snaps := storage.NewMemory()

	l, err := NewLedger(ctx, snaps, &discard)
	require.NoError(t, err)
	require.NoError(t, l.Append(ctx, testBooking("b1", "user-1")))
	_, _, err = l.SetStatus(ctx, "b1", models.StatusCompleted)
	require.NoError(t, err)

	reloaded, err := NewLedger(ctx, snaps, &discard)
	require.NoError(t, err)

	b, ok := reloaded.Get("b1")
	require.True(t, ok)
	assert.Equal(t, models.StatusCompleted, b.Status)
}
