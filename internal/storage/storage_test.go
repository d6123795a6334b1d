package storage

import (
	"context"
	"path/filepath"
	"testing"

	"hotelhub/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHotels() []models.Hotel {
	return []models.Hotel{
		{ID: "1", Name: "Grand Luxury Hotel", Location: "New York, USA", PricePerNight: 250, AvailableRooms: 8, TotalRooms: 50},
		{ID: "2", Name: "Seaside Resort", Location: "Miami, USA", PricePerNight: 180, AvailableRooms: 15, TotalRooms: 40},
	}
}

func runSnapshotStoreTests(t *testing.T, store SnapshotStore) {
	ctx := context.Background()

	t.Run("LoadMissingKey", func(t *testing.T) {
		var dst []models.Hotel
		ok, err := store.Load(ctx, "missing", &dst)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		hotels := testHotels()
		require.NoError(t, store.Save(ctx, "hotels", hotels))

		var got []models.Hotel
		ok, err := store.Load(ctx, "hotels", &got)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, hotels, got)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "hotels", testHotels()[:1]))

		var got []models.Hotel
		ok, err := store.Load(ctx, "hotels", &got)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Len(t, got, 1)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "temp", testHotels()))
		require.NoError(t, store.Delete(ctx, "temp"))

		var got []models.Hotel
		ok, err := store.Load(ctx, "temp", &got)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("DeleteMissingKey", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "never-existed"))
	})
}

func TestMemoryStore(t *testing.T) {
	runSnapshotStoreTests(t, NewMemory())
}

func TestSQLiteStore(t *testing.T) {
	db, err := NewSQLite(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer db.Close()

	runSnapshotStoreTests(t, db)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")
	ctx := context.Background()

	db, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Save(ctx, "hotels", testHotels()))
	require.NoError(t, db.Close())

	db2, err := NewSQLite(path)
	require.NoError(t, err)
	defer db2.Close()

	var got []models.Hotel
	ok, err := db2.Load(ctx, "hotels", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testHotels(), got)
}

func TestRedisStore(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	runSnapshotStoreTests(t, NewRedis(client))
}
