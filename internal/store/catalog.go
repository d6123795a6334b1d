package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"hotelhub/internal/metrics"
	"hotelhub/internal/models"
	"hotelhub/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const catalogKey = "hotelhub:catalog"

// Catalog is the single owner of the hotel collection. All mutations are
// serialized through its mutex and synchronously re-persist the full
// snapshot before they return; a failed persist leaves the in-memory list
// unchanged.
type Catalog struct {
	mu     sync.RWMutex
	hotels []models.Hotel
	store  storage.SnapshotStore
	logger *zerolog.Logger
}

// NewCatalog loads the catalog snapshot, seeding it on first run.
func NewCatalog(ctx context.Context, snapshots storage.SnapshotStore, seed []models.Hotel, logger *zerolog.Logger) (*Catalog, error) {
	c := &Catalog{store: snapshots, logger: logger}

	ok, err := snapshots.Load(ctx, catalogKey, &c.hotels)
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	if !ok {
		seeded := append([]models.Hotel(nil), seed...)
		if err := c.persist(ctx, seeded); err != nil {
			return nil, err
		}
		c.hotels = seeded
		logger.Info().Int("hotels", len(seeded)).Msg("catalog seeded")
	} else {
		logger.Info().Int("hotels", len(c.hotels)).Msg("catalog snapshot loaded")
	}

	return c, nil
}

// persist writes next as the new catalog snapshot. Callers commit next to
// c.hotels only after persist succeeds.
func (c *Catalog) persist(ctx context.Context, next []models.Hotel) error {
	if err := c.store.Save(ctx, catalogKey, next); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	metrics.IncSnapshotWrite("catalog")
	return nil
}

// List returns all hotels in insertion order.
func (c *Catalog) List() []models.Hotel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Hotel(nil), c.hotels...)
}

// Get returns the hotel with the given id.
func (c *Catalog) Get(id string) (models.Hotel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, h := range c.hotels {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hotel{}, false
}

// Len returns the number of hotels.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.hotels)
}

func validateRooms(h models.Hotel) error {
	if h.AvailableRooms < 0 || h.TotalRooms < 0 {
		return ErrNegativeRooms
	}
	if h.AvailableRooms > h.TotalRooms {
		return ErrRoomsExceedTotal
	}
	return nil
}

// Add assigns a fresh id, appends the hotel and persists the catalog.
func (c *Catalog) Add(ctx context.Context, h models.Hotel) (models.Hotel, error) {
	if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Location) == "" {
		return models.Hotel{}, ErrMissingFields
	}
	if h.Rating < 0 || h.Rating > 5 {
		return models.Hotel{}, ErrRatingOutOfRange
	}
	if err := validateRooms(h); err != nil {
		return models.Hotel{}, err
	}
	h.ID = uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	next := append(append([]models.Hotel(nil), c.hotels...), h)
	if err := c.persist(ctx, next); err != nil {
		return models.Hotel{}, err
	}
	c.hotels = next
	return h, nil
}

// Update merges the supplied fields over the matching record. A missing id
// is a silent no-op. An update that would leave available rooms above the
// total is rejected and prior state is unchanged.
func (c *Catalog) Update(ctx context.Context, id string, upd models.HotelUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, h := range c.hotels {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	merged := upd.Apply(c.hotels[idx])
	merged.ID = id
	if merged.Rating < 0 || merged.Rating > 5 {
		return ErrRatingOutOfRange
	}
	if err := validateRooms(merged); err != nil {
		return err
	}

	next := append([]models.Hotel(nil), c.hotels...)
	next[idx] = merged
	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.hotels = next
	return nil
}

// Adjust applies a quick delta to available rooms and nightly price. The room
// count is clamped to [0, totalRooms]. A missing id is a silent no-op.
func (c *Catalog) Adjust(ctx context.Context, id string, roomsDelta int64, priceDelta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, h := range c.hotels {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	h := c.hotels[idx]
	h.AvailableRooms += roomsDelta
	if h.AvailableRooms < 0 {
		h.AvailableRooms = 0
	}
	if h.AvailableRooms > h.TotalRooms {
		h.AvailableRooms = h.TotalRooms
	}
	h.PricePerNight += priceDelta
	if h.PricePerNight < 0 {
		h.PricePerNight = 0
	}

	next := append([]models.Hotel(nil), c.hotels...)
	next[idx] = h
	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.hotels = next
	return nil
}

// Remove deletes the matching record. A missing id is a silent no-op.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, h := range c.hotels {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := append([]models.Hotel(nil), c.hotels[:idx]...)
	next = append(next, c.hotels[idx+1:]...)
	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.hotels = next
	return nil
}

// Search returns hotels whose name or location contains the query,
// case-insensitively. An empty query returns the full list.
func (c *Catalog) Search(query string) []models.Hotel {
	hotels := c.List()
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return hotels
	}

	out := make([]models.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if strings.Contains(strings.ToLower(h.Name), q) || strings.Contains(strings.ToLower(h.Location), q) {
			out = append(out, h)
		}
	}
	return out
}
