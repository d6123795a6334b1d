package store

import (
	"context"
	"fmt"
	"sync"

	"hotelhub/internal/metrics"
	"hotelhub/internal/models"
	"hotelhub/internal/storage"

	"github.com/rs/zerolog"
)

const ledgerKey = "hotelhub:ledger"

// Ledger is the single owner of the booking collection. Bookings are
// append-only; the only mutation after creation is a one-way status
// transition. Every mutation re-persists the full snapshot before returning.
type Ledger struct {
	mu       sync.RWMutex
	bookings []models.Booking
	store    storage.SnapshotStore
	logger   *zerolog.Logger
}

// NewLedger loads the ledger snapshot; an absent snapshot means an empty
// ledger.
func NewLedger(ctx context.Context, snapshots storage.SnapshotStore, logger *zerolog.Logger) (*Ledger, error) {
	l := &Ledger{store: snapshots, logger: logger}

	ok, err := snapshots.Load(ctx, ledgerKey, &l.bookings)
	if err != nil {
		return nil, fmt.Errorf("load ledger snapshot: %w", err)
	}
	if ok {
		logger.Info().Int("bookings", len(l.bookings)).Msg("ledger snapshot loaded")
	}

	return l, nil
}

func (l *Ledger) persist(ctx context.Context, next []models.Booking) error {
	if err := l.store.Save(ctx, ledgerKey, next); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	metrics.IncSnapshotWrite("ledger")
	return nil
}

// All returns every booking in insertion order.
func (l *Ledger) All() []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.Booking(nil), l.bookings...)
}

// Get returns the booking with the given id.
func (l *Ledger) Get(id string) (models.Booking, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

// Append adds a booking and persists the ledger.
func (l *Ledger) Append(ctx context.Context, b models.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := append(append([]models.Booking(nil), l.bookings...), b)
	if err := l.persist(ctx, next); err != nil {
		return err
	}
	l.bookings = next
	return nil
}

// ListForUser returns the user's bookings in insertion order.
func (l *Ledger) ListForUser(userID string) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Booking, 0)
	for _, b := range l.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// SetStatus transitions a booking out of the active state. Transitions from
// completed or cancelled are a no-op, as is a missing id; the stored record
// is never corrupted. It returns the booking after the call and whether a
// transition happened.
func (l *Ledger) SetStatus(ctx context.Context, id, status string) (models.Booking, bool, error) {
	if !models.ValidStatus(status) {
		return models.Booking{}, false, ErrInvalidStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, b := range l.bookings {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Booking{}, false, nil
	}

	current := l.bookings[idx]
	if current.Status != models.StatusActive || status == models.StatusActive {
		return current, false, nil
	}

	updated := current
	updated.Status = status

	next := append([]models.Booking(nil), l.bookings...)
	next[idx] = updated
	if err := l.persist(ctx, next); err != nil {
		return current, false, err
	}
	l.bookings = next
	return updated, true, nil
}
