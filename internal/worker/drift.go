package worker

import (
	"context"
	"math/rand"
	"time"

	"hotelhub/internal/metrics"
	"hotelhub/internal/store"

	"github.com/rs/zerolog"
)

// DriftWorker periodically nudges hotel availability up or down to simulate
// live occupancy. Each tick, every hotel independently moves by one room
// with the configured probability; the catalog clamps the result.
type DriftWorker struct {
	catalog  *store.Catalog
	interval time.Duration
	chance   float64
	rng      *rand.Rand
	logger   *zerolog.Logger
}

func NewDriftWorker(catalog *store.Catalog, interval time.Duration, chance float64, logger *zerolog.Logger) *DriftWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if chance <= 0 || chance > 1 {
		chance = 0.3
	}

	return &DriftWorker{
		catalog:  catalog,
		interval: interval,
		chance:   chance,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   logger,
	}
}

// Start blocks until ctx is cancelled.
func (w *DriftWorker) Start(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Float64("chance", w.chance).Msg("availability drift started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("availability drift stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *DriftWorker) tick(ctx context.Context) {
	for _, h := range w.catalog.List() {
		if w.rng.Float64() >= w.chance {
			continue
		}

		delta := int64(1)
		if w.rng.Intn(2) == 0 {
			delta = -1
		}

		if err := w.catalog.Adjust(ctx, h.ID, delta, 0); err != nil {
			w.logger.Error().Err(err).Str("hotel_id", h.ID).Msg("drift adjustment failed")
			continue
		}
		metrics.IncDriftStep()
	}
}
