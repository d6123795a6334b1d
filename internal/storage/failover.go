package storage

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// recoveryInterval is how long the failover waits before retrying a primary
// that was marked down.
const recoveryInterval = time.Minute

// Failover routes snapshot operations to a primary store and falls back to a
// secondary when the primary errors. The primary is retried after
// recoveryInterval. Writes that land on the fallback are lost to the primary;
// callers accept last-writer-wins semantics.
type Failover struct {
	primary   SnapshotStore
	fallback  SnapshotStore
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64 // unix nanos of the last failed primary attempt
}

func NewFailover(primary, fallback SnapshotStore, logger *zerolog.Logger) *Failover {
	return &Failover{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (f *Failover) markDown(err error) {
	f.logger.Error().Err(err).Msg("primary snapshot store failed, falling back")
	f.isDown.Store(true)
	f.lastCheck.Store(time.Now().UnixNano())
}

func (f *Failover) shouldRetryPrimary() bool {
	return time.Since(time.Unix(0, f.lastCheck.Load())) > recoveryInterval
}

func (f *Failover) Load(ctx context.Context, key string, dst any) (bool, error) {
	if !f.isDown.Load() {
		ok, err := f.primary.Load(ctx, key, dst)
		if err == nil {
			return ok, nil
		}
		f.markDown(err)
	} else if f.shouldRetryPrimary() {
		ok, err := f.primary.Load(ctx, key, dst)
		if err == nil {
			f.isDown.Store(false)
			f.logger.Info().Msg("primary snapshot store recovered")
			return ok, nil
		}
		f.lastCheck.Store(time.Now().UnixNano())
	}

	return f.fallback.Load(ctx, key, dst)
}

func (f *Failover) Save(ctx context.Context, key string, v any) error {
	if !f.isDown.Load() {
		err := f.primary.Save(ctx, key, v)
		if err == nil {
			return nil
		}
		f.markDown(err)
	}

	return f.fallback.Save(ctx, key, v)
}

func (f *Failover) Delete(ctx context.Context, key string) error {
	if !f.isDown.Load() {
		err := f.primary.Delete(ctx, key)
		if err == nil {
			return nil
		}
		f.markDown(err)
	}

	return f.fallback.Delete(ctx, key)
}
