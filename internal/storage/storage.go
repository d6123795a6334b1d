package storage

import "context"

// SnapshotStore persists whole collections as serialized blobs under a key.
// Writes replace the previous snapshot; there is no partial update.
type SnapshotStore interface {
	// Load unmarshals the snapshot stored under key into dst. It returns
	// false with a nil error when no snapshot exists.
	Load(ctx context.Context, key string, dst any) (bool, error)

	// Save serializes v and stores it under key, replacing any previous value.
	Save(ctx context.Context, key string, v any) error

	// Delete removes the snapshot under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
