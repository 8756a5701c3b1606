// Package cache stores rendered stickfigure artifacts.
//
// The [Cache] interface has three implementations:
//   - [FileCache]: one JSON file per entry under a local directory, for the CLI
//   - [RedisCache]: shared storage for multiple server instances
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer] so every host names entries the same way.
// [ScopedKeyer] prefixes keys to give a caller its own namespace.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type.
const (
	// TTLScene bounds how long a computed scene (stamp or replay ops) is kept.
	TTLScene = 7 * 24 * time.Hour

	// TTLArtifact bounds how long a rendered artifact is kept.
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any held resources.
	Close() error
}
