// Package cache stores rendered panel artifacts between runs.
//
// Panelizing the same input with the same settings produces the same bytes,
// and rasterizing a large sheet for a preview is the slowest step of a run.
// The Runner in package pipeline therefore keys every artifact by the hash
// of the input document plus the settings that shaped it, and reuses cached
// bytes on the next run.
//
// # Backends
//
//   - [FileCache]: JSON entries with an expiry under a directory, used by the CLI
//   - [NullCache]: never stores anything, used with --no-cache and in tests
//
// # Keys
//
// A [Keyer] turns an input hash and [ArtifactKeyOpts] into a cache key.
// [NewScopedKeyer] prefixes keys, which the CLI uses to separate entries
// written by different builds.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// NullCache misses on every Get and drops every Set.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
