// Package cache stores rendered sparkline artifacts and layouts.
//
// Rendering is cheap but not free, and the HTTP server tends to receive the
// same chart many times. Entries are keyed by a hash of everything that
// influences the output (see [Keyer]) so a stale entry can never be served
// for a changed chart.
//
// Three backends are provided:
//   - [FileCache]: one JSON file per entry, used by the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"
)

// Default time-to-live per entry kind.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts holds the inputs besides the chart itself that change a layout.
type LayoutKeyOpts struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ArtifactKeyOpts holds the inputs besides the layout that change an artifact.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Background string `json:"background,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	LayoutKey(specHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "layout:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey generates a key for a computed layout.
func (DefaultKeyer) LayoutKey(specHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", specHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
