package driven

import "github.com/custodia-labs/docflow-cli/internal/core/domain"

// CacheStore is the shared, versioned read cache. Each key carries a
// version that increments on invalidation; readers compare versions to
// decide whether a cached value is still current. Write paths never
// mutate cached values directly - they invalidate, and readers refetch.
type CacheStore interface {
	// Get returns the cached value and the version it was stored at.
	// ok is false when the key has never been populated or was
	// invalidated after its last population.
	Get(key domain.CacheKey) (value any, version uint64, ok bool)

	// Put stores a freshly fetched value at the key's current version.
	Put(key domain.CacheKey, value any)

	// Invalidate marks the key stale and bumps its version. Safe to
	// call for keys that were never populated.
	Invalidate(key domain.CacheKey)

	// Version returns the key's current version. Versions only grow.
	Version(key domain.CacheKey) uint64

	// Subscribe registers a callback invoked after every invalidation
	// with the affected key. Used by live views to refetch.
	Subscribe(fn func(key domain.CacheKey)) (cancel func())
}
