// Package memory provides in-process storage adapters: the shared
// versioned read cache and an activity store for tests.
package memory

import (
	"sync"

	"github.com/custodia-labs/docflow-cli/internal/core/domain"
	"github.com/custodia-labs/docflow-cli/internal/core/ports/driven"
)

// Ensure CacheStore implements the interface.
var _ driven.CacheStore = (*CacheStore)(nil)

// CacheStore is the in-process versioned cache. Invalidation bumps the
// key's version and drops the value; subscribers are notified after the
// bump so a refetch always observes the new version.
type CacheStore struct {
	mu          sync.RWMutex
	entries     map[domain.CacheKey]entry
	versions    map[domain.CacheKey]uint64
	subscribers map[int]func(domain.CacheKey)
	nextSub     int
}

type entry struct {
	value   any
	version uint64
}

// NewCacheStore creates an empty cache store.
func NewCacheStore() *CacheStore {
	return &CacheStore{
		entries:     make(map[domain.CacheKey]entry),
		versions:    make(map[domain.CacheKey]uint64),
		subscribers: make(map[int]func(domain.CacheKey)),
	}
}

// Get returns the cached value and the version it was stored at.
func (s *CacheStore) Get(key domain.CacheKey) (any, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok || e.version != s.versions[key] {
		return nil, s.versions[key], false
	}
	return e.value, e.version, true
}

// Put stores a freshly fetched value at the key's current version.
func (s *CacheStore) Put(key domain.CacheKey, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, version: s.versions[key]}
}

// Invalidate marks the key stale and bumps its version.
func (s *CacheStore) Invalidate(key domain.CacheKey) {
	s.mu.Lock()
	delete(s.entries, key)
	s.versions[key]++
	subs := make([]func(domain.CacheKey), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	// Callbacks run outside the lock: a subscriber may read the cache.
	for _, fn := range subs {
		fn(key)
	}
}

// Version returns the key's current version.
func (s *CacheStore) Version(key domain.CacheKey) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.versions[key]
}

// Subscribe registers an invalidation callback and returns its cancel.
func (s *CacheStore) Subscribe(fn func(domain.CacheKey)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
