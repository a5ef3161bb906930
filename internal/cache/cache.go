// Package cache is a small keyed read-through cache for API query
// results. It replaces the web client's framework-global query cache
// with an explicit store: mutations call Invalidate and the next read
// refetches from the backend.
package cache

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value   interface{}
	version uint64
}

// Store caches values by string key. It is safe for concurrent use.
// Concurrent fetches of the same key are collapsed into one backend
// call, and a fetch that raced with an Invalidate is discarded so a
// later read observes the post-mutation state.
type Store struct {
	mu       sync.Mutex
	entries  map[string]entry
	versions map[string]uint64
	group    singleflight.Group
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		entries:  make(map[string]entry),
		versions: make(map[string]uint64),
	}
}

// Get returns the cached value for key, if any.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key unconditionally.
func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, version: s.versions[key]}
}

// Invalidate drops the cached value for key. Any fetch already in
// flight for the key will have its result discarded.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	s.versions[key]++
}

// Fetch returns the cached value for key, or runs fn to fill it.
// Concurrent callers share a single fn invocation. A fill is only
// stored if no Invalidate happened since the fetch began; the value is
// still returned to the caller either way. fn errors are not cached —
// there is no automatic retry, the next read simply tries again.
func (s *Store) Fetch(key string, fn func() (interface{}, error)) (interface{}, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		s.mu.Lock()
		version := s.versions[key]
		s.mu.Unlock()

		value, err := fn()
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		if s.versions[key] == version {
			s.entries[key] = entry{value: value, version: version}
		}
		s.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}
