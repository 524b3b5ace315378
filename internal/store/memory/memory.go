package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/AkhlaqurRahmanOmi/stylecache-go/internal/store"
)

// Store implements an in-memory, strictly bounded LRU store for class-name
// strings. Every Get and every Set of an existing key moves that key to the
// most-recently-used position; an insert past capacity evicts exactly one
// entry from the least-recently-used end.
type Store struct {
	cache         *lru.Cache[string, string]
	mutex         sync.RWMutex
	evictCallback store.EvictCallback
	capacity      int
}

// New creates a new memory store with the specified capacity.
// Capacity is fixed for the lifetime of the store.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("store capacity must be positive, got %d", capacity)
	}

	s := &Store{capacity: capacity}

	cache, err := lru.NewWithEvict[string, string](capacity, func(key, value string) {
		if s.evictCallback != nil {
			s.evictCallback(key, value)
		}
	})
	if err != nil {
		return nil, err
	}

	s.cache = cache
	return s, nil
}

// Get retrieves a value by key and marks it most-recently-used
func (s *Store) Get(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.cache.Get(key)
}

// Peek retrieves a value without updating its recency position
func (s *Store) Peek(key string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.cache.Peek(key)
}

// Set stores a value under the given key, evicting the LRU entry if the
// store is at capacity
func (s *Store) Set(key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache.Add(key, value)
	return nil
}

// Delete removes an entry by key
func (s *Store) Delete(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache.Remove(key)
	return nil
}

// Keys returns all keys, ordered from least to most recently used
func (s *Store) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.cache.Keys()
}

// Len returns the current number of entries in the store
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.cache.Len()
}

// Clear removes all entries from the store
func (s *Store) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache.Purge()
	return nil
}

// Close closes the store and cleans up resources
func (s *Store) Close() error {
	return s.Clear()
}

// SetEvictCallback sets the callback for LRU evictions
func (s *Store) SetEvictCallback(callback store.EvictCallback) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.evictCallback = callback
}

// Capacity returns the maximum number of entries the store can hold
func (s *Store) Capacity() int {
	return s.capacity
}

// Ensure Store implements the required interfaces
var (
	_ store.Store    = (*Store)(nil)
	_ store.LRUStore = (*Store)(nil)
)
