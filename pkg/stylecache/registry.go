package stylecache

import (
	"fmt"
	"sort"
	"sync"
)

// Registry owns a set of named caches and provides introspection and reset
// across all of them. The package-level default registry holds the two
// default memoization caches; tests construct fresh registries for
// isolation.
type Registry struct {
	mu     sync.RWMutex
	caches map[string]*Cache
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		caches: make(map[string]*Cache),
	}
}

// Register adds a cache under its configured name. The name must be
// non-empty and not already registered.
func (r *Registry) Register(cache *Cache) error {
	name := cache.Name()
	if name == "" {
		return fmt.Errorf("cannot register cache without a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.caches[name]; exists {
		return fmt.Errorf("cache %q is already registered", name)
	}
	r.caches[name] = cache
	return nil
}

// Get returns the cache registered under name
func (r *Registry) Get(name string) (*Cache, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cache, ok := r.caches[name]
	return cache, ok
}

// Names returns the registered cache names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.caches))
	for name := range r.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot reports the current size and configured capacity of every
// registered cache. It is a pure read and does not disturb recency order.
func (r *Registry) Snapshot() map[string]CacheInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]CacheInfo, len(r.caches))
	for name, cache := range r.caches {
		snapshot[name] = cache.Info()
	}
	return snapshot
}

// ResetAll empties every registered cache back to zero entries. It cannot
// fail; subsequent lookups behave as on a cold start.
func (r *Registry) ResetAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, cache := range r.caches {
		cache.Clear()
	}
}
