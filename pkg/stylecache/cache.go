package stylecache

import (
	"fmt"
	"sync"
	"time"

	"github.com/AkhlaqurRahmanOmi/stylecache-go/internal/store"
	"github.com/AkhlaqurRahmanOmi/stylecache-go/internal/store/memory"
	"github.com/AkhlaqurRahmanOmi/stylecache-go/pkg/metrics"
)

// Cache is a bounded LRU cache mapping canonical prop keys to computed
// class-name strings. Size never exceeds the capacity fixed at construction;
// inserts past capacity evict the least-recently-used entry first.
type Cache struct {
	config *Config
	store  store.LRUStore
	stats  *Stats
	hooks  *Hooks
	mu     sync.RWMutex

	// suppressEvict masks store eviction callbacks while the cache is
	// being emptied, so a reset is not counted as LRU pressure
	suppressEvict bool

	// Metrics
	metricsExporter metrics.Exporter
	metricsLabels   metrics.Labels
	metricsStop     chan struct{}
	metricsWg       sync.WaitGroup
}

// CacheInfo is a read-only snapshot of one cache's occupancy
type CacheInfo struct {
	Size    int `json:"size"`
	MaxSize int `json:"maxSize"`
}

func (c *Cache) rlock(fn func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn()
}

func (c *Cache) lock(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// New creates a new Cache instance with the given configuration
func New(config *Config) (*Cache, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	cacheStore, err := memory.New(config.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	cache := &Cache{
		config: config,
		store:  cacheStore,
		stats:  &Stats{},
		hooks:  config.Hooks,
	}

	if err := cache.initializeMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	cacheStore.SetEvictCallback(func(key, value string) {
		if cache.suppressEvict {
			return
		}
		cache.stats.incEvictions()
		if cache.hooks != nil {
			cache.hooks.invokeOnEvict(key, value)
		}
	})

	return cache, nil
}

// NewSimple creates a cache with the given capacity and defaults elsewhere
func NewSimple(maxEntries int) (*Cache, error) {
	return New(NewDefaultConfig().WithMaxEntries(maxEntries))
}

// Name returns the configured cache name
func (c *Cache) Name() string {
	return c.config.Name
}

// Get retrieves a class-name string by key. A hit marks the entry
// most-recently-used.
func (c *Cache) Get(key string) (string, bool) {
	var result string
	var found bool

	c.rlock(func() {
		value, ok := c.store.Get(key)
		if !ok {
			c.stats.incMisses()
			if c.hooks != nil {
				c.hooks.invokeOnMiss(key)
			}
			return
		}

		c.stats.incHits()
		if c.hooks != nil {
			c.hooks.invokeOnHit(key, value)
		}
		result = value
		found = true
	})

	c.recordLookup(found)
	return result, found
}

// Set stores a class-name string under the given key, evicting the LRU
// entry if the cache is at capacity
func (c *Cache) Set(key, value string) {
	c.lock(func() {
		_ = c.store.Set(key, value)
		c.updateKeyCount()
	})
}

// Has checks if a key exists without updating its recency position
func (c *Cache) Has(key string) bool {
	var exists bool
	c.rlock(func() {
		_, exists = c.store.Peek(key)
	})
	return exists
}

// Peek retrieves a value without updating its recency position
func (c *Cache) Peek(key string) (string, bool) {
	var result string
	var found bool
	c.rlock(func() {
		result, found = c.store.Peek(key)
	})
	return result, found
}

// Clear removes all entries from the cache. Evictions driven by the purge
// are not counted as LRU evictions.
func (c *Cache) Clear() {
	c.lock(func() {
		c.suppressEvict = true
		_ = c.store.Clear()
		c.suppressEvict = false

		c.stats.incResets()
		c.updateKeyCount()
		if c.hooks != nil {
			c.hooks.invokeOnReset()
		}
	})
}

// Keys returns all current cache keys, ordered from least to most
// recently used
func (c *Cache) Keys() []string {
	var keys []string
	c.rlock(func() {
		keys = c.store.Keys()
	})
	return keys
}

// Len returns the current number of entries in the cache
func (c *Cache) Len() int {
	var length int
	c.rlock(func() {
		length = c.store.Len()
	})
	return length
}

// Capacity returns the maximum number of entries, fixed at construction
func (c *Cache) Capacity() int {
	return c.store.Capacity()
}

// Info returns a read-only occupancy snapshot. It does not disturb
// recency order.
func (c *Cache) Info() CacheInfo {
	return CacheInfo{
		Size:    c.Len(),
		MaxSize: c.Capacity(),
	}
}

// Stats returns the current cache statistics
func (c *Cache) Stats() *Stats {
	c.updateKeyCount()
	return c.stats
}

// Close closes the cache and cleans up resources
func (c *Cache) Close() error {
	var err error
	c.lock(func() {
		if c.metricsStop != nil {
			close(c.metricsStop)
			c.metricsStop = nil
		}
	})
	c.metricsWg.Wait()

	c.lock(func() {
		if c.metricsExporter != nil {
			_ = c.metricsExporter.Close()
		}
		c.suppressEvict = true
		err = c.store.Close()
		c.suppressEvict = false
	})
	return err
}

// updateKeyCount updates the key count statistic
func (c *Cache) updateKeyCount() {
	c.stats.setKeyCount(int64(c.store.Len()))
}

// keyFunc returns the key derivation function to use
func (c *Cache) keyFunc() KeyFunc {
	if c.config.KeyFunc != nil {
		return c.config.KeyFunc
	}
	return DefaultKeyFunc
}

// initializeMetrics sets up metrics collection if enabled
func (c *Cache) initializeMetrics() error {
	if c.config.Metrics == nil || !c.config.Metrics.Enabled || c.config.Metrics.Exporter == nil {
		c.metricsExporter = metrics.NewNoOpExporter()
		return nil
	}

	c.metricsExporter = c.config.Metrics.Exporter

	c.metricsLabels = make(metrics.Labels)
	cacheName := c.config.Metrics.CacheName
	if cacheName == "" {
		cacheName = c.config.Name
	}
	if cacheName == "" {
		cacheName = "default"
	}
	c.metricsLabels["cache_name"] = cacheName

	for k, v := range c.config.Metrics.Labels {
		c.metricsLabels[k] = v
	}

	if c.config.Metrics.ReportingInterval > 0 {
		c.metricsStop = make(chan struct{})
		c.metricsWg.Add(1)
		go c.metricsReporter(c.metricsStop, c.config.Metrics.ReportingInterval)
	}

	return nil
}

// metricsReporter periodically exports cache statistics
func (c *Cache) metricsReporter(stop <-chan struct{}, interval time.Duration) {
	defer c.metricsWg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.exportCurrentStats()
		case <-stop:
			// Final stats export before shutting down
			c.exportCurrentStats()
			return
		}
	}
}

// exportCurrentStats exports the current statistics to metrics
func (c *Cache) exportCurrentStats() {
	if c.metricsExporter != nil {
		c.updateKeyCount()
		_ = c.metricsExporter.ExportStats(c.stats, c.metricsLabels)
	}
}

// recordLookup records a single lookup outcome for metrics
func (c *Cache) recordLookup(hit bool) {
	if c.metricsExporter == nil {
		return
	}
	result := metrics.ResultMiss
	if hit {
		result = metrics.ResultHit
	}
	_ = c.metricsExporter.RecordLookup(result, c.metricsLabels)
}
