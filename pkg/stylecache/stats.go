package stylecache

import (
	"sync/atomic"
)

// Stats holds cache performance statistics
type Stats struct {
	// hits is the number of cache hits
	hits int64

	// misses is the number of cache misses
	misses int64

	// evictions is the number of entries evicted by the LRU policy
	evictions int64

	// resets is the number of times the cache was emptied
	resets int64

	// keyCount is the current number of keys in the cache
	keyCount int64
}

// Hits returns the number of cache hits
func (s *Stats) Hits() int64 {
	return atomic.LoadInt64(&s.hits)
}

// Misses returns the number of cache misses
func (s *Stats) Misses() int64 {
	return atomic.LoadInt64(&s.misses)
}

// Evictions returns the number of entries evicted by the LRU policy
func (s *Stats) Evictions() int64 {
	return atomic.LoadInt64(&s.evictions)
}

// Resets returns the number of times the cache was emptied
func (s *Stats) Resets() int64 {
	return atomic.LoadInt64(&s.resets)
}

// KeyCount returns the current number of keys in the cache
func (s *Stats) KeyCount() int64 {
	return atomic.LoadInt64(&s.keyCount)
}

// HitRate returns the cache hit rate as a percentage (0-100)
func (s *Stats) HitRate() float64 {
	hits := s.Hits()
	misses := s.Misses()
	total := hits + misses

	if total == 0 {
		return 0
	}

	return float64(hits) / float64(total) * 100
}

// Total returns the total number of cache lookups (hits + misses)
func (s *Stats) Total() int64 {
	return s.Hits() + s.Misses()
}

// Reset resets all statistics to zero
func (s *Stats) Reset() {
	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.misses, 0)
	atomic.StoreInt64(&s.evictions, 0)
	atomic.StoreInt64(&s.resets, 0)
	atomic.StoreInt64(&s.keyCount, 0)
}

// Internal methods for updating stats (not exported)

func (s *Stats) incHits() {
	atomic.AddInt64(&s.hits, 1)
}

func (s *Stats) incMisses() {
	atomic.AddInt64(&s.misses, 1)
}

func (s *Stats) incEvictions() {
	atomic.AddInt64(&s.evictions, 1)
}

func (s *Stats) incResets() {
	atomic.AddInt64(&s.resets, 1)
}

func (s *Stats) setKeyCount(count int64) {
	atomic.StoreInt64(&s.keyCount, count)
}
