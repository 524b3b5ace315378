package store

// Store defines the interface for class-name storage backends.
// Keys are canonical prop serializations, values are computed class-name strings.
type Store interface {
	// Get retrieves a class-name string by key
	// Returns the value and true if found, "" and false if not found
	Get(key string) (string, bool)

	// Set stores a class-name string under the given key
	// Returns an error if the operation fails
	Set(key, value string) error

	// Delete removes an entry by key
	Delete(key string) error

	// Keys returns all keys currently in the store
	Keys() []string

	// Len returns the current number of entries in the store
	Len() int

	// Clear removes all entries from the store
	Clear() error

	// Close closes the store and cleans up resources
	Close() error
}

// EvictCallback is called when an entry is evicted from the store
// This allows the cache to track evictions and invoke hooks
type EvictCallback func(key, value string)

// LRUStore extends Store with recency-aware functionality
type LRUStore interface {
	Store

	// SetEvictCallback sets a callback function that will be called
	// when entries are evicted due to the LRU policy
	SetEvictCallback(callback EvictCallback)

	// Capacity returns the maximum number of entries the store can hold
	Capacity() int

	// Peek retrieves a value without updating its recency position
	Peek(key string) (string, bool)
}
