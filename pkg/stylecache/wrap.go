package stylecache

// ClassFunc is a pure function computing a class-name string from a
// props object
type ClassFunc func(props Props) string

// WrapOptions holds configuration options for function wrapping
type WrapOptions struct {
	// KeyFunc overrides the cache's key derivation function
	KeyFunc KeyFunc

	// DisableCache bypasses caching for this function (useful for testing)
	DisableCache bool
}

// WrapOption is a function that configures WrapOptions
type WrapOption func(*WrapOptions)

// WithKeyFunc sets a custom key derivation function for the wrapped function
func WithKeyFunc(keyFunc KeyFunc) WrapOption {
	return func(opts *WrapOptions) {
		opts.KeyFunc = keyFunc
	}
}

// WithoutCache disables caching for the wrapped function
func WithoutCache() WrapOption {
	return func(opts *WrapOptions) {
		opts.DisableCache = true
	}
}

// Wrap returns a memoizing version of fn backed by the given cache.
//
// The wrapped function is observably equivalent to fn: a call with props
// structurally equal to a previously seen object returns the stored string
// without invoking fn and marks the entry most-recently-used; a miss invokes
// fn, stores the result, and evicts the LRU entry if capacity is exceeded.
// fn is assumed pure; the wrapper performs no I/O of its own.
func Wrap(cache *Cache, fn ClassFunc, options ...WrapOption) ClassFunc {
	opts := &WrapOptions{
		KeyFunc: cache.keyFunc(),
	}

	for _, opt := range options {
		opt(opts)
	}

	return func(props Props) string {
		if opts.DisableCache {
			return fn(props)
		}

		key := opts.KeyFunc(props)
		if value, found := cache.Get(key); found {
			return value
		}

		// Invoke outside any cache iteration so re-entrant wrapped
		// calls are safe.
		value := fn(props)
		cache.Set(key, value)
		return value
	}
}

// Names of the two package-level memoization caches.
const (
	// ClassNameCacheName identifies the generic class-name cache
	ClassNameCacheName = "classNames"

	// ComponentClassCacheName identifies the component-class cache
	ComponentClassCacheName = "componentClasses"
)

// The two default caches live for the process lifetime and are registered
// with the default registry. They are independent: a hit or miss in one
// never affects the other.
var (
	defaultRegistry = NewRegistry()

	classNameCache      = mustNewRegistered(ClassNameCacheName, DefaultClassNameCapacity)
	componentClassCache = mustNewRegistered(ComponentClassCacheName, DefaultComponentClassCapacity)
)

func mustNewRegistered(name string, capacity int) *Cache {
	cache, err := New(NewDefaultConfig().WithName(name).WithMaxEntries(capacity))
	if err != nil {
		panic("stylecache: failed to create default cache: " + err.Error())
	}
	if err := defaultRegistry.Register(cache); err != nil {
		panic("stylecache: failed to register default cache: " + err.Error())
	}
	return cache
}

// MemoizeClassNames wraps a generic class-name function with the default
// class-name cache (capacity DefaultClassNameCapacity)
func MemoizeClassNames(fn ClassFunc, options ...WrapOption) ClassFunc {
	return Wrap(classNameCache, fn, options...)
}

// MemoizeComponentClasses wraps a component-class function with the default
// component-class cache (capacity DefaultComponentClassCapacity)
func MemoizeComponentClasses(fn ClassFunc, options ...WrapOption) ClassFunc {
	return Wrap(componentClassCache, fn, options...)
}

// ClassNameCache returns the default generic class-name cache
func ClassNameCache() *Cache {
	return classNameCache
}

// ComponentClassCache returns the default component-class cache
func ComponentClassCache() *Cache {
	return componentClassCache
}

// DefaultRegistry returns the registry holding the default caches
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ResetCaches empties every cache in the default registry. Subsequent calls
// to wrapped functions behave as on a cold start.
func ResetCaches() {
	defaultRegistry.ResetAll()
}

// Snapshot reports the occupancy of every cache in the default registry
func Snapshot() map[string]CacheInfo {
	return defaultRegistry.Snapshot()
}
