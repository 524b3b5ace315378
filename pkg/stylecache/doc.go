// Package stylecache memoizes prop-driven class-name computation for
// component rendering, using bounded LRU caches keyed by a canonical
// serialization of each props object.
//
// # Overview
//
// Rendering frameworks call a component's class-name function on every
// render, usually with the same props as the previous render. stylecache
// wraps such a pure "props to class-name string" function so repeat calls
// with structurally equal props return the stored string without invoking
// the function, regardless of map key insertion order.
//
// # Basic Usage
//
// Wrap a class-name function with one of the default caches:
//
//	buttonClasses := func(props stylecache.Props) string {
//	    // expensive variant/size/state resolution
//	    return computeClasses(props)
//	}
//
//	memoized := stylecache.MemoizeComponentClasses(buttonClasses)
//
//	a := memoized(stylecache.Props{"variant": "primary", "size": "lg"})
//	b := memoized(stylecache.Props{"size": "lg", "variant": "primary"})
//	// a == b, computed once
//
// Two independent default caches exist: the generic class-name cache
// (capacity 1000, via MemoizeClassNames) and the component-class cache
// (capacity 500, via MemoizeComponentClasses). A hit or miss in one never
// affects the other.
//
// # Introspection and Reset
//
// Snapshot reports {size, maxSize} per cache without disturbing recency
// order; ResetCaches empties every default cache, typically from test
// setup/teardown:
//
//	func TestMain(m *testing.M) {
//	    stylecache.ResetCaches()
//	    os.Exit(m.Run())
//	}
//
// # Custom Caches
//
// Construct isolated caches with explicit configuration:
//
//	cache, err := stylecache.New(stylecache.NewDefaultConfig().
//	    WithName("badges").
//	    WithMaxEntries(200))
//	memoized := stylecache.Wrap(cache, badgeClasses)
//
// # Key Derivation
//
// DefaultKeyFunc sorts map keys at every level and serializes values
// recursively with type tags, so key equality coincides with structural
// equality of the props. The function is total: values with no canonical
// serialization (functions, channels) degrade to a per-process identity
// token, and cyclic structures are cut at the point of revisit rather than
// failing the render.
//
// # Observability
//
// Hooks expose hit/miss/evict/reset events, Registry.DebugHandler serves a
// JSON snapshot over HTTP, and pkg/metrics exporters publish statistics to
// Prometheus or OpenTelemetry. The lookup path itself performs no logging
// or I/O.
package stylecache
