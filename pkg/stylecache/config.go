package stylecache

import (
	"time"

	"github.com/AkhlaqurRahmanOmi/stylecache-go/pkg/metrics"
)

// Default capacities for the two package-level memoization caches.
const (
	// DefaultClassNameCapacity is the capacity of the generic class-name cache
	DefaultClassNameCapacity = 1000

	// DefaultComponentClassCapacity is the capacity of the component-class cache
	DefaultComponentClassCapacity = 500
)

// MetricsConfig holds metrics exporter configuration
type MetricsConfig struct {
	// Exporter is the metrics exporter to use
	Exporter metrics.Exporter

	// Enabled determines whether metrics collection is enabled
	Enabled bool

	// CacheName is the name label applied to all metrics for this cache instance
	CacheName string

	// ReportingInterval determines how often to export stats automatically
	// Set to 0 to disable automatic reporting
	ReportingInterval time.Duration

	// Labels are additional labels applied to all metrics
	Labels metrics.Labels
}

// Config defines the configuration options for a Cache instance
type Config struct {
	// Name identifies this cache in introspection snapshots and metrics
	Name string

	// MaxEntries sets the maximum number of entries in the cache.
	// Fixed at construction time; the LRU entry is evicted on insert
	// past capacity.
	// Default: DefaultClassNameCapacity
	MaxEntries int

	// KeyFunc defines a custom key derivation function for wrapped
	// class-name functions. If nil, DefaultKeyFunc will be used.
	KeyFunc KeyFunc

	// Hooks defines event callbacks for cache operations
	Hooks *Hooks

	// Metrics holds metrics exporter configuration
	// If nil, no metrics will be exported
	Metrics *MetricsConfig
}

// KeyFunc derives a cache key from a props object. Two structurally equal
// props objects must map to the same key regardless of key insertion order.
type KeyFunc func(props Props) string

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		MaxEntries: DefaultClassNameCapacity,
		KeyFunc:    nil, // will use DefaultKeyFunc
		Hooks:      &Hooks{},
	}
}

// WithName sets the cache name used in snapshots and metrics
func (c *Config) WithName(name string) *Config {
	c.Name = name
	return c
}

// WithMaxEntries sets the maximum number of cache entries
func (c *Config) WithMaxEntries(maxEntries int) *Config {
	c.MaxEntries = maxEntries
	return c
}

// WithKeyFunc sets a custom key derivation function
func (c *Config) WithKeyFunc(fn KeyFunc) *Config {
	c.KeyFunc = fn
	return c
}

// WithHooks sets the event hooks for cache operations
func (c *Config) WithHooks(hooks *Hooks) *Config {
	c.Hooks = hooks
	return c
}

// WithMetrics configures cache metrics export
func (c *Config) WithMetrics(metricsConfig *MetricsConfig) *Config {
	c.Metrics = metricsConfig
	return c
}

// WithMetricsExporter configures metrics with the given exporter
func (c *Config) WithMetricsExporter(exporter metrics.Exporter, cacheName string) *Config {
	c.Metrics = &MetricsConfig{
		Exporter:          exporter,
		Enabled:           true,
		CacheName:         cacheName,
		ReportingInterval: 30 * time.Second,
		Labels:            make(metrics.Labels),
	}
	return c
}

// WithMetricsLabels adds labels to metrics configuration
func (c *Config) WithMetricsLabels(labels metrics.Labels) *Config {
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{
			Labels: make(metrics.Labels),
		}
	}
	for k, v := range labels {
		c.Metrics.Labels[k] = v
	}
	return c
}

// WithMetricsReportingInterval sets the metrics reporting interval
func (c *Config) WithMetricsReportingInterval(interval time.Duration) *Config {
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{
			Labels: make(metrics.Labels),
		}
	}
	c.Metrics.ReportingInterval = interval
	return c
}
