// Package metrics exposes cache statistics to observability systems.
package metrics

// Exporter defines the interface for cache metrics exporters
// This abstraction allows supporting multiple observability systems
type Exporter interface {
	// ExportStats exports the current cache statistics
	ExportStats(stats Stats, labels Labels) error

	// RecordLookup records the outcome of a single cache lookup
	RecordLookup(result Result, labels Labels) error

	// Close shuts down the exporter and flushes any pending metrics
	Close() error
}

// Labels represents key-value pairs for metric labels/tags
type Labels map[string]string

// Stats defines the cache statistics that can be exported
// This allows the metrics package to work with any stats implementation
type Stats interface {
	Hits() int64
	Misses() int64
	Evictions() int64
	Resets() int64
	KeyCount() int64
	HitRate() float64
}

// Result represents the outcome of a cache lookup
type Result string

const (
	ResultHit  Result = "hit"
	ResultMiss Result = "miss"
)

// MetricNames defines standard metric names used across exporters
type MetricNames struct {
	// Counters
	CacheHitsTotal      string
	CacheMissesTotal    string
	CacheEvictionsTotal string
	CacheResetsTotal    string
	CacheLookupsTotal   string

	// Gauges
	CacheKeysCount string
	CacheHitRate   string
}

// DefaultMetricNames returns the default metric names with proper namespacing
func DefaultMetricNames() MetricNames {
	return MetricNames{
		CacheHitsTotal:      "stylecache_hits_total",
		CacheMissesTotal:    "stylecache_misses_total",
		CacheEvictionsTotal: "stylecache_evictions_total",
		CacheResetsTotal:    "stylecache_resets_total",
		CacheLookupsTotal:   "stylecache_lookups_total",
		CacheKeysCount:      "stylecache_keys_count",
		CacheHitRate:        "stylecache_hit_rate",
	}
}

// Config holds configuration for metrics exporters
type Config struct {
	// Labels are default labels applied to all metrics
	Labels Labels

	// MetricNames allows customizing metric names
	MetricNames MetricNames
}

// NewDefaultConfig creates a default metrics configuration
func NewDefaultConfig() *Config {
	return &Config{
		Labels:      make(Labels),
		MetricNames: DefaultMetricNames(),
	}
}

// WithLabels adds default labels to all metrics
func (c *Config) WithLabels(labels Labels) *Config {
	for k, v := range labels {
		c.Labels[k] = v
	}
	return c
}

// MultiExporter allows using multiple exporters simultaneously
type MultiExporter struct {
	exporters []Exporter
}

// NewMultiExporter creates an exporter that writes to multiple backends
func NewMultiExporter(exporters ...Exporter) *MultiExporter {
	return &MultiExporter{
		exporters: exporters,
	}
}

// ExportStats exports to all configured exporters
func (m *MultiExporter) ExportStats(stats Stats, labels Labels) error {
	for _, exporter := range m.exporters {
		if err := exporter.ExportStats(stats, labels); err != nil {
			return err
		}
	}
	return nil
}

// RecordLookup records to all configured exporters
func (m *MultiExporter) RecordLookup(result Result, labels Labels) error {
	for _, exporter := range m.exporters {
		if err := exporter.RecordLookup(result, labels); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all configured exporters
func (m *MultiExporter) Close() error {
	for _, exporter := range m.exporters {
		if err := exporter.Close(); err != nil {
			return err
		}
	}
	return nil
}

// NoOpExporter provides a no-op implementation for when metrics are disabled
type NoOpExporter struct{}

// NewNoOpExporter creates a no-op exporter
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

// ExportStats does nothing
func (n *NoOpExporter) ExportStats(Stats, Labels) error { return nil }

// RecordLookup does nothing
func (n *NoOpExporter) RecordLookup(Result, Labels) error { return nil }

// Close does nothing
func (n *NoOpExporter) Close() error { return nil }

// Ensure interfaces are implemented
var (
	_ Exporter = (*MultiExporter)(nil)
	_ Exporter = (*NoOpExporter)(nil)
)
