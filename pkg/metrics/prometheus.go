package metrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusExporter implements the Exporter interface for Prometheus metrics
type PrometheusExporter struct {
	config   *Config
	registry prometheus.Registerer

	// Counters
	hitsTotal      *prometheus.CounterVec
	missesTotal    *prometheus.CounterVec
	evictionsTotal *prometheus.CounterVec
	resetsTotal    *prometheus.CounterVec
	lookupsTotal   *prometheus.CounterVec

	// Gauges
	keysCount *prometheus.GaugeVec
	hitRate   *prometheus.GaugeVec

	// Counters must only move forward, but the cache stats are cumulative
	// snapshots; track the last exported values per cache so each export
	// adds only the delta.
	mu   sync.Mutex
	last map[string]statsSnapshot
}

type statsSnapshot struct {
	hits      int64
	misses    int64
	evictions int64
	resets    int64
}

// PrometheusConfig holds Prometheus-specific configuration
type PrometheusConfig struct {
	// Registry is the Prometheus registry to use (optional, uses default if nil)
	Registry prometheus.Registerer

	// DefaultLabels are applied to all metrics
	DefaultLabels prometheus.Labels
}

// NewPrometheusExporter creates a new Prometheus metrics exporter
func NewPrometheusExporter(config *Config, promConfig *PrometheusConfig) (*PrometheusExporter, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	if promConfig == nil {
		promConfig = &PrometheusConfig{}
	}

	registry := promConfig.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	defaultLabels := make(prometheus.Labels)
	for k, v := range promConfig.DefaultLabels {
		defaultLabels[k] = v
	}
	for k, v := range config.Labels {
		defaultLabels[k] = v
	}

	exporter := &PrometheusExporter{
		config:   config,
		registry: registry,
		last:     make(map[string]statsSnapshot),
	}

	if err := exporter.createStandardMetrics(defaultLabels); err != nil {
		return nil, fmt.Errorf("failed to create standard metrics: %w", err)
	}

	return exporter, nil
}

// createStandardMetrics creates all the standard cache metrics
func (p *PrometheusExporter) createStandardMetrics(defaultLabels prometheus.Labels) error {
	var err error

	baseLabels := []string{"cache_name"}

	p.hitsTotal, err = p.createCounterVec(p.config.MetricNames.CacheHitsTotal, "Total number of cache hits", baseLabels, defaultLabels)
	if err != nil {
		return err
	}

	p.missesTotal, err = p.createCounterVec(p.config.MetricNames.CacheMissesTotal, "Total number of cache misses", baseLabels, defaultLabels)
	if err != nil {
		return err
	}

	p.evictionsTotal, err = p.createCounterVec(p.config.MetricNames.CacheEvictionsTotal, "Total number of LRU evictions", baseLabels, defaultLabels)
	if err != nil {
		return err
	}

	p.resetsTotal, err = p.createCounterVec(p.config.MetricNames.CacheResetsTotal, "Total number of cache resets", baseLabels, defaultLabels)
	if err != nil {
		return err
	}

	p.lookupsTotal, err = p.createCounterVec(p.config.MetricNames.CacheLookupsTotal, "Total number of cache lookups", append(baseLabels, "result"), defaultLabels)
	if err != nil {
		return err
	}

	p.keysCount, err = p.createGaugeVec(p.config.MetricNames.CacheKeysCount, "Current number of keys in cache", baseLabels, defaultLabels)
	if err != nil {
		return err
	}

	p.hitRate, err = p.createGaugeVec(p.config.MetricNames.CacheHitRate, "Cache hit rate as a percentage", baseLabels, defaultLabels)
	if err != nil {
		return err
	}

	return nil
}

// ExportStats exports the current cache statistics to Prometheus
func (p *PrometheusExporter) ExportStats(stats Stats, labels Labels) error {
	cacheName := labels["cache_name"]
	baseLabels := prometheus.Labels{"cache_name": cacheName}

	current := statsSnapshot{
		hits:      stats.Hits(),
		misses:    stats.Misses(),
		evictions: stats.Evictions(),
		resets:    stats.Resets(),
	}

	p.mu.Lock()
	prev := p.last[cacheName]
	p.last[cacheName] = current
	p.mu.Unlock()

	p.hitsTotal.With(baseLabels).Add(counterDelta(current.hits, prev.hits))
	p.missesTotal.With(baseLabels).Add(counterDelta(current.misses, prev.misses))
	p.evictionsTotal.With(baseLabels).Add(counterDelta(current.evictions, prev.evictions))
	p.resetsTotal.With(baseLabels).Add(counterDelta(current.resets, prev.resets))

	p.keysCount.With(baseLabels).Set(float64(stats.KeyCount()))
	p.hitRate.With(baseLabels).Set(stats.HitRate())

	return nil
}

// RecordLookup records a single cache lookup outcome
func (p *PrometheusExporter) RecordLookup(result Result, labels Labels) error {
	p.lookupsTotal.With(prometheus.Labels{
		"cache_name": labels["cache_name"],
		"result":     string(result),
	}).Inc()
	return nil
}

// Close shuts down the exporter
func (p *PrometheusExporter) Close() error {
	// Prometheus metrics don't need explicit cleanup
	return nil
}

// Helper methods

func counterDelta(current, prev int64) float64 {
	if current < prev {
		// Stats were reset; re-export from zero
		return float64(current)
	}
	return float64(current - prev)
}

func (p *PrometheusExporter) createCounterVec(name, help string, labelNames []string, defaultLabels prometheus.Labels) (*prometheus.CounterVec, error) {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        name,
			Help:        help,
			ConstLabels: defaultLabels,
		},
		labelNames,
	)

	if err := p.registry.Register(counter); err != nil {
		return nil, err
	}

	return counter, nil
}

func (p *PrometheusExporter) createGaugeVec(name, help string, labelNames []string, defaultLabels prometheus.Labels) (*prometheus.GaugeVec, error) {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        name,
			Help:        help,
			ConstLabels: defaultLabels,
		},
		labelNames,
	)

	if err := p.registry.Register(gauge); err != nil {
		return nil, err
	}

	return gauge, nil
}

// Ensure interface is implemented
var _ Exporter = (*PrometheusExporter)(nil)
