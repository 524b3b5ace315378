package metrics

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OpenTelemetryExporter implements the Exporter interface for OpenTelemetry metrics
type OpenTelemetryExporter struct {
	config *Config
	meter  metric.Meter
	ctx    context.Context

	hitsCounter      metric.Int64Counter
	missesCounter    metric.Int64Counter
	evictionsCounter metric.Int64Counter
	resetsCounter    metric.Int64Counter
	lookupsCounter   metric.Int64Counter

	keysGauge    metric.Int64Gauge
	hitRateGauge metric.Float64Gauge

	// Same delta bookkeeping as the Prometheus exporter: cumulative stats
	// snapshots become monotonic counter increments.
	mu   sync.Mutex
	last map[string]statsSnapshot
}

// OpenTelemetryConfig holds OpenTelemetry-specific configuration
type OpenTelemetryConfig struct {
	// Meter is the OpenTelemetry meter to use
	Meter metric.Meter

	// Context is the context to use for metric operations
	Context context.Context

	// DefaultAttributes are applied to all metrics
	DefaultAttributes []attribute.KeyValue
}

// NewOpenTelemetryExporter creates a new OpenTelemetry metrics exporter
func NewOpenTelemetryExporter(config *Config, otelConfig *OpenTelemetryConfig) (*OpenTelemetryExporter, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	if otelConfig == nil {
		return nil, fmt.Errorf("OpenTelemetry configuration is required")
	}

	if otelConfig.Meter == nil {
		return nil, fmt.Errorf("OpenTelemetry meter is required")
	}

	ctx := otelConfig.Context
	if ctx == nil {
		ctx = context.Background()
	}

	exporter := &OpenTelemetryExporter{
		config: config,
		meter:  otelConfig.Meter,
		ctx:    ctx,
		last:   make(map[string]statsSnapshot),
	}

	if err := exporter.createStandardMetrics(); err != nil {
		return nil, fmt.Errorf("failed to create standard metrics: %w", err)
	}

	return exporter, nil
}

// createStandardMetrics creates all the standard cache metrics
func (o *OpenTelemetryExporter) createStandardMetrics() error {
	var err error

	o.hitsCounter, err = o.meter.Int64Counter(
		o.config.MetricNames.CacheHitsTotal,
		metric.WithDescription("Total number of cache hits"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create hits counter: %w", err)
	}

	o.missesCounter, err = o.meter.Int64Counter(
		o.config.MetricNames.CacheMissesTotal,
		metric.WithDescription("Total number of cache misses"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create misses counter: %w", err)
	}

	o.evictionsCounter, err = o.meter.Int64Counter(
		o.config.MetricNames.CacheEvictionsTotal,
		metric.WithDescription("Total number of LRU evictions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create evictions counter: %w", err)
	}

	o.resetsCounter, err = o.meter.Int64Counter(
		o.config.MetricNames.CacheResetsTotal,
		metric.WithDescription("Total number of cache resets"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create resets counter: %w", err)
	}

	o.lookupsCounter, err = o.meter.Int64Counter(
		o.config.MetricNames.CacheLookupsTotal,
		metric.WithDescription("Total number of cache lookups"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create lookups counter: %w", err)
	}

	o.keysGauge, err = o.meter.Int64Gauge(
		o.config.MetricNames.CacheKeysCount,
		metric.WithDescription("Current number of keys in cache"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create keys gauge: %w", err)
	}

	o.hitRateGauge, err = o.meter.Float64Gauge(
		o.config.MetricNames.CacheHitRate,
		metric.WithDescription("Cache hit rate as a percentage"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return fmt.Errorf("failed to create hit rate gauge: %w", err)
	}

	return nil
}

// ExportStats exports the current cache statistics to OpenTelemetry
func (o *OpenTelemetryExporter) ExportStats(stats Stats, labels Labels) error {
	attrs := o.convertLabels(labels)

	current := statsSnapshot{
		hits:      stats.Hits(),
		misses:    stats.Misses(),
		evictions: stats.Evictions(),
		resets:    stats.Resets(),
	}

	o.mu.Lock()
	prev := o.last[labels["cache_name"]]
	o.last[labels["cache_name"]] = current
	o.mu.Unlock()

	opt := metric.WithAttributes(attrs...)
	o.hitsCounter.Add(o.ctx, int64(counterDelta(current.hits, prev.hits)), opt)
	o.missesCounter.Add(o.ctx, int64(counterDelta(current.misses, prev.misses)), opt)
	o.evictionsCounter.Add(o.ctx, int64(counterDelta(current.evictions, prev.evictions)), opt)
	o.resetsCounter.Add(o.ctx, int64(counterDelta(current.resets, prev.resets)), opt)

	o.keysGauge.Record(o.ctx, stats.KeyCount(), opt)
	o.hitRateGauge.Record(o.ctx, stats.HitRate(), opt)

	return nil
}

// RecordLookup records a single cache lookup outcome
func (o *OpenTelemetryExporter) RecordLookup(result Result, labels Labels) error {
	attrs := o.convertLabels(labels)
	attrs = append(attrs, attribute.String("result", string(result)))

	o.lookupsCounter.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	return nil
}

// Close shuts down the exporter
func (o *OpenTelemetryExporter) Close() error {
	// OpenTelemetry metrics don't need explicit cleanup
	return nil
}

// Helper methods

func (o *OpenTelemetryExporter) convertLabels(labels Labels) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels)+len(o.config.Labels))

	// Add config labels first
	for k, v := range o.config.Labels {
		attrs = append(attrs, attribute.String(k, v))
	}

	// Add provided labels
	for k, v := range labels {
		attrs = append(attrs, attribute.String(k, v))
	}

	return attrs
}

// Ensure interface is implemented
var _ Exporter = (*OpenTelemetryExporter)(nil)
