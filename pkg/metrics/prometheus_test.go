package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

type fakeStats struct {
	hits      int64
	misses    int64
	evictions int64
	resets    int64
	keyCount  int64
	hitRate   float64
}

func (f *fakeStats) Hits() int64      { return f.hits }
func (f *fakeStats) Misses() int64    { return f.misses }
func (f *fakeStats) Evictions() int64 { return f.evictions }
func (f *fakeStats) Resets() int64    { return f.resets }
func (f *fakeStats) KeyCount() int64  { return f.keyCount }
func (f *fakeStats) HitRate() float64 { return f.hitRate }

// gatherValue finds a metric by name and label set and returns its counter or
// gauge value
func gatherValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for _, pair := range m.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					continue metric
				}
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				return g.GetValue()
			}
		}
	}

	t.Fatalf("Metric %s with labels %v not found", name, labels)
	return 0
}

func newTestExporter(t *testing.T) (*PrometheusExporter, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	exporter, err := NewPrometheusExporter(nil, &PrometheusConfig{Registry: reg})
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}
	return exporter, reg
}

func TestPrometheusExportStats(t *testing.T) {
	exporter, reg := newTestExporter(t)
	labels := Labels{"cache_name": "classNames"}

	stats := &fakeStats{hits: 10, misses: 5, evictions: 2, resets: 1, keyCount: 8, hitRate: 10.0 / 15.0}
	if err := exporter.ExportStats(stats, labels); err != nil {
		t.Fatalf("Failed to export stats: %v", err)
	}

	promLabels := map[string]string{"cache_name": "classNames"}
	if got := gatherValue(t, reg, DefaultMetricNames().CacheHitsTotal, promLabels); got != 10 {
		t.Fatalf("Expected 10 hits, got %f", got)
	}
	if got := gatherValue(t, reg, DefaultMetricNames().CacheMissesTotal, promLabels); got != 5 {
		t.Fatalf("Expected 5 misses, got %f", got)
	}
	if got := gatherValue(t, reg, DefaultMetricNames().CacheEvictionsTotal, promLabels); got != 2 {
		t.Fatalf("Expected 2 evictions, got %f", got)
	}
	if got := gatherValue(t, reg, DefaultMetricNames().CacheKeysCount, promLabels); got != 8 {
		t.Fatalf("Expected key count 8, got %f", got)
	}
}

func TestPrometheusExportStatsDelta(t *testing.T) {
	exporter, reg := newTestExporter(t)
	labels := Labels{"cache_name": "classNames"}
	promLabels := map[string]string{"cache_name": "classNames"}

	stats := &fakeStats{hits: 10}
	if err := exporter.ExportStats(stats, labels); err != nil {
		t.Fatalf("Failed to export stats: %v", err)
	}

	// Repeated exports of the same cumulative snapshot must not re-add
	if err := exporter.ExportStats(stats, labels); err != nil {
		t.Fatalf("Failed to export stats: %v", err)
	}
	if got := gatherValue(t, reg, DefaultMetricNames().CacheHitsTotal, promLabels); got != 10 {
		t.Fatalf("Expected counter unchanged at 10, got %f", got)
	}

	stats.hits = 25
	if err := exporter.ExportStats(stats, labels); err != nil {
		t.Fatalf("Failed to export stats: %v", err)
	}
	if got := gatherValue(t, reg, DefaultMetricNames().CacheHitsTotal, promLabels); got != 25 {
		t.Fatalf("Expected counter at 25 after delta export, got %f", got)
	}
}

func TestPrometheusRecordLookup(t *testing.T) {
	exporter, reg := newTestExporter(t)
	labels := Labels{"cache_name": "classNames"}

	for i := 0; i < 3; i++ {
		if err := exporter.RecordLookup(ResultHit, labels); err != nil {
			t.Fatalf("Failed to record lookup: %v", err)
		}
	}
	if err := exporter.RecordLookup(ResultMiss, labels); err != nil {
		t.Fatalf("Failed to record lookup: %v", err)
	}

	hits := gatherValue(t, reg, DefaultMetricNames().CacheLookupsTotal,
		map[string]string{"cache_name": "classNames", "result": "hit"})
	if hits != 3 {
		t.Fatalf("Expected 3 hit lookups, got %f", hits)
	}

	misses := gatherValue(t, reg, DefaultMetricNames().CacheLookupsTotal,
		map[string]string{"cache_name": "classNames", "result": "miss"})
	if misses != 1 {
		t.Fatalf("Expected 1 miss lookup, got %f", misses)
	}
}

func TestPrometheusSeparateCaches(t *testing.T) {
	exporter, reg := newTestExporter(t)

	if err := exporter.ExportStats(&fakeStats{hits: 7}, Labels{"cache_name": "classNames"}); err != nil {
		t.Fatalf("Failed to export stats: %v", err)
	}
	if err := exporter.ExportStats(&fakeStats{hits: 3}, Labels{"cache_name": "componentClasses"}); err != nil {
		t.Fatalf("Failed to export stats: %v", err)
	}

	first := gatherValue(t, reg, DefaultMetricNames().CacheHitsTotal,
		map[string]string{"cache_name": "classNames"})
	second := gatherValue(t, reg, DefaultMetricNames().CacheHitsTotal,
		map[string]string{"cache_name": "componentClasses"})

	if first != 7 || second != 3 {
		t.Fatalf("Expected per-cache counters (7, 3), got (%f, %f)", first, second)
	}
}

func TestMultiExporter(t *testing.T) {
	first, firstReg := newTestExporter(t)

	secondReg := prometheus.NewRegistry()
	second, err := NewPrometheusExporter(nil, &PrometheusConfig{Registry: secondReg})
	if err != nil {
		t.Fatalf("Failed to create exporter: %v", err)
	}

	multi := NewMultiExporter(first, second)
	if err := multi.ExportStats(&fakeStats{hits: 4}, Labels{"cache_name": "classNames"}); err != nil {
		t.Fatalf("Failed to export stats: %v", err)
	}

	promLabels := map[string]string{"cache_name": "classNames"}
	if got := gatherValue(t, firstReg, DefaultMetricNames().CacheHitsTotal, promLabels); got != 4 {
		t.Fatalf("Expected first exporter to receive stats, got %f", got)
	}
	if got := gatherValue(t, secondReg, DefaultMetricNames().CacheHitsTotal, promLabels); got != 4 {
		t.Fatalf("Expected second exporter to receive stats, got %f", got)
	}
}

func TestNoOpExporter(t *testing.T) {
	exporter := NewNoOpExporter()

	if err := exporter.ExportStats(&fakeStats{hits: 1}, nil); err != nil {
		t.Fatalf("Expected no-op export to succeed, got %v", err)
	}
	if err := exporter.RecordLookup(ResultHit, nil); err != nil {
		t.Fatalf("Expected no-op lookup record to succeed, got %v", err)
	}
	if err := exporter.Close(); err != nil {
		t.Fatalf("Expected no-op close to succeed, got %v", err)
	}
}
