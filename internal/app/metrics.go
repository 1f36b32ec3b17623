package app

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks highlighting performance counters.
type Metrics struct {
	// Scan timing
	scanCount   atomic.Uint64
	scanTotalNs atomic.Int64
	scanMinNs   atomic.Int64
	scanMaxNs   atomic.Int64

	// Span production
	spanCount atomic.Uint64

	// Fast-rejected sequences (disabled, wrong MIME type, empty palette)
	rejectCount atomic.Uint64

	// Span cache
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64

	// Configuration swaps
	reloadCount atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	// Initialize min to max int64 so the first scan is smaller.
	m.scanMinNs.Store(1<<63 - 1)
	return m
}

// RecordScan records one completed scan and the spans it produced.
func (m *Metrics) RecordScan(duration time.Duration, spans int) {
	ns := duration.Nanoseconds()

	m.scanCount.Add(1)
	m.scanTotalNs.Add(ns)
	m.spanCount.Add(uint64(spans))

	for {
		old := m.scanMinNs.Load()
		if ns >= old {
			break
		}
		if m.scanMinNs.CompareAndSwap(old, ns) {
			break
		}
	}

	for {
		old := m.scanMaxNs.Load()
		if ns <= old {
			break
		}
		if m.scanMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordReject records a sequence that was rejected without scanning.
func (m *Metrics) RecordReject() {
	m.rejectCount.Add(1)
}

// RecordCacheHit records a span cache hit.
func (m *Metrics) RecordCacheHit() {
	m.cacheHits.Add(1)
}

// RecordCacheMiss records a span cache miss.
func (m *Metrics) RecordCacheMiss() {
	m.cacheMisses.Add(1)
}

// RecordReload records a configuration swap.
func (m *Metrics) RecordReload() {
	m.reloadCount.Add(1)
}

// Snapshot returns a point-in-time view of the metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	scanCount := m.scanCount.Load()

	var avgScanNs int64
	if scanCount > 0 {
		avgScanNs = m.scanTotalNs.Load() / int64(scanCount)
	}

	minScanNs := m.scanMinNs.Load()
	if minScanNs == 1<<63-1 {
		minScanNs = 0
	}

	return MetricsSnapshot{
		Uptime:      time.Since(m.startTime),
		ScanCount:   scanCount,
		AvgScanNs:   avgScanNs,
		MinScanNs:   minScanNs,
		MaxScanNs:   m.scanMaxNs.Load(),
		SpanCount:   m.spanCount.Load(),
		RejectCount: m.rejectCount.Load(),
		CacheHits:   m.cacheHits.Load(),
		CacheMisses: m.cacheMisses.Load(),
		ReloadCount: m.reloadCount.Load(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.scanCount.Store(0)
	m.scanTotalNs.Store(0)
	m.scanMinNs.Store(1<<63 - 1)
	m.scanMaxNs.Store(0)
	m.spanCount.Store(0)
	m.rejectCount.Store(0)
	m.cacheHits.Store(0)
	m.cacheMisses.Store(0)
	m.reloadCount.Store(0)
	m.startTime = time.Now()
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime      time.Duration
	ScanCount   uint64
	AvgScanNs   int64
	MinScanNs   int64
	MaxScanNs   int64
	SpanCount   uint64
	RejectCount uint64
	CacheHits   uint64
	CacheMisses uint64
	ReloadCount uint64
}

// HitRate returns the cache hit percentage.
func (s MetricsSnapshot) HitRate() float64 {
	total := s.CacheHits + s.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(total) * 100
}

// SpansPerScan returns the average number of spans produced per scan.
func (s MetricsSnapshot) SpansPerScan() float64 {
	if s.ScanCount == 0 {
		return 0
	}
	return float64(s.SpanCount) / float64(s.ScanCount)
}

// Timer measures elapsed time for a single operation.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

var (
	appMetrics     *Metrics
	appMetricsOnce sync.Once
)

// GetMetrics returns the process-wide metrics.
func GetMetrics() *Metrics {
	appMetricsOnce.Do(func() {
		if appMetrics == nil {
			appMetrics = NewMetrics()
		}
	})
	return appMetrics
}

// SetMetrics sets the process-wide metrics.
func SetMetrics(m *Metrics) {
	appMetrics = m
}
