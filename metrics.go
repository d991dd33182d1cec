package hello

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordDistance is called after the distance function returns.
	RecordDistance(duration time.Duration)

	// RecordBufferAcquire is called after each buffer acquisition attempt.
	// bytes is the requested size, err is nil if successful.
	RecordBufferAcquire(bytes int, err error)

	// RecordBufferRelease is called each time the allocator is freed.
	RecordBufferRelease(err error)

	// RecordFactorial is called for every factorial printed.
	RecordFactorial(n uint64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDistance(time.Duration)   {}
func (NoopMetricsCollector) RecordBufferAcquire(int, error) {}
func (NoopMetricsCollector) RecordBufferRelease(error)      {}
func (NoopMetricsCollector) RecordFactorial(uint64)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	DistanceCount      atomic.Int64
	DistanceTotalNanos atomic.Int64
	AcquireCount       atomic.Int64
	AcquireErrors      atomic.Int64
	AcquiredBytes      atomic.Int64
	ReleaseCount       atomic.Int64
	ReleaseErrors      atomic.Int64
	FactorialCount     atomic.Int64
}

// RecordDistance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistance(duration time.Duration) {
	b.DistanceCount.Add(1)
	b.DistanceTotalNanos.Add(duration.Nanoseconds())
}

// RecordBufferAcquire implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBufferAcquire(bytes int, err error) {
	b.AcquireCount.Add(1)
	if err != nil {
		b.AcquireErrors.Add(1)
		return
	}
	b.AcquiredBytes.Add(int64(bytes))
}

// RecordBufferRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBufferRelease(err error) {
	b.ReleaseCount.Add(1)
	if err != nil {
		b.ReleaseErrors.Add(1)
	}
}

// RecordFactorial implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFactorial(uint64) {
	b.FactorialCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		DistanceCount:  b.DistanceCount.Load(),
		AcquireCount:   b.AcquireCount.Load(),
		AcquireErrors:  b.AcquireErrors.Load(),
		AcquiredBytes:  b.AcquiredBytes.Load(),
		ReleaseCount:   b.ReleaseCount.Load(),
		ReleaseErrors:  b.ReleaseErrors.Load(),
		FactorialCount: b.FactorialCount.Load(),
	}
	if stats.DistanceCount > 0 {
		stats.DistanceAvgNanos = b.DistanceTotalNanos.Load() / stats.DistanceCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DistanceCount    int64
	DistanceAvgNanos int64
	AcquireCount     int64
	AcquireErrors    int64
	AcquiredBytes    int64
	ReleaseCount     int64
	ReleaseErrors    int64
	FactorialCount   int64
}
