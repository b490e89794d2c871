package paretogo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// accepted reports whether the point entered the front or archive.
	RecordInsert(duration time.Duration, accepted bool)

	// RecordRemove is called after each remove operation.
	RecordRemove(duration time.Duration, removed bool)

	// RecordQuery is called after each range query.
	// results is the number of entries returned.
	RecordQuery(duration time.Duration, results int)

	// RecordNearest is called after each nearest-neighbor query.
	// k is the number of neighbors requested.
	RecordNearest(k int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool) {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool) {}
func (NoopMetricsCollector) RecordQuery(time.Duration, int)   {}
func (NoopMetricsCollector) RecordNearest(int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertRejected    atomic.Int64
	InsertTotalNanos  atomic.Int64
	RemoveCount       atomic.Int64
	RemoveMisses      atomic.Int64
	QueryCount        atomic.Int64
	QueryResults      atomic.Int64
	NearestCount      atomic.Int64
	NearestTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, accepted bool) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if !accepted {
		b.InsertRejected.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, removed bool) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveMisses.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(duration time.Duration, results int) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(k int, duration time.Duration) {
	b.NearestCount.Add(1)
	b.NearestTotalNanos.Add(duration.Nanoseconds())
}

// AverageInsertLatency returns the mean insert duration.
func (b *BasicMetricsCollector) AverageInsertLatency() time.Duration {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(b.InsertTotalNanos.Load() / count)
}
