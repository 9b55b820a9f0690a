package hvgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// metrics/prom for a Prometheus implementation.
type MetricsCollector interface {
	// RecordFront is called after each front of a batch.
	// points and objectives describe the input front, duration is the time
	// taken and err is nil if successful.
	RecordFront(points, objectives int, duration time.Duration, err error)

	// RecordBatch is called after each batch with the number of fronts
	// requested and the total time taken.
	RecordBatch(fronts int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFront(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FrontCount      atomic.Int64
	FrontErrors     atomic.Int64
	FrontPoints     atomic.Int64
	FrontTotalNanos atomic.Int64
	BatchCount      atomic.Int64
	BatchErrors     atomic.Int64
	BatchFronts     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordFront implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFront(points, objectives int, duration time.Duration, err error) {
	b.FrontCount.Add(1)
	b.FrontPoints.Add(int64(points))
	b.FrontTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FrontErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(fronts int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchFronts.Add(int64(fronts))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FrontCount:    b.FrontCount.Load(),
		FrontErrors:   b.FrontErrors.Load(),
		FrontPoints:   b.FrontPoints.Load(),
		FrontAvgNanos: avg(b.FrontTotalNanos.Load(), b.FrontCount.Load()),
		BatchCount:    b.BatchCount.Load(),
		BatchErrors:   b.BatchErrors.Load(),
		BatchFronts:   b.BatchFronts.Load(),
		BatchAvgNanos: avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FrontCount    int64
	FrontErrors   int64
	FrontPoints   int64
	FrontAvgNanos int64
	BatchCount    int64
	BatchErrors   int64
	BatchFronts   int64
	BatchAvgNanos int64
}
