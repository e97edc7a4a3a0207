package ntree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// promcollector provides a Prometheus implementation.
//
// Batch queries call the collector from several goroutines at once.
type MetricsCollector interface {
	// RecordAdd is called after each add operation.
	// duration is the total time taken, err is nil if successful.
	RecordAdd(duration time.Duration, err error)

	// RecordRemove is called after each remove operation.
	RecordRemove(duration time.Duration, err error)

	// RecordMove is called after each move operation.
	RecordMove(duration time.Duration, err error)

	// RecordSearch is called after each nearest-neighbor search.
	// k is the number of neighbors requested.
	RecordSearch(k int, duration time.Duration, err error)

	// RecordRadiusSearch is called after each radius search.
	// found is the number of payloads returned.
	RecordRadiusSearch(found int, duration time.Duration, err error)

	// RecordBatch is called after each batch query with the number of
	// queries it carried.
	RecordBatch(queries int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, error)               {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)            {}
func (NoopMetricsCollector) RecordMove(time.Duration, error)              {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordRadiusSearch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	AddErrors        atomic.Int64
	AddTotalNanos    atomic.Int64
	RemoveCount      atomic.Int64
	RemoveErrors     atomic.Int64
	MoveCount        atomic.Int64
	MoveErrors       atomic.Int64
	MoveTotalNanos   atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
	RadiusCount      atomic.Int64
	RadiusErrors     atomic.Int64
	RadiusResults    atomic.Int64
	RadiusTotalNanos atomic.Int64
	BatchCount       atomic.Int64
	BatchQueries     atomic.Int64
	BatchErrors      atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordMove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMove(duration time.Duration, err error) {
	b.MoveCount.Add(1)
	b.MoveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MoveErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordRadiusSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRadiusSearch(found int, duration time.Duration, err error) {
	b.RadiusCount.Add(1)
	b.RadiusResults.Add(int64(found))
	b.RadiusTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RadiusErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(queries int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchQueries.Add(int64(queries))
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:       b.AddCount.Load(),
		AddErrors:      b.AddErrors.Load(),
		AddAvgNanos:    avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveErrors:   b.RemoveErrors.Load(),
		MoveCount:      b.MoveCount.Load(),
		MoveErrors:     b.MoveErrors.Load(),
		MoveAvgNanos:   avg(b.MoveTotalNanos.Load(), b.MoveCount.Load()),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchAvgNanos: avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		RadiusCount:    b.RadiusCount.Load(),
		RadiusErrors:   b.RadiusErrors.Load(),
		RadiusResults:  b.RadiusResults.Load(),
		RadiusAvgNanos: avg(b.RadiusTotalNanos.Load(), b.RadiusCount.Load()),
		BatchCount:     b.BatchCount.Load(),
		BatchQueries:   b.BatchQueries.Load(),
		BatchErrors:    b.BatchErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector metrics.
type BasicMetricsStats struct {
	AddCount       int64
	AddErrors      int64
	AddAvgNanos    int64
	RemoveCount    int64
	RemoveErrors   int64
	MoveCount      int64
	MoveErrors     int64
	MoveAvgNanos   int64
	SearchCount    int64
	SearchErrors   int64
	SearchAvgNanos int64
	RadiusCount    int64
	RadiusErrors   int64
	RadiusResults  int64
	RadiusAvgNanos int64
	BatchCount     int64
	BatchQueries   int64
	BatchErrors    int64
}
