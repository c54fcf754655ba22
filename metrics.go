package submet

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFitPair is called after each FitPair.
	// duration is the total time taken, err is nil if successful.
	RecordFitPair(duration time.Duration, err error)

	// RecordFitAll is called after each FitAll.
	// pairs is the number of distances computed, duration is the total time
	// taken, err is nil if successful.
	RecordFitAll(pairs int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFitPair(time.Duration, error)     {}
func (NoopMetricsCollector) RecordFitAll(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitPairCount      atomic.Int64
	FitPairErrors     atomic.Int64
	FitPairTotalNanos atomic.Int64
	FitAllCount       atomic.Int64
	FitAllErrors      atomic.Int64
	FitAllPairs       atomic.Int64
	FitAllTotalNanos  atomic.Int64
}

// RecordFitPair implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFitPair(duration time.Duration, err error) {
	b.FitPairCount.Add(1)
	b.FitPairTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitPairErrors.Add(1)
	}
}

// RecordFitAll implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFitAll(pairs int, duration time.Duration, err error) {
	b.FitAllCount.Add(1)
	b.FitAllTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitAllErrors.Add(1)
		return
	}
	b.FitAllPairs.Add(int64(pairs))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitPairCount:     b.FitPairCount.Load(),
		FitPairErrors:    b.FitPairErrors.Load(),
		FitPairAvgNanos:  avgNanos(b.FitPairTotalNanos.Load(), b.FitPairCount.Load()),
		FitAllCount:      b.FitAllCount.Load(),
		FitAllErrors:     b.FitAllErrors.Load(),
		FitAllPairs:      b.FitAllPairs.Load(),
		FitAllAvgNanos:   avgNanos(b.FitAllTotalNanos.Load(), b.FitAllCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitPairCount    int64
	FitPairErrors   int64
	FitPairAvgNanos int64
	FitAllCount     int64
	FitAllErrors    int64
	FitAllPairs     int64
	FitAllAvgNanos  int64
}
