// Package monitor provides observability helpers for the weft interceptor
// layer.
package monitor

import (
	"sync"
	"time"

	"github.com/wefthq/weft-go/contracts"
)

// SimpleMetricsCollector implements a basic in-memory metrics collector
// that can be extended with exporters (Prometheus, etc.) later. It satisfies
// interceptors.MetricsCollector.
type SimpleMetricsCollector struct {
	mu sync.RWMutex

	// Operation counters by kind
	operationCounters map[contracts.OperationKind]int64

	// Error counters by operation kind and error type
	errorCounters map[contracts.OperationKind]map[string]int64

	// Latency stats by operation kind
	latencies map[contracts.OperationKind]*LatencyStats
}

// LatencyStats tracks timing statistics for one operation kind
type LatencyStats struct {
	Count   int64
	TotalMs int64
	MinMs   int64
	MaxMs   int64
}

// NewSimpleMetricsCollector creates a new in-memory metrics collector
func NewSimpleMetricsCollector() *SimpleMetricsCollector {
	return &SimpleMetricsCollector{
		operationCounters: make(map[contracts.OperationKind]int64),
		errorCounters:     make(map[contracts.OperationKind]map[string]int64),
		latencies:         make(map[contracts.OperationKind]*LatencyStats),
	}
}

// IncrementOperationCount implements interceptors.MetricsCollector
func (c *SimpleMetricsCollector) IncrementOperationCount(op contracts.OperationKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operationCounters[op]++
}

// RecordLatency implements interceptors.MetricsCollector
func (c *SimpleMetricsCollector) RecordLatency(op contracts.OperationKind, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	durationMs := duration.Milliseconds()

	stats, exists := c.latencies[op]
	if !exists {
		stats = &LatencyStats{
			MinMs: durationMs,
			MaxMs: durationMs,
		}
		c.latencies[op] = stats
	}

	stats.Count++
	stats.TotalMs += durationMs

	if durationMs < stats.MinMs {
		stats.MinMs = durationMs
	}
	if durationMs > stats.MaxMs {
		stats.MaxMs = durationMs
	}
}

// IncrementErrorCount implements interceptors.MetricsCollector
func (c *SimpleMetricsCollector) IncrementErrorCount(op contracts.OperationKind, errorType string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.errorCounters[op] == nil {
		c.errorCounters[op] = make(map[string]int64)
	}
	c.errorCounters[op][errorType]++
}

// OperationCount returns how many times the operation ran
func (c *SimpleMetricsCollector) OperationCount(op contracts.OperationKind) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.operationCounters[op]
}

// ErrorCount returns how many times the operation failed with the error type
func (c *SimpleMetricsCollector) ErrorCount(op contracts.OperationKind, errorType string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errorCounters[op][errorType]
}

// Latency returns a copy of the latency stats for the operation, or nil when
// the operation has not been recorded.
func (c *SimpleMetricsCollector) Latency(op contracts.OperationKind) *LatencyStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats, exists := c.latencies[op]
	if !exists {
		return nil
	}
	copied := *stats
	return &copied
}
