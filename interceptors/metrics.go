package interceptors

import (
	"context"
	"time"

	"github.com/wefthq/weft-go/contracts"
)

// MetricsCollector defines the interface for collecting operation metrics
type MetricsCollector interface {
	IncrementOperationCount(op contracts.OperationKind)
	RecordLatency(op contracts.OperationKind, duration time.Duration)
	IncrementErrorCount(op contracts.OperationKind, errorType string)
}

// MetricsInterceptor collects metrics about intercepted operations. It
// handles every operation kind.
type MetricsInterceptor struct {
	collector MetricsCollector
}

// NewMetricsInterceptor creates a new metrics interceptor
func NewMetricsInterceptor(collector MetricsCollector) *MetricsInterceptor {
	return &MetricsInterceptor{collector: collector}
}

// Handles implements Interceptor
func (i *MetricsInterceptor) Handles(contracts.OperationKind) bool {
	return true
}

// Intercept implements Interceptor
func (i *MetricsInterceptor) Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
	start := time.Now()
	op := inv.Operation

	i.collector.IncrementOperationCount(op)

	result, err := next.Handle(ctx, inv)
	duration := time.Since(start)

	i.collector.RecordLatency(op, duration)

	if err != nil {
		i.collector.IncrementErrorCount(op, "operation_error")
	}

	return result, err
}

// Name implements Interceptor
func (i *MetricsInterceptor) Name() string {
	return "MetricsInterceptor"
}
