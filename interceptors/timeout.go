package interceptors

import (
	"context"
	"fmt"
	"time"

	"github.com/wefthq/weft-go/contracts"
)

// TimeoutInterceptor bounds the time the remainder of the chain may take. It
// handles every operation kind.
type TimeoutInterceptor struct {
	timeout time.Duration
}

// NewTimeoutInterceptor creates a new timeout interceptor
func NewTimeoutInterceptor(timeout time.Duration) *TimeoutInterceptor {
	return &TimeoutInterceptor{timeout: timeout}
}

// Handles implements Interceptor
func (i *TimeoutInterceptor) Handles(contracts.OperationKind) bool {
	return true
}

type timeoutOutcome struct {
	result interface{}
	err    error
}

// Intercept implements Interceptor
func (i *TimeoutInterceptor) Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	done := make(chan timeoutOutcome, 1)
	go func() {
		result, err := next.Handle(timeoutCtx, inv)
		done <- timeoutOutcome{result: result, err: err}
	}()

	select {
	case outcome := <-done:
		return outcome.result, outcome.err
	case <-timeoutCtx.Done():
		return nil, fmt.Errorf("operation %s timed out after %v (invocation %s): %w",
			inv.Operation, i.timeout, inv.ID, timeoutCtx.Err())
	}
}

// Name implements Interceptor
func (i *TimeoutInterceptor) Name() string {
	return "TimeoutInterceptor"
}
