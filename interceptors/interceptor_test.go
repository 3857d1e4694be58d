package interceptors

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wefthq/weft-go/contracts"
)

// Mock handler
type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Handle(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
	args := m.Called(ctx, inv)
	return args.Get(0), args.Error(1)
}

// Mock collector
type mockMetricsCollector struct {
	mock.Mock
}

func (m *mockMetricsCollector) IncrementOperationCount(op contracts.OperationKind) {
	m.Called(op)
}

func (m *mockMetricsCollector) RecordLatency(op contracts.OperationKind, duration time.Duration) {
	m.Called(op, duration)
}

func (m *mockMetricsCollector) IncrementErrorCount(op contracts.OperationKind, errorType string) {
	m.Called(op, errorType)
}

func TestBase(t *testing.T) {
	t.Run("handles nothing by default", func(t *testing.T) {
		var base Base

		assert.False(t, base.Handles(contracts.OpStartWorkflow))
		assert.False(t, base.Handles(contracts.OpExecuteActivity))
	})

	t.Run("forwards untouched", func(t *testing.T) {
		var base Base
		handler := &mockHandler{}
		inv := contracts.NewInvocation(contracts.OpStartWorkflow, nil)

		handler.On("Handle", mock.Anything, inv).Return("forwarded", nil)

		result, err := base.Intercept(context.Background(), inv, handler)

		assert.NoError(t, err)
		assert.Equal(t, "forwarded", result)
		handler.AssertExpectations(t)
	})
}

func TestInterceptorFunc(t *testing.T) {
	t.Run("handles every kind without a filter", func(t *testing.T) {
		ic := passThrough("all")

		assert.True(t, ic.Handles(contracts.OpStartWorkflow))
		assert.True(t, ic.Handles(contracts.OpStartTimer))
	})

	t.Run("ForKinds restricts handled kinds", func(t *testing.T) {
		ic := passThrough("narrow").ForKinds(contracts.OpHandleSignal, contracts.OpHandleQuery)

		assert.True(t, ic.Handles(contracts.OpHandleSignal))
		assert.True(t, ic.Handles(contracts.OpHandleQuery))
		assert.False(t, ic.Handles(contracts.OpExecuteWorkflow))
	})

	t.Run("Name returns the given name", func(t *testing.T) {
		assert.Equal(t, "named", passThrough("named").Name())
	})
}

func TestLoggingInterceptor(t *testing.T) {
	t.Run("nil logger falls back to default", func(t *testing.T) {
		interceptor := NewLoggingInterceptor(nil)

		assert.NotNil(t, interceptor.logger)
		assert.Equal(t, "LoggingInterceptor", interceptor.Name())
		assert.True(t, interceptor.Handles(contracts.OpStartWorkflow))
	})

	t.Run("passes result and error through", func(t *testing.T) {
		interceptor := NewLoggingInterceptor(slog.Default())
		handler := &mockHandler{}
		inv := contracts.NewInvocation(contracts.OpExecuteActivity, nil)
		handlerErr := errors.New("activity failed")

		handler.On("Handle", mock.Anything, inv).Return(nil, handlerErr)

		result, err := interceptor.Intercept(context.Background(), inv, handler)

		assert.Nil(t, result)
		assert.Equal(t, handlerErr, err)
		handler.AssertExpectations(t)
	})
}

func TestMetricsInterceptor(t *testing.T) {
	t.Run("collects metrics on success", func(t *testing.T) {
		collector := &mockMetricsCollector{}
		interceptor := NewMetricsInterceptor(collector)
		handler := &mockHandler{}
		inv := contracts.NewInvocation(contracts.OpStartWorkflow, nil)

		collector.On("IncrementOperationCount", contracts.OpStartWorkflow).Return()
		collector.On("RecordLatency", contracts.OpStartWorkflow, mock.AnythingOfType("time.Duration")).Return()
		handler.On("Handle", mock.Anything, inv).Return("ok", nil)

		result, err := interceptor.Intercept(context.Background(), inv, handler)

		assert.NoError(t, err)
		assert.Equal(t, "ok", result)
		collector.AssertExpectations(t)
		handler.AssertExpectations(t)
	})

	t.Run("collects error metrics on failure", func(t *testing.T) {
		collector := &mockMetricsCollector{}
		interceptor := NewMetricsInterceptor(collector)
		handler := &mockHandler{}
		inv := contracts.NewInvocation(contracts.OpSignalWorkflow, nil)
		handlerErr := errors.New("signal failed")

		collector.On("IncrementOperationCount", contracts.OpSignalWorkflow).Return()
		collector.On("RecordLatency", contracts.OpSignalWorkflow, mock.AnythingOfType("time.Duration")).Return()
		collector.On("IncrementErrorCount", contracts.OpSignalWorkflow, "operation_error").Return()
		handler.On("Handle", mock.Anything, inv).Return(nil, handlerErr)

		_, err := interceptor.Intercept(context.Background(), inv, handler)

		assert.Equal(t, handlerErr, err)
		collector.AssertExpectations(t)
		handler.AssertExpectations(t)
	})
}

func TestTimeoutInterceptor(t *testing.T) {
	t.Run("succeeds when handler completes in time", func(t *testing.T) {
		interceptor := NewTimeoutInterceptor(100 * time.Millisecond)
		inv := contracts.NewInvocation(contracts.OpQueryWorkflow, nil)

		fast := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			return "fast", nil
		})

		result, err := interceptor.Intercept(context.Background(), inv, fast)

		assert.NoError(t, err)
		assert.Equal(t, "fast", result)
	})

	t.Run("times out when handler takes too long", func(t *testing.T) {
		interceptor := NewTimeoutInterceptor(10 * time.Millisecond)
		inv := contracts.NewInvocation(contracts.OpQueryWorkflow, nil)

		slow := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			select {
			case <-time.After(time.Second):
				return "late", nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})

		_, err := interceptor.Intercept(context.Background(), inv, slow)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "timed out")
	})
}
