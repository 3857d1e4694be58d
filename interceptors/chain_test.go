package interceptors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wefthq/weft-go/contracts"
)

// recordingInterceptor appends to a shared order slice around next.
func recordingInterceptor(name string, order *[]string) *InterceptorFunc {
	return NewInterceptorFunc(name, func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
		*order = append(*order, name+"-start")
		result, err := next.Handle(ctx, inv)
		*order = append(*order, name+"-end")
		return result, err
	})
}

func TestNewChain(t *testing.T) {
	t.Run("nil terminal fails at build time", func(t *testing.T) {
		chain, err := NewChain(contracts.OpStartWorkflow, nil, nil)

		assert.Nil(t, chain)
		assert.ErrorIs(t, err, ErrMissingTerminal)
	})

	t.Run("interceptors not handling the kind are excluded", func(t *testing.T) {
		handling := NewInterceptorFunc("handling", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
			return next.Handle(ctx, inv)
		})
		other := NewInterceptorFunc("other", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
			return next.Handle(ctx, inv)
		}).ForKinds(contracts.OpStartTimer)

		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			return nil, nil
		})

		chain, err := NewChain(contracts.OpScheduleActivity, []Interceptor{handling, other}, terminal)

		require.NoError(t, err)
		assert.Equal(t, 1, chain.Len())
		assert.Equal(t, []string{"handling"}, chain.Names())
	})
}

func TestChainInvoke(t *testing.T) {
	t.Run("runs interceptors in onion order", func(t *testing.T) {
		var order []string

		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			order = append(order, "terminal")
			return "result", nil
		})

		chain, err := NewChain(contracts.OpExecuteWorkflow, []Interceptor{
			recordingInterceptor("first", &order),
			recordingInterceptor("second", &order),
			recordingInterceptor("third", &order),
		}, terminal)
		require.NoError(t, err)

		inv := contracts.NewInvocation(contracts.OpExecuteWorkflow, nil)
		result, err := chain.Invoke(context.Background(), inv)

		assert.NoError(t, err)
		assert.Equal(t, "result", result)
		expected := []string{
			"first-start",
			"second-start",
			"third-start",
			"terminal",
			"third-end",
			"second-end",
			"first-end",
		}
		assert.Equal(t, expected, order)
	})

	t.Run("empty chain calls terminal directly", func(t *testing.T) {
		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			return 42, nil
		})

		chain, err := NewChain(contracts.OpExecuteActivity, nil, terminal)
		require.NoError(t, err)

		result, err := chain.Invoke(context.Background(), contracts.NewInvocation(contracts.OpExecuteActivity, nil))

		assert.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("short-circuiting interceptor stops the chain", func(t *testing.T) {
		var order []string
		shortCircuit := NewInterceptorFunc("shortCircuit", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
			order = append(order, "shortCircuit")
			return "cached", nil
		})

		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			order = append(order, "terminal")
			return "real", nil
		})

		chain, err := NewChain(contracts.OpQueryWorkflow, []Interceptor{
			recordingInterceptor("outer", &order),
			shortCircuit,
			recordingInterceptor("inner", &order),
		}, terminal)
		require.NoError(t, err)

		result, err := chain.Invoke(context.Background(), contracts.NewInvocation(contracts.OpQueryWorkflow, nil))

		assert.NoError(t, err)
		assert.Equal(t, "cached", result)
		assert.Equal(t, []string{"outer-start", "shortCircuit", "outer-end"}, order)
	})

	t.Run("terminal failure keeps identity through every unwind frame", func(t *testing.T) {
		terminalErr := errors.New("backend unavailable")
		var observed []error

		observing := func(name string) *InterceptorFunc {
			return NewInterceptorFunc(name, func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
				result, err := next.Handle(ctx, inv)
				observed = append(observed, err)
				return result, err
			})
		}

		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			return nil, terminalErr
		})

		chain, err := NewChain(contracts.OpStartWorkflow, []Interceptor{
			observing("outer"),
			observing("inner"),
		}, terminal)
		require.NoError(t, err)

		_, err = chain.Invoke(context.Background(), contracts.NewInvocation(contracts.OpStartWorkflow, nil))

		assert.Equal(t, terminalErr, err)
		require.Len(t, observed, 2)
		// inner unwinds first, then outer, both seeing the same error value
		assert.Equal(t, terminalErr, observed[0])
		assert.Equal(t, terminalErr, observed[1])
	})

	t.Run("calling next twice fails deterministically", func(t *testing.T) {
		var downstreamCalls int

		greedy := NewInterceptorFunc("greedy", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
			if _, err := next.Handle(ctx, inv); err != nil {
				return nil, err
			}
			return next.Handle(ctx, inv)
		})

		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			downstreamCalls++
			return nil, nil
		})

		chain, err := NewChain(contracts.OpSignalWorkflow, []Interceptor{greedy}, terminal)
		require.NoError(t, err)

		_, err = chain.Invoke(context.Background(), contracts.NewInvocation(contracts.OpSignalWorkflow, nil))

		assert.ErrorIs(t, err, ErrNextCalledTwice)
		assert.Contains(t, err.Error(), "greedy")
		assert.Equal(t, 1, downstreamCalls)
	})

	t.Run("guards are fresh per invocation", func(t *testing.T) {
		pass := NewInterceptorFunc("pass", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
			return next.Handle(ctx, inv)
		})

		calls := 0
		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			calls++
			return calls, nil
		})

		chain, err := NewChain(contracts.OpExecuteActivity, []Interceptor{pass}, terminal)
		require.NoError(t, err)

		for i := 1; i <= 3; i++ {
			result, err := chain.Invoke(context.Background(), contracts.NewInvocation(contracts.OpExecuteActivity, nil))
			assert.NoError(t, err)
			assert.Equal(t, i, result)
		}
	})

	t.Run("interceptor can replace the invocation for downstream frames", func(t *testing.T) {
		rewrite := NewInterceptorFunc("rewrite", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
			headers := inv.Headers.Clone()
			headers["tenant"] = "acme"
			return next.Handle(ctx, inv.WithHeaders(headers))
		})

		var seenTenant string
		terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			seenTenant = inv.Headers.Get("tenant")
			return nil, nil
		})

		chain, err := NewChain(contracts.OpStartWorkflow, []Interceptor{rewrite}, terminal)
		require.NoError(t, err)

		inv := contracts.NewInvocation(contracts.OpStartWorkflow, nil)
		_, err = chain.Invoke(context.Background(), inv)

		assert.NoError(t, err)
		assert.Equal(t, "acme", seenTenant)
		// the original invocation keeps its own headers
		assert.False(t, inv.Headers.Has("tenant"))
	})
}

func TestChainLoggingScenario(t *testing.T) {
	// A single Log interceptor around a scheduleActivity terminal: output
	// order is start, terminal, done, and the terminal's result is
	// returned unchanged.
	var output []string

	log := NewInterceptorFunc("Log", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
		output = append(output, "start")
		result, err := next.Handle(ctx, inv)
		output = append(output, "done")
		return result, err
	})

	terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		in := inv.Input.(*contracts.ScheduleActivityInput)
		output = append(output, "scheduled:"+in.ActivityType)
		return "activity-scheduled", nil
	})

	chain, err := NewChain(contracts.OpScheduleActivity, []Interceptor{log}, terminal)
	require.NoError(t, err)

	inv := contracts.NewInvocation(contracts.OpScheduleActivity, &contracts.ScheduleActivityInput{
		ActivityType: "sendEmail",
	})
	result, err := chain.Invoke(context.Background(), inv)

	assert.NoError(t, err)
	assert.Equal(t, "activity-scheduled", result)
	assert.Equal(t, []string{"start", "scheduled:sendEmail", "done"}, output)
}
