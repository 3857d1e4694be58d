package interceptors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wefthq/weft-go/contracts"
)

func TestCallValues(t *testing.T) {
	t.Run("Set and Get", func(t *testing.T) {
		values := NewCallValues()
		values.Set("tenant", "acme")

		value, exists := values.Get("tenant")
		assert.True(t, exists)
		assert.Equal(t, "acme", value)

		_, exists = values.Get("missing")
		assert.False(t, exists)
	})

	t.Run("GetString", func(t *testing.T) {
		values := NewCallValues()
		values.Set("tenant", "acme")
		values.Set("count", 7)

		str, ok := values.GetString("tenant")
		assert.True(t, ok)
		assert.Equal(t, "acme", str)

		_, ok = values.GetString("count")
		assert.False(t, ok)
	})

	t.Run("Copy is independent", func(t *testing.T) {
		values := NewCallValues()
		values.Set("key", "original")

		copied := values.Copy()
		copied.Set("key", "changed")

		value, _ := values.Get("key")
		assert.Equal(t, "original", value)
	})
}

func TestCallValuesContext(t *testing.T) {
	t.Run("round-trips through context", func(t *testing.T) {
		values := NewCallValues()
		ctx := WithCallValues(context.Background(), values)

		found, exists := CallValuesFrom(ctx)
		assert.True(t, exists)
		assert.Same(t, values, found)
	})

	t.Run("absent from plain context", func(t *testing.T) {
		_, exists := CallValuesFrom(context.Background())
		assert.False(t, exists)
	})

	t.Run("EnsureCallValues attaches a bag when missing", func(t *testing.T) {
		ctx, values := EnsureCallValues(context.Background())
		require.NotNil(t, values)

		again, values2 := EnsureCallValues(ctx)
		assert.Same(t, values, values2)
		assert.Equal(t, ctx, again)
	})
}

func TestCallValuesAcrossChain(t *testing.T) {
	// A value set by the outer interceptor before next is visible to the
	// inner frame, and a value set by the inner frame is visible on the
	// outer unwind path.
	var innerSaw, outerSaw string

	outer := NewInterceptorFunc("outer", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
		ctx, values := EnsureCallValues(ctx)
		values.Set("down", "from-outer")

		result, err := next.Handle(ctx, inv)

		outerSaw, _ = values.GetString("up")
		return result, err
	})

	inner := NewInterceptorFunc("inner", func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
		values, _ := CallValuesFrom(ctx)
		innerSaw, _ = values.GetString("down")
		values.Set("up", "from-inner")
		return next.Handle(ctx, inv)
	})

	terminal := HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
		return nil, nil
	})

	chain, err := NewChain(contracts.OpExecuteWorkflow, []Interceptor{outer, inner}, terminal)
	require.NoError(t, err)

	_, err = chain.Invoke(context.Background(), contracts.NewInvocation(contracts.OpExecuteWorkflow, nil))

	require.NoError(t, err)
	assert.Equal(t, "from-outer", innerSaw)
	assert.Equal(t, "from-inner", outerSaw)
}
