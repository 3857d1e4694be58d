package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvocation(t *testing.T) {
	input := &StartWorkflowInput{WorkflowType: "Order"}
	inv := NewInvocation(OpStartWorkflow, input)

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, OpStartWorkflow, inv.Operation)
	assert.Equal(t, input, inv.Input)
	assert.NotNil(t, inv.Headers)
	assert.False(t, inv.StartedAt.IsZero())

	// IDs are unique per invocation
	other := NewInvocation(OpStartWorkflow, input)
	assert.NotEqual(t, inv.ID, other.ID)
}

func TestInvocationWithHeaders(t *testing.T) {
	inv := NewInvocation(OpSignalWorkflow, nil)
	inv.Headers["auth"] = "token"

	replaced := inv.WithHeaders(Header{"tenant": "acme"})

	require.NotSame(t, inv, replaced)
	assert.Equal(t, inv.ID, replaced.ID)
	assert.Equal(t, "acme", replaced.Headers.Get("tenant"))
	assert.False(t, replaced.Headers.Has("auth"))
	// original keeps its headers
	assert.Equal(t, "token", inv.Headers.Get("auth"))
}

func TestInvocationWithInput(t *testing.T) {
	inv := NewInvocation(OpQueryWorkflow, &QueryWorkflowInput{QueryType: "status"})

	replaced := inv.WithInput(&QueryWorkflowInput{QueryType: "history"})

	require.NotSame(t, inv, replaced)
	assert.Equal(t, "history", replaced.Input.(*QueryWorkflowInput).QueryType)
	assert.Equal(t, "status", inv.Input.(*QueryWorkflowInput).QueryType)
}

func TestHeader(t *testing.T) {
	t.Run("nil header is safe", func(t *testing.T) {
		var h Header

		assert.Equal(t, "", h.Get("any"))
		assert.False(t, h.Has("any"))
		assert.Nil(t, h.Clone())
	})

	t.Run("Clone is independent", func(t *testing.T) {
		h := Header{"auth": "token"}
		clone := h.Clone()
		clone["auth"] = "changed"

		assert.Equal(t, "token", h.Get("auth"))
		assert.Equal(t, "changed", clone.Get("auth"))
	})
}
