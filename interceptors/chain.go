package interceptors

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/wefthq/weft-go/contracts"
)

// Chain is the composed interceptor sequence for one operation kind plus its
// terminal handler. Interceptors that do not handle the kind are excluded at
// construction, so for that operation their presence is observably identical
// to their absence. A chain is immutable once built and safe for concurrent
// reuse across invocations.
type Chain struct {
	kind         contracts.OperationKind
	interceptors []Interceptor
	terminal     Handler
}

// NewChain builds the chain for kind from the registered interceptors, in
// registration order, around the terminal handler. A nil terminal is a
// configuration error and fails with ErrMissingTerminal.
func NewChain(kind contracts.OperationKind, registered []Interceptor, terminal Handler) (*Chain, error) {
	if terminal == nil {
		return nil, fmt.Errorf("building chain for %s: %w", kind, ErrMissingTerminal)
	}

	handling := make([]Interceptor, 0, len(registered))
	for _, ic := range registered {
		if ic.Handles(kind) {
			handling = append(handling, ic)
		}
	}

	return &Chain{
		kind:         kind,
		interceptors: handling,
		terminal:     terminal,
	}, nil
}

// Kind returns the operation kind the chain was built for.
func (c *Chain) Kind() contracts.OperationKind {
	return c.kind
}

// Len returns the number of interceptors participating in the chain,
// excluding the terminal handler.
func (c *Chain) Len() int {
	return len(c.interceptors)
}

// Names returns the participating interceptor names in chain order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.interceptors))
	for i, ic := range c.interceptors {
		names[i] = ic.Name()
	}
	return names
}

// Invoke runs the invocation through the chain: interceptors in order on the
// way in, terminal handler innermost, interceptors in reverse order on the
// way out. The result or failure of whichever frame terminates the chain
// propagates to the caller unchanged.
func (c *Chain) Invoke(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
	handler := c.terminal

	// Compose from the terminal outward. Each frame gets a fresh
	// single-use guard so a second next call within one invocation is
	// rejected instead of re-entering the downstream chain.
	for i := len(c.interceptors) - 1; i >= 0; i-- {
		interceptor := c.interceptors[i]
		next := &singleUseHandler{name: interceptor.Name(), next: handler}
		handler = HandlerFunc(func(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
			return interceptor.Intercept(ctx, inv, next)
		})
	}

	return handler.Handle(ctx, inv)
}

// singleUseHandler enforces the at-most-once contract on next handlers.
type singleUseHandler struct {
	name   string
	next   Handler
	called atomic.Bool
}

// Handle implements Handler
func (h *singleUseHandler) Handle(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
	if !h.called.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("interceptor %s: %w", h.name, ErrNextCalledTwice)
	}
	return h.next.Handle(ctx, inv)
}
