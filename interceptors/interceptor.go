package interceptors

import (
	"context"

	"github.com/wefthq/weft-go/contracts"
)

// Handler represents the continuation of an interceptor chain: either the
// next interceptor or, at the innermost position, the terminal handler that
// performs the real operation.
type Handler interface {
	Handle(ctx context.Context, inv *contracts.Invocation) (interface{}, error)
}

// HandlerFunc is a function adapter for Handler
type HandlerFunc func(ctx context.Context, inv *contracts.Invocation) (interface{}, error)

// Handle implements Handler
func (f HandlerFunc) Handle(ctx context.Context, inv *contracts.Invocation) (interface{}, error) {
	return f(ctx, inv)
}

// Interceptor processes invocations before they reach the terminal handler.
// An interceptor opts into operation kinds via Handles; kinds it does not
// handle never see it in their chains.
type Interceptor interface {
	// Intercept processes an invocation and calls the next handler in the
	// chain. The next handler may be invoked at most once per invocation.
	Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error)

	// Handles reports whether this interceptor intercepts the given
	// operation kind.
	Handles(kind contracts.OperationKind) bool

	// Name returns the interceptor name for logging and debugging
	Name() string
}

// Base is a partial Interceptor implementation that handles no operation
// kinds and forwards every invocation untouched. Embed it and override
// Handles (and usually Intercept) to build interceptors that cover only a
// subset of operations.
type Base struct{}

// Handles implements Interceptor
func (Base) Handles(contracts.OperationKind) bool {
	return false
}

// Intercept implements Interceptor
func (Base) Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
	return next.Handle(ctx, inv)
}

// InterceptorFunc is a function-based interceptor. With no kind filter it
// handles every operation kind.
type InterceptorFunc struct {
	name  string
	kinds map[contracts.OperationKind]bool
	fn    func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error)
}

// NewInterceptorFunc creates a new function-based interceptor
func NewInterceptorFunc(name string, fn func(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error)) *InterceptorFunc {
	return &InterceptorFunc{name: name, fn: fn}
}

// ForKinds restricts the interceptor to the given operation kinds and
// returns the interceptor for chaining.
func (i *InterceptorFunc) ForKinds(kinds ...contracts.OperationKind) *InterceptorFunc {
	i.kinds = make(map[contracts.OperationKind]bool, len(kinds))
	for _, k := range kinds {
		i.kinds[k] = true
	}
	return i
}

// Intercept implements Interceptor
func (i *InterceptorFunc) Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
	return i.fn(ctx, inv, next)
}

// Handles implements Interceptor
func (i *InterceptorFunc) Handles(kind contracts.OperationKind) bool {
	if i.kinds == nil {
		return true
	}
	return i.kinds[kind]
}

// Name implements Interceptor
func (i *InterceptorFunc) Name() string {
	return i.name
}
