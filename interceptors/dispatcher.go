package interceptors

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wefthq/weft-go/contracts"
)

// Dispatcher is the hosting runtime's entry point for intercepted
// operations. It derives the call-category from the invocation's operation
// kind, lazily builds the chain for that kind on first dispatch, caches it,
// and invokes it. The terminal handler is bound when the chain is first
// built; subsequent dispatches for the same kind reuse the cached chain.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger

	mu     sync.RWMutex
	chains map[contracts.OperationKind]*Chain
}

// NewDispatcher creates a dispatcher over the given registry
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	if registry == nil {
		registry = NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Dispatcher{
		registry: registry,
		logger:   logger,
		chains:   make(map[contracts.OperationKind]*Chain),
	}
}

// Registry returns the dispatcher's registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch runs the invocation through the chain for its operation kind and
// returns the chain's result, or propagates its failure unchanged. The
// first dispatch for an operation kind seals the registry and binds terminal
// as that kind's innermost handler.
func (d *Dispatcher) Dispatch(ctx context.Context, inv *contracts.Invocation, terminal Handler) (interface{}, error) {
	if !inv.Operation.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, inv.Operation)
	}

	chain, err := d.chainFor(inv.Operation, terminal)
	if err != nil {
		return nil, err
	}

	return chain.Invoke(ctx, inv)
}

// chainFor returns the cached chain for kind, building it on first use.
func (d *Dispatcher) chainFor(kind contracts.OperationKind, terminal Handler) (*Chain, error) {
	d.mu.RLock()
	chain, ok := d.chains[kind]
	d.mu.RUnlock()
	if ok {
		return chain, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Another dispatch may have built the chain while we waited.
	if chain, ok := d.chains[kind]; ok {
		return chain, nil
	}

	d.registry.Seal()

	chain, err := NewChain(kind, d.registry.ListFor(kind.Category()), terminal)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("composed interceptor chain",
		"operation", kind,
		"category", kind.Category(),
		"interceptors", chain.Names(),
	)

	d.chains[kind] = chain
	return chain, nil
}
