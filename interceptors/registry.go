package interceptors

import (
	"sync"

	"github.com/wefthq/weft-go/contracts"
)

// Registry holds the ordered interceptor lists per call-category. Lists are
// supplied wholesale at owning-context construction; once the owning context
// starts dispatching the registry is sealed and further registration fails.
// Chains mirror registration order exactly, so keeping the registry frozen
// after activation keeps composition deterministic.
type Registry struct {
	mu           sync.RWMutex
	interceptors map[contracts.Category][]Interceptor
	sealed       bool
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		interceptors: make(map[contracts.Category][]Interceptor),
	}
}

// Register replaces the interceptor list for the category wholesale, in the
// given order. Registering against a sealed registry returns
// ErrRegistrySealed.
func (r *Registry) Register(category contracts.Category, ics ...Interceptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrySealed
	}

	list := make([]Interceptor, len(ics))
	copy(list, ics)
	r.interceptors[category] = list
	return nil
}

// ListFor returns a copy of the ordered interceptor list for the category.
// The list may be empty.
func (r *Registry) ListFor(category contracts.Category) []Interceptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.interceptors[category]
	copied := make([]Interceptor, len(list))
	copy(copied, list)
	return copied
}

// Seal marks the registry read-only. Sealing is idempotent; the dispatcher
// seals the registry when it builds its first chain.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the registry accepts further registration.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}
