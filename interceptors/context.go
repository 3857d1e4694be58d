package interceptors

import (
	"context"
	"sync"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

// callValuesContextKey is the key under which CallValues travel in a context
const callValuesContextKey contextKey = "weft:interceptor:values"

// CallValues holds metadata interceptors share with frames further down the
// chain without touching the invocation itself. Values set before next runs
// are visible downstream; values set by downstream frames are visible on the
// unwind path.
type CallValues struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// NewCallValues creates an empty value bag
func NewCallValues() *CallValues {
	return &CallValues{
		values: make(map[string]interface{}),
	}
}

// Set stores a value under key
func (v *CallValues) Set(key string, value interface{}) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[key] = value
}

// Get retrieves the value stored under key
func (v *CallValues) Get(key string) (interface{}, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	value, exists := v.values[key]
	return value, exists
}

// GetString retrieves a string value stored under key
func (v *CallValues) GetString(key string) (string, bool) {
	value, exists := v.Get(key)
	if !exists {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

// Copy creates an independent copy of the value bag
func (v *CallValues) Copy() *CallValues {
	v.mu.RLock()
	defer v.mu.RUnlock()

	copied := NewCallValues()
	for k, val := range v.values {
		copied.values[k] = val
	}
	return copied
}

// WithCallValues attaches the value bag to the context
func WithCallValues(ctx context.Context, v *CallValues) context.Context {
	return context.WithValue(ctx, callValuesContextKey, v)
}

// CallValuesFrom retrieves the value bag from the context
func CallValuesFrom(ctx context.Context) (*CallValues, bool) {
	value := ctx.Value(callValuesContextKey)
	if value == nil {
		return nil, false
	}
	v, ok := value.(*CallValues)
	return v, ok
}

// EnsureCallValues returns the context's value bag, attaching a fresh one
// when none is present.
func EnsureCallValues(ctx context.Context) (context.Context, *CallValues) {
	v, exists := CallValuesFrom(ctx)
	if !exists {
		v = NewCallValues()
		ctx = WithCallValues(ctx, v)
	}
	return ctx, v
}
