package interceptors

import (
	"context"
	"fmt"

	"github.com/wefthq/weft-go/contracts"
)

// OperationFilter decides whether an invocation should be intercepted
type OperationFilter interface {
	// ShouldIntercept returns true if the invocation should be intercepted
	ShouldIntercept(ctx context.Context, inv *contracts.Invocation) (bool, error)
}

// OperationFilterFunc is a function adapter for OperationFilter
type OperationFilterFunc func(ctx context.Context, inv *contracts.Invocation) (bool, error)

// ShouldIntercept implements OperationFilter
func (f OperationFilterFunc) ShouldIntercept(ctx context.Context, inv *contracts.Invocation) (bool, error) {
	return f(ctx, inv)
}

// KindFilter matches invocations whose operation kind is in a fixed set
type KindFilter struct {
	kinds map[contracts.OperationKind]bool
}

// NewKindFilter creates a filter matching only the given operation kinds
func NewKindFilter(kinds ...contracts.OperationKind) *KindFilter {
	kindMap := make(map[contracts.OperationKind]bool, len(kinds))
	for _, k := range kinds {
		kindMap[k] = true
	}
	return &KindFilter{kinds: kindMap}
}

// ShouldIntercept implements OperationFilter
func (f *KindFilter) ShouldIntercept(ctx context.Context, inv *contracts.Invocation) (bool, error) {
	return f.kinds[inv.Operation], nil
}

// CompositeFilter combines multiple filters with AND logic
type CompositeFilter struct {
	filters []OperationFilter
}

// NewCompositeFilter creates a new composite filter
func NewCompositeFilter(filters ...OperationFilter) *CompositeFilter {
	return &CompositeFilter{filters: filters}
}

// ShouldIntercept implements OperationFilter - all filters must return true
func (f *CompositeFilter) ShouldIntercept(ctx context.Context, inv *contracts.Invocation) (bool, error) {
	for _, filter := range f.filters {
		should, err := filter.ShouldIntercept(ctx, inv)
		if err != nil {
			return false, err
		}
		if !should {
			return false, nil
		}
	}
	return true, nil
}

// AnyFilter combines multiple filters with OR logic
type AnyFilter struct {
	filters []OperationFilter
}

// NewAnyFilter creates a new OR filter
func NewAnyFilter(filters ...OperationFilter) *AnyFilter {
	return &AnyFilter{filters: filters}
}

// ShouldIntercept implements OperationFilter - at least one filter must return true
func (f *AnyFilter) ShouldIntercept(ctx context.Context, inv *contracts.Invocation) (bool, error) {
	for _, filter := range f.filters {
		should, err := filter.ShouldIntercept(ctx, inv)
		if err != nil {
			return false, err
		}
		if should {
			return true, nil
		}
	}
	return false, nil
}

// ConditionalInterceptor applies another interceptor only when a filter
// matches; otherwise the invocation passes straight through.
type ConditionalInterceptor struct {
	condition   OperationFilter
	interceptor Interceptor
}

// NewConditionalInterceptor creates a new conditional interceptor
func NewConditionalInterceptor(condition OperationFilter, interceptor Interceptor) *ConditionalInterceptor {
	return &ConditionalInterceptor{
		condition:   condition,
		interceptor: interceptor,
	}
}

// Handles implements Interceptor
func (i *ConditionalInterceptor) Handles(kind contracts.OperationKind) bool {
	return i.interceptor.Handles(kind)
}

// Intercept implements Interceptor
func (i *ConditionalInterceptor) Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
	should, err := i.condition.ShouldIntercept(ctx, inv)
	if err != nil {
		return nil, fmt.Errorf("filter error: %w", err)
	}

	if should {
		return i.interceptor.Intercept(ctx, inv, next)
	}

	return next.Handle(ctx, inv)
}

// Name implements Interceptor
func (i *ConditionalInterceptor) Name() string {
	return fmt.Sprintf("ConditionalInterceptor[%s]", i.interceptor.Name())
}
