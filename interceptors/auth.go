package interceptors

import (
	"context"
	"errors"
	"fmt"

	"github.com/wefthq/weft-go/contracts"
)

// ErrUnauthorized is returned when an invocation carries no valid auth
// header. The terminal handler is never reached.
var ErrUnauthorized = errors.New("invocation not authorized")

// DefaultAuthHeaderKey is the header key HeaderAuthInterceptor checks unless
// configured otherwise.
const DefaultAuthHeaderKey = "auth"

// Authorizer validates the auth token carried by an invocation
type Authorizer interface {
	Authorize(ctx context.Context, token string, inv *contracts.Invocation) error
}

// AuthorizerFunc is a function adapter for Authorizer
type AuthorizerFunc func(ctx context.Context, token string, inv *contracts.Invocation) error

// Authorize implements Authorizer
func (f AuthorizerFunc) Authorize(ctx context.Context, token string, inv *contracts.Invocation) error {
	return f(ctx, token, inv)
}

// HeaderAuthInterceptor rejects invocations whose auth header is missing or
// fails the authorizer's check, short-circuiting the chain before the
// terminal handler runs. It handles every operation kind.
type HeaderAuthInterceptor struct {
	headerKey  string
	authorizer Authorizer
}

// NewHeaderAuthInterceptor creates an auth interceptor checking the default
// auth header key
func NewHeaderAuthInterceptor(authorizer Authorizer) *HeaderAuthInterceptor {
	return &HeaderAuthInterceptor{
		headerKey:  DefaultAuthHeaderKey,
		authorizer: authorizer,
	}
}

// WithHeaderKey overrides the header key to check and returns the
// interceptor for chaining.
func (i *HeaderAuthInterceptor) WithHeaderKey(key string) *HeaderAuthInterceptor {
	i.headerKey = key
	return i
}

// Handles implements Interceptor
func (i *HeaderAuthInterceptor) Handles(contracts.OperationKind) bool {
	return true
}

// Intercept implements Interceptor
func (i *HeaderAuthInterceptor) Intercept(ctx context.Context, inv *contracts.Invocation, next Handler) (interface{}, error) {
	if !inv.Headers.Has(i.headerKey) {
		return nil, fmt.Errorf("missing %q header: %w", i.headerKey, ErrUnauthorized)
	}

	token := inv.Headers.Get(i.headerKey)
	if i.authorizer != nil {
		if err := i.authorizer.Authorize(ctx, token, inv); err != nil {
			return nil, fmt.Errorf("authorization failed for operation %s: %w", inv.Operation, err)
		}
	}

	return next.Handle(ctx, inv)
}

// Name implements Interceptor
func (i *HeaderAuthInterceptor) Name() string {
	return "HeaderAuthInterceptor"
}
