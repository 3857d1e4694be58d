package weft

import (
	"log/slog"
	"time"

	"github.com/wefthq/weft-go/contracts"
	"github.com/wefthq/weft-go/interceptors"
	"github.com/wefthq/weft-go/internal/reliability"
)

const (
	defaultRetryInitial = 100 * time.Millisecond
	defaultRetryMax     = 10 * time.Second
)

// clientConfig holds client configuration
type clientConfig struct {
	logger       *slog.Logger
	interceptors []interceptors.Interceptor
	headers      contracts.Header
	retryPolicy  reliability.RetryPolicy
}

// ClientOption configures the client
type ClientOption func(*clientConfig)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithDefaultLogger uses the default logger
func WithDefaultLogger() ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = slog.Default()
	}
}

// WithInterceptors sets the ordered client-category interceptor list. The
// list is registered wholesale; the first-registered interceptor is
// outermost.
func WithInterceptors(ics ...interceptors.Interceptor) ClientOption {
	return func(cfg *clientConfig) {
		cfg.interceptors = ics
	}
}

// WithHeaders sets base headers applied to every outgoing invocation
func WithHeaders(headers contracts.Header) ClientOption {
	return func(cfg *clientConfig) {
		cfg.headers = headers
	}
}

// WithRetryPolicy retries failed client calls with the given policy. Each
// attempt runs the whole interceptor chain again.
func WithRetryPolicy(policy reliability.RetryPolicy) ClientOption {
	return func(cfg *clientConfig) {
		cfg.retryPolicy = policy
	}
}

// DefaultRetryPolicy returns the exponential backoff policy recommended for
// client calls.
func DefaultRetryPolicy() reliability.RetryPolicy {
	return reliability.NewExponentialBackoff(defaultRetryInitial, defaultRetryMax, 2.0, 5)
}
